// Package ports holds the static port-to-coordinate lookup table used when
// shipments are created. Keys are "City, CC" strings exactly as entered in
// the shipment form. Unrecognized ports are not an error: the shipment is
// stored without coordinates and skipped by the map view.
package ports

// Coordinate is a latitude/longitude pair in decimal degrees.
type Coordinate struct {
	Lat float64
	Lng float64
}

// table covers the ports AJC ships through. Compiled in; consulted only at
// shipment-creation time.
var table = map[string]Coordinate{
	"Atlanta, US":          {33.749, -84.388},
	"Savannah, US":         {32.0809, -81.0912},
	"Los Angeles, US":      {33.7406, -118.2706},
	"Rotterdam, NL":        {51.9225, 4.47917},
	"Hamburg, DE":          {53.5511, 9.9937},
	"Antwerp, BE":          {51.2194, 4.4025},
	"Santos, BR":           {-23.9608, -46.3336},
	"Buenos Aires, AR":     {-34.6037, -58.3816},
	"Valparaiso, CL":       {-33.0472, -71.6127},
	"Callao, PE":           {-12.0508, -77.1260},
	"Veracruz, MX":         {19.1738, -96.1342},
	"Shanghai, CN":         {31.2304, 121.4737},
	"Hong Kong, HK":        {22.3193, 114.1694},
	"Singapore, SG":        {1.2644, 103.8222},
	"Tokyo, JP":            {35.6528, 139.7596},
	"Busan, KR":            {35.1796, 129.0756},
	"Manila, PH":           {14.5995, 120.9842},
	"Bangkok, TH":          {13.7563, 100.5018},
	"Ho Chi Minh City, VN": {10.8231, 106.6297},
	"Dubai, AE":            {25.2048, 55.2708},
	"Cape Town, ZA":        {-33.9249, 18.4241},
	"Lagos, NG":            {6.4541, 3.3947},
}

// Lookup resolves a "City, CC" port name to its coordinates.
// The second return is false when the port is not in the table.
func Lookup(name string) (Coordinate, bool) {
	c, ok := table[name]
	return c, ok
}

// Known returns the number of ports in the table.
func Known() int { return len(table) }
