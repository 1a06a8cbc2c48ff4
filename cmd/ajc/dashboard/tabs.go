package dashboard

// Tab is the closed set of portal views. Exactly one tab renders at a
// time; switching tabs never discards the snapshot.
type Tab int

const (
	TabOverview Tab = iota
	TabInventory
	TabLogistics
	TabMap
)

var tabTitles = [...]string{"Overview", "Inventory", "Logistics", "Map"}

// Title returns the navigation label for the tab.
func (t Tab) Title() string {
	if t < 0 || int(t) >= len(tabTitles) {
		return "?"
	}
	return tabTitles[t]
}

// Next cycles forward through the tabs.
func (t Tab) Next() Tab { return (t + 1) % Tab(len(tabTitles)) }

// Prev cycles backward through the tabs.
func (t Tab) Prev() Tab { return (t + Tab(len(tabTitles)) - 1) % Tab(len(tabTitles)) }

// AllTabs lists the tabs in navigation order.
func AllTabs() []Tab {
	return []Tab{TabOverview, TabInventory, TabLogistics, TabMap}
}
