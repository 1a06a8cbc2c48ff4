// Package bot implements the AJC-Bot chat assistant: it serializes the
// current business data snapshot into a system instruction, submits the
// conversation to the generative-language API and returns the markdown
// reply. Call failures are replaced with a fixed fallback message; there
// is no retry.
package bot

import (
	"fmt"
	"strings"
	"time"

	"github.com/gustavoarielrecha-beep/AJC-POC/internal/types"
)

// ContextReport serializes the entire snapshot into the human-readable
// data block the model is grounded on. Every product and shipment is
// included; no size cap or truncation is applied.
func ContextReport(products []types.Product, shipments []types.Shipment, now time.Time) string {
	var sb strings.Builder

	sb.WriteString("DATE: ")
	sb.WriteString(now.Format("1/2/2006"))
	sb.WriteString("\n\nLIVE INVENTORY DATA:\n")

	if len(products) == 0 {
		sb.WriteString("No products found in database.")
	} else {
		lines := make([]string, 0, len(products))
		for _, p := range products {
			lines = append(lines, fmt.Sprintf("- Product: %s | Category: %s | Stock: %g %s | Location: %s",
				p.Name, p.Category, p.StockLevel, p.Unit, p.Location))
		}
		sb.WriteString(strings.Join(lines, "\n"))
	}

	sb.WriteString("\n\nLIVE SHIPMENT DATA:\n")

	if len(shipments) == 0 {
		sb.WriteString("No active shipments found.")
	} else {
		lines := make([]string, 0, len(shipments))
		for _, s := range shipments {
			lines = append(lines, fmt.Sprintf("- Tracking ID: %s | Status: %s | Product: %s | Route: %s -> %s | ETA: %s",
				s.TrackingNumber, s.Status, s.ProductName, s.Origin, s.Destination, s.ETA))
		}
		sb.WriteString(strings.Join(lines, "\n"))
	}

	return sb.String()
}

const personaPreamble = `You are AJC-Bot, a specialized AI assistant for AJC International.
AJC is a global leader in marketing frozen foods (poultry, pork, beef, seafood, vegetables, fries) and logistics.

**CRITICAL: Use the provided "LIVE INVENTORY DATA" and "LIVE SHIPMENT DATA" above to answer specific questions.**
If a user asks about stock, look at the inventory data. If they ask about a shipment, look at the shipment data.
If the data is not in the context provided, politely say you don't have that information.

Key Business Context:
- Connecting agricultural producers with global markets.
- AJC Logistics provides transport solutions.

Directives:
1. **Formatting**: You MUST use Markdown for all responses. Use bolding (**text**) for key terms, bullet points for lists.
2. **Language**: Detect the language of the user's message. If they speak Spanish, reply in Spanish. If English, reply in English.
3. **Tone**: Professional, efficient, helpful.`

// SystemInstruction assembles the full system prompt: the fixed persona and
// behavior preamble followed by the serialized data context.
func SystemInstruction(report string) string {
	return personaPreamble + "\n\nData Context:\n" + report
}
