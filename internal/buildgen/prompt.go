package buildgen

import (
	"fmt"
	"strconv"
	"strings"
)

const responseShape = `{
  "summary": "Brief summary of what this build is optimized for",
  "components": [
    {
      "name": "Component name",
      "type": "CPU/GPU/etc",
      "specs": "Key specifications",
      "price": price,
      "rationale": "Why this component was chosen"
    }
  ],
  "totalCost": total price,
  "compatibilityNotes": "Notes about compatibility",
  "reviewComponents": ["Component 1", "Component 2", "Component 3"]
}`

var peripheralLines = []struct {
	name string
	line string
}{
	{"Monitor", "9. Monitor (with size, resolution, and price)"},
	{"Keyboard", "10. Keyboard (with type and price)"},
	{"Mouse", "11. Mouse (with type and price)"},
}

// ComposePrompt renders the completion prompt for req. The output depends
// only on req.
func ComposePrompt(req Request) string {
	var b strings.Builder

	b.WriteString("I need a PC build recommendation with the following requirements:\n\n")
	fmt.Fprintf(&b, "Budget: ₹%s\n", formatBudget(float64(req.Budget)))
	fmt.Fprintf(&b, "Primary Use Case: %s\n", req.UseCase)
	fmt.Fprintf(&b, "CPU Preference: %s\n", brandPreference(req.CPUBrand))
	fmt.Fprintf(&b, "GPU Preference: %s\n", brandPreference(req.GPUBrand))
	fmt.Fprintf(&b, "Monitor Resolution: %s\n", orDefault(req.Resolution, "Not specified"))
	if len(req.Peripherals) > 0 {
		fmt.Fprintf(&b, "Additionally, include these peripherals in the budget: %s.\n", strings.Join(req.Peripherals, ", "))
	}

	fmt.Fprintf(&b, "\nBased on these requirements, please analyze the use case %q in detail. For example, "+
		"for gaming I need a powerful GPU and good CPU, for video editing I need strong multi-core processor and plenty of RAM.\n\n", req.UseCase)

	b.WriteString("Please provide a detailed PC build recommendation with the following components:\n")
	b.WriteString("1. CPU (with model, specs, and price)\n")
	b.WriteString("2. Motherboard (with model, specs, and price)\n")
	b.WriteString("3. RAM (with capacity, speed, and price)\n")
	b.WriteString("4. GPU (with model, specs, and price)\n")
	b.WriteString("5. Storage (with type, capacity, and price)\n")
	b.WriteString("6. Power Supply (with wattage, rating, and price)\n")
	b.WriteString("7. Case (with model and price)\n")
	b.WriteString("8. CPU Cooler (if needed, with price)\n")
	for _, p := range peripheralLines {
		if req.HasPeripheral(p.name) {
			b.WriteString(p.line)
			b.WriteByte('\n')
		}
	}

	b.WriteString("\nFor each component, please provide:\n")
	b.WriteString("1. Full name and model\n")
	b.WriteString("2. Key specifications\n")
	b.WriteString("3. Price in Indian Rupees (₹)\n")
	b.WriteString("4. A brief explanation of why this component is suitable for the specified use case\n")

	b.WriteString("\nPlease also include:\n")
	b.WriteString("1. Total build cost calculation\n")
	b.WriteString("2. Component selection rationale based on the use case\n")
	b.WriteString("3. Compatibility check confirming all parts work together\n")
	b.WriteString("4. The names of important components that would benefit from video reviews (for YouTube search of famous reviewers)\n")

	b.WriteString("\nFormat the response in JSON with the following structure:\n")
	b.WriteString(responseShape)
	b.WriteByte('\n')

	return b.String()
}

func brandPreference(brand string) string {
	if brand == "" || strings.EqualFold(brand, NoPreference) {
		return "Any brand"
	}
	return brand
}

func formatBudget(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
