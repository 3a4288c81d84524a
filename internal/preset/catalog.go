package preset

import "github.com/abhisek/fraudlens/internal/transaction"

// Preset is a named example transaction used to populate the form quickly.
type Preset struct {
	Name        string
	Label       string
	Description string
	Input       transaction.Input
}

// catalog lists presets in display order.
var catalog = []Preset{
	{
		Name:        "genuine",
		Label:       "✓ Genuine",
		Description: "Small everyday purchase",
		Input:       withFeatures(1000, 25.50, 0.1, -0.2),
	},
	{
		Name:        "suspicious",
		Label:       "⚠ Suspicious",
		Description: "Large amount with outlying features",
		Input:       withFeatures(5000, 2500, 2.5, 3.1),
	},
	{
		Name:        "medium",
		Label:       "→ Medium",
		Description: "Mid-sized purchase, mild signals",
		Input:       withFeatures(3000, 150, -0.5, 0.3),
	},
}

// withFeatures builds an Input whose leading feature slots are set from fs;
// the rest stay 0.
func withFeatures(time, amount float64, fs ...float64) transaction.Input {
	in := transaction.Input{Time: time, Amount: amount}
	copy(in.Features[:], fs)
	return in
}

// Lookup returns the input for a preset name. Unknown names return false
// and callers leave their state untouched.
func Lookup(name string) (transaction.Input, bool) {
	for _, p := range catalog {
		if p.Name == name {
			return p.Input, true
		}
	}
	return transaction.Input{}, false
}

// All returns every preset in display order.
func All() []Preset {
	out := make([]Preset, len(catalog))
	copy(out, catalog)
	return out
}

// Names returns preset names in display order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for _, p := range catalog {
		names = append(names, p.Name)
	}
	return names
}
