package discovery

import "scenario/internal/domain"

// Filter selects scenario units by target name
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByTargets keeps the units named in targets, in discovery order.
// An empty target list keeps every unit.
func (f *Filter) FilterByTargets(units []domain.Unit, targets []string) []domain.Unit {
	if len(targets) == 0 {
		return units
	}

	wanted := make(map[string]bool, len(targets))
	for _, target := range targets {
		wanted[target] = true
	}

	var filtered []domain.Unit
	for _, unit := range units {
		if wanted[unit.Name] {
			filtered = append(filtered, unit)
		}
	}
	return filtered
}

// Missing returns the targets that name no unit, in the order given.
func (f *Filter) Missing(units []domain.Unit, targets []string) []string {
	known := make(map[string]bool, len(units))
	for _, unit := range units {
		known[unit.Name] = true
	}

	var missing []string
	for _, target := range targets {
		if !known[target] {
			missing = append(missing, target)
		}
	}
	return missing
}
