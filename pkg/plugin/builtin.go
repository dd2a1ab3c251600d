package plugin

import "github.com/manualworlds/onemorenight-options/pkg/options"

// Host option keys present in every game before plugins run
const (
	KeyProgressionBalancing = "progression_balancing"
	KeyAccessibility        = "accessibility"
	KeyDeathLink            = "death_link"
)

// BuiltinOptions returns a fresh copy of the options the host defines for every game
func BuiltinOptions() options.Set {
	set := options.Set{}

	set.Put(options.NewRange(KeyProgressionBalancing, "Progression Balancing",
		"How strongly progression items are pulled earlier into the multiworld. 0 disables balancing.",
		0, 99, 50))

	set.Put(options.NewChoice(KeyAccessibility, "Accessibility",
		"Full guarantees every location is reachable; minimal only guarantees the game can be beaten.",
		0,
		options.Choice{Name: "full", Value: 0},
		options.Choice{Name: "minimal", Value: 2},
	))

	set.Put(options.NewToggle(KeyDeathLink, "Death Link",
		"When you die, everyone else with Death Link enabled dies too, and the other way around."))

	return set
}
