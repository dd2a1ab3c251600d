package onemorenight

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/manualworlds/onemorenight-options/pkg/options"
	"github.com/manualworlds/onemorenight-options/pkg/plugin"
)

var registeredKeys = []string{
	KeyStartingDifficulty,
	KeySoloMode,
	KeyHardAchievements,
	KeyAchievementChallenges,
	KeyNonAchievementChallenges,
	KeyFishsanity,
	KeyJumpscaresanity,
	KeyBellLogic,
	KeyFlashlightSkins,
}

func TestDeclaredDefinitionsAreValid(t *testing.T) {
	declared := Declared()
	if len(declared) != 10 {
		t.Fatalf("Expected 10 declared options, got %d", len(declared))
	}

	for _, d := range declared {
		if err := d.Validate(); err != nil {
			t.Errorf("Declared option %s is invalid: %v", d.Key, err)
		}
		if d.DisplayName == "" {
			t.Errorf("Declared option %s has no display name", d.Key)
		}
		if d.Documentation == "" {
			t.Errorf("Declared option %s has no documentation", d.Key)
		}
	}
}

func TestBeforeOptionsDefined(t *testing.T) {
	p := &Plugin{}

	host := plugin.BuiltinOptions()
	host.Put(options.NewToggle(KeySoloMode, "Host Solo Mode", ""))
	before := host.Keys()

	set := p.BeforeOptionsDefined(host)

	for _, key := range registeredKeys {
		if _, ok := set[key]; !ok {
			t.Errorf("Expected %s to be registered", key)
		}
	}
	for _, key := range before {
		if _, ok := set[key]; !ok {
			t.Errorf("Host option %s was removed", key)
		}
	}
	if len(set) != len(before)+len(registeredKeys)-1 {
		t.Errorf("Expected %d options, got %d", len(before)+len(registeredKeys)-1, len(set))
	}

	if set[KeySoloMode].Kind != options.KindDefaultOnToggle {
		t.Errorf("Expected plugin solo_mode to replace host definition, got kind %s", set[KeySoloMode].Kind)
	}
	if _, ok := set[KeyTotalCharactersToWinWith]; ok {
		t.Errorf("total_characters_to_win_with is declared but must not be registered by this hook")
	}

	wantKinds := map[string]options.Kind{
		KeyStartingDifficulty:       options.KindChoice,
		KeySoloMode:                 options.KindDefaultOnToggle,
		KeyHardAchievements:         options.KindToggle,
		KeyAchievementChallenges:    options.KindToggle,
		KeyNonAchievementChallenges: options.KindToggle,
		KeyFishsanity:               options.KindChoice,
		KeyJumpscaresanity:          options.KindDefaultOnToggle,
		KeyBellLogic:                options.KindToggle,
		KeyFlashlightSkins:          options.KindDefaultOnToggle,
	}
	for key, kind := range wantKinds {
		if set[key].Kind != kind {
			t.Errorf("%s: expected kind %s, got %s", key, kind, set[key].Kind)
		}
	}
}

func TestBeforeOptionsDefinedIdempotent(t *testing.T) {
	p := &Plugin{}

	first := p.BeforeOptionsDefined(options.Set{})
	snapshot := first.Clone()
	second := p.BeforeOptionsDefined(first)

	if !reflect.DeepEqual(snapshot, second) {
		t.Errorf("Registering twice changed the plugin options")
	}
}

func TestFishsanityDefault(t *testing.T) {
	d := Fishsanity()

	v, ok := d.ChoiceValue("disabled")
	if !ok || v != 0 {
		t.Errorf("Expected disabled to be 0, got %d (found %v)", v, ok)
	}
	if d.Default != v {
		t.Errorf("Expected disabled to be the default, got %d", d.Default)
	}
}

func TestStartingDifficultyDefault(t *testing.T) {
	d := StartingDifficulty()
	if name, _ := d.ChoiceName(d.Default); name != "guilty" {
		t.Errorf("Expected default guilty, got %s", name)
	}
	if got := d.ChoiceNames(); !reflect.DeepEqual(got, []string{"calm", "guilty", "devastated", "scorched", "soaked"}) {
		t.Errorf("Unexpected choices: %v", got)
	}
}

func TestTotalCharactersToWinWithDefault(t *testing.T) {
	d := TotalCharactersToWinWith()
	if d.RangeStart != 10 || d.RangeEnd != 50 {
		t.Errorf("Expected range [10, 50], got [%d, %d]", d.RangeStart, d.RangeEnd)
	}
	if d.Default < d.RangeStart || d.Default > d.RangeEnd {
		t.Errorf("Default %d outside range", d.Default)
	}
	if d.Default != 50 {
		t.Errorf("Expected default 50, got %d", d.Default)
	}
}

func containerWith(t *testing.T, keys ...string) *options.Container {
	t.Helper()

	set := options.Set{}
	for _, key := range keys {
		set.Put(options.NewToggle(key, key, ""))
	}
	set.Put(options.NewToggle("unrelated", "Unrelated", ""))

	c, err := options.NewContainer(set)
	if err != nil {
		t.Fatalf("NewContainer failed: %v", err)
	}
	return c
}

func TestAfterOptionsDefinedHidesDerivedOptions(t *testing.T) {
	p := &Plugin{}
	c := containerWith(t, HiddenKeys()...)

	if err := p.AfterOptionsDefined(c); err != nil {
		t.Fatalf("AfterOptionsDefined failed: %v", err)
	}

	for _, key := range HiddenKeys() {
		d, err := c.Hint(key)
		if err != nil {
			t.Fatalf("Hint(%s) failed: %v", key, err)
		}
		if d.Visibility != options.VisibilityNone {
			t.Errorf("Expected %s to be hidden, got %s", key, d.Visibility)
		}
		if d.DisplayName != key || d.Default != 0 {
			t.Errorf("Unexpected change to %s: %+v", key, d)
		}
	}

	other, _ := c.Hint("unrelated")
	if other.Visibility != options.VisibilityAll {
		t.Errorf("Unrelated option visibility changed to %s", other.Visibility)
	}
	if c.Len() != len(HiddenKeys())+1 {
		t.Errorf("Expected %d options, got %d", len(HiddenKeys())+1, c.Len())
	}
}

func TestAfterOptionsDefinedMissingKey(t *testing.T) {
	p := &Plugin{}

	hidden := HiddenKeys()
	for i, missing := range hidden {
		keys := append(append([]string(nil), hidden[:i]...), hidden[i+1:]...)
		c := containerWith(t, keys...)

		err := p.AfterOptionsDefined(c)
		if !errors.Is(err, options.ErrUnknownOption) {
			t.Errorf("Missing %s: expected ErrUnknownOption, got %v", missing, err)
		}
	}
}

func TestHiddenKeysReturnsCopy(t *testing.T) {
	keys := HiddenKeys()
	if len(keys) != 7 {
		t.Fatalf("Expected 7 hidden keys, got %d", len(keys))
	}
	keys[0] = "solo_mode"

	c := containerWith(t, HiddenKeys()...)
	if err := (&Plugin{}).AfterOptionsDefined(c); err != nil {
		t.Fatalf("AfterOptionsDefined failed: %v", err)
	}
	if d, _ := c.Hint("placeholder"); d.Visibility != options.VisibilityNone {
		t.Errorf("Changing the returned keys must not change what is hidden")
	}
}

func TestDocumentationKeepsPlayerWarnings(t *testing.T) {
	tests := []struct {
		def  *options.Definition
		want []string
	}{
		{HardAchievements(), []string{
			"Forces nights to be 15 seconds longer",
			"Speed Coil is expected for one of them",
			"You should probably exclude this",
			"225% + 50% extra per additional player",
			"Ironically requires some luck to get",
		}},
		{Fishsanity(), []string{"completing your Checks may take a while"}},
		{BellLogic(), []string{"may not even show up in the Manual"}},
	}

	for _, tt := range tests {
		t.Run(tt.def.Key, func(t *testing.T) {
			for _, want := range tt.want {
				if !strings.Contains(tt.def.Documentation, want) {
					t.Errorf("Expected documentation to mention %q", want)
				}
			}
		})
	}
}

func TestGroupHooksPassThrough(t *testing.T) {
	p := &Plugin{}

	d := Fishsanity()
	groups := options.GroupMap{"Checks": {d}, "Empty": nil}
	got := p.BeforeOptionGroupsCreated(groups)
	if !reflect.DeepEqual(got, options.GroupMap{"Checks": {d}, "Empty": nil}) {
		t.Errorf("BeforeOptionGroupsCreated changed groups: %v", got)
	}

	list := []options.Group{{Name: "B", Options: []*options.Definition{d}}, {Name: "A"}}
	gotList := p.AfterOptionGroupsCreated(list)
	if !reflect.DeepEqual(gotList, []options.Group{{Name: "B", Options: []*options.Definition{d}}, {Name: "A"}}) {
		t.Errorf("AfterOptionGroupsCreated changed groups: %v", gotList)
	}

	if p.BeforeOptionGroupsCreated(nil) != nil {
		t.Errorf("Expected nil groups to pass through")
	}
	if p.AfterOptionGroupsCreated(nil) != nil {
		t.Errorf("Expected nil group list to pass through")
	}
}

func TestRegisteredInDefaultRegistry(t *testing.T) {
	p, err := plugin.DefaultRegistry.Get(Name)
	if err != nil {
		t.Fatalf("Plugin not registered: %v", err)
	}
	if p.Name() != Name {
		t.Errorf("Expected name %s, got %s", Name, p.Name())
	}
}

func TestLoad(t *testing.T) {
	result, err := plugin.NewLoader().Load(New())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if result.Manifest.GameName() != "Manual_OneMoreNight_wolfboi008" {
		t.Errorf("Unexpected game name %s", result.Manifest.GameName())
	}

	for _, key := range registeredKeys {
		d, err := result.Options.Hint(key)
		if err != nil {
			t.Errorf("Expected %s in loaded options: %v", key, err)
			continue
		}
		if d.Hidden() {
			t.Errorf("Plugin option %s should be visible", key)
		}
	}

	solo, _ := result.Options.Hint(KeySoloMode)
	if solo.Kind != options.KindDefaultOnToggle {
		t.Errorf("Derived solo_mode replaced the plugin definition")
	}

	for _, key := range HiddenKeys() {
		d, err := result.Options.Hint(key)
		if err != nil {
			t.Errorf("Expected derived option %s: %v", key, err)
			continue
		}
		if !d.Hidden() {
			t.Errorf("Expected %s to be hidden", key)
		}
	}

	for _, key := range []string{plugin.KeyProgressionBalancing, plugin.KeyAccessibility, plugin.KeyDeathLink} {
		if !result.Options.Has(key) {
			t.Errorf("Expected built-in option %s", key)
		}
	}

	wantGroups := []string{"Game Options", "Checks", "Multiworld"}
	if len(result.Groups) != len(wantGroups) {
		t.Fatalf("Expected %d groups, got %d", len(wantGroups), len(result.Groups))
	}
	for i, g := range result.Groups {
		if g.Name != wantGroups[i] {
			t.Errorf("Group %d: expected %s, got %s", i, wantGroups[i], g.Name)
		}
	}
}
