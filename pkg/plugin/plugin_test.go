package plugin

import (
	"errors"
	"reflect"
	"testing"

	"github.com/manualworlds/onemorenight-options/pkg/options"
)

const testManifest = `
game: Test
creator: tester
options:
  - key: coop
    kind: toggle
  - key: mode
    kind: choice
    choices:
      - {name: easy, value: 0}
      - {name: hard, value: 1}
groups:
  - name: Main
    options: [mode, coop, missing]
  - name: Host
    options: [death_link]
`

// recordingPlugin captures the order hooks run in
type recordingPlugin struct {
	BaseHooks
	calls    []string
	hideErr  error
	manifest string
}

func (p *recordingPlugin) Name() string { return "recording" }

func (p *recordingPlugin) Manifest() ([]byte, error) { return []byte(p.manifest), nil }

func (p *recordingPlugin) BeforeOptionsDefined(set options.Set) options.Set {
	p.calls = append(p.calls, "before_options")
	if _, ok := set[KeyDeathLink]; !ok {
		panic("built-ins must be present before the plugin runs")
	}
	if _, ok := set["coop"]; ok {
		panic("derived options must be merged after the plugin runs")
	}
	set.Put(options.NewDefaultOnToggle("mode", "Mode", ""))
	set.Put(options.NewRange(KeyProgressionBalancing, "Balancing", "", 0, 10, 5))
	return set
}

func (p *recordingPlugin) AfterOptionsDefined(c *options.Container) error {
	p.calls = append(p.calls, "after_options")
	if p.hideErr != nil {
		return p.hideErr
	}
	return c.SetVisibility("coop", options.VisibilityNone)
}

func (p *recordingPlugin) BeforeOptionGroupsCreated(groups options.GroupMap) options.GroupMap {
	p.calls = append(p.calls, "before_groups")
	d, err := p.lookup(groups, "Main", "coop")
	if err == nil {
		groups["Extra"] = append(groups["Extra"], d)
	}
	return groups
}

func (p *recordingPlugin) AfterOptionGroupsCreated(groups []options.Group) []options.Group {
	p.calls = append(p.calls, "after_groups")
	return groups
}

func (p *recordingPlugin) lookup(groups options.GroupMap, group, key string) (*options.Definition, error) {
	for _, d := range groups[group] {
		if d.Key == key {
			return d, nil
		}
	}
	return nil, options.ErrUnknownOption
}

func TestLoaderPhaseOrder(t *testing.T) {
	p := &recordingPlugin{manifest: testManifest}

	result, err := NewLoader().Load(p)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := []string{"before_options", "after_options", "before_groups", "after_groups"}
	if !reflect.DeepEqual(p.calls, want) {
		t.Errorf("Expected hook order %v, got %v", want, p.calls)
	}

	if result.Plugin != "recording" {
		t.Errorf("Expected plugin name recording, got %s", result.Plugin)
	}
	if result.ID.String() == "" {
		t.Errorf("Expected a load ID")
	}

	mode, err := result.Options.Hint("mode")
	if err != nil {
		t.Fatalf("Expected mode option: %v", err)
	}
	if mode.Kind != options.KindDefaultOnToggle {
		t.Errorf("Plugin definition of mode should win over the derived one, got %s", mode.Kind)
	}

	balancing, _ := result.Options.Hint(KeyProgressionBalancing)
	if balancing.RangeEnd != 10 {
		t.Errorf("Plugin definition should replace the built-in, got end %d", balancing.RangeEnd)
	}

	coop, err := result.Options.Hint("coop")
	if err != nil {
		t.Fatalf("Expected derived coop option: %v", err)
	}
	if !coop.Hidden() {
		t.Errorf("Expected coop to be hidden")
	}
}

func TestLoaderGroups(t *testing.T) {
	p := &recordingPlugin{manifest: testManifest}

	result, err := NewLoader().Load(p)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(result.Groups) != 3 {
		t.Fatalf("Expected 3 groups, got %d", len(result.Groups))
	}

	mainGroup := result.Groups[0]
	if mainGroup.Name != "Main" || !reflect.DeepEqual(mainGroup.Keys(), []string{"mode", "coop"}) {
		t.Errorf("Unexpected Main group: %s %v", mainGroup.Name, mainGroup.Keys())
	}
	if result.Groups[1].Name != "Host" {
		t.Errorf("Expected Host second, got %s", result.Groups[1].Name)
	}
	if result.Groups[2].Name != "Extra" {
		t.Errorf("Expected plugin group Extra last, got %s", result.Groups[2].Name)
	}

	coop, _ := result.Options.Hint("coop")
	if mainGroup.Options[1] != coop {
		t.Errorf("Groups should reference the finalized definitions")
	}
}

func TestLoaderAbortsOnHookError(t *testing.T) {
	hookErr := errors.New("boom")
	p := &recordingPlugin{manifest: testManifest, hideErr: hookErr}

	result, err := NewLoader().Load(p)
	if !errors.Is(err, hookErr) {
		t.Fatalf("Expected hook error, got %v", err)
	}
	if result != nil {
		t.Errorf("Expected no result on failure")
	}
	if len(p.calls) != 2 {
		t.Errorf("Expected loading to stop after the failing hook, got %v", p.calls)
	}
}

func TestLoaderRejectsBadManifest(t *testing.T) {
	p := &recordingPlugin{manifest: "game: Test\n"}

	if _, err := NewLoader().Load(p); err == nil {
		t.Fatalf("Expected error for manifest without creator")
	}
	if len(p.calls) != 0 {
		t.Errorf("No hook should run with a bad manifest, got %v", p.calls)
	}
}

type passThrough struct {
	BaseHooks
}

func (passThrough) Name() string              { return "pass" }
func (passThrough) Manifest() ([]byte, error) { return []byte("game: Pass\ncreator: me\n"), nil }

func TestBaseHooks(t *testing.T) {
	result, err := NewLoader().Load(passThrough{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if result.Options.Len() != len(BuiltinOptions()) {
		t.Errorf("Expected only built-in options, got %d", result.Options.Len())
	}
	if len(result.Groups) != 0 {
		t.Errorf("Expected no groups, got %d", len(result.Groups))
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	if err := r.Register("b", func() Plugin { return passThrough{} }); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := r.Register("a", func() Plugin { return passThrough{} }); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := r.Register("a", func() Plugin { return passThrough{} }); err == nil {
		t.Errorf("Expected duplicate registration to fail")
	}

	if got := r.List(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("Expected sorted names, got %v", got)
	}

	if _, err := r.Get("missing"); err == nil {
		t.Errorf("Expected error for missing plugin")
	}
	p, err := r.Get("a")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if p.Name() != "pass" {
		t.Errorf("Unexpected plugin %s", p.Name())
	}
}
