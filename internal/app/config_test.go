package app

import "testing"

func TestNewConfigDisplayDefaults(t *testing.T) {
	c := NewConfig()
	if c.DisplayScale != 1.0 {
		t.Errorf("DisplayScale = %v, want 1.0", c.DisplayScale)
	}
	if c.DebuggerScale != 1.0 {
		t.Errorf("DebuggerScale = %v, want 1.0", c.DebuggerScale)
	}
	if c.ROMPath != "" {
		t.Errorf("ROMPath = %q, want empty", c.ROMPath)
	}
}

func TestConfigAsMap(t *testing.T) {
	c := NewConfig()
	c.DisplayScale = 2.5
	c.DebuggerScale = 1.5
	c.ROMPath = "/roms/game.nes"

	m := c.AsMap()

	if got := m["display.scale"]; got != 2.5 {
		t.Errorf(`m["display.scale"] = %v, want 2.5`, got)
	}
	if got := m["debugger.scale"]; got != 1.5 {
		t.Errorf(`m["debugger.scale"] = %v, want 1.5`, got)
	}
	if got := m["rom.path"]; got != "/roms/game.nes" {
		t.Errorf(`m["rom.path"] = %v, want "/roms/game.nes"`, got)
	}
}
