package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wippyai/wasm-bytecode/wasm"
)

func loadedModel(t *testing.T, code []byte) *inspectModel {
	t.Helper()
	m := newInspectModel("body.bin", code, wasm.NewDecoder(), nil)
	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init returned no command")
	}
	m.Update(m.load())
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 20})
	return m
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestInspect_Load(t *testing.T) {
	m := loadedModel(t, []byte{0x41, 0x01, 0x02, 0x40, 0x01, 0x0b, 0x1a, 0x0b})

	if len(m.steps) != 3 {
		t.Fatalf("steps = %d, want 3", len(m.steps))
	}
	want := []step{{offset: 0, size: 2}, {offset: 2, size: 4}, {offset: 6, size: 1}}
	for i, s := range m.steps {
		if s.offset != want[i].offset || s.size != want[i].size {
			t.Errorf("step %d at %d size %d, want %d size %d", i, s.offset, s.size, want[i].offset, want[i].size)
		}
	}

	view := m.View()
	for _, s := range []string{"body.bin", "3 instructions", "000000 i32.const 1", "offset 0x000000", "41 01"} {
		if !strings.Contains(view, s) {
			t.Errorf("view missing %q:\n%s", s, view)
		}
	}
}

func TestInspect_NotLoaded(t *testing.T) {
	m := newInspectModel("body.bin", nil, wasm.NewDecoder(), nil)
	if got := m.View(); !strings.Contains(got, "Decoding body.bin") {
		t.Errorf("View = %q", got)
	}
}

func TestInspect_Navigate(t *testing.T) {
	m := loadedModel(t, []byte{0x01, 0x02, 0x40, 0x01, 0x0b, 0x1a, 0x0b})

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.selected != 1 {
		t.Fatalf("selected = %d after down", m.selected)
	}
	if d := m.detail(); !strings.Contains(d, "block\n  nop\nend") || !strings.Contains(d, "02 40 01 0b") {
		t.Errorf("detail:\n%s", d)
	}

	m.Update(keyRunes("j"))
	m.Update(keyRunes("j"))
	if m.selected != 2 {
		t.Errorf("selected = %d, want clamp at 2", m.selected)
	}
	m.Update(keyRunes("g"))
	if m.selected != 0 {
		t.Errorf("selected = %d after g", m.selected)
	}
	m.Update(keyRunes("G"))
	if m.selected != 2 {
		t.Errorf("selected = %d after G", m.selected)
	}
	m.Update(keyRunes("k"))
	if m.selected != 1 {
		t.Errorf("selected = %d after k", m.selected)
	}
}

func TestInspect_Filter(t *testing.T) {
	m := loadedModel(t, []byte{0x41, 0x01, 0x02, 0x40, 0x01, 0x0b, 0x1a, 0x41, 0x02, 0x1a, 0x0b})

	m.Update(keyRunes("/"))
	if !m.filter.Focused() {
		t.Fatal("filter not focused after /")
	}
	m.Update(keyRunes("nop"))
	if len(m.visible) != 1 || m.steps[m.visible[0]].offset != 2 {
		t.Fatalf("visible after nop filter = %v", m.visible)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.filter.Focused() {
		t.Error("filter still focused after enter")
	}
	if !strings.Contains(m.View(), `filter "nop": 1 shown`) {
		t.Errorf("view:\n%s", m.View())
	}

	m.Update(keyRunes("/"))
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.filter.Value() != "" || len(m.visible) != 5 {
		t.Errorf("after esc: filter %q, %d visible", m.filter.Value(), len(m.visible))
	}
}

func TestInspect_DecodeError(t *testing.T) {
	m := loadedModel(t, []byte{0x01, 0x01, 0x06, 0x0b})

	if len(m.steps) != 2 || m.err == nil {
		t.Fatalf("steps = %d, err = %v", len(m.steps), m.err)
	}
	if view := m.View(); !strings.Contains(view, "invalid_opcode at offset 2") {
		t.Errorf("view:\n%s", view)
	}
}

func TestInspect_Quit(t *testing.T) {
	m := loadedModel(t, []byte{0x01, 0x0b})
	_, cmd := m.Update(keyRunes("q"))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}

func TestInspect_Help(t *testing.T) {
	m := loadedModel(t, []byte{0x01, 0x0b})
	short := m.bodyHeight()
	m.Update(keyRunes("?"))
	if !m.help.ShowAll {
		t.Fatal("? did not expand help")
	}
	if m.bodyHeight() >= short {
		t.Errorf("body height %d not reduced from %d", m.bodyHeight(), short)
	}
}

func TestStepMatches(t *testing.T) {
	in, _, err := wasm.DecodeInstruction([]byte{0x02, 0x40, 0x04, 0x40, 0x6a, 0x0b, 0x0b})
	if err != nil {
		t.Fatal(err)
	}
	if !stepMatches(in, "i32.add") {
		t.Error("nested i32.add not found")
	}
	if stepMatches(in, "call") {
		t.Error("matched absent mnemonic")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("abcdef", 4); got != "abc…" {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("ab", 4); got != "ab" {
		t.Errorf("truncate = %q", got)
	}
}

func TestInspect_RejectsStdin(t *testing.T) {
	ts := newTestState(t)
	if err := ts.run("inspect", "-"); err == nil {
		t.Error("inspect accepted stdin")
	}
}
