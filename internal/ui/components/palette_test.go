package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func board() Wiring {
	return Wiring{
		Left: []Terminal{
			{Number: 1, Name: "Red", Connected: true},
			{Number: 2, Name: "Blue"},
			{Number: 3, Name: "Green"},
		},
		Right: []Terminal{
			{Number: 1, Name: "Green"},
			{Number: 2, Name: "Red", Connected: true},
			{Number: 3, Name: "Blue"},
		},
	}
}

func lines(s []Suggestion) []string {
	out := make([]string, len(s))
	for i, x := range s {
		out[i] = x.Line
	}
	return out
}

func TestSuggestCompletion(t *testing.T) {
	t.Parallel()
	cases := []struct {
		input string
		want  []string
	}{
		{"", []string{"connect", "pick", "drop", "cancel"}},
		{"c", []string{"connect", "cancel"}},
		{"connect ", []string{"connect 2", "connect 3"}},
		{"connect 3", []string{"connect 3"}},
		{"connect 2 ", []string{"connect 2 1", "connect 2 3"}},
		{"drop ", []string{"drop 1", "drop 3"}},
		{"pick 1", nil},
		{"reset ", nil},
		{"connect 2 3 ", nil},
	}
	for _, tc := range cases {
		got := lines(Suggest(tc.input, board()))
		if len(got) != len(tc.want) {
			t.Fatalf("%q: expected %v, got %v", tc.input, tc.want, got)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("%q: expected %v, got %v", tc.input, tc.want, got)
			}
		}
	}
}

func TestSuggestNotesNameTheWire(t *testing.T) {
	t.Parallel()
	got := Suggest("connect 2 ", board())
	if got[0].Note != "Green" || got[1].Note != "Blue" {
		t.Fatalf("unexpected notes %+v", got)
	}
}

func TestTabAcceptsFirstSuggestion(t *testing.T) {
	t.Parallel()
	p := NewPalette()
	p.Open(board())
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("con")})
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyTab})
	if p.Value() != "connect " {
		t.Fatalf("expected command completion, got %q", p.Value())
	}
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyTab})
	if p.Value() != "connect 2 " {
		t.Fatalf("expected first open left endpoint, got %q", p.Value())
	}
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyTab})
	if p.Value() != "connect 2 1 " {
		t.Fatalf("expected first open right endpoint, got %q", p.Value())
	}

	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	msg, ok := cmd().(PaletteSubmitMsg)
	if !ok || msg.Input != "connect 2 1" {
		t.Fatalf("expected trimmed submit, got %#v", msg)
	}
}
