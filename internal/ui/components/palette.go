package components

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"wirematch/internal/ui/theme"
)

// PaletteSubmitMsg is emitted when the user confirms a command.
type PaletteSubmitMsg struct{ Input string }

// PaletteCancelMsg is emitted when the user presses esc.
type PaletteCancelMsg struct{}

var (
	paletteStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Peach).
			Background(theme.Mantle).
			Foreground(theme.Text).
			Padding(0, 1)

	hintStyle = lipgloss.NewStyle().Foreground(theme.Subtext0)
)

// Terminal is one endpoint as the console sees it. Number is 1-based.
type Terminal struct {
	Number    int
	Name      string
	Connected bool
}

// Wiring is the board the console completes against.
type Wiring struct {
	Left    []Terminal
	Right   []Terminal
	Holding string
}

// Suggestion is a full command line plus a short note shown beside it.
type Suggestion struct {
	Line string
	Note string
}

// consoleCommands must stay in sync with the switch in app/model.go executePalette.
var consoleCommands = []Suggestion{
	{Line: "connect", Note: "<left#> <right#>"},
	{Line: "pick", Note: "<left#>"},
	{Line: "drop", Note: "<right#>"},
	{Line: "cancel", Note: "drop the held wire"},
	{Line: "reset", Note: "back to level 1"},
	{Line: "quit"},
}

const maxSuggestions = 4

// Suggest completes input against the command list and, once a command is
// typed, against the endpoints still open on the board.
func Suggest(input string, w Wiring) []Suggestion {
	fields := strings.Fields(strings.ToLower(input))
	trailing := strings.HasSuffix(input, " ")
	if len(fields) == 0 || (len(fields) == 1 && !trailing) {
		prefix := ""
		if len(fields) == 1 {
			prefix = fields[0]
		}
		var out []Suggestion
		for _, c := range consoleCommands {
			if strings.HasPrefix(c.Line, prefix) {
				out = append(out, c)
			}
		}
		return limit(out)
	}

	cmd, args := fields[0], fields[1:]
	partial := ""
	if !trailing && len(args) > 0 {
		partial = args[len(args)-1]
		args = args[:len(args)-1]
	}

	var pool []Terminal
	switch {
	case cmd == "pick" && len(args) == 0, cmd == "connect" && len(args) == 0:
		pool = w.Left
	case cmd == "drop" && len(args) == 0, cmd == "connect" && len(args) == 1:
		pool = w.Right
	default:
		return nil
	}

	head := strings.Join(append([]string{cmd}, args...), " ")
	var out []Suggestion
	for _, t := range pool {
		if t.Connected {
			continue
		}
		num := strconv.Itoa(t.Number)
		if !strings.HasPrefix(num, partial) {
			continue
		}
		out = append(out, Suggestion{Line: head + " " + num, Note: t.Name})
	}
	return limit(out)
}

func limit(s []Suggestion) []Suggestion {
	if len(s) > maxSuggestions {
		return s[:maxSuggestions]
	}
	return s
}

// Palette is the wire console overlay backed by bubbles/textinput. Tab
// accepts the first suggestion.
type Palette struct {
	input   textinput.Model
	visible bool
	width   int
	wiring  Wiring
}

// NewPalette creates an inactive Palette ready to be opened.
func NewPalette() Palette {
	ti := textinput.New()
	ti.Placeholder = "connect 1 3"
	ti.CharLimit = 64
	return Palette{input: ti}
}

// Visible reports whether the palette is currently shown.
func (p Palette) Visible() bool { return p.visible }

// Open shows the palette against the given board and returns the focus command.
func (p *Palette) Open(w Wiring) tea.Cmd {
	p.visible = true
	p.wiring = w
	p.input.SetValue("")
	return p.input.Focus()
}

// SetWidth sets the render width for the overlay.
func (p *Palette) SetWidth(w int) { p.width = w }

// Value is the current input line.
func (p Palette) Value() string { return p.input.Value() }

func (p Palette) Update(msg tea.Msg) (Palette, tea.Cmd) {
	if !p.visible {
		return p, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			p.visible = false
			p.input.Blur()
			return p, func() tea.Msg { return PaletteCancelMsg{} }
		case "enter":
			val := strings.TrimSpace(p.input.Value())
			p.visible = false
			p.input.Blur()
			return p, func() tea.Msg { return PaletteSubmitMsg{Input: val} }
		case "tab":
			if s := Suggest(p.input.Value(), p.wiring); len(s) > 0 {
				p.input.SetValue(s[0].Line + " ")
				p.input.CursorEnd()
			}
			return p, nil
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p Palette) View() string {
	if !p.visible {
		return ""
	}
	title := "Wire Console"
	if p.wiring.Holding != "" {
		title += hintStyle.Render(" · holding " + p.wiring.Holding)
	}

	var sb strings.Builder
	sb.WriteString(theme.Title.Render(title) + "\n")
	sb.WriteString(": " + p.input.View() + "\n")
	if s := Suggest(p.input.Value(), p.wiring); len(s) > 0 {
		sb.WriteString("\n")
		for _, h := range s {
			line := h.Line
			if h.Note != "" {
				line = fmt.Sprintf("%-14s %s", h.Line, h.Note)
			}
			sb.WriteString(hintStyle.Render("  "+line) + "\n")
		}
	}

	w := p.width
	if w < 20 {
		w = 40
	}
	return paletteStyle.Width(w - 2).Render(sb.String())
}
