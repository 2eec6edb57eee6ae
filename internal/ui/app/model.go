package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"wirematch/internal/modules/puzzle/dto"
	apperrors "wirematch/internal/platform/errors"
	"wirematch/internal/ui/components"
	"wirematch/internal/ui/theme"
	"wirematch/internal/ui/views/board"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type gamePort interface {
	PointerDown(ctx context.Context, x, y float64) (dto.GestureOutput, error)
	PointerMove(ctx context.Context, x, y float64) (dto.GestureOutput, error)
	PointerUp(ctx context.Context, x, y float64) (dto.GestureOutput, error)
	Select(ctx context.Context, side string, index int) (dto.GestureOutput, error)
	Cancel(ctx context.Context) (dto.GestureOutput, error)
	Reset(ctx context.Context) (dto.StateOutput, error)
	State(ctx context.Context) (dto.StateOutput, error)
}

// Rows above and below the board. Mouse coordinates are shifted by
// headerHeight before hit-testing.
const (
	headerHeight = 2
	footerHeight = 2
)

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Pick    key.Binding
	Cancel  key.Binding
	Reset   key.Binding
	Console key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Pick:    key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8"), key.WithHelp("1-8", "pick left, then right")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "drop wire")),
		Reset:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart at level 1")),
		Console: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "console")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pick, k.Reset, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pick, k.Cancel},
		{k.Reset, k.Console},
		{k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. The game itself lives behind gamePort;
// the model translates terminal input into pointer and selection calls and
// renders the latest state snapshot.
type Model struct {
	game    gamePort
	layout  *board.Layout
	state   dto.StateOutput
	keys    keyMap
	help    help.Model
	palette components.Palette

	showHelp bool
	status   string
	width    int
	height   int
}

func NewModel(game gamePort, layout *board.Layout, initial dto.StateOutput) Model {
	m := Model{
		game:    game,
		layout:  layout,
		state:   initial,
		keys:    defaultKeys(),
		help:    help.New(),
		palette: components.NewPalette(),
		status:  "drag a wire from the left to its twin on the right",
	}
	m.arrange()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if fired, ok := msg.(TimerFiredMsg); ok {
		if fired.run() {
			m.refresh()
		}
		return m, nil
	}

	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.palette.SetWidth(min(m.width-4, 48))
		m.arrange()

	case tea.MouseMsg:
		// The board is hidden behind the help screen.
		if !m.showHelp {
			m.handleMouse(msg)
		}

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
		case key.Matches(msg, m.keys.Console):
			return m, m.palette.Open(m.wiring())
		case key.Matches(msg, m.keys.Reset):
			m.reset()
		case key.Matches(msg, m.keys.Cancel):
			m.report(m.game.Cancel(context.Background()))
		case key.Matches(msg, m.keys.Pick):
			n, _ := strconv.Atoi(msg.String())
			m.pick(n - 1)
		}
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	ctx := context.Background()
	x, y := float64(msg.X), float64(msg.Y-headerHeight)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		m.report(m.game.PointerDown(ctx, x, y))
	case tea.MouseActionMotion:
		if !m.state.Dragging {
			return
		}
		if _, err := m.game.PointerMove(ctx, x, y); err != nil {
			m.status = theme.Bad.Render(err.Error())
		}
		m.refresh()
	case tea.MouseActionRelease:
		if !m.state.Dragging {
			return
		}
		m.report(m.game.PointerUp(ctx, x, y))
	}
}

// pick selects a left origin, or a right target while a wire is held.
func (m *Model) pick(index int) {
	side := "left"
	if m.state.Dragging {
		side = "right"
	}
	m.report(m.game.Select(context.Background(), side, index))
}

func (m *Model) reset() {
	state, err := m.game.Reset(context.Background())
	if err != nil {
		m.status = theme.Bad.Render("reset: " + err.Error())
		return
	}
	m.state = state
	m.arrange()
	m.status = "back to level 1"
}

// report turns a gesture outcome into a status line and refreshes state.
func (m *Model) report(out dto.GestureOutput, err error) {
	defer m.refresh()
	if err != nil {
		m.status = theme.Bad.Render(err.Error())
		return
	}
	switch out.Outcome {
	case "started":
		m.status = "holding " + out.Identity
	case "committed":
		m.status = theme.Good.Render("connected " + out.Identity)
	case "rejected":
		m.status = theme.Bad.Render("no match")
	case "cancelled":
		m.status = "wire dropped"
	case "ignored":
		if out.Reason == apperrors.ErrTransitioning.Error() {
			m.status = "level complete, hold on"
		}
	}
}

func (m *Model) refresh() {
	before := m.state.Level
	state, err := m.game.State(context.Background())
	if err != nil {
		m.status = theme.Bad.Render(err.Error())
		return
	}
	m.state = state
	if state.Level != before || len(state.Left) != m.layout.Count() {
		m.arrange()
	}
	if state.Level > before && before != 0 {
		m.status = fmt.Sprintf("level %d: %d pairs", state.Level, len(state.Left))
	}
}

func (m *Model) arrange() {
	m.layout.Arrange(m.width, m.boardHeight(), len(m.state.Left))
}

func (m Model) boardHeight() int {
	h := m.height - headerHeight - footerHeight
	if h < len(m.state.Left) {
		h = len(m.state.Left)
	}
	return h
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	width := m.layout.Width()
	boardH := m.layout.Height()

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(width).Height(boardH).Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(width, boardH, lipgloss.Center, lipgloss.Center, m.palette.View())
	case m.state.Overlay:
		msg := theme.Good.Render(fmt.Sprintf("Level %d complete!", m.state.Level)) + "\n" +
			theme.Muted.Render(fmt.Sprintf("next up: level %d", m.state.Level+1))
		content = lipgloss.Place(width, boardH, lipgloss.Center, lipgloss.Center, theme.Overlay.Render(msg))
	default:
		content = board.Render(m.state, m.layout)
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(width), "", content, m.renderStatusBar(width), m.help.ShortHelpView(m.keys.ShortHelp()))
}

func (m Model) renderHeader(width int) string {
	parts := []string{
		theme.Title.Render("wirematch"),
		theme.Hot.Render(fmt.Sprintf("level %d", m.state.Level)),
		theme.Muted.Render(fmt.Sprintf("best %d", m.state.HighScore)),
		theme.Muted.Render(fmt.Sprintf("%d/%d wired", m.state.Connected, len(m.state.Left))),
	}
	return theme.Header.Width(width).Render(strings.Join(parts, theme.Muted.Render("  │  ")))
}

func (m Model) renderStatusBar(width int) string {
	left := m.status
	if m.state.Transitioning && !m.state.Overlay {
		left = theme.Good.Render("solved!")
	}
	return theme.Header.Width(width).Render(left)
}

// wiring is the console's view of the open endpoints.
func (m Model) wiring() components.Wiring {
	terminals := func(eps []dto.EndpointOutput) []components.Terminal {
		out := make([]components.Terminal, len(eps))
		for i, ep := range eps {
			out[i] = components.Terminal{Number: ep.Index + 1, Name: ep.Name, Connected: ep.Connected}
		}
		return out
	}
	return components.Wiring{Left: terminals(m.state.Left), Right: terminals(m.state.Right), Holding: m.state.Holding}
}

// ─── console execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return m, nil
	}
	ctx := context.Background()

	switch parts[0] {
	case "connect":
		idx, err := parseIndexes(parts[1:], 2)
		if err != nil {
			m.status = "usage: connect <left#> <right#>"
			return m, nil
		}
		if m.state.Dragging {
			_, _ = m.game.Cancel(ctx)
		}
		if out, err := m.game.Select(ctx, "left", idx[0]); err != nil || out.Outcome != "started" {
			m.report(out, err)
			return m, nil
		}
		m.report(m.game.Select(ctx, "right", idx[1]))

	case "pick", "drop":
		idx, err := parseIndexes(parts[1:], 1)
		if err != nil {
			m.status = "usage: " + parts[0] + " <#>"
			return m, nil
		}
		side := "left"
		if parts[0] == "drop" {
			side = "right"
		}
		m.report(m.game.Select(ctx, side, idx[0]))

	case "cancel":
		m.report(m.game.Cancel(ctx))

	case "reset":
		m.reset()

	case "quit":
		return m, tea.Quit

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// parseIndexes reads n 1-based endpoint numbers.
func parseIndexes(args []string, n int) ([]int, error) {
	if len(args) != n {
		return nil, apperrors.ErrInvalidInput
	}
	out := make([]int, n)
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil || v < 1 {
			return nil, errors.Join(apperrors.ErrInvalidInput, err)
		}
		out[i] = v - 1
	}
	return out, nil
}
