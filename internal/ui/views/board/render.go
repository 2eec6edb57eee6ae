package board

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"wirematch/internal/modules/puzzle/domain"
	"wirematch/internal/modules/puzzle/dto"
	"wirematch/internal/ui/theme"
)

const (
	wireRune = '•'
	liveRune = '·'
)

type cell struct {
	ch    rune
	fg    string
	bg    string
	bold  bool
	faint bool
}

type grid struct {
	w, h  int
	cells [][]cell
}

func newGrid(w, h int) *grid {
	cells := make([][]cell, h)
	for y := range cells {
		row := make([]cell, w)
		for x := range row {
			row[x] = cell{ch: ' '}
		}
		cells[y] = row
	}
	return &grid{w: w, h: h, cells: cells}
}

func (g *grid) set(x, y int, c cell) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return
	}
	g.cells[y][x] = c
}

// Render draws the board for state. Curves are plotted first so endpoint
// boxes stay legible where wires meet them.
func Render(state dto.StateOutput, layout *Layout) string {
	g := newGrid(layout.Width(), layout.Height())
	for _, c := range state.Curves {
		plot(g, c, cell{ch: wireRune, fg: c.Color, bold: true})
	}
	if state.Live != nil {
		plot(g, *state.Live, cell{ch: liveRune, fg: state.Live.Color, faint: true})
	}
	drawEndpoints(g, layout, domain.SideLeft, state.Left)
	drawEndpoints(g, layout, domain.SideRight, state.Right)
	return g.String()
}

// plot samples the cubic curve densely enough that consecutive samples land
// on adjacent cells.
func plot(g *grid, c dto.CurveOutput, style cell) {
	curve := domain.Curve{
		From:     domain.Point{X: c.From.X, Y: c.From.Y},
		Control1: domain.Point{X: c.Control1.X, Y: c.Control1.Y},
		Control2: domain.Point{X: c.Control2.X, Y: c.Control2.Y},
		To:       domain.Point{X: c.To.X, Y: c.To.Y},
	}
	span := math.Abs(c.To.X-c.From.X) + math.Abs(c.To.Y-c.From.Y)
	steps := int(span*2) + 8
	for i := 0; i <= steps; i++ {
		p := curve.At(float64(i) / float64(steps))
		g.set(int(math.Round(p.X)), int(math.Round(p.Y)), style)
	}
}

func drawEndpoints(g *grid, layout *Layout, side domain.Side, endpoints []dto.EndpointOutput) {
	for _, ep := range endpoints {
		row, ok := layout.Row(ep.Index)
		if !ok {
			continue
		}
		fg := "#ffffff"
		if ep.DarkGlyph {
			fg = "#000000"
		}
		start := layout.boxStart(side)
		symbol := []rune(ep.Symbol)[0]
		box := [boxWidth]rune{' ', symbol, ' '}
		if ep.Connected {
			box[0], box[2] = '[', ']'
		}
		for i, r := range box {
			g.set(start+i, row, cell{ch: r, fg: fg, bg: ep.Color, bold: true})
		}
		label := strconv.Itoa(ep.Index + 1)
		g.set(layout.labelColumn(side), row, cell{ch: []rune(label)[0], fg: string(theme.Subtext0), faint: ep.Connected})
	}
}

func (g *grid) String() string {
	var sb strings.Builder
	for y, row := range g.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && sameStyle(row[x], row[start]) {
				continue
			}
			sb.WriteString(renderRun(row[start:x]))
			start = x
		}
	}
	return sb.String()
}

func sameStyle(a, b cell) bool {
	return a.fg == b.fg && a.bg == b.bg && a.bold == b.bold && a.faint == b.faint
}

func renderRun(run []cell) string {
	runes := make([]rune, len(run))
	for i, c := range run {
		runes[i] = c.ch
	}
	text := string(runes)
	head := run[0]
	if head.fg == "" && head.bg == "" {
		return text
	}
	style := lipgloss.NewStyle().Bold(head.bold).Faint(head.faint)
	if head.fg != "" {
		style = style.Foreground(lipgloss.Color(head.fg))
	}
	if head.bg != "" {
		style = style.Background(lipgloss.Color(head.bg))
	}
	return style.Render(text)
}
