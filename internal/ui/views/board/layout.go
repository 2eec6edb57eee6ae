package board

import (
	"wirematch/internal/modules/puzzle/domain"
)

const (
	boxWidth = 3
	// labelGap is the column between an endpoint's index label and its box.
	labelGap = 1
	minWidth = 24
)

// Layout maps endpoints to cells on the board. It is the hit-test
// collaborator for the game and must be re-arranged whenever the terminal
// size or the endpoint count changes.
type Layout struct {
	width  int
	height int
	count  int
	rows   []int
}

func NewLayout() *Layout {
	return &Layout{}
}

// Arrange spreads count endpoints evenly down a width x height board.
func (l *Layout) Arrange(width, height, count int) {
	if width < minWidth {
		width = minWidth
	}
	if height < 1 {
		height = 1
	}
	l.width, l.height, l.count = width, height, count
	l.rows = make([]int, count)
	if count == 0 {
		return
	}
	spacing := height / count
	if spacing < 1 {
		spacing = 1
	}
	top := (height - spacing*(count-1)) / 2
	if top < 0 {
		top = 0
	}
	for i := range l.rows {
		l.rows[i] = top + i*spacing
	}
}

func (l *Layout) Width() int  { return l.width }
func (l *Layout) Height() int { return l.height }
func (l *Layout) Count() int  { return l.count }

// boxStart is the first column of an endpoint's box.
func (l *Layout) boxStart(side domain.Side) int {
	if side == domain.SideLeft {
		return 1 + labelGap
	}
	return l.width - 1 - labelGap - boxWidth
}

// labelColumn is where the 1-based keyboard index is drawn.
func (l *Layout) labelColumn(side domain.Side) int {
	if side == domain.SideLeft {
		return 0
	}
	return l.width - 1
}

func (l *Layout) Row(index int) (int, bool) {
	if index < 0 || index >= len(l.rows) {
		return 0, false
	}
	return l.rows[index], true
}

// Anchor is the cell just inside the box edge facing the other side.
func (l *Layout) Anchor(ref domain.EndpointRef) (domain.Point, bool) {
	row, ok := l.Row(ref.Index)
	if !ok {
		return domain.Point{}, false
	}
	x := l.boxStart(ref.Side)
	if ref.Side == domain.SideLeft {
		x += boxWidth
	} else {
		x--
	}
	return domain.Point{X: float64(x), Y: float64(row)}, true
}

// HitTest accepts the box cells, the anchor cell and the label, on the
// endpoint's row.
func (l *Layout) HitTest(p domain.Point) (domain.EndpointRef, bool) {
	col, row := int(p.X), int(p.Y)
	if p.X < 0 || p.Y < 0 {
		return domain.EndpointRef{}, false
	}
	for _, side := range []domain.Side{domain.SideLeft, domain.SideRight} {
		lo, hi := l.hitSpan(side)
		if col < lo || col > hi {
			continue
		}
		for i, r := range l.rows {
			if r == row {
				return domain.EndpointRef{Side: side, Index: i}, true
			}
		}
	}
	return domain.EndpointRef{}, false
}

func (l *Layout) hitSpan(side domain.Side) (int, int) {
	start := l.boxStart(side)
	if side == domain.SideLeft {
		return 0, start + boxWidth
	}
	return start - 1, l.width - 1
}
