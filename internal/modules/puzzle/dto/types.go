package dto

type PointerInput struct {
	X float64
	Y float64
}

// SelectInput picks an endpoint by side ("left" or "right") and index.
type SelectInput struct {
	Side  string
	Index int
}

type PreviewInput struct {
	Level int
	Seed  uint64
}

type PointOutput struct {
	X float64
	Y float64
}

type CurveOutput struct {
	From     PointOutput
	Control1 PointOutput
	Control2 PointOutput
	To       PointOutput
	Color    string
}

type EndpointOutput struct {
	Side      string
	Index     int
	Name      string
	Color     string
	Symbol    string
	DarkGlyph bool
	Connected bool
}

type GestureOutput struct {
	Outcome  string
	Reason   string
	Identity string
	Live     *CurveOutput
	Final    *CurveOutput
}

type StateOutput struct {
	SessionID     string
	Level         int
	HighScore     int
	Left          []EndpointOutput
	Right         []EndpointOutput
	Curves        []CurveOutput
	Live          *CurveOutput
	Holding       string
	Connected     int
	Dragging      bool
	Transitioning bool
	Overlay       bool
}

type LevelOutput struct {
	Level         int
	EndpointCount int
	Seed          uint64
	Left          []EndpointOutput
	Right         []EndpointOutput
}
