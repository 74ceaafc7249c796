package whiteboard

// Tool selects how a stroke composites onto the page buffer.
type Tool int

const (
	// ToolMark paints with the current color over existing content.
	ToolMark Tool = iota
	// ToolErase clears pixels under the stroke instead of painting
	// (destination-out compositing).
	ToolErase
)

// String returns the tool name.
func (t Tool) String() string {
	switch t {
	case ToolMark:
		return "mark"
	case ToolErase:
		return "erase"
	default:
		return "unknown"
	}
}

// LineCap specifies the shape of stroke endpoints.
type LineCap int

const (
	// LineCapRound specifies a rounded line cap.
	LineCapRound LineCap = iota
	// LineCapButt specifies a flat line cap.
	LineCapButt
)

// LineJoin specifies the shape of stroke joins.
type LineJoin int

const (
	// LineJoinRound specifies a rounded join.
	LineJoinRound LineJoin = iota
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// Brush size bounds, in logical units. Requests outside the range are
// clamped rather than rejected.
const (
	MinBrushSize     = 1
	MaxBrushSize     = 64
	DefaultBrushSize = 4
)

// Paint is the drawing context applied to strokes: tool, color, and brush
// geometry. A Board holds a single Paint shared by all of its pages; it is
// reapplied to a page's canvas on selection and after any buffer
// reallocation.
type Paint struct {
	// Tool selects mark or erase compositing.
	Tool Tool

	// Color is the stroke color. Ignored by the erase tool.
	Color RGBA

	// Width is the brush diameter in logical units.
	Width float64

	// Cap is the shape of stroke endpoints.
	Cap LineCap

	// Join is the shape of stroke joins.
	Join LineJoin
}

// NewPaint creates a Paint with default values: mark tool, black,
// DefaultBrushSize, round caps and joins.
func NewPaint() Paint {
	return Paint{
		Tool:  ToolMark,
		Color: Black,
		Width: DefaultBrushSize,
		Cap:   LineCapRound,
		Join:  LineJoinRound,
	}
}

// clampBrushSize restricts a requested brush size to the supported range.
func clampBrushSize(n int) int {
	if n < MinBrushSize {
		return MinBrushSize
	}
	if n > MaxBrushSize {
		return MaxBrushSize
	}
	return n
}
