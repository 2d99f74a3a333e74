package background

// OpKind names a recorded drawing operation
type OpKind string

const (
	OpFillRadial     OpKind = "radial"
	OpFillCircle     OpKind = "circle"
	OpStrokeGradient OpKind = "stroke"
)

// Op is one drawing call, shaped for replay on an HTML canvas
type Op struct {
	Kind  OpKind      `json:"kind"`
	Rect  *Rect       `json:"rect,omitempty"`
	X     float64     `json:"x"`
	Y     float64     `json:"y"`
	X1    float64     `json:"x1,omitempty"`
	Y1    float64     `json:"y1,omitempty"`
	R     float64     `json:"r,omitempty"`
	Width float64     `json:"width,omitempty"`
	Color *Color      `json:"color,omitempty"`
	Stops []ColorStop `json:"stops,omitempty"`
	Alpha float64     `json:"alpha"`
	Glow  float64     `json:"glow,omitempty"`
}

// Frame is the list of operations making up one tick
type Frame struct {
	Seq    uint64 `json:"frame"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Ops    []Op   `json:"ops"`
}

// Recorder is a Surface that collects operations and hands each finished
// frame to a sink
type Recorder struct {
	width, height int
	seq           uint64
	ops           []Op
	sink          func(Frame) error
}

// NewRecorder creates a recorder. sink may be nil, in which case frames are
// discarded on Present.
func NewRecorder(sink func(Frame) error) *Recorder {
	return &Recorder{sink: sink}
}

func (r *Recorder) Resize(width, height int) {
	r.width, r.height = width, height
}

func (r *Recorder) Size() (int, int) {
	return r.width, r.height
}

func (r *Recorder) FillRadial(rect Rect, cx, cy, radius float64, stops []ColorStop, alpha float64) {
	r.ops = append(r.ops, Op{Kind: OpFillRadial, Rect: &rect, X: cx, Y: cy, R: radius, Stops: stops, Alpha: alpha})
}

func (r *Recorder) FillCircle(x, y, radius float64, c Color, alpha, glow float64) {
	r.ops = append(r.ops, Op{Kind: OpFillCircle, X: x, Y: y, R: radius, Color: &c, Alpha: alpha, Glow: glow})
}

func (r *Recorder) StrokeGradient(x0, y0, x1, y1, width float64, stops []ColorStop, alpha float64) {
	r.ops = append(r.ops, Op{Kind: OpStrokeGradient, X: x0, Y: y0, X1: x1, Y1: y1, Width: width, Stops: stops, Alpha: alpha})
}

// Ops returns the operations recorded since the last Present
func (r *Recorder) Ops() []Op {
	return r.ops
}

// Present sends the pending frame to the sink and starts a new one
func (r *Recorder) Present() error {
	frame := Frame{Seq: r.seq, Width: r.width, Height: r.height, Ops: r.ops}
	r.seq++
	r.ops = make([]Op, 0, len(frame.Ops))
	if r.sink == nil {
		return nil
	}
	return r.sink(frame)
}
