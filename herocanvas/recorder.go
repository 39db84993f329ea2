package herocanvas

// OpKind identifies a recorded backend operation.
type OpKind uint8

const (
	OpClear OpKind = iota // surface cleared
	OpFill                // one FillPolygons call
)

// Op is one operation captured by a Recorder.
type Op struct {
	Kind   OpKind
	Polys  int     // number of polygons filled
	Points int     // total points across polygons
	Alpha  float64 // global alpha at fill time
	Paint  Paint
	Bounds Rect // device-space bounding box of the filled polygons
}

// Recorder is a Canvas and Backend that draws nothing and records every
// operation it receives. It backs headless tests and lets embedders measure
// what a frame would draw.
type Recorder struct {
	W, H    int
	Ops     []Op
	painter *Painter
}

// NewRecorder creates a Recorder with the given initial size.
func NewRecorder(w, h int) *Recorder {
	r := &Recorder{W: w, H: h}
	r.painter = NewPainter(r)
	return r
}

func (r *Recorder) SetSize(w, h int) {
	r.W, r.H = w, h
}

func (r *Recorder) Context() Context {
	return r.painter
}

func (r *Recorder) Clear() {
	r.Ops = append(r.Ops, Op{Kind: OpClear})
}

func (r *Recorder) FillPolygons(polys [][]Vec2, paint Paint, _ Matrix, alpha float64) {
	op := Op{Kind: OpFill, Polys: len(polys), Alpha: alpha, Paint: paint}
	first := true
	var minX, minY, maxX, maxY float64
	for _, poly := range polys {
		op.Points += len(poly)
		for _, pt := range poly {
			if first {
				minX, minY, maxX, maxY = pt.X, pt.Y, pt.X, pt.Y
				first = false
				continue
			}
			minX = min(minX, pt.X)
			minY = min(minY, pt.Y)
			maxX = max(maxX, pt.X)
			maxY = max(maxY, pt.Y)
		}
	}
	op.Bounds = Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
	r.Ops = append(r.Ops, op)
}

// Fills returns the number of recorded fill operations.
func (r *Recorder) Fills() int {
	n := 0
	for i := range r.Ops {
		if r.Ops[i].Kind == OpFill {
			n++
		}
	}
	return n
}

// Reset discards recorded operations, keeping capacity.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}
