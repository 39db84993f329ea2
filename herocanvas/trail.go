package herocanvas

// Trail is a fixed-capacity history of points, oldest first. Pushing onto a
// full trail evicts the oldest point.
type Trail struct {
	buf   []Vec2
	start int
	n     int
}

// NewTrail creates a trail holding at most capacity points.
func NewTrail(capacity int) Trail {
	if capacity < 1 {
		capacity = 1
	}
	return Trail{buf: make([]Vec2, capacity)}
}

// Push appends pt, evicting the oldest point if the trail is full.
func (t *Trail) Push(pt Vec2) {
	if len(t.buf) == 0 {
		return
	}
	if t.n < len(t.buf) {
		t.buf[(t.start+t.n)%len(t.buf)] = pt
		t.n++
		return
	}
	t.buf[t.start] = pt
	t.start = (t.start + 1) % len(t.buf)
}

// Len returns the number of stored points.
func (t *Trail) Len() int {
	return t.n
}

// Cap returns the maximum number of points.
func (t *Trail) Cap() int {
	return len(t.buf)
}

// At returns point i, where 0 is the oldest.
func (t *Trail) At(i int) Vec2 {
	return t.buf[(t.start+i)%len(t.buf)]
}

// Head returns the newest point. ok is false when the trail is empty.
func (t *Trail) Head() (pt Vec2, ok bool) {
	if t.n == 0 {
		return Vec2{}, false
	}
	return t.At(t.n - 1), true
}

// Clear empties the trail, keeping its capacity.
func (t *Trail) Clear() {
	t.start = 0
	t.n = 0
}
