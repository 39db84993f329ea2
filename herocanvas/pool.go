package herocanvas

import "math/rand/v2"

// Element is one slot of a Pool. Implementations are mutated in place and
// never reallocated.
type Element interface {
	// Reset reinitializes the element to fresh random parameters for a w x h
	// surface. initial is true only for the spawn at engine start.
	Reset(rng *rand.Rand, w, h float64, initial bool)
	// Update advances the element by one frame. It returns true when the
	// element expired or left its bounds and was reinitialized during this
	// call.
	Update(rng *rand.Rand, w, h float64) bool
	// Draw renders the element in its current state.
	Draw(ctx Context)
}

// elementPtr constrains P to be a pointer to T that implements Element, so a
// Pool can store values contiguously and still call pointer methods.
type elementPtr[T any] interface {
	*T
	Element
}

// Pool is a fixed-capacity arena of independently animated elements.
type Pool[T any, P elementPtr[T]] struct {
	slots    []T
	respawns uint64
}

// NewPool preallocates n slots. setup, when non-nil, runs once per slot before
// the first Reset and is the place to size per-element buffers.
func NewPool[T any, P elementPtr[T]](n int, setup func(P)) *Pool[T, P] {
	if n < 0 {
		n = 0
	}
	p := &Pool[T, P]{slots: make([]T, n)}
	if setup != nil {
		for i := range p.slots {
			setup(P(&p.slots[i]))
		}
	}
	return p
}

// Spawn initializes every slot for a w x h surface.
func (p *Pool[T, P]) Spawn(rng *rand.Rand, w, h float64) {
	for i := range p.slots {
		P(&p.slots[i]).Reset(rng, w, h, true)
	}
}

// Update advances every slot by one frame without drawing.
func (p *Pool[T, P]) Update(rng *rand.Rand, w, h float64) {
	for i := range p.slots {
		if P(&p.slots[i]).Update(rng, w, h) {
			p.respawns++
		}
	}
}

// Step updates then draws each slot in order. Later slots draw on top.
func (p *Pool[T, P]) Step(ctx Context, rng *rand.Rand, w, h float64) {
	for i := range p.slots {
		e := P(&p.slots[i])
		if e.Update(rng, w, h) {
			p.respawns++
		}
		e.Draw(ctx)
	}
}

// Len returns the pool capacity, which is fixed for the pool's lifetime.
func (p *Pool[T, P]) Len() int {
	return len(p.slots)
}

// At returns a pointer to slot i for inspection.
func (p *Pool[T, P]) At(i int) P {
	return P(&p.slots[i])
}

// Respawns returns how many reinitializations Update and Step have performed.
func (p *Pool[T, P]) Respawns() uint64 {
	return p.respawns
}
