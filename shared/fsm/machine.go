// Package fsm holds the timing and state primitives the ability core is built
// from: a millisecond countdown flag and a small guarded state machine.
package fsm

// Callback runs on a state change. It receives the state being left, the
// state being entered and the context passed to TryTransition.
type Callback[S comparable, C any] func(from, to S, ctx C)

// Guard vetoes a transition when it returns false.
type Guard func() bool

// Machine holds one discrete state. It knows nothing about what the states
// mean; behaviour hangs off enter and exit callbacks.
type Machine[S comparable, C any] struct {
	current   S
	enter     map[S]Callback[S, C]
	exit      map[S]Callback[S, C]
	observers []Callback[S, C]
}

func New[S comparable, C any](initial S) *Machine[S, C] {
	return &Machine[S, C]{
		current: initial,
		enter:   make(map[S]Callback[S, C]),
		exit:    make(map[S]Callback[S, C]),
	}
}

func (m *Machine[S, C]) Current() S {
	return m.current
}

func (m *Machine[S, C]) Is(state S) bool {
	return m.current == state
}

// OnEnter registers the enter callback for state. A later registration
// replaces the earlier one.
func (m *Machine[S, C]) OnEnter(state S, cb Callback[S, C]) {
	m.enter[state] = cb
}

// OnExit registers the exit callback for state. A later registration
// replaces the earlier one.
func (m *Machine[S, C]) OnExit(state S, cb Callback[S, C]) {
	m.exit[state] = cb
}

// OnTransition adds an observer that runs after every committed transition,
// once the enter callback has returned.
func (m *Machine[S, C]) OnTransition(cb Callback[S, C]) {
	m.observers = append(m.observers, cb)
}

// TryTransition moves to the target state. It returns false without side
// effects when the machine is already there or the guard rejects.
// The exit callback completes before the state changes and the enter
// callback observes the committed state.
func (m *Machine[S, C]) TryTransition(to S, guard Guard, ctx C) bool {
	if to == m.current {
		return false
	}
	if guard != nil && !guard() {
		return false
	}

	from := m.current
	if cb, ok := m.exit[from]; ok && cb != nil {
		cb(from, to, ctx)
	}
	m.current = to
	if cb, ok := m.enter[to]; ok && cb != nil {
		cb(from, to, ctx)
	}
	for _, obs := range m.observers {
		obs(from, to, ctx)
	}
	return true
}

// Reset forces the state without running callbacks.
func (m *Machine[S, C]) Reset(state S) {
	m.current = state
}
