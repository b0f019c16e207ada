package ability

// HistorySize is how many transitions a model remembers.
const HistorySize = 10

// Transition is one committed state change.
type Transition struct {
	Machine string
	From    string
	To      string
	Cause   string
	At      float64 // model clock, ms
}

// History is a fixed ring of the most recent transitions across all four
// machines.
type History struct {
	entries [HistorySize]Transition
	next    int
	count   int
}

func (h *History) add(t Transition) {
	h.entries[h.next] = t
	h.next = (h.next + 1) % HistorySize
	if h.count < HistorySize {
		h.count++
	}
}

// Entries returns the remembered transitions, oldest first.
func (h *History) Entries() []Transition {
	out := make([]Transition, 0, h.count)
	start := (h.next - h.count + HistorySize) % HistorySize
	for i := 0; i < h.count; i++ {
		out = append(out, h.entries[(start+i)%HistorySize])
	}
	return out
}

// Last returns the most recent transition.
func (h *History) Last() (Transition, bool) {
	if h.count == 0 {
		return Transition{}, false
	}
	return h.entries[(h.next-1+HistorySize)%HistorySize], true
}

func (h *History) Len() int {
	return h.count
}

func (h *History) Clear() {
	*h = History{}
}
