package fsm

// TimedFlag is a countdown in milliseconds. It is active while time remains.
// The zero value is an inactive flag.
type TimedFlag struct {
	remaining float64
}

// Start sets the remaining time. Negative durations start an inactive flag.
func (f *TimedFlag) Start(durationMs float64) {
	if durationMs < 0 {
		durationMs = 0
	}
	f.remaining = durationMs
}

// Tick consumes deltaMs of the remaining time, stopping at zero.
func (f *TimedFlag) Tick(deltaMs float64) {
	if f.remaining <= 0 || deltaMs <= 0 {
		return
	}
	f.remaining -= deltaMs
	if f.remaining < 0 {
		f.remaining = 0
	}
}

func (f *TimedFlag) Active() bool {
	return f.remaining > 0
}

// Stop consumes the flag immediately.
func (f *TimedFlag) Stop() {
	f.remaining = 0
}

// Extend adds time to an active or inactive flag.
func (f *TimedFlag) Extend(ms float64) {
	if ms <= 0 {
		return
	}
	f.remaining += ms
}

func (f *TimedFlag) Remaining() float64 {
	return f.remaining
}
