package tui

// Debouncer coalesces a burst of events into the last one. Every Next
// call invalidates the ticks already in flight; a tick's payload applies
// only when it still carries the live sequence number.
type Debouncer struct {
	seq int
}

// Next starts a new burst and returns its sequence number.
func (d *Debouncer) Next() int {
	d.seq++
	return d.seq
}

// Current reports whether seq belongs to the newest burst.
func (d *Debouncer) Current(seq int) bool {
	return seq == d.seq
}
