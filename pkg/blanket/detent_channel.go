package blanket

// DetentChannel is the upward data channel through which content reports
// its declared detents. Descendants attach a declaration and receive
// update/remove functions; the channel aggregates all declarations in
// attach order, drops duplicates, and forwards the union whenever it
// changes.
type DetentChannel struct {
	onChange func([]Detent)
	entries  map[int][]Detent
	order    []int
	nextID   int
}

// NewDetentChannel creates a channel forwarding aggregated declarations
// to onChange.
func NewDetentChannel(onChange func([]Detent)) *DetentChannel {
	return &DetentChannel{
		onChange: onChange,
		entries:  make(map[int][]Detent),
	}
}

// Attach registers a declaration. The returned update function replaces
// it; the returned remove function withdraws it. Both are idempotent with
// respect to the aggregate: unchanged declarations do not re-notify.
func (c *DetentChannel) Attach(detents []Detent) (update func([]Detent), remove func()) {
	id := c.nextID
	c.nextID++
	c.entries[id] = cloneDetents(detents)
	c.order = append(c.order, id)
	c.notify()

	update = func(detents []Detent) {
		if _, ok := c.entries[id]; !ok {
			return
		}
		c.entries[id] = cloneDetents(detents)
		c.notify()
	}
	remove = func() {
		if _, ok := c.entries[id]; !ok {
			return
		}
		delete(c.entries, id)
		c.notify()
	}
	return update, remove
}

// Aggregate returns the union of all attached declarations in attach
// order, first occurrence winning.
func (c *DetentChannel) Aggregate() []Detent {
	var out []Detent
	seen := make(map[Detent]bool)
	for _, id := range c.order {
		detents, ok := c.entries[id]
		if !ok {
			continue
		}
		for _, d := range detents {
			if seen[d] {
				continue
			}
			seen[d] = true
			out = append(out, d)
		}
	}
	return out
}

func (c *DetentChannel) notify() {
	if c.onChange != nil {
		c.onChange(c.Aggregate())
	}
}

func cloneDetents(detents []Detent) []Detent {
	out := make([]Detent, len(detents))
	copy(out, detents)
	return out
}
