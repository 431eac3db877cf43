package blanket

import (
	"math"
	"sort"
)

// SnapVelocityThreshold is the vertical release speed (px/s) beyond which
// the snap decision follows the direction of travel instead of proximity.
// Negative velocity moves the sheet toward larger offsets (dragging up).
const SnapVelocityThreshold = 50.0

// ResolvedDetent pairs a declared detent with its absolute offset for the
// current layout.
type ResolvedDetent struct {
	Source Detent
	Offset float64
}

// ResolvedDetentSet is the ordered collection of resolved detents for the
// current layout: strictly ascending offsets, no duplicates, never empty
// when built through ResolveDetents.
type ResolvedDetentSet struct {
	detents []ResolvedDetent
}

// ResolveDetents resolves the declared detents in ctx and normalizes them
// into a set. An empty declaration defaults to the content's natural
// height. Duplicate offsets keep the first occurrence in sort order, and
// when a content-height detent is present, every detent resolving below it
// is dropped: the sheet never rests smaller than its content when
// content-based sizing is declared.
func ResolveDetents(declared []Detent, ctx DetentContext) ResolvedDetentSet {
	if len(declared) == 0 {
		declared = []Detent{Content}
	}

	resolved := make([]ResolvedDetent, 0, len(declared))
	for _, d := range declared {
		resolved = append(resolved, ResolvedDetent{Source: d, Offset: d.Resolve(ctx)})
	}
	sort.SliceStable(resolved, func(i, j int) bool {
		return resolved[i].Offset < resolved[j].Offset
	})

	deduped := resolved[:0]
	for _, r := range resolved {
		if len(deduped) > 0 && deduped[len(deduped)-1].Offset == r.Offset {
			continue
		}
		deduped = append(deduped, r)
	}

	return ResolvedDetentSet{detents: trimBelowContent(deduped)}
}

// trimBelowContent drops detents resolving below the content-height detent.
func trimBelowContent(detents []ResolvedDetent) []ResolvedDetent {
	var contentOffset float64
	found := false
	for _, r := range detents {
		if r.Source == Content {
			contentOffset = r.Offset
			found = true
			break
		}
	}
	if !found {
		return detents
	}
	trimmed := detents[:0]
	for _, r := range detents {
		if r.Offset < contentOffset {
			continue
		}
		trimmed = append(trimmed, r)
	}
	return trimmed
}

// Len returns the number of resolved detents.
func (s ResolvedDetentSet) Len() int {
	return len(s.detents)
}

// IsEmpty reports whether the set holds no detents. Only the zero value
// is empty; resolution always yields at least one entry.
func (s ResolvedDetentSet) IsEmpty() bool {
	return len(s.detents) == 0
}

// All returns the resolved detents in ascending offset order.
func (s ResolvedDetentSet) All() []ResolvedDetent {
	out := make([]ResolvedDetent, len(s.detents))
	copy(out, s.detents)
	return out
}

// Min returns the lowest resolved detent.
func (s ResolvedDetentSet) Min() ResolvedDetent {
	if len(s.detents) == 0 {
		return ResolvedDetent{}
	}
	return s.detents[0]
}

// Max returns the highest resolved detent.
func (s ResolvedDetentSet) Max() ResolvedDetent {
	if len(s.detents) == 0 {
		return ResolvedDetent{}
	}
	return s.detents[len(s.detents)-1]
}

// Range returns the detents bracketing offset: lower is the last detent at
// or below offset, higher the detent immediately after it. hasHigher is
// false when offset sits at or beyond the highest detent. Offsets below
// the whole set bracket to the lowest detent on both sides.
func (s ResolvedDetentSet) Range(offset float64) (lower, higher ResolvedDetent, hasHigher bool) {
	if len(s.detents) == 0 {
		return ResolvedDetent{}, ResolvedDetent{}, false
	}
	lower = s.detents[0]
	for _, r := range s.detents {
		if r.Offset <= offset {
			lower = r
			continue
		}
		return lower, r, true
	}
	return lower, ResolvedDetent{}, false
}

// Nearest picks the detent to snap to from a position and release
// velocity. Within ±[SnapVelocityThreshold] the numerically closer
// bracketing detent wins; faster upward movement (velocity below the
// negative threshold) forces the higher detent and faster downward
// movement forces the lower one. Positions above the highest detent snap
// to it.
func (s ResolvedDetentSet) Nearest(offset, velocity float64) ResolvedDetent {
	lower, higher, hasHigher := s.Range(offset)
	if !hasHigher {
		return s.Max()
	}
	if velocity < -SnapVelocityThreshold {
		return higher
	}
	if velocity > SnapVelocityThreshold {
		return lower
	}
	if math.Abs(offset-higher.Offset) < math.Abs(offset-lower.Offset) {
		return higher
	}
	return lower
}

// Equal reports value equality with other: same detents at the same
// offsets in the same order.
func (s ResolvedDetentSet) Equal(other ResolvedDetentSet) bool {
	if len(s.detents) != len(other.detents) {
		return false
	}
	for i, r := range s.detents {
		if r != other.detents[i] {
			return false
		}
	}
	return true
}
