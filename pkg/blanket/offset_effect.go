package blanket

import "github.com/go-drift/blanket/pkg/geometry"

// OffsetEffect is the animatable translation the rendering layer applies
// to the presented content. It is a plain value so animation engines can
// interpolate it with [LerpOffsetEffect].
type OffsetEffect struct {
	Offset geometry.Offset
}

// Apply translates a point by the effect's offset.
func (e OffsetEffect) Apply(point geometry.Offset) geometry.Offset {
	return point.Add(e.Offset)
}

// LerpOffsetEffect linearly interpolates between two effects by t.
func LerpOffsetEffect(a, b OffsetEffect, t float64) OffsetEffect {
	return OffsetEffect{Offset: geometry.LerpOffset(a.Offset, b.Offset, t)}
}
