package blanket

import (
	"testing"

	"github.com/go-drift/blanket/pkg/geometry"
)

func TestOffsetEffect_Apply(t *testing.T) {
	e := OffsetEffect{Offset: geometry.Offset{Y: 40}}
	got := e.Apply(geometry.Offset{X: 10, Y: 5})
	if got != (geometry.Offset{X: 10, Y: 45}) {
		t.Errorf("Apply = %+v, want {10 45}", got)
	}
}

func TestLerpOffsetEffect(t *testing.T) {
	a := OffsetEffect{Offset: geometry.Offset{Y: 0}}
	b := OffsetEffect{Offset: geometry.Offset{Y: 100}}
	got := LerpOffsetEffect(a, b, 0.25)
	if got.Offset != (geometry.Offset{Y: 25}) {
		t.Errorf("LerpOffsetEffect = %+v, want {0 25}", got.Offset)
	}
}
