package blanket

import (
	"testing"

	"github.com/go-drift/blanket/pkg/geometry"
)

func TestSizeObserver_ForwardsChanges(t *testing.T) {
	var got []geometry.Size
	o := NewSizeObserver(func(s geometry.Size) { got = append(got, s) })

	o.Observe(geometry.Size{Width: 100, Height: 200})
	o.Observe(geometry.Size{Width: 100, Height: 200})
	o.Observe(geometry.Size{Width: 100, Height: 250})

	if len(got) != 2 {
		t.Fatalf("forwarded %d measurements, want 2", len(got))
	}
	if got[1] != (geometry.Size{Width: 100, Height: 250}) {
		t.Errorf("last forwarded = %+v", got[1])
	}
}

func TestSizeObserver_Last(t *testing.T) {
	o := NewSizeObserver(nil)
	if _, ok := o.Last(); ok {
		t.Error("Last() should report nothing before any measurement")
	}
	o.Observe(geometry.Size{Width: 10, Height: 20})
	last, ok := o.Last()
	if !ok || last != (geometry.Size{Width: 10, Height: 20}) {
		t.Errorf("Last() = %+v, %v", last, ok)
	}
}

func TestSizeObserver_ResetForwardsRepeat(t *testing.T) {
	count := 0
	o := NewSizeObserver(func(geometry.Size) { count++ })

	o.Observe(geometry.Size{Width: 10, Height: 20})
	o.Reset()
	o.Observe(geometry.Size{Width: 10, Height: 20})

	if count != 2 {
		t.Errorf("forwarded %d times, want 2 across a reset", count)
	}
}
