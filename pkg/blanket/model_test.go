package blanket

import (
	"testing"

	"github.com/go-drift/blanket/pkg/geometry"
)

func newTestModel() *Model {
	return NewModel(normalizeBehavior(Behavior{}))
}

// loadModel feeds the standard test layout: a 1000px container (970 max
// detent value), 400px content, and the three-detent declaration.
func loadModel(m *Model) {
	m.SetDetents([]Detent{Fraction(0.3), Fraction(0.6), Content})
	m.SetMaximumContainerSize(geometry.Size{Width: 400, Height: 1000})
	m.SetContentSize(geometry.Size{Width: 400, Height: 400})
}

func TestModel_PhaseSequence(t *testing.T) {
	m := newTestModel()
	var phases []Phase
	var offsetAtLoaded float64
	m.Phase().AddListener(func(p Phase) {
		phases = append(phases, p)
		if p == PhaseLoaded {
			offsetAtLoaded = m.Offset().Get().Y
		}
	})

	m.Mount()
	loadModel(m)

	want := []Phase{PhaseMounted, PhaseLoaded, PhaseDisplaying}
	if len(phases) != len(want) {
		t.Fatalf("phases = %v, want %v", phases, want)
	}
	for i := range want {
		if phases[i] != want[i] {
			t.Fatalf("phases = %v, want %v", phases, want)
		}
	}
	if offsetAtLoaded != 400 {
		t.Errorf("offset at loaded = %f, want pre-positioned at the hiding offset 400", offsetAtLoaded)
	}
}

func TestModel_NoResolutionUntilAllInputs(t *testing.T) {
	m := newTestModel()
	m.Mount()
	m.SetDetents([]Detent{Content})
	m.SetMaximumContainerSize(geometry.Size{Width: 400, Height: 1000})

	if _, ok := m.ResolvedDetents(); ok {
		t.Error("resolution should wait for the content measurement")
	}
	if m.Phase().Get() != PhaseMounted {
		t.Errorf("phase = %v, want mounted while unmeasured", m.Phase().Get())
	}
}

func TestModel_InputsBeforeMountStillAdvance(t *testing.T) {
	m := newTestModel()
	loadModel(m)
	if m.Phase().Get() != PhaseUnmounted {
		t.Fatalf("phase = %v before mount, want unmounted", m.Phase().Get())
	}

	m.Mount()

	if m.Phase().Get() != PhaseDisplaying {
		t.Errorf("phase = %v, want displaying when inputs resolved early", m.Phase().Get())
	}
}

func TestModel_ResolvedSetMatchesLayout(t *testing.T) {
	m := newTestModel()
	m.Mount()
	loadModel(m)

	set, ok := m.ResolvedDetents()
	if !ok {
		t.Fatal("expected a resolved set")
	}
	if set.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (the 0.3 fraction trims below content)", set.Len())
	}
	if set.Min().Offset != 400 {
		t.Errorf("Min().Offset = %f, want 400", set.Min().Offset)
	}
	if set.Max().Source != Fraction(0.6) {
		t.Errorf("Max().Source = %v, want Fraction(0.6)", set.Max().Source)
	}
}

func TestModel_RedundantInputsDoNotRetrigger(t *testing.T) {
	m := newTestModel()
	m.Mount()
	loadModel(m)

	phaseCount := 0
	m.Phase().AddListener(func(Phase) { phaseCount++ })
	before, _ := m.ResolvedDetents()

	loadModel(m)

	if phaseCount != 0 {
		t.Errorf("redundant inputs produced %d phase notifications", phaseCount)
	}
	after, _ := m.ResolvedDetents()
	if !before.Equal(after) {
		t.Error("resolved set changed without input changes")
	}
}

func TestModel_HiddenOffsetIncludesBottomInset(t *testing.T) {
	m := newTestModel()
	m.SetContentSize(geometry.Size{Width: 400, Height: 400})
	if m.HiddenOffset() != 400 {
		t.Errorf("HiddenOffset() = %f, want 400", m.HiddenOffset())
	}
	m.SetSafeAreaInsets(geometry.EdgeInsets{Bottom: 20})
	if m.HiddenOffset() != 420 {
		t.Errorf("HiddenOffset() = %f, want 420 with the bottom inset", m.HiddenOffset())
	}
}

func TestModel_OverrideSuppressesRecompute(t *testing.T) {
	m := newTestModel()
	m.Mount()
	loadModel(m)

	m.CustomHeight().Set(HeightOverride{Value: 450, Active: true})
	m.SetContentSize(geometry.Size{Width: 400, Height: 500})

	set, _ := m.ResolvedDetents()
	if set.Min().Offset != 400 {
		t.Errorf("Min().Offset = %f, want stale 400 while the override is active", set.Min().Offset)
	}

	m.CustomHeight().Set(HeightOverride{})

	set, _ = m.ResolvedDetents()
	if set.Min().Offset != 500 {
		t.Errorf("Min().Offset = %f, want 500 after the override clears", set.Min().Offset)
	}
}

func TestModel_UnmountClearsPresentationState(t *testing.T) {
	m := newTestModel()
	m.Mount()
	loadModel(m)
	m.CustomHeight().Set(HeightOverride{Value: 450, Active: true})
	m.ScrollLocked().Set(true)
	m.Offset().Set(geometry.Offset{Y: 30})

	m.Unmount()

	if m.Phase().Get() != PhaseUnmounted {
		t.Errorf("phase = %v, want unmounted", m.Phase().Get())
	}
	if _, ok := m.ResolvedDetents(); ok {
		t.Error("resolved set should be discarded on unmount")
	}
	if m.CustomHeight().Get().Active {
		t.Error("height override should clear on unmount")
	}
	if m.ScrollLocked().Get() {
		t.Error("scroll lock should clear on unmount")
	}
	if m.Offset().Get() != (geometry.Offset{}) {
		t.Errorf("offset = %+v, want zero", m.Offset().Get())
	}
}

func TestModel_RemountNeedsFreshContentMeasurement(t *testing.T) {
	m := newTestModel()
	m.Mount()
	loadModel(m)
	m.Unmount()

	m.Mount()
	if m.Phase().Get() != PhaseMounted {
		t.Fatalf("phase = %v, want mounted until the content is measured again", m.Phase().Get())
	}

	m.SetContentSize(geometry.Size{Width: 400, Height: 400})
	if m.Phase().Get() != PhaseDisplaying {
		t.Errorf("phase = %v, want displaying after remeasurement", m.Phase().Get())
	}
}

func TestModel_DetentContextRequiresMeasurements(t *testing.T) {
	m := newTestModel()
	if _, ok := m.DetentContext(); ok {
		t.Error("context should be unavailable before measurement")
	}
	m.SetMaximumContainerSize(geometry.Size{Width: 400, Height: 1000})
	m.SetContentSize(geometry.Size{Width: 400, Height: 400})
	ctx, ok := m.DetentContext()
	if !ok {
		t.Fatal("context should be available once measured")
	}
	if ctx.MaxDetentValue != 970 {
		t.Errorf("MaxDetentValue = %f, want container minus reserved margin", ctx.MaxDetentValue)
	}
	if ctx.ContentHeight != 400 {
		t.Errorf("ContentHeight = %f, want 400", ctx.ContentHeight)
	}
}

func TestModel_EmptyDetentDeclarationIsValid(t *testing.T) {
	m := newTestModel()
	m.Mount()
	m.SetDetents(nil)
	m.SetMaximumContainerSize(geometry.Size{Width: 400, Height: 1000})
	m.SetContentSize(geometry.Size{Width: 400, Height: 400})

	set, ok := m.ResolvedDetents()
	if !ok {
		t.Fatal("empty declaration should still resolve")
	}
	if set.Len() != 1 || set.Min().Source != Content {
		t.Errorf("set = %+v, want the content default", set.All())
	}
}
