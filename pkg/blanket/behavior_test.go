package blanket

import (
	stderrors "errors"
	"testing"

	"github.com/go-drift/blanket/pkg/errors"
)

func TestDefaultBehavior(t *testing.T) {
	b := DefaultBehavior()
	if b.ReservedTopMargin != 30 {
		t.Errorf("ReservedTopMargin = %f, want 30", b.ReservedTopMargin)
	}
	if b.DismissBandLength != 50 {
		t.Errorf("DismissBandLength = %f, want 50", b.DismissBandLength)
	}
	if b.StretchBandLength != 20 {
		t.Errorf("StretchBandLength = %f, want 20", b.StretchBandLength)
	}
	if b.HideVelocityThreshold != 50 || b.HideDistanceThreshold != 50 {
		t.Error("hide thresholds should default to 50")
	}
	if b.Spring.Mass != 1 || b.Spring.Stiffness != 158 || b.Spring.Damping != 25 {
		t.Errorf("Spring = %+v, want the iOS tuning", b.Spring)
	}
}

func TestNormalizeBehavior_FillsZeroFields(t *testing.T) {
	b := normalizeBehavior(Behavior{DismissBandLength: 80})
	if b.DismissBandLength != 80 {
		t.Errorf("DismissBandLength = %f, want the explicit 80", b.DismissBandLength)
	}
	if b.ReservedTopMargin != 30 {
		t.Errorf("ReservedTopMargin = %f, want default 30", b.ReservedTopMargin)
	}
	if b.Spring.Stiffness != 158 {
		t.Errorf("Spring.Stiffness = %f, want default 158", b.Spring.Stiffness)
	}
}

func TestBehaviorFromYAML_PartialDocument(t *testing.T) {
	doc := []byte("reserved_top_margin: 40\nspring:\n  damping: 30\n")
	b, err := BehaviorFromYAML(doc)
	if err != nil {
		t.Fatalf("BehaviorFromYAML: %v", err)
	}
	if b.ReservedTopMargin != 40 {
		t.Errorf("ReservedTopMargin = %f, want 40", b.ReservedTopMargin)
	}
	if b.Spring.Damping != 30 {
		t.Errorf("Spring.Damping = %f, want 30", b.Spring.Damping)
	}
	if b.Spring.Stiffness != 158 {
		t.Errorf("Spring.Stiffness = %f, want default 158", b.Spring.Stiffness)
	}
	if b.HideVelocityThreshold != 50 {
		t.Errorf("HideVelocityThreshold = %f, want default 50", b.HideVelocityThreshold)
	}
}

func TestBehaviorFromYAML_InvalidDocument(t *testing.T) {
	_, err := BehaviorFromYAML([]byte("reserved_top_margin: [not: a number"))
	if err == nil {
		t.Fatal("invalid YAML should fail")
	}
	var berr *errors.BlanketError
	if !stderrors.As(err, &berr) {
		t.Fatalf("error type = %T, want *errors.BlanketError", err)
	}
	if berr.Kind != errors.KindConfig {
		t.Errorf("Kind = %v, want config", berr.Kind)
	}
}
