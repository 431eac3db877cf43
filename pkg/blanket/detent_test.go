package blanket

import (
	"math"
	"testing"
)

func TestDetentResolve(t *testing.T) {
	ctx := DetentContext{MaxDetentValue: 970, ContentHeight: 400}
	tests := []struct {
		name   string
		detent Detent
		want   float64
	}{
		{"content", Content, 400},
		{"zero value is content", Detent{}, 400},
		{"half fraction", Fraction(0.5), 485},
		{"full fraction", Full, 970},
		{"zero fraction", Fraction(0), 0},
		{"fixed height", Height(250), 250},
		{"fixed height capped", Height(2000), 970},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.detent.Resolve(ctx); got != tt.want {
				t.Errorf("Resolve() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestFractionClampsInput(t *testing.T) {
	if Fraction(1.5) != Full {
		t.Error("Fraction above 1 should clamp to Full")
	}
	if Fraction(-0.5) != Fraction(0) {
		t.Error("Fraction below 0 should clamp to 0")
	}
}

func TestHeightClampsNegative(t *testing.T) {
	ctx := DetentContext{MaxDetentValue: 970, ContentHeight: 400}
	if got := Height(-10).Resolve(ctx); got != 0 {
		t.Errorf("negative height resolved to %f, want 0", got)
	}
}

func TestDetentValueEquality(t *testing.T) {
	if Medium != Fraction(0.5) {
		t.Error("Medium should equal Fraction(0.5)")
	}
	if Content == Medium {
		t.Error("distinct detents compare equal")
	}
	if Height(100) == Fraction(100) {
		t.Error("height and fraction kinds compare equal")
	}
}

func TestDetentString(t *testing.T) {
	tests := []struct {
		detent Detent
		want   string
	}{
		{Content, "Content"},
		{Fraction(0.3), "Fraction(0.3)"},
		{Height(250), "Height(250)"},
	}
	for _, tt := range tests {
		if got := tt.detent.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestFractionScalesWithContainer(t *testing.T) {
	small := DetentContext{MaxDetentValue: 500, ContentHeight: 100}
	large := DetentContext{MaxDetentValue: 1000, ContentHeight: 100}
	d := Fraction(0.4)
	if got, want := d.Resolve(small), 200.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("small container: %f, want %f", got, want)
	}
	if got, want := d.Resolve(large), 400.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("large container: %f, want %f", got, want)
	}
}
