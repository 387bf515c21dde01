package math

import (
	"math"
	"testing"
)

func TestVec3Add(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}
	got := a.Add(b)
	want := Vec3{5, 7, 9}
	if got != want {
		t.Errorf("Vec3.Add() = %v, want %v", got, want)
	}
}

func TestVec3Scale(t *testing.T) {
	got := Vec3{1, -2, 3}.Scale(2)
	want := Vec3{2, -4, 6}
	if got != want {
		t.Errorf("Vec3.Scale() = %v, want %v", got, want)
	}
}

func TestVec3At(t *testing.T) {
	v := Vec3{7, 8, 9}
	for i, want := range []float32{7, 8, 9} {
		if got := v.At(i); got != want {
			t.Errorf("Vec3.At(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestVec3MinMax(t *testing.T) {
	a := Vec3{1, 5, -3}
	b := Vec3{2, -1, -4}

	if got, want := a.Min(b), (Vec3{1, -1, -4}); got != want {
		t.Errorf("Vec3.Min() = %v, want %v", got, want)
	}
	if got, want := a.Max(b), (Vec3{2, 5, -3}); got != want {
		t.Errorf("Vec3.Max() = %v, want %v", got, want)
	}
}

func TestVec3MinMaxPropagateNaN(t *testing.T) {
	nan := float32(math.NaN())
	a := Vec3{1, 2, 3}
	b := Vec3{nan, 5, 0}

	tests := []struct {
		name string
		got  Vec3
	}{
		{"min NaN argument", a.Min(b)},
		{"max NaN argument", a.Max(b)},
		{"min NaN receiver", b.Min(a)},
		{"max NaN receiver", b.Max(a)},
	}
	for _, tt := range tests {
		if !tt.got.HasNaN() || !math.IsNaN(float64(tt.got.X)) {
			t.Errorf("%s: X = %v, want NaN", tt.name, tt.got.X)
		}
	}
	if got := a.Min(b); got.Y != 2 || got.Z != 0 {
		t.Errorf("finite axes changed: %v", got)
	}
	if a.HasNaN() {
		t.Error("HasNaN should be false for finite vector")
	}
}

func TestVec3Length(t *testing.T) {
	got := Vec3{2, 3, 6}.Length()
	if got != 7 {
		t.Errorf("Vec3.Length() = %v, want 7", got)
	}
}

func TestSplat(t *testing.T) {
	if got, want := Splat(4), (Vec3{4, 4, 4}); got != want {
		t.Errorf("Splat() = %v, want %v", got, want)
	}
}
