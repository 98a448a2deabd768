package core

import (
	"math"
	"testing"
)

func TestVec2Normalize(t *testing.T) {
	tests := []struct {
		name string
		v    Vec2
		want Vec2
	}{
		{"zero stays zero", V2(0, 0), V2(0, 0)},
		{"unit x", V2(3, 0), V2(1, 0)},
		{"negative y", V2(0, -7), V2(0, -1)},
		{"diagonal", V2(1, 1), V2(1/math.Sqrt2, 1/math.Sqrt2)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.v.Normalize()
			if math.Abs(got.X-tc.want.X) > 1e-9 || math.Abs(got.Y-tc.want.Y) > 1e-9 {
				t.Errorf("Normalize(%v) = %v, expected %v", tc.v, got, tc.want)
			}
		})
	}
}

func TestVec2AddScaleLen(t *testing.T) {
	v := V2(3, 4)
	if v.Len() != 5 {
		t.Errorf("Len() = %f, expected 5", v.Len())
	}
	if got := v.Add(V2(1, -1)); got != V2(4, 3) {
		t.Errorf("Add() = %v, expected (4, 3)", got)
	}
	if got := v.Scale(0.5); got != V2(1.5, 2) {
		t.Errorf("Scale() = %v, expected (1.5, 2)", got)
	}
}

func TestBoundsClamp(t *testing.T) {
	b := Bounds{Min: V2(-360, -270), Max: V2(360, 90)}

	tests := []struct {
		name string
		in   Vec2
		want Vec2
	}{
		{"inside", V2(10, 10), V2(10, 10)},
		{"past right", V2(500, 0), V2(360, 0)},
		{"past left", V2(-500, 0), V2(-360, 0)},
		{"above top", V2(0, 120), V2(0, 90)},
		{"below bottom", V2(0, -999), V2(0, -270)},
		{"corner", V2(1e9, 1e9), V2(360, 90)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := b.Clamp(tc.in)
			if got != tc.want {
				t.Errorf("Clamp(%v) = %v, expected %v", tc.in, got, tc.want)
			}
			if got.X < b.Min.X || got.X > b.Max.X || got.Y < b.Min.Y || got.Y > b.Max.Y {
				t.Errorf("Clamp(%v) = %v is outside %v", tc.in, got, b)
			}
		})
	}
}

func TestRectOverlaps(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		o        Rect
		expected bool
	}{
		{"inside", NewRect(15, 15, 2, 2), true},
		{"shares top-left cell", NewRect(9, 9, 2, 2), true},
		{"touches right edge", NewRect(30, 10, 5, 5), false},
		{"touches bottom edge", NewRect(10, 25, 5, 5), false},
		{"far away", NewRect(100, 100, 1, 1), false},
		{"encloses", NewRect(0, 0, 100, 100), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Overlaps(tc.o); got != tc.expected {
				t.Errorf("Overlaps(%+v) = %v, expected %v", tc.o, got, tc.expected)
			}
			if got := tc.o.Overlaps(r); got != tc.expected {
				t.Errorf("Overlaps is not symmetric for %+v", tc.o)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
