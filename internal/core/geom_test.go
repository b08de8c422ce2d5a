package core

import "testing"

func TestRectSpansX(t *testing.T) {
	platform := NewRect(100, 460, 580, 125)

	tests := []struct {
		name     string
		actor    Rect
		expected bool
	}{
		{"fully above", NewRect(200, 0, 66, 150), true},
		{"right edge touches left edge", NewRect(34, 0, 66, 150), true},
		{"left edge touches right edge", NewRect(680, 0, 66, 150), true},
		{"just left of platform", NewRect(33.5, 0, 66, 150), false},
		{"just right of platform", NewRect(680.5, 0, 66, 150), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.actor.SpansX(platform); got != tc.expected {
				t.Errorf("SpansX() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Left() != 5 || r.Top() != 10 {
		t.Errorf("Left/Top = (%v, %v), expected (5, 10)", r.Left(), r.Top())
	}
	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", r.Bottom())
	}
}

func TestVec2Add(t *testing.T) {
	v := Vec2{X: 1, Y: 2}.Add(Vec2{X: 0.5, Y: -3})
	if v.X != 1.5 || v.Y != -1 {
		t.Errorf("Add() = %+v, expected {1.5 -1}", v)
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

func TestMax(t *testing.T) {
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}
