// SPDX-License-Identifier: GPL-2.0-or-later

package gametime

import (
	"testing"
	"time"

	"goball/cvars"
)

func TestFrame(t *testing.T) {
	h := New(1.0 / 32)
	tests := []struct {
		elapsed float64
		want    int
	}{
		{0.0625, 2},
		{0.015625, 0},
		{0.015625, 1},
		{5, 3}, // clamped to 0.1
		{0, 0}, // clamped to 0.001
	}
	for _, tt := range tests {
		if got := h.Frame(tt.elapsed); got != tt.want {
			t.Errorf("Frame(%v) = %d, want %d", tt.elapsed, got, tt.want)
		}
	}
	if got := h.TickCount(); got != 6 {
		t.Errorf("TickCount() = %d, want 6", got)
	}
	if got := h.FrameCount(); got != 5 {
		t.Errorf("FrameCount() = %d, want 5", got)
	}
	if a := h.Alpha(); a < 0 || a >= 1 {
		t.Errorf("Alpha() = %v, want in [0, 1)", a)
	}
}

func TestTimeScale(t *testing.T) {
	defer cvars.SimTimeScale.Reset()
	cvars.SimTimeScale.SetValue(2)
	h := New(0.25)
	if got := h.Frame(0.0625); got != 0 {
		t.Errorf("Frame() = %d, want 0", got)
	}
	if got := h.Frame(0.0625); got != 1 {
		t.Errorf("Frame() = %d, want 1", got)
	}
	if got := h.Time(); got != 0.25 {
		t.Errorf("Time() = %v, want 0.25", got)
	}
}

func TestUpdateTime(t *testing.T) {
	now := time.Unix(100, 0)
	h := New(0.25)
	h.now = func() time.Time { return now }
	if got := h.UpdateTime(); got != 0 {
		t.Errorf("first UpdateTime() = %d, want 0", got)
	}
	now = now.Add(75 * time.Millisecond)
	if got := h.UpdateTime(); got != 0 {
		t.Errorf("UpdateTime() = %d, want 0", got)
	}
	now = now.Add(time.Second)
	if got := h.UpdateTime(); got != 0 {
		t.Errorf("UpdateTime() after a stall = %d, want 0", got)
	}
	now = now.Add(90 * time.Millisecond)
	if got := h.UpdateTime(); got != 1 {
		t.Errorf("UpdateTime() = %d, want 1", got)
	}
}
