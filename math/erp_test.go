// SPDX-License-Identifier: GPL-2.0-or-later

package math

import (
	"testing"
)

func TestErpEnds(t *testing.T) {
	if got := Erp(0); got != 0 {
		t.Errorf("Erp(0) = %v, want 0", got)
	}
	if got := Erp(1); got != 1 {
		t.Errorf("Erp(1) = %v, want 1", got)
	}
	if got := DErp(0); got != 0 {
		t.Errorf("DErp(0) = %v, want 0", got)
	}
	if got := DErp(1); got != 0 {
		t.Errorf("DErp(1) = %v, want 0", got)
	}
}

func TestErpQuarter(t *testing.T) {
	got := Erp(0.25)
	want := float32(0.15625)
	if got != want {
		t.Errorf("Erp(0.25) = %v, want %v", got, want)
	}
	got = DErp(0.5)
	want = 1.5
	if got != want {
		t.Errorf("DErp(0.5) = %v, want %v", got, want)
	}
}
