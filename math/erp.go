// SPDX-License-Identifier: GPL-2.0-or-later

package math

// Erp is the smoothstep easing 3t²-2t³. Its slope is zero at 0 and 1.
func Erp(t float32) float32 {
	return 3*t*t - 2*t*t*t
}

// DErp is the derivative of Erp.
func DErp(t float32) float32 {
	return 6*t - 6*t*t
}
