// Copyright 2021-2026 Zenauth Ltd.
// SPDX-License-Identifier: Apache-2.0

package calc

// literal accumulates the digits of a number until a non-digit ends it.
// The value wraps around silently on overflow.
type literal struct {
	value  int64
	active bool
}

func (l *literal) feed(digit byte) {
	l.value = l.value*10 + int64(digit-'0')
	l.active = true
}

// take ends the literal, returning its value and whether there was one.
func (l *literal) take() (float64, bool) {
	if !l.active {
		return 0, false
	}

	v := l.value
	l.value = 0
	l.active = false

	return float64(v), true
}

func (l *literal) reset() {
	l.value = 0
	l.active = false
}
