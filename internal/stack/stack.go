// Copyright 2021-2026 Zenauth Ltd.
// SPDX-License-Identifier: Apache-2.0

// Package stack implements the value stack the calculator evaluates against.
package stack

import (
	"errors"
	"math"
)

const minCapacity = 4

var (
	// ErrUnderflow is returned by Pop when the stack is empty.
	ErrUnderflow = errors.New("stack underflow")
	// ErrExhausted is returned by Push when the storage cannot grow any further.
	ErrExhausted = errors.New("stack storage exhausted")
)

type Opt func(*Stack)

// WithMaxDepth bounds the number of values the stack can hold. Zero means unbounded.
func WithMaxDepth(n int) Opt {
	return func(s *Stack) {
		if n > 0 {
			s.maxDepth = n
		}
	}
}

// Stack is a growable stack of float64 values. The zero value is an empty, unbounded stack.
type Stack struct {
	items    []float64
	sp       int
	maxDepth int
}

func New(opts ...Opt) *Stack {
	s := &Stack{}
	for _, o := range opts {
		o(s)
	}

	return s
}

// Push adds v to the top of the stack, doubling the storage when it is full.
// If the storage cannot grow, the stack is left untouched and ErrExhausted is returned.
func (s *Stack) Push(v float64) error {
	if s.sp >= len(s.items) {
		if err := s.grow(); err != nil {
			return err
		}
	}

	s.items[s.sp] = v
	s.sp++

	return nil
}

func (s *Stack) grow() error {
	newCap := len(s.items) * 2
	if newCap == 0 {
		newCap = minCapacity
	}

	if s.maxDepth > 0 {
		if len(s.items) >= s.maxDepth {
			return ErrExhausted
		}

		newCap = min(newCap, s.maxDepth)
	}

	items := make([]float64, newCap)
	copy(items, s.items[:s.sp])
	s.items = items

	return nil
}

// Pop removes and returns the top value. On an empty stack it returns NaN and ErrUnderflow.
func (s *Stack) Pop() (float64, error) {
	if s.sp == 0 {
		return math.NaN(), ErrUnderflow
	}

	s.sp--
	return s.items[s.sp], nil
}

// Reset empties the stack without releasing its storage.
func (s *Stack) Reset() {
	s.sp = 0
}

// Snapshot returns a copy of the values in pop order: the top of the stack comes first.
func (s *Stack) Snapshot() []float64 {
	out := make([]float64, s.sp)
	for i := range out {
		out[i] = s.items[s.sp-1-i]
	}

	return out
}

func (s *Stack) Len() int {
	return s.sp
}

func (s *Stack) Cap() int {
	return len(s.items)
}
