// Copyright 2021-2026 Zenauth Ltd.
// SPDX-License-Identifier: Apache-2.0

package stack_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ajkaijanaho/postfixcalc/internal/stack"
)

func TestPushPop(t *testing.T) {
	s := stack.New()
	require.NoError(t, s.Push(1))
	require.NoError(t, s.Push(2))
	require.Equal(t, 2, s.Len())

	v, err := s.Pop()
	require.NoError(t, err)
	require.Equal(t, 2.0, v)

	v, err = s.Pop()
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	require.Zero(t, s.Len())
}

func TestUnderflow(t *testing.T) {
	var s stack.Stack

	v, err := s.Pop()
	require.ErrorIs(t, err, stack.ErrUnderflow)
	require.True(t, math.IsNaN(v))
	require.Zero(t, s.Len())

	require.NoError(t, s.Push(5))
	_, err = s.Pop()
	require.NoError(t, err)

	_, err = s.Pop()
	require.ErrorIs(t, err, stack.ErrUnderflow)
}

func TestGrowth(t *testing.T) {
	s := stack.New()
	require.Zero(t, s.Cap())

	wantCaps := []int{4, 4, 4, 4, 8, 8, 8, 8, 16}
	for i, wantCap := range wantCaps {
		require.NoError(t, s.Push(float64(i)))
		require.Equal(t, wantCap, s.Cap(), "capacity after push %d", i)
	}

	require.Equal(t, []float64{8, 7, 6, 5, 4, 3, 2, 1, 0}, s.Snapshot())
}

func TestReset(t *testing.T) {
	s := stack.New()
	for i := 0; i < 6; i++ {
		require.NoError(t, s.Push(float64(i)))
	}

	s.Reset()
	require.Zero(t, s.Len())
	require.Equal(t, 8, s.Cap())
	require.Empty(t, s.Snapshot())

	_, err := s.Pop()
	require.ErrorIs(t, err, stack.ErrUnderflow)
}

func TestSnapshotIsACopy(t *testing.T) {
	s := stack.New()
	require.NoError(t, s.Push(1))
	require.NoError(t, s.Push(2))

	snap := s.Snapshot()
	snap[0] = 42

	v, err := s.Pop()
	require.NoError(t, err)
	require.Equal(t, 2.0, v)
}

func TestMaxDepth(t *testing.T) {
	t.Run("exhausted_at_bound", func(t *testing.T) {
		s := stack.New(stack.WithMaxDepth(6))
		for i := 0; i < 6; i++ {
			require.NoError(t, s.Push(float64(i)))
		}
		require.Equal(t, 6, s.Cap())

		require.ErrorIs(t, s.Push(6), stack.ErrExhausted)
		require.Equal(t, 6, s.Len())
		require.Equal(t, []float64{5, 4, 3, 2, 1, 0}, s.Snapshot())
	})

	t.Run("pop_frees_room", func(t *testing.T) {
		s := stack.New(stack.WithMaxDepth(1))
		require.NoError(t, s.Push(1))
		require.ErrorIs(t, s.Push(2), stack.ErrExhausted)

		_, err := s.Pop()
		require.NoError(t, err)
		require.NoError(t, s.Push(3))
	})

	t.Run("zero_is_unbounded", func(t *testing.T) {
		s := stack.New(stack.WithMaxDepth(0))
		for i := 0; i < 100; i++ {
			require.NoError(t, s.Push(float64(i)))
		}
		require.Equal(t, 100, s.Len())
	})
}
