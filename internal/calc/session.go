// Copyright 2021-2026 Zenauth Ltd.
// SPDX-License-Identifier: Apache-2.0

package calc

import (
	"context"

	"go.uber.org/zap"
)

// Session drives an Interpreter line by line, printing the stack after each line.
type Session struct {
	interp *Interpreter
	out    Output
}

func NewSession(src CharSource, out Output, opts ...Opt) *Session {
	return &Session{
		interp: NewInterpreter(src, out, opts...),
		out:    out,
	}
}

// Run evaluates lines until the input is exhausted. The context is checked before each line.
func (s *Session) Run(ctx context.Context) error {
	for !s.interp.EOF() {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.interp.Reset()
		if err := s.interp.InterpretLine(); err != nil {
			return err
		}

		s.out.PrintResult(s.interp.Values())
	}

	stats := s.interp.Stats()
	s.interp.log.Debug("End of input", zap.Int("lines", stats.Lines), zap.Int("underflows", stats.Underflows))

	return nil
}

func (s *Session) Stats() Stats {
	return s.interp.Stats()
}
