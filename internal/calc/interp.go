// Copyright 2021-2026 Zenauth Ltd.
// SPDX-License-Identifier: Apache-2.0

// Package calc evaluates postfix arithmetic read one character at a time.
package calc

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/ajkaijanaho/postfixcalc/internal/stack"
)

const underflowMsg = "Stack underflow."

// CharSource produces input characters, returning io.EOF when the input is exhausted.
type CharSource interface {
	Next() (byte, error)
}

type Output interface {
	PrintResult(values []float64)
	PrintErr(msg string, err error)
}

// UnderflowEvent describes an operator that found too few values on the stack.
type UnderflowEvent struct {
	// Line is the 1-based number of the line being interpreted.
	Line int
	// Column is the 1-based position of the operator within the line.
	Column   int
	Operator byte
}

type UnderflowHook func(UnderflowEvent)

type Stats struct {
	Lines      int
	Underflows int
}

type Opt func(*Interpreter)

func WithConf(conf *Conf) Opt {
	return func(i *Interpreter) {
		i.conf = conf
	}
}

// WithUnderflowHook registers a function to be called on every stack underflow,
// in addition to the diagnostic written to the output.
func WithUnderflowHook(hook UnderflowHook) Opt {
	return func(i *Interpreter) {
		i.hooks = append(i.hooks, hook)
	}
}

// Interpreter evaluates one line of input at a time against its own stack.
type Interpreter struct {
	src    CharSource
	out    Output
	conf   *Conf
	stack  *stack.Stack
	log    *zap.Logger
	hooks  []UnderflowHook
	lit    literal
	stats  Stats
	line   int
	column int
	eof    bool
}

func NewInterpreter(src CharSource, out Output, opts ...Opt) *Interpreter {
	i := &Interpreter{
		src: src,
		out: out,
		log: zap.L().Named("calc"),
	}

	for _, o := range opts {
		o(i)
	}

	if i.conf == nil {
		i.conf = &Conf{}
		i.conf.SetDefaults()
	}

	i.stack = stack.New(stack.WithMaxDepth(i.conf.MaxStackDepth))

	return i
}

// InterpretLine consumes characters up to and including the next line terminator, or until
// the input is exhausted. The only errors returned are stack exhaustion and input failures.
func (i *Interpreter) InterpretLine() error {
	i.line++
	i.column = 0
	i.lit.reset()
	i.stats.Lines++

	for {
		c, err := i.src.Next()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return fmt.Errorf("failed to read line %d: %w", i.line, err)
			}

			i.eof = true
			return i.endLine()
		}

		i.column++

		switch c {
		case '\n', '\r':
			return i.endLine()

		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			i.lit.feed(c)

		case ' ', '\t':
			if err := i.flush(); err != nil {
				return err
			}

		case '+', '-', '*', '/':
			if err := i.apply(c); err != nil {
				return err
			}

		default:
		}
	}
}

func (i *Interpreter) endLine() error {
	if i.conf.FlushAtEndOfLine {
		return i.flush()
	}

	i.lit.reset()
	return nil
}

func (i *Interpreter) flush() error {
	if v, ok := i.lit.take(); ok {
		return i.push(v)
	}

	return nil
}

func (i *Interpreter) apply(op byte) error {
	if err := i.flush(); err != nil {
		return err
	}

	// The top of the stack is the right-hand operand: "10 2 -" is 8.
	right := i.pop(op)
	left := i.pop(op)

	var result float64
	switch op {
	case '+':
		result = left + right
	case '-':
		result = left - right
	case '*':
		result = left * right
	case '/':
		result = left / right
	}

	return i.push(result)
}

func (i *Interpreter) push(v float64) error {
	if err := i.stack.Push(v); err != nil {
		return fmt.Errorf("failed to push value on line %d: %w", i.line, err)
	}

	return nil
}

func (i *Interpreter) pop(op byte) float64 {
	v, err := i.stack.Pop()
	if err != nil {
		i.underflow(op)
	}

	return v
}

func (i *Interpreter) underflow(op byte) {
	i.stats.Underflows++

	event := UnderflowEvent{Line: i.line, Column: i.column, Operator: op}
	i.log.Debug("Stack underflow", zap.Int("line", event.Line), zap.Int("column", event.Column), zap.String("operator", string(op)))
	i.out.PrintErr(underflowMsg, nil)

	for _, hook := range i.hooks {
		hook(event)
	}
}

// Reset empties the stack.
func (i *Interpreter) Reset() {
	i.stack.Reset()
}

// Values returns the stack contents, top first.
func (i *Interpreter) Values() []float64 {
	return i.stack.Snapshot()
}

// EOF reports whether the input has been exhausted.
func (i *Interpreter) EOF() bool {
	return i.eof
}

func (i *Interpreter) Stats() Stats {
	return i.stats
}
