// Copyright 2021-2026 Zenauth Ltd.
// SPDX-License-Identifier: Apache-2.0

// Package source provides the character streams the calculator reads from.
package source

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// ErrEditorUnavailable is returned when line editing is requested without a terminal-backed standard input.
var ErrEditorUnavailable = errors.New("line editor requires the process standard input")

// Source produces one input character at a time. Next returns io.EOF once the input is exhausted.
type Source interface {
	io.Closer
	Next() (byte, error)
}

// Std holds the streams a source is opened against.
type Std struct {
	In  io.Reader
	Out io.Writer
}

// Open creates the source selected by conf.
func Open(conf *Conf, std Std, fs afero.Fs) (Source, error) {
	kind := conf.Kind
	if kind == KindAuto {
		kind = detectKind(std)
	}

	log := zap.L().Named("source")
	switch kind {
	case KindLiner:
		if f, ok := std.In.(*os.File); !ok || f != os.Stdin {
			return nil, ErrEditorUnavailable
		}

		log.Debug("Using line editor", zap.String("history", conf.History.File), zap.Bool("historyEnabled", conf.History.Enabled))
		state := liner.NewLiner()
		state.SetCtrlCAborts(true)
		state.SetMultiLineMode(conf.MultiLine)

		return NewEditorWithHistory(state, conf.Prompt, conf.History, fs), nil

	case KindPlain:
		log.Debug("Using plain input")
		return NewPlain(std.In, std.Out, conf.Prompt), nil

	default:
		return nil, fmt.Errorf("unknown source kind %q", kind)
	}
}

func detectKind(std Std) Kind {
	in, ok := std.In.(*os.File)
	if !ok || in != os.Stdin || !isatty.IsTerminal(in.Fd()) {
		return KindPlain
	}

	if out, ok := std.Out.(*os.File); !ok || !isatty.IsTerminal(out.Fd()) {
		return KindPlain
	}

	if !liner.TerminalSupported() {
		return KindPlain
	}

	return KindLiner
}
