// Copyright 2021-2026 Zenauth Ltd.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"errors"
	"io"

	"github.com/peterh/liner"
	"github.com/spf13/afero"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// LineEditor is the subset of *liner.State used by Editor.
type LineEditor interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
	ReadHistory(r io.Reader) (int, error)
	WriteHistory(w io.Writer) (int, error)
	Close() error
}

var _ LineEditor = (*liner.State)(nil)

// Editor reads whole lines from a line editor and hands them out one character at a time,
// terminating each line with '\n'.
type Editor struct {
	editor  LineEditor
	history *history
	log     *zap.Logger
	prompt  string
	line    []byte
	pos     int
	inLine  bool
}

func NewEditor(editor LineEditor, prompt string) *Editor {
	return &Editor{
		editor: editor,
		prompt: prompt,
		log:    zap.L().Named("source"),
	}
}

// NewEditorWithHistory creates an Editor that loads history from fs now and saves it back on Close.
func NewEditorWithHistory(editor LineEditor, prompt string, conf HistoryConf, fs afero.Fs) *Editor {
	e := NewEditor(editor, prompt)
	e.history = newHistory(conf, fs)

	if err := e.history.load(editor); err != nil {
		e.log.Warn("Failed to read history", zap.String("file", e.history.file), zap.Error(err))
	}

	return e
}

func (e *Editor) Next() (byte, error) {
	if !e.inLine {
		line, err := e.editor.Prompt(e.prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				return '\n', nil
			}

			return 0, err
		}

		if line != "" {
			e.editor.AppendHistory(line)
		}

		e.line = []byte(line)
		e.pos = 0
		e.inLine = true
	}

	if e.pos >= len(e.line) {
		e.inLine = false
		return '\n', nil
	}

	c := e.line[e.pos]
	e.pos++

	return c, nil
}

func (e *Editor) Close() (outErr error) {
	if err := e.history.save(e.editor); err != nil {
		outErr = multierr.Append(outErr, err)
	}

	return multierr.Append(outErr, e.editor.Close())
}
