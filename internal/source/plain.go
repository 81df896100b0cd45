// Copyright 2021-2026 Zenauth Ltd.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"bufio"
	"io"
)

// Plain reads characters from a buffered reader, writing the prompt before the first character of every line.
type Plain struct {
	r           *bufio.Reader
	promptOut   io.Writer
	prompt      string
	lineStarted bool
}

func NewPlain(in io.Reader, promptOut io.Writer, prompt string) *Plain {
	return &Plain{
		r:         bufio.NewReader(in),
		promptOut: promptOut,
		prompt:    prompt,
	}
}

func (p *Plain) Next() (byte, error) {
	if !p.lineStarted {
		if p.prompt != "" && p.promptOut != nil {
			if _, err := io.WriteString(p.promptOut, p.prompt); err != nil {
				return 0, err
			}
		}
		p.lineStarted = true
	}

	c, err := p.r.ReadByte()
	if err != nil {
		return 0, err
	}

	if c == '\n' || c == '\r' {
		p.lineStarted = false
	}

	return c, nil
}

func (p *Plain) Close() error {
	return nil
}
