// Copyright 2021-2026 Zenauth Ltd.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"fmt"
	"strings"
)

const (
	confKey       = "source"
	defaultPrompt = "> "
)

type Kind string

const (
	KindAuto  Kind = "auto"
	KindLiner Kind = "liner"
	KindPlain Kind = "plain"
)

// Conf holds configuration for reading input.
type Conf struct {
	// Kind selects the input implementation: auto, liner or plain. Auto uses the line editor when attached to a terminal.
	Kind Kind `yaml:"kind" conf:",example=auto"`
	// Prompt is written before each line is read.
	Prompt string `yaml:"prompt" conf:",example=\"> \""`
	// MultiLine enables multi-line editing mode in the line editor.
	MultiLine bool `yaml:"multiLine" conf:",example=false"`
	// History configures line editor history.
	History HistoryConf `yaml:"history"`
}

type HistoryConf struct {
	// Enabled persists line editor history between sessions.
	Enabled bool `yaml:"enabled" conf:",example=true"`
	// File is the path to the history file. Defaults to a file in the XDG state directory.
	File string `yaml:"file" conf:",example=/home/user/.local/state/postfixcalc/history"`
}

func (c *Conf) Key() string {
	return confKey
}

func (c *Conf) SetDefaults() {
	c.Kind = KindAuto
	c.Prompt = defaultPrompt
	c.History.Enabled = true
}

func (c *Conf) Validate() error {
	c.Kind = Kind(strings.ToLower(string(c.Kind)))

	switch c.Kind {
	case KindAuto, KindLiner, KindPlain:
		return nil
	case "":
		c.Kind = KindAuto
		return nil
	default:
		return fmt.Errorf("invalid source kind %q: must be one of %q, %q or %q", c.Kind, KindAuto, KindLiner, KindPlain)
	}
}
