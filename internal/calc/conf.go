// Copyright 2021-2026 Zenauth Ltd.
// SPDX-License-Identifier: Apache-2.0

package calc

import "errors"

const confKey = "calc"

var errNegativeDepth = errors.New("maxStackDepth must not be negative")

// Conf holds evaluation settings.
type Conf struct {
	// FlushAtEndOfLine pushes a number that is still being read when the line ends.
	// When false, a number directly followed by the end of the line is discarded.
	FlushAtEndOfLine bool `yaml:"flushAtEndOfLine" conf:",example=false"`
	// MaxStackDepth limits how many values the stack can hold. Zero means no limit.
	MaxStackDepth int `yaml:"maxStackDepth" conf:",example=1048576"`
}

func (c *Conf) Key() string {
	return confKey
}

func (c *Conf) SetDefaults() {
	c.FlushAtEndOfLine = false
	c.MaxStackDepth = 0
}

func (c *Conf) Validate() error {
	if c.MaxStackDepth < 0 {
		return errNegativeDepth
	}

	return nil
}
