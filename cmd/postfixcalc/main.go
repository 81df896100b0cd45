// Copyright 2021-2026 Zenauth Ltd.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"

	"github.com/ajkaijanaho/postfixcalc/cmd/postfixcalc/root"
)

func main() {
	os.Exit(root.Main())
}
