// Copyright 2021-2026 Zenauth Ltd.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"

	"github.com/ajkaijanaho/postfixcalc/internal/util"
)

const historyFileName = "history"

type history struct {
	fs   afero.Fs
	file string
}

func newHistory(conf HistoryConf, fs afero.Fs) *history {
	if !conf.Enabled {
		return nil
	}

	file := historyFile(fs, conf.File)
	if file == "" {
		return nil
	}

	return &history{fs: fs, file: file}
}

// historyFile resolves the configured path. An empty path means the XDG state directory
// and a directory means a history file inside it.
func historyFile(fs afero.Fs, path string) string {
	if path == "" {
		return filepath.Join(xdg.StateHome, util.AppName, historyFileName)
	}

	finfo, err := fs.Stat(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return ""
	}

	if finfo != nil && finfo.IsDir() {
		return filepath.Join(path, historyFileName)
	}

	return path
}

func (h *history) load(editor LineEditor) error {
	if h == nil {
		return nil
	}

	f, err := h.fs.Open(h.file)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}

		return err
	}
	defer f.Close()

	_, err = editor.ReadHistory(f)
	return err
}

func (h *history) save(editor LineEditor) error {
	if h == nil {
		return nil
	}

	//nolint:gomnd
	if err := h.fs.MkdirAll(filepath.Dir(h.file), 0o700); err != nil {
		return err
	}

	f, err := h.fs.Create(h.file)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = editor.WriteHistory(f)
	return err
}
