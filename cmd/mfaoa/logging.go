// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
)

// newLogger returns a slog front-end over a charmbracelet handler writing to w.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	h := log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          "mfaoa",
		ReportTimestamp: true,
	})

	return slog.New(h), nil
}
