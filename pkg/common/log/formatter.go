// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
)

// This is "yyyy-mm-dd HH:MM:SS.000000" TZ format
const timeLayout = "2006-01-02 15:04:05.000000 MST"

// LineFormatter renders one line per entry: timestamp, level, optional
// caller, message and the entry fields as a JSON object.
type LineFormatter struct {
	DisableTimestamp bool
}

// Format implements logrus.Formatter.
func (f *LineFormatter) Format(entry *log.Entry) ([]byte, error) {
	b := bytes.Buffer{}

	if !f.DisableTimestamp {
		b.WriteString(entry.Time.Format(timeLayout))
		b.WriteString(" ")
	}

	b.WriteString("[")
	b.WriteString(strings.ToUpper(entry.Level.String()))
	b.WriteString("] ")

	if entry.HasCaller() {
		fmt.Fprintf(&b, "%s:%d ", filepath.Base(entry.Caller.File), entry.Caller.Line)
	}

	b.WriteString(entry.Message)

	if len(entry.Data) != 0 {
		data, err := json.Marshal(entry.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal fields to JSON: %w", err)
		}

		b.WriteString(" ")
		b.Write(data)
	}

	b.WriteByte('\n')

	return b.Bytes(), nil
}

// NewLogger returns a logrus logger writing to w with the LineFormatter.
// Debug enables the debug level; otherwise only warnings and errors are shown.
func NewLogger(w io.Writer, debug bool) *log.Logger {
	logger := log.New()
	logger.SetOutput(w)
	logger.SetFormatter(&LineFormatter{})
	logger.SetLevel(log.WarnLevel)
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
