// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package forcebuild

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const (
	OutputRaw  = "raw"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

func validateOutputFormat(format string) error {
	switch format {
	case OutputRaw, OutputJSON, OutputYAML:
		return nil
	default:
		return fmt.Errorf("unknown output format %q: expected raw, json or yaml", format)
	}
}

// FormatOutput writes a response body to w in the requested format (raw, json, yaml).
// Bodies that are not JSON are always written as-is.
func FormatOutput(w io.Writer, data []byte, format string) error {
	switch format {
	case OutputJSON:
		return formatJSON(w, data)
	case OutputYAML:
		return formatYAML(w, data)
	default:
		return formatRaw(w, data)
	}
}

func formatRaw(w io.Writer, data []byte) error {
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

func formatJSON(w io.Writer, data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return formatRaw(w, data)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatYAML(w io.Writer, data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return formatRaw(w, data)
	}
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
