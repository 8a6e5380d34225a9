// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package secretstring provides a string wrapper that keeps its value out of
// logs, fmt output and JSON.
package secretstring

import "encoding/json"

const mask = "********"

// SecretString holds a sensitive value. Only Value exposes it.
type SecretString struct {
	Value string
}

// New wraps s.
func New(s string) SecretString {
	return SecretString{Value: s}
}

// IsEmpty returns true if the wrapped value is empty.
func (s SecretString) IsEmpty() bool {
	return s.Value == ""
}

// IsEqual compares the wrapped values.
func (s SecretString) IsEqual(o SecretString) bool {
	return s.Value == o.Value
}

// String implements fmt.Stringer and always returns the mask.
func (s SecretString) String() string {
	if s.IsEmpty() {
		return ""
	}
	return mask
}

// GoString keeps %#v from printing the value.
func (s SecretString) GoString() string {
	return s.String()
}

// MarshalJSON encodes the mask, never the value.
func (s SecretString) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}
