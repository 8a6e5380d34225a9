// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package buildbot

import "fmt"

// AuthenticationFailedError is returned when the login endpoint answers with
// anything other than 200.
type AuthenticationFailedError struct {
	StatusCode int
	Body       string
}

func (e *AuthenticationFailedError) Error() string {
	return fmt.Sprintf("Login failed (HTTP %d) %s", e.StatusCode, e.Body)
}
