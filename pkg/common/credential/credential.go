// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package credential

import (
	"fmt"

	"github.com/openafs/buildbot-tools/pkg/common/secretstring"
)

// Credential holds authentication information with password protection
type Credential struct {
	User     string                    `json:"user"`     // User name
	Password secretstring.SecretString `json:"password"` // Password (masked in JSON/logs)
}

// MissingCredentialError reports which credential field is still empty after
// all configuration layers were applied.
type MissingCredentialError struct {
	Field string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("No %s specified.", e.Field)
}

// New creates a Credential with the given user and password.
func New(user string, password string) *Credential {
	return &Credential{
		User:     user,
		Password: secretstring.New(password),
	}
}

// Patch updates the credential with non-empty values from the given
// credential. A whitespace-only user is still a value. It returns true if
// any field was updated.
func (cred *Credential) Patch(nc *Credential) bool {
	if cred == nil || nc == nil {
		return false
	}

	patched := false

	if nc.User != "" && cred.User != nc.User {
		cred.User = nc.User
		patched = true
	}

	if !nc.Password.IsEmpty() && !cred.Password.IsEqual(nc.Password) {
		cred.Password = nc.Password
		patched = true
	}

	return patched
}

// Validate checks the username first, then the password.
func (cred *Credential) Validate() error {
	if cred == nil || cred.User == "" {
		return &MissingCredentialError{Field: "username"}
	}
	if cred.Password.IsEmpty() {
		return &MissingCredentialError{Field: "password"}
	}
	return nil
}

// String returns the user name and a masked password.
func (cred Credential) String() string {
	return fmt.Sprintf("%s:%s", cred.User, cred.Password)
}
