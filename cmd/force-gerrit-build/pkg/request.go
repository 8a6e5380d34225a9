// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package forcebuild

import (
	"fmt"
	"regexp"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/samber/lo"

	"github.com/openafs/buildbot-tools/pkg/common/credential"
)

// BuildRequest is everything one invocation needs before touching the network.
type BuildRequest struct {
	Credential   *credential.Credential `json:"credential"`
	BaseURL      string                 `json:"url"`
	ChangeNumber int                    `json:"number"`
}

var httpScheme = regexp.MustCompile(`^https?://`)

// Validate checks the credential first and then the base URL. Any integer is
// accepted as change number.
func (r *BuildRequest) Validate() error {
	if err := r.Credential.Validate(); err != nil {
		return err
	}
	return validation.ValidateStruct(r,
		validation.Field(&r.BaseURL,
			validation.Required,
			is.URL,
			validation.Match(httpScheme).Error("must be an http or https URL"),
		),
	)
}

// ResolveCredential layers the command line values over the config file.
// Only empty values fall back to the config; whitespace is a value.
func ResolveCredential(cfg *ConfigFile, username, password string) *credential.Credential {
	cred := cfg.Credential()
	cred.Patch(credential.New(username, password))
	return cred
}

// ResolveBaseURL picks the first non-empty of flag/env, config and fallback.
func ResolveBaseURL(cfg *ConfigFile, flagValue, fallback string) string {
	return lo.CoalesceOrEmpty(flagValue, cfg.Buildbot.URL, fallback)
}

func parseChangeNumber(args []string) (int, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("the following arguments are required: number")
	}
	if len(args) > 1 {
		return 0, fmt.Errorf("unrecognized arguments: %v", args[1:])
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("argument number: invalid int value: %q", args[0])
	}
	return n, nil
}
