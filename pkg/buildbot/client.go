// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package buildbot is a minimal client for the Buildbot web API: it logs in
// with HTTP basic auth and asks a force scheduler to start a build.
package buildbot

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"

	"github.com/openafs/buildbot-tools/pkg/common/credential"
)

const (
	// DefaultBaseURL is the OpenAFS Buildbot master.
	DefaultBaseURL = "https://buildbot.openafs.org"

	// LoginPath is the basic auth login endpoint.
	LoginPath = "/auth/login"
	// ForceBuildPath is the JSON-RPC endpoint of the Gerrit force scheduler.
	ForceBuildPath = "/api/v2/forceschedulers/" + ForceSchedulerName
)

// Config configures a Session.
type Config struct {
	BaseURL string
	Log     *logrus.Entry
	// HTTPClient replaces the default transport when set.
	HTTPClient *http.Client
}

// Session is an authenticated connection to a Buildbot master. Cookies set
// by the login response are sent with later requests.
type Session struct {
	client *resty.Client
	log    *logrus.Entry
	User   string
}

// BuildResult is the raw outcome of a force request.
type BuildResult struct {
	StatusCode int
	Status     string
	Body       []byte
}

// OK reports whether the server accepted the request.
func (r *BuildResult) OK() bool {
	return r.StatusCode == http.StatusOK
}

func (r *BuildResult) String() string {
	return fmt.Sprintf("<Response [%d]>", r.StatusCode)
}

// Authenticate opens a session for cred and performs the login request.
// Only a 200 response counts as success; any other status is returned as an
// *AuthenticationFailedError carrying the response body.
func Authenticate(ctx context.Context, cfg Config, cred *credential.Credential) (*Session, error) {
	if err := cred.Validate(); err != nil {
		return nil, err
	}

	log := cfg.Log
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	var rc *resty.Client
	if cfg.HTTPClient != nil {
		rc = resty.NewWithClient(cfg.HTTPClient)
	} else {
		rc = resty.New()
	}
	rc.SetBaseURL(baseURL).
		SetBasicAuth(cred.User, cred.Password.Value).
		SetLogger(log).
		OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			log.WithFields(logrus.Fields{
				"method": resp.Request.Method,
				"url":    resp.Request.URL,
				"status": resp.StatusCode(),
			}).Debug("buildbot response")
			log.Debugf("Body: %s", resp.String())
			return nil
		})

	log.WithField("user", cred.User).Debugf("GET %s%s", baseURL, LoginPath)

	resp, err := rc.R().SetContext(ctx).Get(LoginPath)
	if err != nil {
		return nil, fmt.Errorf("requesting %s: %w", LoginPath, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, &AuthenticationFailedError{
			StatusCode: resp.StatusCode(),
			Body:       resp.String(),
		}
	}

	return &Session{client: rc, log: log, User: cred.User}, nil
}

// ForceBuild asks the Gerrit force scheduler to build changeNumber. A non-200
// answer is not an error: the status and body are returned for the caller to
// report. Errors are only returned when no response was received.
func (s *Session) ForceBuild(ctx context.Context, changeNumber int) (*BuildResult, error) {
	payload := NewForceRequest(changeNumber)

	s.log.WithField("changenumber", payload.Params.ChangeNumber).Debugf("POST %s", ForceBuildPath)

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetBody(payload).
		Post(ForceBuildPath)
	if err != nil {
		return nil, fmt.Errorf("requesting %s: %w", ForceBuildPath, err)
	}

	return &BuildResult{
		StatusCode: resp.StatusCode(),
		Status:     resp.Status(),
		Body:       resp.Body(),
	}, nil
}
