// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package forcebuild

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/openafs/buildbot-tools/pkg/buildbot"
	"github.com/openafs/buildbot-tools/pkg/common/credential"
	logutil "github.com/openafs/buildbot-tools/pkg/common/log"
)

// ErrBuildRejected is returned after a non-200 force response has been
// printed. Nothing more should be reported for it.
var ErrBuildRejected = errors.New("force build request was not accepted")

const (
	flagUsername = "username"
	flagPassword = "password"
	flagURL      = "url"
	flagConfig   = "config"
	flagOutput   = "output"
	flagDebug    = "debug"
)

// NewCommand builds the force-gerrit-build root command. Regular output goes
// to stdout, diagnostics and debug logging to stderr. Flags may appear before
// or after the change number.
func NewCommand(stdout, stderr io.Writer) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "force-gerrit-build [-u <username>] [-p <password>] <number>",
		Short: "Force Gerrit Builds",
		Long: `Force Gerrit Builds

Default values are read from the ~/.buildbotrc file, if it exists.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v, args)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringP(flagUsername, "u", "", "Buildbot user name")
	flags.StringP(flagPassword, "p", "", "Buildbot password")
	flags.String(flagURL, "", "Buildbot base URL (default "+buildbot.DefaultBaseURL+")")
	flags.String(flagConfig, ConfigPath(), "Path to config file")
	flags.StringP(flagOutput, "o", OutputRaw, "Response body format: raw, json, yaml")
	flags.Bool(flagDebug, false, "Enable debug logging")

	// A flag set on the command line beats the environment, which beats the
	// flag default.
	_ = v.BindPFlags(flags)
	_ = v.BindEnv(flagURL, "BUILDBOT_URL")
	_ = v.BindEnv(flagConfig, "BUILDBOTRC")

	return cmd
}

func run(cmd *cobra.Command, v *viper.Viper, args []string) error {
	out := cmd.OutOrStdout()

	format := v.GetString(flagOutput)
	if err := validateOutputFormat(format); err != nil {
		return err
	}

	number, err := parseChangeNumber(args)
	if err != nil {
		return err
	}

	cfgPath := v.GetString(flagConfig)
	cfg, err := LoadConfigFromPath(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config %s: %w", cfgPath, err)
	}

	req := &BuildRequest{
		Credential:   ResolveCredential(cfg, v.GetString(flagUsername), v.GetString(flagPassword)),
		BaseURL:      ResolveBaseURL(cfg, v.GetString(flagURL), buildbot.DefaultBaseURL),
		ChangeNumber: number,
	}
	if err := req.Validate(); err != nil {
		return err
	}

	logger := logutil.NewLogger(cmd.ErrOrStderr(), v.GetBool(flagDebug))
	log := logger.WithField("changenumber", req.ChangeNumber)
	log.WithField("config", cfgPath).Debugf("using %s", req.BaseURL)

	fmt.Fprintf(out, "Logging in as %s\n", req.Credential.User)
	session, err := buildbot.Authenticate(cmd.Context(), buildbot.Config{
		BaseURL: req.BaseURL,
		Log:     log,
	}, req.Credential)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Login ok")

	result, err := session.ForceBuild(cmd.Context(), req.ChangeNumber)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, result)
	if err := FormatOutput(out, result.Body, format); err != nil {
		return fmt.Errorf("writing response: %w", err)
	}

	if !result.OK() {
		return ErrBuildRejected
	}
	return nil
}

// ExitCode reports err on stderr and maps it to a process exit status:
// 0 on success, 1 for any failure. Missing credentials and a refused login
// are printed as their one-line message, everything else gets an "error:"
// prefix.
func ExitCode(err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}

	var (
		missing  *credential.MissingCredentialError
		loginErr *buildbot.AuthenticationFailedError
	)
	switch {
	case errors.Is(err, ErrBuildRejected):
	case errors.As(err, &missing):
		fmt.Fprintln(stderr, missing.Error())
	case errors.As(err, &loginErr):
		fmt.Fprintln(stderr, loginErr.Error())
	default:
		fmt.Fprintf(stderr, "error: %v\n", err)
	}
	return 1
}
