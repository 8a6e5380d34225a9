// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// force-gerrit-build asks the OpenAFS Buildbot master to build a Gerrit
// change right away.
//
// Credentials come from the [login] section of ~/.buildbotrc and can be
// overridden with -u/--username and -p/--password.
package main

import (
	"context"
	"os"
	"os/signal"

	forcebuild "github.com/openafs/buildbot-tools/cmd/force-gerrit-build/pkg"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	cmd := forcebuild.NewCommand(os.Stdout, os.Stderr)
	code := forcebuild.ExitCode(cmd.ExecuteContext(ctx), os.Stderr)

	stop()
	os.Exit(code)
}
