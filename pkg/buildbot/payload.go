// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package buildbot

import "strconv"

const (
	// ForceSchedulerName is the force scheduler that builds Gerrit changes.
	ForceSchedulerName = "ForceGerritBuild"

	forceRequestID  = 1
	jsonRPCVersion  = "2.0"
	forceMethod     = "force"
	gerritBuilderID = "2"
	forceReason     = "Force Gerrit Build"
	gerritProject   = "test"
)

// ForceRequest is the JSON-RPC envelope accepted by a Buildbot force scheduler.
type ForceRequest struct {
	ID      int         `json:"id"`
	JSONRPC string      `json:"jsonrpc"`
	Method  string      `json:"method"`
	Params  ForceParams `json:"params"`
}

// ForceParams are the force scheduler parameters. All values are strings on
// the wire, including the numeric ones.
type ForceParams struct {
	BuilderID      string `json:"builderid"`
	Username       string `json:"username"`
	Reason         string `json:"reason"`
	Branch         string `json:"branch"`
	Project        string `json:"project"`
	Repository     string `json:"repository"`
	Revision       string `json:"revision"`
	ChangeNumber   string `json:"changenumber"`
	PatchsetNumber string `json:"patchsetnumber"`
}

// NewForceRequest returns the fixed Gerrit force request for changeNumber.
func NewForceRequest(changeNumber int) *ForceRequest {
	return &ForceRequest{
		ID:      forceRequestID,
		JSONRPC: jsonRPCVersion,
		Method:  forceMethod,
		Params: ForceParams{
			BuilderID:    gerritBuilderID,
			Reason:       forceReason,
			Project:      gerritProject,
			ChangeNumber: strconv.Itoa(changeNumber),
		},
	}
}
