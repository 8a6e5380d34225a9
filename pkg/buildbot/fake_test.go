// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package buildbot

import (
	"io"
	"net/http"
	"sync"
)

const sessionCookie = "TWISTED_SESSION"

// fakeBuildbot records the requests it receives and answers with fixed
// statuses. The login response sets a session cookie that the force
// endpoint reports back through sawCookie.
type fakeBuildbot struct {
	mu          sync.Mutex
	loginStatus int
	forceStatus int
	forceBody   string

	st fakeState
}

// fakeState is what the fake observed.
type fakeState struct {
	loginCalls   int
	forceCalls   int
	loginUser    string
	loginPass    string
	loginAccept  string
	receivedBody []byte
	forceType    string
	forceAccept  string
	sawCookie    bool
}

func (f *fakeBuildbot) state() fakeState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.st
}

func newFakeBuildbot(loginStatus, forceStatus int) *fakeBuildbot {
	return &fakeBuildbot{
		loginStatus: loginStatus,
		forceStatus: forceStatus,
		forceBody:   `{"id":1,"jsonrpc":"2.0","result":["1","2"]}`,
	}
}

func (f *fakeBuildbot) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		switch {
		case r.URL.Path == LoginPath && r.Method == http.MethodGet:
			f.st.loginCalls++
			f.st.loginUser, f.st.loginPass, _ = r.BasicAuth()
			f.st.loginAccept = r.Header.Get("Accept")
			if f.loginStatus == http.StatusOK {
				http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: "abc", Path: "/"})
				w.WriteHeader(http.StatusOK)
				_, _ = io.WriteString(w, "ok")
				return
			}
			w.WriteHeader(f.loginStatus)
			_, _ = io.WriteString(w, "invalid credentials")

		case r.URL.Path == ForceBuildPath && r.Method == http.MethodPost:
			f.st.forceCalls++
			f.st.forceType = r.Header.Get("Content-Type")
			f.st.forceAccept = r.Header.Get("Accept")
			f.st.receivedBody, _ = io.ReadAll(r.Body)
			if c, err := r.Cookie(sessionCookie); err == nil && c.Value == "abc" {
				f.st.sawCookie = true
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(f.forceStatus)
			_, _ = io.WriteString(w, f.forceBody)

		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
}
