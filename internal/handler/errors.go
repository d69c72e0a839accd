// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the proxy has no
// listen address or no upstream client. The proxy refuses to start.
var errNoHandlersAreCreated = errors.New("no handlers are created")
