// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoProxyHandler  = errors.New("proxy http handler is not configured")
	errNoListenAddress = errors.New("proxy listen address is empty")
)
