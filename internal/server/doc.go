// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the proxy's HTTP listener until a stop signal arrives
// and then shuts it down gracefully.
package server
