// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It ties the terminal UI flows, the client services and the location cache
// prune job into a single process lifecycle.
package client
