// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the paw-finder client and proxy.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetClientConfig] for the terminal client and
// [GetProxyConfig] for the HTTP proxy. Both project the merged
// [StructuredConfig] onto the fields the runtime needs, fill defaults and
// validate the result.
package config
