// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PaginatorState is the state of the result pagination state machine.
type PaginatorState int

const (
	StateIdle PaginatorState = iota
	StateLoading
	StateReady
	StateLoadingMore
	StateError
)

func (s PaginatorState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateLoadingMore:
		return "loading_more"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}
