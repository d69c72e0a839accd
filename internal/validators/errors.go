// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyBreed         = errors.New("breed must not be blank")
	ErrInvalidZipCode     = errors.New("zip code must be 5 digits")
	ErrNegativeAge        = errors.New("age bounds must be non-negative")
	ErrAgeRange           = errors.New("minimum age must not exceed maximum age")
	ErrInvalidSortField   = errors.New("invalid sort field")
	ErrInvalidSortDir     = errors.New("invalid sort direction")
	ErrInvalidDistance    = errors.New("invalid distance mode")
	ErrConflictingSort    = errors.New("distance sort cannot be combined with a sort field")
	ErrInvalidFrom        = errors.New("from must be non-negative")
	ErrInvalidSize        = errors.New("size must be between 1 and 10000")
	ErrWindowOutOfBounds  = errors.New("from + size must not exceed 10000")
	ErrEmptyName          = errors.New("name is required")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrTooManyFilterItems = errors.New("too many filter values")
)
