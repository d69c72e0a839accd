// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"net/mail"
	"slices"
	"strings"

	"github.com/MKhiriev/go-paw-finder/models"
)

// Field name constants accepted by [SearchValidator.Validate].
const (
	FieldBreeds   = "breeds"
	FieldZipCodes = "zip_codes"
	FieldAge      = "age"
	FieldSort     = "sort"
	FieldFrom     = "from"
	FieldSize     = "size"
	FieldName     = "name"
	FieldEmail    = "email"
	FieldZipCode  = "zip_code"
)

// MaxWindow is the upstream ceiling on from+size for a single search.
const MaxWindow = 10000

// maxFilterValues bounds breeds or zip codes in a filter; the POST /locations
// and POST /dogs bodies share the same limit.
const maxFilterValues = 100

var (
	allowedSortFields = []models.SortField{models.SortByBreed, models.SortByAge, models.SortByName}
	allowedSortDirs   = []models.SortDirection{models.Asc, models.Desc}
	allowedDistances  = []models.DistanceMode{models.NoDistance, models.Nearest, models.Furthest}
)

// SearchValidator implements [Validator] for search and session input:
// models.SearchFilter, models.SortOption, models.SearchWindow,
// models.LoginRequest and models.User. Value and pointer forms are accepted.
type SearchValidator struct{}

func NewSearchValidator() Validator {
	return &SearchValidator{}
}

func (v *SearchValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SearchFilter:
		return v.validateFilter(ctx, value, fields...)
	case *models.SearchFilter:
		return v.validateFilter(ctx, *value, fields...)

	case models.SortOption:
		return validateSort(value)
	case *models.SortOption:
		return validateSort(*value)

	case models.SearchWindow:
		return v.validateWindow(value, fields...)
	case *models.SearchWindow:
		return v.validateWindow(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		return v.validateUser(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *SearchValidator) validateFilter(_ context.Context, filter models.SearchFilter, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldBreeds, FieldZipCodes, FieldAge, FieldSort}
	}

	for _, f := range fields {
		switch f {
		case FieldBreeds:
			if len(filter.Breeds) > maxFilterValues {
				return fmt.Errorf("%w: %d breeds", ErrTooManyFilterItems, len(filter.Breeds))
			}
			for i, b := range filter.Breeds {
				if strings.TrimSpace(b) == "" {
					return fmt.Errorf("breed at index %d: %w", i, ErrEmptyBreed)
				}
			}
		case FieldZipCodes:
			if len(filter.ZipCodes) > maxFilterValues {
				return fmt.Errorf("%w: %d zip codes", ErrTooManyFilterItems, len(filter.ZipCodes))
			}
			for i, z := range filter.ZipCodes {
				if !IsZipCode(z) {
					return fmt.Errorf("zip code at index %d: %w", i, ErrInvalidZipCode)
				}
			}
		case FieldAge:
			if (filter.AgeMin != nil && *filter.AgeMin < 0) || (filter.AgeMax != nil && *filter.AgeMax < 0) {
				return ErrNegativeAge
			}
			if filter.AgeMin != nil && filter.AgeMax != nil && *filter.AgeMin > *filter.AgeMax {
				return ErrAgeRange
			}
		case FieldSort:
			if err := validateSort(filter.Sort); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateSort(s models.SortOption) error {
	if !slices.Contains(allowedDistances, s.Distance) {
		return ErrInvalidDistance
	}
	if s.IsDistance() {
		if s.Field != "" {
			return ErrConflictingSort
		}
		return nil
	}
	if s.Field != "" && !slices.Contains(allowedSortFields, s.Field) {
		return ErrInvalidSortField
	}
	if s.Direction != "" && !slices.Contains(allowedSortDirs, s.Direction) {
		return ErrInvalidSortDir
	}

	return nil
}

func (v *SearchValidator) validateWindow(w models.SearchWindow, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFrom, FieldSize}
	}

	for _, f := range fields {
		switch f {
		case FieldFrom:
			if w.From < 0 {
				return ErrInvalidFrom
			}
		case FieldSize:
			if w.Size <= 0 || w.Size > MaxWindow {
				return ErrInvalidSize
			}
			if w.From+w.Size > MaxWindow {
				return ErrWindowOutOfBounds
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SearchValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(req.Name) == "" {
				return ErrEmptyName
			}
		case FieldEmail:
			if _, err := mail.ParseAddress(req.Email); err != nil {
				return ErrInvalidEmail
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUser checks a stored profile. An empty zip is allowed since the
// user may never have set one.
func (v *SearchValidator) validateUser(u models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldZipCode}
	}

	for _, f := range fields {
		switch f {
		case FieldName, FieldEmail:
			if err := v.validateLogin(models.LoginRequest{Name: u.Name, Email: u.Email}, f); err != nil {
				return err
			}
		case FieldZipCode:
			if u.ZipCode != "" && !IsZipCode(u.ZipCode) {
				return ErrInvalidZipCode
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// IsZipCode reports whether s is a 5-digit US zip code.
func IsZipCode(s string) bool {
	if len(s) != 5 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
