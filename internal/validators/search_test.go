// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-paw-finder/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewSearchValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
	})

	t.Run("SearchFilter value and pointer", func(t *testing.T) {
		f := models.SearchFilter{Breeds: []string{"Beagle"}}
		require.NoError(t, v.Validate(ctx, f))
		require.NoError(t, v.Validate(ctx, &f))
	})

	t.Run("SortOption pointer", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, &models.SortOption{Field: models.SortByAge, Direction: models.Desc}))
	})

	t.Run("unknown field", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, models.SearchFilter{}, "colour"), ErrUnknownField)
	})
}

// ---------------------------------------------------------------------------
// TestValidateFilter
// ---------------------------------------------------------------------------

func TestValidateFilter(t *testing.T) {
	tests := []struct {
		name    string
		filter  models.SearchFilter
		wantErr error
	}{
		{name: "empty filter", filter: models.SearchFilter{}},
		{name: "full filter", filter: models.SearchFilter{
			Breeds: []string{"Beagle", "Pug"}, ZipCodes: []string{"10001"},
			AgeMin: intPtr(1), AgeMax: intPtr(8),
			Sort: models.SortOption{Field: models.SortByName, Direction: models.Asc},
		}},
		{name: "equal age bounds", filter: models.SearchFilter{AgeMin: intPtr(3), AgeMax: intPtr(3)}},
		{name: "blank breed", filter: models.SearchFilter{Breeds: []string{"Beagle", " "}}, wantErr: ErrEmptyBreed},
		{name: "short zip", filter: models.SearchFilter{ZipCodes: []string{"1234"}}, wantErr: ErrInvalidZipCode},
		{name: "alpha zip", filter: models.SearchFilter{ZipCodes: []string{"1234a"}}, wantErr: ErrInvalidZipCode},
		{name: "negative min age", filter: models.SearchFilter{AgeMin: intPtr(-1)}, wantErr: ErrNegativeAge},
		{name: "min above max", filter: models.SearchFilter{AgeMin: intPtr(9), AgeMax: intPtr(2)}, wantErr: ErrAgeRange},
		{name: "unknown sort field", filter: models.SearchFilter{Sort: models.SortOption{Field: "colour"}}, wantErr: ErrInvalidSortField},
		{name: "unknown direction", filter: models.SearchFilter{Sort: models.SortOption{Field: models.SortByAge, Direction: "up"}}, wantErr: ErrInvalidSortDir},
		{name: "unknown distance", filter: models.SearchFilter{Sort: models.SortOption{Distance: "closest"}}, wantErr: ErrInvalidDistance},
		{name: "distance with field", filter: models.SearchFilter{Sort: models.SortOption{Field: models.SortByAge, Distance: models.Nearest}}, wantErr: ErrConflictingSort},
		{name: "distance only", filter: models.SearchFilter{Sort: models.SortOption{Distance: models.Furthest}}},
		{name: "too many breeds", filter: models.SearchFilter{Breeds: make([]string, maxFilterValues+1)}, wantErr: ErrTooManyFilterItems},
	}

	v := NewSearchValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.filter)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateFilter_FieldScoping(t *testing.T) {
	v := NewSearchValidator()
	f := models.SearchFilter{ZipCodes: []string{"bad"}, AgeMin: intPtr(5), AgeMax: intPtr(1)}

	assert.ErrorIs(t, v.Validate(context.Background(), f, FieldAge), ErrAgeRange)
	assert.ErrorIs(t, v.Validate(context.Background(), f, FieldZipCodes), ErrInvalidZipCode)
	assert.NoError(t, v.Validate(context.Background(), f, FieldBreeds, FieldSort))
}

// ---------------------------------------------------------------------------
// TestValidateWindow
// ---------------------------------------------------------------------------

func TestValidateWindow(t *testing.T) {
	tests := []struct {
		name    string
		window  models.SearchWindow
		wantErr error
	}{
		{name: "first page", window: models.SearchWindow{From: 0, Size: 25}},
		{name: "last slot", window: models.SearchWindow{From: 9999, Size: 1}},
		{name: "full working set", window: models.SearchWindow{From: 0, Size: MaxWindow}},
		{name: "negative from", window: models.SearchWindow{From: -1, Size: 25}, wantErr: ErrInvalidFrom},
		{name: "zero size", window: models.SearchWindow{Size: 0}, wantErr: ErrInvalidSize},
		{name: "size too large", window: models.SearchWindow{Size: MaxWindow + 1}, wantErr: ErrInvalidSize},
		{name: "past ceiling", window: models.SearchWindow{From: 9990, Size: 25}, wantErr: ErrWindowOutOfBounds},
	}

	v := NewSearchValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.window)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidateLogin / TestValidateUser
// ---------------------------------------------------------------------------

func TestValidateLogin(t *testing.T) {
	v := NewSearchValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.LoginRequest{Name: "Alex", Email: "alex@example.com"}))
	assert.ErrorIs(t, v.Validate(ctx, models.LoginRequest{Name: "  ", Email: "alex@example.com"}), ErrEmptyName)
	assert.ErrorIs(t, v.Validate(ctx, &models.LoginRequest{Name: "Alex", Email: "not-an-email"}), ErrInvalidEmail)
}

func TestValidateUser(t *testing.T) {
	v := NewSearchValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.User{Name: "Alex", Email: "alex@example.com"}))
	assert.NoError(t, v.Validate(ctx, models.User{Name: "Alex", Email: "alex@example.com", ZipCode: "10001"}))
	assert.ErrorIs(t, v.Validate(ctx, models.User{Name: "Alex", Email: "alex@example.com", ZipCode: "ABCDE"}), ErrInvalidZipCode)
	assert.NoError(t, v.Validate(ctx, models.User{ZipCode: "10001"}, FieldZipCode))
}

func TestIsZipCode(t *testing.T) {
	assert.True(t, IsZipCode("02139"))
	assert.False(t, IsZipCode(""))
	assert.False(t, IsZipCode("021390"))
	assert.False(t, IsZipCode("0213-"))
}
