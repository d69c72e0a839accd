// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-paw-finder/internal/adapter"
	"github.com/MKhiriev/go-paw-finder/internal/logger"
	"github.com/MKhiriev/go-paw-finder/internal/mock"
	"github.com/MKhiriev/go-paw-finder/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── Hydrate ──────────────────────────────────────────────────────────────────

func TestHydrate_EmptyInput_NoCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	dogs := mock.NewMockDogsAdapter(ctrl)
	h := NewDogHydrator(dogs, 4, logger.Nop())

	got := h.Hydrate(context.Background(), nil)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestHydrate_UpTo100Ids_SingleBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	dogs := mock.NewMockDogsAdapter(ctrl)
	h := NewDogHydrator(dogs, 4, logger.Nop())

	ids := makeIDs("d", 100)
	dogs.EXPECT().Dogs(gomock.Any(), ids).Return(dogsFor(ids, "10001"), nil).Times(1)

	got := h.Hydrate(context.Background(), ids)

	assert.Len(t, got, 100)
}

func TestHydrate_BatchCountIsCeilOfLenOver100(t *testing.T) {
	for _, n := range []int{1, 99, 100, 101, 250, 1000} {
		ctrl := gomock.NewController(t)
		dogs := mock.NewMockDogsAdapter(ctrl)
		h := NewDogHydrator(dogs, 0, logger.Nop())

		var calls atomic.Int64
		dogs.EXPECT().Dogs(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, batch []string) ([]models.Dog, error) {
				calls.Add(1)
				assert.LessOrEqual(t, len(batch), adapter.MaxBatchSize)
				return dogsFor(batch, "10001"), nil
			}).
			AnyTimes()

		got := h.Hydrate(context.Background(), makeIDs("d", n))

		assert.Equal(t, int64((n+99)/100), calls.Load(), "n=%d", n)
		assert.Len(t, got, n)
	}
}

func TestHydrate_FailedBatchContributesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	dogs := mock.NewMockDogsAdapter(ctrl)
	h := NewDogHydrator(dogs, 3, logger.Nop())

	ids := makeIDs("d", 300)
	dogs.EXPECT().Dogs(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, batch []string) ([]models.Dog, error) {
			if batch[0] == ids[100] {
				return nil, adapter.ErrBadGateway
			}
			return dogsFor(batch, "10001"), nil
		}).
		Times(3)

	got := h.Hydrate(context.Background(), ids)

	require.Len(t, got, 200)
	assert.Equal(t, ids[:100], models.IDs(got[:100]))
	assert.Equal(t, ids[200:], models.IDs(got[100:]))
}

func TestHydrate_ResultsFollowBatchSubmissionOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	dogs := mock.NewMockDogsAdapter(ctrl)
	h := NewDogHydrator(dogs, 0, logger.Nop())

	ids := makeIDs("d", 200)
	dogs.EXPECT().Dogs(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, batch []string) ([]models.Dog, error) {
			if batch[0] == ids[0] {
				// first batch completes last
				time.Sleep(20 * time.Millisecond)
			}
			return dogsFor(batch, "10001"), nil
		}).
		Times(2)

	got := h.Hydrate(context.Background(), ids)

	assert.Equal(t, ids, models.IDs(got))
}

func TestHydrate_IssuesBatchesConcurrently(t *testing.T) {
	ctrl := gomock.NewController(t)
	dogs := mock.NewMockDogsAdapter(ctrl)
	h := NewDogHydrator(dogs, 0, logger.Nop())

	var (
		mu       sync.Mutex
		inFlight int
		peak     int
		started  sync.WaitGroup
	)
	started.Add(3)

	dogs.EXPECT().Dogs(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, batch []string) ([]models.Dog, error) {
			mu.Lock()
			inFlight++
			peak = max(peak, inFlight)
			mu.Unlock()

			started.Done()
			started.Wait()

			mu.Lock()
			inFlight--
			mu.Unlock()
			return dogsFor(batch, "10001"), nil
		}).
		Times(3)

	got := h.Hydrate(context.Background(), makeIDs("d", 300))

	assert.Len(t, got, 300)
	assert.Equal(t, 3, peak)
}

// ── helpers ──────────────────────────────────────────────────────────────────

func TestOrderByIDs_SkipsMissingAndFollowsIDs(t *testing.T) {
	dogs := []models.Dog{dog("b", "1"), dog("a", "1"), dog("c", "1")}

	got := orderByIDs(dogs, []string{"a", "x", "b", "c"})

	assert.Equal(t, []string{"a", "b", "c"}, models.IDs(got))
}

func TestAnnotateLocations(t *testing.T) {
	dogs := []models.Dog{dog("a", "10001"), dog("b", "00000")}

	annotateLocations(dogs, map[string]models.Location{"10001": locChelsea})

	assert.Equal(t, "New York", dogs[0].City)
	assert.Equal(t, "NY", dogs[0].State)
	assert.Empty(t, dogs[1].City)
}
