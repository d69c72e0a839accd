// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/go-paw-finder/internal/config"
	"github.com/MKhiriev/go-paw-finder/internal/logger"
	"github.com/MKhiriev/go-paw-finder/internal/validators"
	"github.com/MKhiriev/go-paw-finder/models"
)

type paginator struct {
	executor SearchExecutor
	sorter   DistanceSorter
	hydrator DogHydrator
	resolver LocationResolver
	session  Session

	pageSize  int
	fetchSize int

	mu sync.Mutex
	// epoch is bumped by every operation that changes what should be
	// displayed. A completion carrying an older epoch is discarded.
	epoch uint64
	// query is bumped by Apply only. The distance loader keeps writing while
	// it matches, across page navigation.
	query     uint64
	state     models.PaginatorState
	filter    models.SearchFilter
	ids       []string
	seen      map[string]struct{}
	records   map[string]models.Dog
	offset    int
	shown     int
	total     int
	exhausted bool
	page      models.Page
	err       error

	// catalog is set while the distance loader owns the id list.
	catalog    bool
	loadErr    error
	progressed chan struct{}
	cancelLoad context.CancelFunc

	logger *logger.Logger
}

// NewPaginator builds the state machine. Sizes come from the search config;
// FetchSize is raised to PageSize when smaller.
func NewPaginator(executor SearchExecutor, sorter DistanceSorter, hydrator DogHydrator, resolver LocationResolver,
	sess Session, cfg config.ClientSearch, log *logger.Logger) Paginator {
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = config.DefaultPageSize
	}

	return &paginator{
		executor:   executor,
		sorter:     sorter,
		hydrator:   hydrator,
		resolver:   resolver,
		session:    sess,
		pageSize:   pageSize,
		fetchSize:  max(cfg.FetchSize, pageSize),
		state:      models.StateIdle,
		records:    make(map[string]models.Dog),
		progressed: make(chan struct{}),
		logger:     log,
	}
}

func (p *paginator) Apply(ctx context.Context, filter models.SearchFilter) (models.Page, error) {
	p.mu.Lock()
	p.epoch++
	p.query++
	epoch, query := p.epoch, p.query
	p.stopLoad()
	p.signal()
	p.state = models.StateLoading
	p.filter = filter
	p.ids = nil
	p.seen = nil
	p.records = make(map[string]models.Dog)
	p.offset = 0
	p.shown = 0
	p.total = 0
	p.exhausted = false
	p.catalog = false
	p.loadErr = nil
	p.err = nil
	p.mu.Unlock()

	if filter.Sort.IsDistance() {
		if err := p.startCatalog(ctx, query, filter); err != nil {
			return p.fail(epoch, err)
		}
	}

	return p.load(ctx, epoch, 1)
}

// startCatalog hands the id list to the incremental distance loader, which
// runs in the background until the catalog is sorted or the query changes.
func (p *paginator) startCatalog(ctx context.Context, query uint64, filter models.SearchFilter) error {
	user, _ := p.session.Profile()
	zip := strings.TrimSpace(user.ZipCode)
	if zip == "" {
		return ErrZipCodeRequired
	}

	loadCtx, cancel := context.WithCancel(ctx)

	p.mu.Lock()
	if p.query != query {
		p.mu.Unlock()
		cancel()
		return ErrStaleResult
	}
	p.catalog = true
	p.cancelLoad = cancel
	p.mu.Unlock()

	go p.runCatalog(loadCtx, query, filter, zip)
	return nil
}

func (p *paginator) runCatalog(ctx context.Context, query uint64, filter models.SearchFilter, zip string) {
	name := nameQuery(filter)
	reported := false

	_, err := p.sorter.SortCatalog(ctx, filter, zip, p.pageSize, func(progress models.CatalogProgress) {
		p.mu.Lock()
		p.keepRecords(progress.PageDogs)
		p.mu.Unlock()

		sorted := p.matchName(ctx, name, progress.SortedIDs)

		p.mu.Lock()
		defer p.mu.Unlock()
		if p.query != query {
			return
		}
		reported = true
		p.resort(sorted)
		p.total = progress.Total
		if name != "" {
			p.total = len(p.ids)
		}
		p.exhausted = progress.Complete
		p.signal()
	})

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.query != query {
		return
	}

	switch {
	case err == nil:
		p.exhausted = true
	case errors.Is(err, ErrLocationResolution) && !reported:
		p.logger.Warn().Err(err).Str("func", "paginator.runCatalog").
			Msg("reference zip did not resolve, keeping upstream order")
		p.catalog = false
	default:
		p.logger.Warn().Err(err).Str("func", "paginator.runCatalog").
			Int("sorted", len(p.ids)).Msg("distance loader stopped")
		p.loadErr = err
	}
	p.signal()
}

func (p *paginator) Reload(ctx context.Context) (models.Page, error) {
	p.mu.Lock()
	idle := p.state == models.StateIdle
	filter := p.filter
	p.mu.Unlock()

	if idle {
		return models.Page{}, ErrNoQuery
	}
	return p.Apply(ctx, filter)
}

func (p *paginator) Next(ctx context.Context) (models.Page, error) {
	return p.GoTo(ctx, p.Page().Number+1)
}

func (p *paginator) Prev(ctx context.Context) (models.Page, error) {
	current := p.Page()
	if current.Number <= 1 {
		return current, nil
	}
	return p.GoTo(ctx, current.Number-1)
}

func (p *paginator) GoTo(ctx context.Context, n int) (models.Page, error) {
	p.mu.Lock()
	if p.state == models.StateIdle || p.seen == nil {
		p.mu.Unlock()
		return models.Page{}, ErrNoQuery
	}
	if n < 1 {
		current := p.page
		p.mu.Unlock()
		return current, ErrPageOutOfRange
	}
	p.epoch++
	epoch := p.epoch
	p.signal()
	p.mu.Unlock()

	return p.load(ctx, epoch, n)
}

// load grows the accumulated ids until page n is full or nothing more can
// arrive, then materialises it. Attribute sorts fetch the next upstream
// window; distance sorts wait for the loader's next report.
func (p *paginator) load(ctx context.Context, epoch uint64, n int) (models.Page, error) {
	start := (n - 1) * p.pageSize
	need := start + p.pageSize

	for {
		p.mu.Lock()
		if p.epoch != epoch {
			p.mu.Unlock()
			return models.Page{}, ErrStaleResult
		}

		if need <= len(p.ids) || p.exhausted {
			if n > 1 && start >= len(p.ids) {
				current := p.page
				if p.state == models.StateLoadingMore {
					p.state = models.StateReady
				}
				p.mu.Unlock()
				return current, ErrPageOutOfRange
			}
			p.mu.Unlock()
			return p.materialise(ctx, epoch, n)
		}

		if err := p.loadErr; err != nil {
			p.mu.Unlock()
			return p.fail(epoch, err)
		}

		if p.state != models.StateLoading {
			p.state = models.StateLoadingMore
		}

		if p.catalog {
			progressed := p.progressed
			p.mu.Unlock()

			select {
			case <-progressed:
			case <-ctx.Done():
				return p.fail(epoch, ctx.Err())
			}
			continue
		}

		filter := p.filter
		from := p.offset
		size := min(p.fetchSize, validators.MaxWindow-from)
		p.mu.Unlock()

		if err := p.fetchWindow(ctx, epoch, filter, from, size); err != nil {
			return p.fail(epoch, err)
		}
	}
}

// fetchWindow appends the name-matching ids of one upstream window.
func (p *paginator) fetchWindow(ctx context.Context, epoch uint64, filter models.SearchFilter, from, size int) error {
	result, err := p.executor.Search(ctx, filter, from, size)
	if err != nil {
		return err
	}

	name := nameQuery(filter)
	matched := p.matchName(ctx, name, result.ResultIDs)

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.epoch != epoch {
		return ErrStaleResult
	}
	p.appendIDs(matched)
	p.offset = from + len(result.ResultIDs)
	p.exhausted = len(result.ResultIDs) < size || p.offset >= result.Total || p.offset >= validators.MaxWindow
	p.total = result.Total
	if name != "" {
		p.total = len(p.ids)
	}

	return nil
}

// matchName keeps the ids whose dog name contains name, case-insensitively,
// in input order. Records hydrated here are kept for materialise.
func (p *paginator) matchName(ctx context.Context, name string, ids []string) []string {
	if name == "" {
		return ids
	}

	p.mu.Lock()
	dogs, missing := p.lookupRecords(ids)
	p.mu.Unlock()

	if len(missing) > 0 {
		fresh := p.hydrator.Hydrate(ctx, missing)
		p.mu.Lock()
		p.keepRecords(fresh)
		p.mu.Unlock()
		dogs = append(dogs, fresh...)
	}

	matched := make([]string, 0, len(ids))
	for _, d := range orderByIDs(dogs, ids) {
		if strings.Contains(strings.ToLower(d.Name), name) {
			matched = append(matched, d.ID)
		}
	}
	return matched
}

// materialise hydrates page n of the accumulated ids and installs it unless
// a newer request started meanwhile.
func (p *paginator) materialise(ctx context.Context, epoch uint64, n int) (models.Page, error) {
	p.mu.Lock()
	start := min((n-1)*p.pageSize, len(p.ids))
	end := min(start+p.pageSize, len(p.ids))
	pageIDs := slices.Clone(p.ids[start:end])
	hasNext := end < len(p.ids) || !p.exhausted
	total := p.total
	dogs, missing := p.lookupRecords(pageIDs)
	p.mu.Unlock()

	if len(missing) > 0 {
		dogs = append(dogs, p.hydrator.Hydrate(ctx, missing)...)
	}
	dogs = orderByIDs(dogs, pageIDs)
	annotateLocations(dogs, p.resolver.Resolve(ctx, models.ZipCodes(dogs)))

	page := models.Page{
		Number:  n,
		Size:    p.pageSize,
		Dogs:    dogs,
		Total:   total,
		HasNext: hasNext,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.epoch != epoch {
		return models.Page{}, ErrStaleResult
	}
	p.page = page
	p.shown = max(p.shown, end)
	p.state = models.StateReady
	p.err = nil

	return page, nil
}

// fail moves to the Error state, keeping the last displayed page. A 401
// additionally invalidates the session.
func (p *paginator) fail(epoch uint64, err error) (models.Page, error) {
	if checkUnauthorized(p.session, err) {
		err = errors.Join(ErrSessionExpired, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.epoch != epoch {
		return models.Page{}, ErrStaleResult
	}

	p.state = models.StateError
	p.err = err

	p.logger.Warn().Err(err).Str("func", "paginator.fail").Msg("search failed")

	return p.page, err
}

// appendIDs adds ids not yet accumulated. Callers hold mu.
func (p *paginator) appendIDs(ids []string) {
	if p.seen == nil {
		p.seen = make(map[string]struct{}, len(ids))
	}
	for _, id := range ids {
		if _, ok := p.seen[id]; ok {
			continue
		}
		p.seen[id] = struct{}{}
		p.ids = append(p.ids, id)
	}
}

// resort replaces every id past the displayed pages with sorted, so pages
// already shown keep their content. Callers hold mu.
func (p *paginator) resort(sorted []string) {
	p.ids = slices.Clone(p.ids[:min(p.shown, len(p.ids))])
	p.seen = make(map[string]struct{}, len(sorted))
	for _, id := range p.ids {
		p.seen[id] = struct{}{}
	}
	p.appendIDs(sorted)
}

// lookupRecords splits ids into records already hydrated for this query and
// ids still to fetch. Callers hold mu.
func (p *paginator) lookupRecords(ids []string) ([]models.Dog, []string) {
	dogs := make([]models.Dog, 0, len(ids))
	var missing []string
	for _, id := range ids {
		if d, ok := p.records[id]; ok {
			dogs = append(dogs, d)
			continue
		}
		missing = append(missing, id)
	}
	return dogs, missing
}

// keepRecords remembers hydrated records. Callers hold mu.
func (p *paginator) keepRecords(dogs []models.Dog) {
	for _, d := range dogs {
		p.records[d.ID] = d
	}
}

// signal wakes loads waiting for distance loader progress. Callers hold mu.
func (p *paginator) signal() {
	close(p.progressed)
	p.progressed = make(chan struct{})
}

// stopLoad cancels a running distance loader. Callers hold mu.
func (p *paginator) stopLoad() {
	if p.cancelLoad != nil {
		p.cancelLoad()
		p.cancelLoad = nil
	}
}

func nameQuery(filter models.SearchFilter) string {
	return strings.ToLower(strings.TrimSpace(filter.Name))
}

func (p *paginator) State() models.PaginatorState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *paginator) Page() models.Page {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.page
}

func (p *paginator) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

func (p *paginator) Filter() models.SearchFilter {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.filter
}

func (p *paginator) AccumulatedIDs() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.ids)
}

func (p *paginator) Total() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.total
}

func (p *paginator) Exhausted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.exhausted
}
