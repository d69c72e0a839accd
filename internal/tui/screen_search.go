// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-paw-finder/models"
	"github.com/charmbracelet/bubbles/textinput"
)

const (
	filterBreeds = iota
	filterZipCodes
	filterAgeMin
	filterAgeMax
	filterName
)

var errInvalidAge = errors.New("age must be a whole number")

// searchSorts is the cycle behind the sort key. The zero option keeps the
// upstream order.
var searchSorts = []models.SortOption{
	{},
	{Field: models.SortByBreed, Direction: models.Asc},
	{Field: models.SortByBreed, Direction: models.Desc},
	{Field: models.SortByName, Direction: models.Asc},
	{Field: models.SortByName, Direction: models.Desc},
	{Field: models.SortByAge, Direction: models.Asc},
	{Field: models.SortByAge, Direction: models.Desc},
	{Distance: models.Nearest},
	{Distance: models.Furthest},
}

type searchScreen struct {
	form    []textinput.Model
	focus   int
	editing bool

	sortIdx int
	page    models.Page
	cursor  int
}

func newSearchScreen() searchScreen {
	placeholders := []string{
		filterBreeds:   "breeds, comma separated",
		filterZipCodes: "zip codes, comma separated",
		filterAgeMin:   "min age",
		filterAgeMax:   "max age",
		filterName:     "name contains",
	}

	form := make([]textinput.Model, len(placeholders))
	for i, p := range placeholders {
		in := textinput.New()
		in.Placeholder = p
		in.Width = 40
		form[i] = in
	}
	form[filterBreeds].ShowSuggestions = true
	form[filterAgeMin].CharLimit = 2
	form[filterAgeMax].CharLimit = 2

	return searchScreen{form: form}
}

// setBreeds offers the known breeds as completions in the breed input.
func (s *searchScreen) setBreeds(breeds []string) {
	s.form[filterBreeds].SetSuggestions(breeds)
}

func (s *searchScreen) startEditing() {
	s.editing = true
	s.form[s.focus].Focus()
}

func (s *searchScreen) stopEditing() {
	s.editing = false
	s.form[s.focus].Blur()
}

// canComplete reports whether tab should accept the suggested breed instead
// of moving to the next field.
func (s *searchScreen) canComplete() bool {
	in := &s.form[s.focus]
	if !in.ShowSuggestions {
		return false
	}
	suggestion := in.CurrentSuggestion()
	return suggestion != "" && suggestion != in.Value()
}

func (s *searchScreen) focusNext() {
	s.form[s.focus].Blur()
	s.focus = (s.focus + 1) % len(s.form)
	s.form[s.focus].Focus()
}

func (s *searchScreen) focusPrev() {
	s.form[s.focus].Blur()
	s.focus = (s.focus - 1 + len(s.form)) % len(s.form)
	s.form[s.focus].Focus()
}

func (s *searchScreen) cycleSort() models.SortOption {
	s.sortIdx = (s.sortIdx + 1) % len(searchSorts)
	return searchSorts[s.sortIdx]
}

func (s *searchScreen) setPage(p models.Page) {
	s.page = p
	if s.cursor >= len(p.Dogs) {
		s.cursor = max(len(p.Dogs)-1, 0)
	}
}

func (s *searchScreen) moveCursor(delta int) {
	if len(s.page.Dogs) == 0 {
		return
	}
	s.cursor = min(max(s.cursor+delta, 0), len(s.page.Dogs)-1)
}

func (s *searchScreen) selected() (models.Dog, bool) {
	if s.cursor < 0 || s.cursor >= len(s.page.Dogs) {
		return models.Dog{}, false
	}
	return s.page.Dogs[s.cursor], true
}

// filter builds the search criteria from the form and the current sort.
func (s *searchScreen) filter() (models.SearchFilter, error) {
	f := models.SearchFilter{
		Breeds:   splitList(s.form[filterBreeds].Value()),
		ZipCodes: splitList(s.form[filterZipCodes].Value()),
		Name:     strings.TrimSpace(s.form[filterName].Value()),
		Sort:     searchSorts[s.sortIdx],
	}

	var err error
	if f.AgeMin, err = parseAge(s.form[filterAgeMin].Value()); err != nil {
		return models.SearchFilter{}, err
	}
	if f.AgeMax, err = parseAge(s.form[filterAgeMax].Value()); err != nil {
		return models.SearchFilter{}, err
	}

	return f, nil
}

func (s *searchScreen) view(isFavorite func(id string) bool) string {
	var b strings.Builder

	labels := []string{"Breeds", "Zips", "Min age", "Max age", "Name"}
	for i, in := range s.form {
		fmt.Fprintf(&b, "%-8s│ %s\n", labels[i], in.View())
	}
	fmt.Fprintf(&b, "Sort    │ %s\n\n", sortLabel(searchSorts[s.sortIdx]))

	if len(s.page.Dogs) == 0 {
		if s.page.Number > 0 {
			b.WriteString("No dogs match these filters.\n")
		}
	}
	for i, d := range s.page.Dogs {
		b.WriteString(renderDogRow(d, !s.editing && i == s.cursor, isFavorite(d.ID)))
		b.WriteString("\n")
	}

	if label := pageLabel(s.page); label != "" {
		b.WriteString("\n")
		b.WriteString(label)
		if s.page.HasNext {
			b.WriteString(" · more →")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func sortLabel(o models.SortOption) string {
	switch {
	case o.IsDistance():
		return "distance: " + string(o.Distance)
	case o.IsZero():
		return "default"
	default:
		return o.String()
	}
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseAge(v string) (*int, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", errInvalidAge, v)
	}
	return &n, nil
}
