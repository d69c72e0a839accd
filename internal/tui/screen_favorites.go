// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-paw-finder/internal/geo"
	"github.com/MKhiriev/go-paw-finder/models"
)

var favoriteSorts = []models.SortOption{
	{Field: models.SortByName, Direction: models.Asc},
	{Field: models.SortByName, Direction: models.Desc},
	{Field: models.SortByAge, Direction: models.Asc},
	{Field: models.SortByAge, Direction: models.Desc},
	{Field: models.SortByBreed, Direction: models.Asc},
	{Field: models.SortByBreed, Direction: models.Desc},
}

type favoritesScreen struct {
	sortIdx int
	page    models.Page
	cursor  int
	match   *models.Match
}

func (s *favoritesScreen) sort() models.SortOption {
	return favoriteSorts[s.sortIdx]
}

func (s *favoritesScreen) cycleSort() models.SortOption {
	s.sortIdx = (s.sortIdx + 1) % len(favoriteSorts)
	return s.sort()
}

func (s *favoritesScreen) setPage(p models.Page) {
	s.page = p
	if s.cursor >= len(p.Dogs) {
		s.cursor = max(len(p.Dogs)-1, 0)
	}
}

func (s *favoritesScreen) moveCursor(delta int) {
	if len(s.page.Dogs) == 0 {
		return
	}
	s.cursor = min(max(s.cursor+delta, 0), len(s.page.Dogs)-1)
}

func (s *favoritesScreen) selected() (models.Dog, bool) {
	if s.cursor < 0 || s.cursor >= len(s.page.Dogs) {
		return models.Dog{}, false
	}
	return s.page.Dogs[s.cursor], true
}

func (s *favoritesScreen) view() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Sort │ %s\n\n", sortLabel(s.sort()))

	if len(s.page.Dogs) == 0 {
		b.WriteString("No favourites yet. Press f on a search result to add one.\n")
	}
	for i, d := range s.page.Dogs {
		b.WriteString(renderDogRow(d, i == s.cursor, true))
		b.WriteString("\n")
	}
	if label := pageLabel(s.page); label != "" && len(s.page.Dogs) > 0 {
		b.WriteString("\n")
		b.WriteString(label)
		b.WriteString("\n")
	}

	if s.match != nil {
		b.WriteString("\n")
		b.WriteString(renderMatch(*s.match))
	}

	return strings.TrimRight(b.String(), "\n")
}

func renderMatch(m models.Match) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("It's a match!"))
	b.WriteString("\n")
	name := m.Dog.Name
	if name == "" {
		name = m.DogID
	}
	fmt.Fprintf(&b, "%s · %s · %s\n", name, m.Dog.Breed, locationLabel(m.Dog))
	switch {
	case m.Random:
		b.WriteString("picked at random, no favourite could be located\n")
	default:
		fmt.Fprintf(&b, "%s from you\n", geo.FormatDistance(m.DistanceKm, geo.Kilometers))
	}
	if m.Dog.Img != "" {
		b.WriteString(m.Dog.Img)
	}
	return strings.TrimRight(b.String(), "\n")
}
