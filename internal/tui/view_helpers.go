// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-paw-finder/models"
)

const uiDivider = "──────────────────────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		for _, line := range strings.Split(data, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("ctrl+c: quit"))

	return b.String()
}

// renderDogRow renders one result line: marker, favourite star, name, breed,
// age and location.
func renderDogRow(d models.Dog, selected, favorite bool) string {
	cursor := "  "
	if selected {
		cursor = "> "
	}
	star := " "
	if favorite {
		star = favoriteStyle.Render("★")
	}

	row := fmt.Sprintf("%s%s %-16s %-24s %3s  %s",
		cursor, star, fitText(d.Name, 16), fitText(d.Breed, 24), ageLabel(d.Age), locationLabel(d))
	if selected {
		return selectedStyle.Render(row)
	}
	return row
}

func ageLabel(age int) string {
	return fmt.Sprintf("%dy", age)
}

func locationLabel(d models.Dog) string {
	switch {
	case d.City != "" && d.State != "":
		return fmt.Sprintf("%s, %s (%s)", d.City, d.State, d.ZipCode)
	case d.ZipCode != "":
		return d.ZipCode
	default:
		return "-"
	}
}

// pageLabel renders "page n" plus the total when known.
func pageLabel(p models.Page) string {
	if p.Number == 0 {
		return ""
	}
	if p.Total > 0 {
		return fmt.Sprintf("page %d · %d dogs", p.Number, p.Total)
	}
	return fmt.Sprintf("page %d", p.Number)
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
