package handlers

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bobmcallan/vibex/internal/models"
)

// FindPagesDir locates the pages directory.
func FindPagesDir() string {
	dirs := []string{
		"./pages",
		"../pages",
		"../../pages",
		".",
	}

	for _, dir := range dirs {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			abs, _ := filepath.Abs(dir)
			return abs
		}
	}

	return "."
}

// LoadTemplates parses every page and partial under pagesDir.
func LoadTemplates(pagesDir string) (*template.Template, error) {
	templates, err := template.New("pages").Funcs(templateFuncs()).ParseGlob(filepath.Join(pagesDir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("parse pages: %w", err)
	}
	if _, err := templates.ParseGlob(filepath.Join(pagesDir, "partials", "*.html")); err != nil {
		return nil, fmt.Errorf("parse partials: %w", err)
	}
	return templates, nil
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"initials": models.Initials,
		"join":     strings.Join,
		"date":     func(t time.Time) string { return t.Format("January 2, 2006") },
		"isodate":  func(t time.Time) string { return t.Format("2006-01-02") },
		"clock":    func(t time.Time) string { return t.Format("3:04 PM") },
		"ago":      humanizeSince,
	}
}

// humanizeSince renders the distance from t to now in words, e.g. "3 days ago".
func humanizeSince(t, now time.Time) string {
	d := now.Sub(t)
	if d < 0 {
		return "just now"
	}
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return plural(int(d/time.Minute), "minute") + " ago"
	case d < 24*time.Hour:
		return plural(int(d/time.Hour), "hour") + " ago"
	case d < 30*24*time.Hour:
		return plural(int(d/(24*time.Hour)), "day") + " ago"
	case d < 365*24*time.Hour:
		return plural(int(d/(30*24*time.Hour)), "month") + " ago"
	}
	return plural(int(d/(365*24*time.Hour)), "year") + " ago"
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
