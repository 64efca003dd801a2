// Package catalog describes the course manifest: one entry per lesson
// module, loaded from an embedded YAML document.
package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed manifest.yaml
var manifestYAML []byte

// Lesson is one courseware module as described by the manifest.
type Lesson struct {
	// Slug is the URL-safe identifier; lessons mount under /labs/<slug>/.
	Slug string `yaml:"slug"`
	// Title is the display name shown on the index page.
	Title string `yaml:"title"`
	// Summary is a one-line description of the demo.
	Summary string `yaml:"summary"`
	// Patterns names the HTMX interaction patterns the lesson teaches.
	Patterns []string `yaml:"patterns"`
}

// PathPrefix returns the mount point for the lesson's routes.
func (l Lesson) PathPrefix() string {
	return "/labs/" + l.Slug
}

type manifest struct {
	Lessons []Lesson `yaml:"lessons"`
}

// Catalog is the validated set of lessons in manifest order.
type Catalog struct {
	lessons []Lesson
	bySlug  map[string]Lesson
}

// Load parses and validates the embedded manifest.
func Load() (*Catalog, error) {
	return parse(manifestYAML)
}

func parse(data []byte) (*Catalog, error) {
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	if len(m.Lessons) == 0 {
		return nil, fmt.Errorf("manifest has no lessons")
	}

	bySlug := make(map[string]Lesson, len(m.Lessons))
	for i, lesson := range m.Lessons {
		if strings.TrimSpace(lesson.Slug) == "" {
			return nil, fmt.Errorf("lesson %d: slug is required", i)
		}
		if lesson.Slug != strings.ToLower(lesson.Slug) || strings.ContainsAny(lesson.Slug, " /") {
			return nil, fmt.Errorf("lesson %q: slug must be lowercase with no spaces or slashes", lesson.Slug)
		}
		if strings.TrimSpace(lesson.Title) == "" {
			return nil, fmt.Errorf("lesson %q: title is required", lesson.Slug)
		}
		if strings.TrimSpace(lesson.Summary) == "" {
			return nil, fmt.Errorf("lesson %q: summary is required", lesson.Slug)
		}
		if len(lesson.Patterns) == 0 {
			return nil, fmt.Errorf("lesson %q: at least one pattern is required", lesson.Slug)
		}
		if _, dup := bySlug[lesson.Slug]; dup {
			return nil, fmt.Errorf("lesson %q: duplicate slug", lesson.Slug)
		}
		bySlug[lesson.Slug] = lesson
	}

	return &Catalog{lessons: m.Lessons, bySlug: bySlug}, nil
}

// Lessons returns all lessons in manifest order.
func (c *Catalog) Lessons() []Lesson {
	out := make([]Lesson, len(c.lessons))
	copy(out, c.lessons)
	return out
}

// Lookup returns the lesson for a slug.
func (c *Catalog) Lookup(slug string) (Lesson, bool) {
	lesson, ok := c.bySlug[slug]
	return lesson, ok
}

// Has reports whether slug names a known lesson.
func (c *Catalog) Has(slug string) bool {
	_, ok := c.bySlug[slug]
	return ok
}

// Len returns the number of lessons.
func (c *Catalog) Len() int {
	return len(c.lessons)
}
