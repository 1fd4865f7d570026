package lessons

import (
	"errors"
	"fmt"
	"html"
	"slices"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// ErrNotFound is returned when no lesson has the requested id.
var ErrNotFound = errors.New("lesson not found")

// catalog holds the lessons with a precomputed id index.
type catalog struct {
	lessons []Lesson
	byID    map[string]int
}

// c is the package-level catalog, built from builtinLessons at init.
var c *catalog

func init() {
	if err := validateLessons(builtinLessons); err != nil {
		panic(fmt.Sprintf("lessons: invalid catalog: %v", err))
	}
	c = buildCatalog(builtinLessons)
}

func buildCatalog(lessons []Lesson) *catalog {
	cat := &catalog{
		lessons: lessons,
		byID:    make(map[string]int, len(lessons)),
	}
	for i, l := range lessons {
		cat.byID[l.ID] = i
	}
	return cat
}

// All returns every lesson in display order.
func All() []Lesson {
	return slices.Clone(c.lessons)
}

// Get returns the lesson with the given id.
func Get(id string) (Lesson, error) {
	i, ok := c.byID[id]
	if !ok {
		return Lesson{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return c.lessons[i], nil
}

// Count returns the number of lessons in the catalog.
func Count() int {
	return len(c.lessons)
}

// IDs returns all lesson ids in display order.
func IDs() []string {
	ids := make([]string, len(c.lessons))
	for i, l := range c.lessons {
		ids[i] = l.ID
	}
	return ids
}

// First returns the lesson shown when nothing has been selected yet.
func First() Lesson {
	return c.lessons[0]
}

// Filter returns the lessons whose title or tags contain query,
// case-insensitively, in catalog order. An empty query matches everything.
func Filter(query string) []Lesson {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return All()
	}
	var out []Lesson
	for _, l := range c.lessons {
		if matches(l, q) {
			out = append(out, l)
		}
	}
	return out
}

func matches(l Lesson, q string) bool {
	if strings.Contains(strings.ToLower(l.Title), q) {
		return true
	}
	return strings.Contains(strings.ToLower(strings.Join(l.Tags, " ")), q)
}

// ExercisesFor returns the lesson's exercises followed by the common ones.
func ExercisesFor(l Lesson) []Exercise {
	out := make([]Exercise, 0, len(l.Exercises)+len(commonExercises))
	out = append(out, l.Exercises...)
	return append(out, commonExercises...)
}

var textPolicy = bluemonday.StrictPolicy()

// PlainContent reduces the lesson's HTML content to plain text with
// normalised whitespace, for terminal display.
func PlainContent(l Lesson) string {
	stripped := html.UnescapeString(textPolicy.Sanitize(l.Content))
	lines := strings.Split(stripped, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

// validateLessons checks ids are present and unique and that every lesson
// has a title and a starter query.
func validateLessons(lessons []Lesson) error {
	var errs []string
	if len(lessons) == 0 {
		errs = append(errs, "catalog is empty")
	}
	seen := make(map[string]bool, len(lessons))
	for i, l := range lessons {
		if l.ID == "" {
			errs = append(errs, fmt.Sprintf("lesson %d has no id", i))
			continue
		}
		if seen[l.ID] {
			errs = append(errs, fmt.Sprintf("duplicate lesson ID: %q", l.ID))
		}
		seen[l.ID] = true
		if l.Title == "" {
			errs = append(errs, fmt.Sprintf("lesson %q has no title", l.ID))
		}
		if strings.TrimSpace(l.StarterSQL) == "" {
			errs = append(errs, fmt.Sprintf("lesson %q has no starter query", l.ID))
		}
		if !slices.Contains(AllLevels(), l.Level) {
			errs = append(errs, fmt.Sprintf("lesson %q has unknown level %q", l.ID, l.Level))
		}
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}
