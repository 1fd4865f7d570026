package diagnosis

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/agext/levenshtein"

	"github.com/abhisek/sqlquest/internal/seed"
)

// maxSuggestDistance is the largest edit distance still offered as a
// "did you mean" suggestion.
const maxSuggestDistance = 2

var (
	noTableRe  = regexp.MustCompile(`no such table: ([\w.]+)`)
	noColumnRe = regexp.MustCompile(`no such column: ([\w.]+)`)
)

// NameClassifier handles unknown table and column errors and suggests the
// closest known name.
type NameClassifier struct {
	tables  []string
	columns []string
}

// NewNameClassifier builds a classifier over schema (table name to column
// names). A nil schema uses the seeded tutorial database.
func NewNameClassifier(schema map[string][]string) *NameClassifier {
	if schema == nil {
		schema = seed.Columns
	}
	c := &NameClassifier{}
	seen := map[string]bool{}
	for table, cols := range schema {
		c.tables = append(c.tables, table)
		for _, col := range cols {
			if !seen[col] {
				seen[col] = true
				c.columns = append(c.columns, col)
			}
		}
	}
	sort.Strings(c.tables)
	sort.Strings(c.columns)
	return c
}

func (c *NameClassifier) Name() string { return "unknown-name" }

func (c *NameClassifier) Classify(input *ClassifyInput) (DiagnosisResult, bool) {
	if m := noTableRe.FindStringSubmatch(input.Message); m != nil {
		name := m[1]
		if i := strings.LastIndexByte(name, '.'); i >= 0 {
			name = name[i+1:]
		}
		return c.result(CategoryUnknownTable, "table", name, closest(name, c.tables)), true
	}
	if m := noColumnRe.FindStringSubmatch(input.Message); m != nil {
		name := m[1]
		prefix := ""
		if i := strings.LastIndexByte(name, '.'); i >= 0 {
			prefix, name = name[:i+1], name[i+1:]
		}
		res := c.result(CategoryUnknownColumn, "column", m[1], "")
		if s := closest(name, c.columns); s != "" {
			res.Suggestion = prefix + s
			res.Hint = fmt.Sprintf("There is no column %q. Did you mean %s?", m[1], res.Suggestion)
		}
		return res, true
	}
	return DiagnosisResult{}, false
}

func (c *NameClassifier) result(cat ErrorCategory, kind, subject, suggestion string) DiagnosisResult {
	res := DiagnosisResult{Category: cat, Subject: subject, Suggestion: suggestion}
	if suggestion != "" {
		res.Hint = fmt.Sprintf("There is no %s %q. Did you mean %s?", kind, subject, suggestion)
	} else {
		res.Hint = hintFor(cat)
	}
	return res
}

// closest returns the candidate nearest to name by case-insensitive edit
// distance, or "" when none is within maxSuggestDistance. Ties go to the
// first candidate in order.
func closest(name string, candidates []string) string {
	lower := strings.ToLower(name)
	best, bestDist := "", maxSuggestDistance+1
	for _, cand := range candidates {
		d := levenshtein.Distance(lower, strings.ToLower(cand), nil)
		if d < bestDist && d < len(cand) {
			best, bestDist = cand, d
		}
	}
	return best
}
