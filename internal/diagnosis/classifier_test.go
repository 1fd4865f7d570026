package diagnosis

import (
	"strings"
	"testing"
)

func classify(c Classifier, msg string) (DiagnosisResult, bool) {
	return c.Classify(&ClassifyInput{Message: msg})
}

func TestTimeoutClassifier(t *testing.T) {
	c := &TimeoutClassifier{}
	res, ok := classify(c, "query timed out after 5s")
	if !ok || res.Category != CategoryTimeout {
		t.Fatalf("got (%v, %v), want timeout", res.Category, ok)
	}
	if res.Hint == "" {
		t.Error("expected a hint")
	}
	if _, ok := classify(c, "no such table: Nope"); ok {
		t.Error("timeout classifier matched an unrelated message")
	}
}

func TestNameClassifier_TableSuggestion(t *testing.T) {
	c := NewNameClassifier(nil)
	res, ok := classify(c, "SQL logic error: no such table: Employee (1)")
	if !ok {
		t.Fatal("expected a match")
	}
	if res.Category != CategoryUnknownTable {
		t.Errorf("got category %q, want %q", res.Category, CategoryUnknownTable)
	}
	if res.Subject != "Employee" {
		t.Errorf("got subject %q, want Employee", res.Subject)
	}
	if res.Suggestion != "Employees" {
		t.Errorf("got suggestion %q, want Employees", res.Suggestion)
	}
	if !strings.Contains(res.Hint, "Did you mean Employees?") {
		t.Errorf("hint = %q", res.Hint)
	}
}

func TestNameClassifier_TableCaseInsensitive(t *testing.T) {
	c := NewNameClassifier(nil)
	res, _ := classify(c, "no such table: sale")
	if res.Suggestion != "Sales" {
		t.Errorf("got suggestion %q, want Sales", res.Suggestion)
	}
}

func TestNameClassifier_TableNoSuggestion(t *testing.T) {
	c := NewNameClassifier(nil)
	res, ok := classify(c, "no such table: Nope")
	if !ok {
		t.Fatal("expected a match")
	}
	if res.Suggestion != "" {
		t.Errorf("got suggestion %q, want none", res.Suggestion)
	}
	if res.Hint != hintFor(CategoryUnknownTable) {
		t.Errorf("hint = %q, want the generic table hint", res.Hint)
	}
}

func TestNameClassifier_ColumnKeepsAlias(t *testing.T) {
	c := NewNameClassifier(nil)
	res, ok := classify(c, "no such column: e.salry")
	if !ok || res.Category != CategoryUnknownColumn {
		t.Fatalf("got (%v, %v), want unknown column", res.Category, ok)
	}
	if res.Subject != "e.salry" {
		t.Errorf("got subject %q", res.Subject)
	}
	if res.Suggestion != "e.salary" {
		t.Errorf("got suggestion %q, want e.salary", res.Suggestion)
	}
}

func TestNameClassifier_CustomSchema(t *testing.T) {
	c := NewNameClassifier(map[string][]string{"Books": {"isbn", "title"}})
	res, _ := classify(c, "no such table: Book")
	if res.Suggestion != "Books" {
		t.Errorf("got suggestion %q, want Books", res.Suggestion)
	}
	res, _ = classify(c, "no such column: titel")
	if res.Suggestion != "title" {
		t.Errorf("got suggestion %q, want title", res.Suggestion)
	}
}

func TestMessageClassifier(t *testing.T) {
	c := NewMessageClassifier()
	tests := []struct {
		msg     string
		cat     ErrorCategory
		subject string
	}{
		{`near "SELEC": syntax error`, CategorySyntax, "SELEC"},
		{`incomplete input`, CategorySyntax, ""},
		{`ambiguous column name: dept_id`, CategoryAmbiguousColumn, "dept_id"},
		{`no such function: MEDIAN`, CategoryUnknownFunction, "MEDIAN"},
		{`misuse of aggregate: COUNT()`, CategoryAggregate, "COUNT"},
		{`misuse of aggregate function SUM()`, CategoryAggregate, "SUM"},
		{`wrong number of arguments to function ROUND()`, CategoryArity, "ROUND"},
		{`constraint failed: FOREIGN KEY constraint failed (787)`, CategoryConstraint, "FOREIGN KEY"},
		{`UNIQUE constraint failed: Employees.emp_id`, CategoryConstraint, "UNIQUE"},
		{`table Sales already exists`, CategoryAlreadyExists, "Sales"},
	}
	for _, tt := range tests {
		res, ok := classify(c, tt.msg)
		if !ok {
			t.Errorf("%q: no match", tt.msg)
			continue
		}
		if res.Category != tt.cat {
			t.Errorf("%q: got category %q, want %q", tt.msg, res.Category, tt.cat)
		}
		if res.Subject != tt.subject {
			t.Errorf("%q: got subject %q, want %q", tt.msg, res.Subject, tt.subject)
		}
		if res.Hint == "" {
			t.Errorf("%q: empty hint", tt.msg)
		}
	}
}

func TestMessageClassifier_NoMatch(t *testing.T) {
	if _, ok := classify(NewMessageClassifier(), "disk I/O error"); ok {
		t.Error("expected no match")
	}
}

func TestRunClassifiers_PriorityAndName(t *testing.T) {
	res, ok := RunClassifiers(DefaultClassifiers(), &ClassifyInput{Message: "no such column: emp_nam"})
	if !ok {
		t.Fatal("expected a match")
	}
	if res.ClassifierName != "unknown-name" {
		t.Errorf("got classifier %q, want unknown-name", res.ClassifierName)
	}
	if res.Suggestion != "emp_name" {
		t.Errorf("got suggestion %q, want emp_name", res.Suggestion)
	}
}

func TestRunClassifiers_NoMatch(t *testing.T) {
	if _, ok := RunClassifiers(DefaultClassifiers(), &ClassifyInput{Message: "out of memory"}); ok {
		t.Error("expected no match")
	}
}

func TestEveryCategoryHasPattern(t *testing.T) {
	for _, cat := range []ErrorCategory{
		CategorySyntax, CategoryUnknownTable, CategoryUnknownColumn, CategoryUnknownFunction,
		CategoryAmbiguousColumn, CategoryConstraint, CategoryAggregate, CategoryArity,
		CategoryAlreadyExists, CategoryTimeout,
	} {
		if GetPattern(cat) == nil {
			t.Errorf("no pattern for %q", cat)
		}
	}
	if len(AllPatterns()) != 10 {
		t.Errorf("got %d patterns, want 10", len(AllPatterns()))
	}
}
