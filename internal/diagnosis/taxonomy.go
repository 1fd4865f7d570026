package diagnosis

// Pattern describes a known class of query error and the hint shown for it.
type Pattern struct {
	Category ErrorCategory
	Label    string
	Hint     string
}

var seedPatterns = []Pattern{
	{CategorySyntax, "Syntax error", "Check the SQL near the quoted token. A missing comma, an unclosed quote or a misspelled keyword is the usual cause."},
	{CategoryUnknownTable, "Unknown table", "The database has the tables Departments, Employees and Sales."},
	{CategoryUnknownColumn, "Unknown column", "Check the column name, and its table alias if the query uses one."},
	{CategoryUnknownFunction, "Unknown function", "SQLite supports functions such as COUNT, SUM, AVG, MIN, MAX, LOWER, UPPER and COALESCE."},
	{CategoryAmbiguousColumn, "Ambiguous column", "More than one joined table has this column. Prefix it with a table name or alias, e.g. e.dept_id."},
	{CategoryConstraint, "Constraint violation", "The change would break a table rule. Sales rows reference employees, and ids must be unique."},
	{CategoryAggregate, "Aggregate misuse", "Aggregates cannot appear in WHERE. Filter groups with HAVING instead."},
	{CategoryArity, "Wrong number of arguments", "The function was called with the wrong number of arguments."},
	{CategoryAlreadyExists, "Already exists", "That name is taken. Pick another name or drop the old object first."},
	{CategoryTimeout, "Timed out", "The query ran too long. Look for a join without an ON condition or a runaway recursive query."},
}

// registry is the package-level pattern registry, keyed by category.
var registry map[ErrorCategory]*Pattern

func init() {
	registry = make(map[ErrorCategory]*Pattern, len(seedPatterns))
	for i := range seedPatterns {
		p := &seedPatterns[i]
		registry[p.Category] = p
	}
}

// GetPattern returns the pattern for a category, or nil if none is registered.
func GetPattern(c ErrorCategory) *Pattern {
	return registry[c]
}

// AllPatterns returns every registered pattern in registration order.
func AllPatterns() []Pattern {
	out := make([]Pattern, len(seedPatterns))
	copy(out, seedPatterns)
	return out
}

func hintFor(c ErrorCategory) string {
	if p := GetPattern(c); p != nil {
		return p.Hint
	}
	return ""
}
