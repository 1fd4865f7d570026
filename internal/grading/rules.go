package grading

// builtinRules maps lesson ids to their grading rule. Lessons without an
// entry are not gradable.
var builtinRules = map[string]Rule{
	"filters": {
		Query: "SELECT emp_name, role, hire_date FROM Employees WHERE role='Engineer' AND hire_date >= '2024-01-01' ORDER BY emp_name;",
		Checks: []Check{
			{Kind: KindRowCountMin, MinRows: 1},
		},
	},
	"joins": {
		Query: "SELECT e.emp_name, d.dept_name FROM Employees e INNER JOIN Departments d ON e.dept_id = d.dept_id;",
		Checks: []Check{
			{Kind: KindRowCountMin, MinRows: 1},
			{Kind: KindColumnPresent, Column: "dept_name"},
		},
	},
	"agg": {
		Query: "SELECT d.dept_name, COUNT(*) AS people FROM Employees e JOIN Departments d ON e.dept_id=d.dept_id GROUP BY d.dept_name HAVING COUNT(*) >= 2;",
		Checks: []Check{
			{Kind: KindRowCountMin, MinRows: 1},
			{Kind: KindColumnPresent, Column: "people"},
		},
	},
	"selfjoin": {
		Query: "SELECT e.emp_name AS employee, m.emp_name AS manager FROM Employees e LEFT JOIN Employees m ON e.manager_id = m.emp_id;",
		Checks: []Check{
			{Kind: KindColumnPresent, Column: "manager"},
		},
	},
	// Ties on total are broken by the lowest emp_id so the top row is
	// always well defined.
	"sales": {
		Query: "SELECT e.emp_name, SUM(s.amount) AS total FROM Sales s JOIN Employees e ON s.emp_id=e.emp_id GROUP BY e.emp_id, e.emp_name ORDER BY total DESC, e.emp_id ASC LIMIT 1;",
		Checks: []Check{
			{Kind: KindTopRowEquals, Expected: "Nicole Reyes"},
		},
	},
}

// Has reports whether the lesson can be graded.
func Has(lessonID string) bool {
	_, ok := builtinRules[lessonID]
	return ok
}

// RuleFor returns the lesson's grading rule.
func RuleFor(lessonID string) (Rule, bool) {
	r, ok := builtinRules[lessonID]
	return r, ok
}
