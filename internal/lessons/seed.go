package lessons

const tablesNote = `<div class="small muted" style="margin-top:6px;">
        Tables: <code>Employees(emp_id, emp_name, role, dept_id, manager_id, email, hire_date, salary)</code>,
        <code>Departments(dept_id, dept_name)</code>, <code>Sales(sale_id, emp_id, amount, sale_date)</code>
      </div>`

// builtinLessons is the lesson catalog in display order.
var builtinLessons = []Lesson{
	{
		ID:    "intro",
		Title: "Intro: SELECT & FROM",
		Level: LevelBeginner,
		Time:  "10 min",
		Tags:  []string{"SELECT", "FROM", "Basics"},
		Content: `The <code>SELECT</code> statement retrieves rows from one or more tables.
      Start by exploring the <code>Employees</code> table. Try changing the query and hit <b>Run</b>.
      ` + tablesNote,
		StarterSQL: "SELECT emp_id, emp_name, role FROM Employees LIMIT 5;",
		Examples: []Example{
			{SQL: "SELECT * FROM Employees;", Note: "Return all columns (be mindful of large outputs)."},
			{SQL: "SELECT emp_name, salary FROM Employees WHERE salary > 1000000;", Note: "Projection + filter."},
			{SQL: "SELECT emp_name AS name, hire_date AS joined FROM Employees ORDER BY joined DESC;", Note: "Alias & sorting."},
		},
		Exercises: []Exercise{
			{Title: "Show first 3 employees", SQL: "SELECT * FROM Employees LIMIT 3;"},
			{Title: "Show names and emails", SQL: "SELECT emp_name, email FROM Employees;"},
		},
	},
	{
		ID:    "filters",
		Title: "Filtering with WHERE",
		Level: LevelBeginner,
		Time:  "12 min",
		Tags:  []string{"WHERE", "Comparison", "AND/OR"},
		Content: `Use <code>WHERE</code> to restrict rows. For example, list Engineers hired in 2024 or later.
      Then click <em>Check Answer</em>.`,
		StarterSQL: "SELECT emp_name, role, hire_date FROM Employees WHERE role='Engineer' AND hire_date >= '2024-01-01';",
		Examples: []Example{
			{SQL: "SELECT emp_name, role FROM Employees WHERE role IN ('Engineer','Analyst');", Note: "IN operator."},
			{SQL: "SELECT emp_name FROM Employees WHERE email LIKE '%@example.com';", Note: "LIKE wildcard."},
			{SQL: "SELECT emp_name, salary FROM Employees WHERE salary BETWEEN 800000 AND 1200000;", Note: "BETWEEN range."},
		},
		Exercises: []Exercise{
			{Title: "Engineers hired in 2024+", SQL: "SELECT emp_name, hire_date FROM Employees WHERE role='Engineer' AND hire_date >= '2024-01-01';"},
			{Title: "Salary between 8–12L", SQL: "SELECT emp_name, salary FROM Employees WHERE salary BETWEEN 800000 AND 1200000;"},
		},
	},
	{
		ID:    "joins",
		Title: "Inner JOIN: Employees ↔ Departments",
		Level: LevelIntermediate,
		Time:  "15 min",
		Tags:  []string{"JOIN", "INNER JOIN"},
		Content: `Combine data from multiple tables with <code>JOIN</code>. Match employees with their department names.
      <div class="small muted" style="margin-top:6px;">Hint: <code>SELECT e.emp_name, d.dept_name FROM Employees e INNER JOIN Departments d ON e.dept_id = d.dept_id;</code></div>`,
		StarterSQL: "SELECT e.emp_name, d.dept_name FROM Employees e INNER JOIN Departments d ON e.dept_id = d.dept_id ORDER BY 1;",
		Examples: []Example{
			{SQL: "SELECT e.emp_name, d.dept_name FROM Employees e JOIN Departments d ON e.dept_id=d.dept_id;", Note: "Classic INNER JOIN."},
			{SQL: "SELECT e.emp_name, d.dept_name FROM Employees e LEFT JOIN Departments d ON e.dept_id=d.dept_id;", Note: "LEFT JOIN keeps all employees."},
		},
		Exercises: []Exercise{
			{Title: "Employee with department name", SQL: "SELECT e.emp_name, d.dept_name FROM Employees e JOIN Departments d ON e.dept_id=d.dept_id;"},
		},
	},
	{
		ID:    "agg",
		Title: "GROUP BY & HAVING",
		Level: LevelIntermediate,
		Time:  "20 min",
		Tags:  []string{"GROUP BY", "HAVING", "Aggregate"},
		Content: `Aggregations summarize data. Use <code>GROUP BY</code> with <code>COUNT</code>, <code>SUM</code>, etc.
      Use <code>HAVING</code> to filter groups. Exercise: Find departments with <em>at least 2 employees</em>.`,
		StarterSQL: "SELECT d.dept_name, COUNT(*) AS people FROM Employees e JOIN Departments d ON e.dept_id=d.dept_id GROUP BY d.dept_name HAVING COUNT(*) >= 2 ORDER BY people DESC;",
		Examples: []Example{
			{SQL: "SELECT role, COUNT(*) AS people FROM Employees GROUP BY role ORDER BY people DESC;", Note: "Count per role."},
			{SQL: "SELECT d.dept_name, ROUND(AVG(e.salary),0) AS avg_salary FROM Employees e JOIN Departments d ON e.dept_id=d.dept_id GROUP BY d.dept_name;", Note: "Average salary by dept."},
		},
		Exercises: []Exercise{
			{Title: "People per dept (>=2)", SQL: "SELECT d.dept_name, COUNT(*) AS people FROM Employees e JOIN Departments d ON e.dept_id=d.dept_id GROUP BY d.dept_name HAVING COUNT(*) >= 2;"},
			{Title: "Avg salary by dept", SQL: "SELECT d.dept_name, ROUND(AVG(e.salary),0) AS avg_salary FROM Employees e JOIN Departments d ON e.dept_id=d.dept_id GROUP BY d.dept_name;"},
		},
	},
	{
		ID:    "selfjoin",
		Title: "Self JOIN: Employee → Manager",
		Level: LevelIntermediate,
		Time:  "15 min",
		Tags:  []string{"SELF JOIN", "Hierarchy"},
		Content: `A <em>self join</em> joins a table to itself. Show each employee with their manager name.
      <div class="small muted" style="margin-top:6px;">Hint: <code>Employees e JOIN Employees m ON e.manager_id = m.emp_id</code></div>`,
		StarterSQL: "SELECT e.emp_name AS employee, m.emp_name AS manager FROM Employees e LEFT JOIN Employees m ON e.manager_id = m.emp_id ORDER BY employee;",
		Examples: []Example{
			{SQL: "SELECT e.emp_name AS employee, m.emp_name AS manager FROM Employees e LEFT JOIN Employees m ON e.manager_id=m.emp_id;", Note: "Self join pattern."},
		},
		Exercises: []Exercise{
			{Title: "List employee ↔ manager", SQL: "SELECT e.emp_name AS employee, m.emp_name AS manager FROM Employees e LEFT JOIN Employees m ON e.manager_id = m.emp_id;"},
			{Title: "Pairs in same department", SQL: "SELECT a.emp_name AS emp1, b.emp_name AS emp2, a.dept_id FROM Employees a JOIN Employees b ON a.dept_id = b.dept_id AND a.emp_id < b.emp_id;"},
		},
	},
	{
		ID:         "date",
		Title:      "Dates & ORDER BY",
		Level:      LevelBeginner,
		Time:       "10 min",
		Tags:       []string{"ORDER BY", "DATE"},
		Content:    `Sort rows with <code>ORDER BY</code>. Try ordering employees by <code>hire_date</code> descending.`,
		StarterSQL: "SELECT emp_name, hire_date FROM Employees ORDER BY hire_date DESC;",
		Examples: []Example{
			{SQL: "SELECT * FROM Employees ORDER BY hire_date DESC;", Note: "Newest first."},
			{SQL: "SELECT strftime('%Y', hire_date) AS year, COUNT(*) FROM Employees GROUP BY year;", Note: "Group by year (SQLite)."},
		},
		Exercises: []Exercise{
			{Title: "Newest hires first", SQL: "SELECT emp_name, hire_date FROM Employees ORDER BY hire_date DESC;"},
		},
	},
	{
		ID:         "sales",
		Title:      "Practice: Who sold the most?",
		Level:      LevelChallenge,
		Time:       "15 min",
		Tags:       []string{"JOIN", "SUM", "ORDER BY"},
		Content:    `Combine <code>Sales</code> and <code>Employees</code> to find total sales by person and list the top seller.`,
		StarterSQL: "SELECT e.emp_name, SUM(s.amount) AS total FROM Sales s JOIN Employees e ON s.emp_id=e.emp_id GROUP BY e.emp_name ORDER BY total DESC;",
		Examples: []Example{
			{SQL: "SELECT e.emp_name, SUM(s.amount) AS total FROM Sales s JOIN Employees e ON s.emp_id=e.emp_id GROUP BY e.emp_name ORDER BY total DESC;", Note: "Leaderboard."},
		},
		Exercises: []Exercise{
			{Title: "Top seller", SQL: "SELECT e.emp_name, SUM(s.amount) AS total FROM Sales s JOIN Employees e ON s.emp_id=e.emp_id GROUP BY e.emp_name, e.emp_id ORDER BY total DESC, e.emp_id ASC LIMIT 1;"},
		},
	},
}

// commonExercises are offered after every lesson's own exercises.
var commonExercises = []Exercise{
	{
		Title: "List employee names with their manager’s name",
		SQL:   "SELECT e.emp_name AS employee, m.emp_name AS manager FROM Employees e LEFT JOIN Employees m ON e.manager_id = m.emp_id;",
	},
	{
		Title: "Pairs of employees in the same department",
		SQL: `SELECT a.emp_name AS emp1, b.emp_name AS emp2, a.dept_id
FROM Employees a
JOIN Employees b ON a.dept_id = b.dept_id AND a.emp_id < b.emp_id;`,
	},
}
