package seed

import (
	"context"
	"fmt"

	"github.com/abhisek/sqlquest/internal/engine"
)

// Schema creates the three tutorial tables.
const Schema = `
PRAGMA foreign_keys = ON;
CREATE TABLE Departments(dept_id INTEGER PRIMARY KEY, dept_name TEXT);
CREATE TABLE Employees(
  emp_id INTEGER PRIMARY KEY,
  emp_name TEXT NOT NULL,
  role TEXT,
  dept_id INTEGER,
  manager_id INTEGER,
  email TEXT,
  hire_date TEXT,
  salary REAL,
  FOREIGN KEY(dept_id) REFERENCES Departments(dept_id)
);
CREATE TABLE Sales(
  sale_id INTEGER PRIMARY KEY,
  emp_id INTEGER,
  amount REAL,
  sale_date TEXT,
  FOREIGN KEY(emp_id) REFERENCES Employees(emp_id)
);
`

// Columns lists each table's columns in declaration order.
var Columns = map[string][]string{
	"Departments": {"dept_id", "dept_name"},
	"Employees":   {"emp_id", "emp_name", "role", "dept_id", "manager_id", "email", "hire_date", "salary"},
	"Sales":       {"sale_id", "emp_id", "amount", "sale_date"},
}

// Departments rows: dept_id, dept_name.
var Departments = [][]any{
	{10, "Analytics"},
	{20, "Engineering"},
	{30, "Sales"},
	{40, "HR"},
}

// Employees rows: emp_id, emp_name, role, dept_id, manager_id, email, hire_date, salary.
var Employees = [][]any{
	{1, "Amit Maurya", "Analyst", 10, nil, "amit@example.com", "2022-02-01", 1050000},
	{2, "Obaid Khan", "Analyst", 10, 1, "obaid@example.com", "2023-05-15", 850000},
	{3, "Claire Watson", "Manager", 30, nil, "claire@example.com", "2021-07-10", 1600000},
	{4, "Mayank Sharma", "Engineer", 20, 7, "mayank@example.com", "2024-01-11", 1200000},
	{5, "Nicole Reyes", "Sales", 30, 3, "nicole@example.com", "2020-11-20", 900000},
	{6, "Waleed Ahmed", "Analyst", 10, 1, "waleed@example.com", "2023-09-09", 800000},
	{7, "David Harris", "Manager", 20, nil, "david@example.com", "2019-03-05", 1750000},
	{8, "Arun Singh", "Sales", 30, 3, "arun@example.com", "2024-03-18", 780000},
	{9, "Ram Bhawan", "HR", 40, nil, "ram@example.com", "2018-12-01", 700000},
	{10, "Yasmin Ali", "Engineer", 20, 7, "yasmin@example.com", "2025-06-01", 1100000},
}

// Sales rows: sale_id, emp_id, amount, sale_date.
var Sales = [][]any{
	{1001, 5, 250000, "2025-07-12"},
	{1002, 8, 180000, "2025-07-20"},
	{1003, 5, 320000, "2025-08-02"},
	{1004, 8, 150000, "2025-08-11"},
	{1005, 5, 210000, "2025-09-01"},
	{1006, 8, 195000, "2025-09-05"},
}

type table struct {
	insert string
	rows   [][]any
}

// tables lists the inserts in dependency order.
var tables = []table{
	{"INSERT INTO Departments VALUES (?, ?)", Departments},
	{"INSERT INTO Employees VALUES (?, ?, ?, ?, ?, ?, ?, ?)", Employees},
	{"INSERT INTO Sales VALUES (?, ?, ?, ?)", Sales},
}

// Seed creates the schema and inserts the fixed rows into a freshly
// opened, empty instance. Calling it twice on the same instance fails
// because the tables already exist.
func Seed(ctx context.Context, in *engine.Instance) error {
	if err := in.Run(ctx, Schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	for _, tbl := range tables {
		if err := insertAll(ctx, in, tbl); err != nil {
			return err
		}
	}
	return nil
}

func insertAll(ctx context.Context, in *engine.Instance, tbl table) error {
	stmt, err := in.Prepare(ctx, tbl.insert)
	if err != nil {
		return fmt.Errorf("prepare %q: %w", tbl.insert, err)
	}
	defer stmt.Release()

	for i, row := range tbl.rows {
		if err := stmt.Run(ctx, row...); err != nil {
			return fmt.Errorf("insert row %d (%q): %w", i, tbl.insert, err)
		}
	}
	return nil
}

// Opener creates fresh engine instances.
type Opener interface {
	Open(ctx context.Context) (*engine.Instance, error)
}

// OpenSeeded opens a new instance and seeds it. The instance is closed
// again when seeding fails.
func OpenSeeded(ctx context.Context, o Opener) (*engine.Instance, error) {
	in, err := o.Open(ctx)
	if err != nil {
		return nil, err
	}
	if err := Seed(ctx, in); err != nil {
		in.Close()
		return nil, fmt.Errorf("seed: %w", err)
	}
	return in, nil
}
