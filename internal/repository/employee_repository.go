package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"anniversaries/internal/directory"
)

var ErrNotFound = errors.New("not found")

// Querier is the subset of *pgxpool.Pool the repository uses.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// EmployeeRepository is a directory.Source backed by the employees table.
type EmployeeRepository struct {
	db Querier
}

func NewEmployeeRepository(db Querier) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) QueryHireDateAnniversaries(ctx context.Context, window directory.Window) ([]directory.RawRecord, error) {
	const q = `
SELECT email, display_name, job_title, department,
       COALESCE(to_char(hire_date, 'YYYY-MM-DD'), '') AS hire_date
FROM employees
WHERE active = TRUE
  AND hire_date IS NOT NULL
  AND to_char(hire_date, 'MM-DD') = ANY($1)
ORDER BY display_name, email
`

	rows, err := r.db.Query(ctx, q, window.Keys())
	if err != nil {
		return nil, fmt.Errorf("find anniversaries: %w", err)
	}
	defer rows.Close()

	results := make([]directory.RawRecord, 0)
	for rows.Next() {
		rec, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate anniversaries: %w", err)
	}

	return results, nil
}

// Upsert inserts or refreshes an employee keyed by identity (email) and
// marks it active.
func (r *EmployeeRepository) Upsert(ctx context.Context, rec directory.RawRecord, hireDate time.Time) error {
	const q = `
INSERT INTO employees (email, display_name, job_title, department, hire_date, active)
VALUES ($1, $2, $3, $4, $5, TRUE)
ON CONFLICT (email)
DO UPDATE SET
    display_name = EXCLUDED.display_name,
    job_title = EXCLUDED.job_title,
    department = EXCLUDED.department,
    hire_date = EXCLUDED.hire_date,
    active = TRUE,
    updated_at = NOW()
`

	if _, err := r.db.Exec(ctx, q, rec.Identity, rec.DisplayName, rec.JobTitle, rec.Department, hireDate); err != nil {
		return fmt.Errorf("upsert employee %s: %w", rec.Identity, err)
	}
	return nil
}

// Deactivate hides an employee from anniversary queries without deleting it.
func (r *EmployeeRepository) Deactivate(ctx context.Context, identity string) error {
	const q = `UPDATE employees SET active = FALSE, updated_at = NOW() WHERE email = $1`

	tag, err := r.db.Exec(ctx, q, identity)
	if err != nil {
		return fmt.Errorf("deactivate employee %s: %w", identity, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

type employeeScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(scanner employeeScanner) (directory.RawRecord, error) {
	var rec directory.RawRecord
	if err := scanner.Scan(
		&rec.Identity,
		&rec.DisplayName,
		&rec.JobTitle,
		&rec.Department,
		&rec.HireDate,
	); err != nil {
		return directory.RawRecord{}, fmt.Errorf("scan employee: %w", err)
	}
	return rec, nil
}
