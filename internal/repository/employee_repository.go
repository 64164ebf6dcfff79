package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/smartsched/smartsched/internal/model"
	"github.com/smartsched/smartsched/internal/repository/base"
)

type EmployeeRepository struct {
	*base.Repository
}

func NewEmployeeRepository(pool *pgxpool.Pool) *EmployeeRepository {
	return &EmployeeRepository{Repository: base.NewRepository(pool)}
}

// Availability is stored as a JSONB weekday-name → ["HH:MM-HH:MM"] mapping
// and parsed into typed intervals once here, not on every check.
func scanEmployee(row pgx.Row) (*model.Employee, error) {
	var (
		employee        model.Employee
		availabilityRaw []byte
	)

	err := row.Scan(
		&employee.ID,
		&employee.Name,
		&employee.Email,
		&employee.Phone,
		&employee.Role,
		&availabilityRaw,
		&employee.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	var raw map[string][]string
	if err := json.Unmarshal(availabilityRaw, &raw); err != nil {
		return nil, fmt.Errorf("decode availability: %w", err)
	}

	employee.Availability, err = model.ParseWeeklyAvailability(raw)
	if err != nil {
		return nil, fmt.Errorf("parse availability: %w", err)
	}

	return &employee, nil
}

const employeeColumns = `id, name, email, phone, role, availability, created_at`

// List returns all employees ordered by id. The order is a documented
// property: it decides ties when free text matches several employee names.
func (r *EmployeeRepository) List(ctx context.Context) ([]*model.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY id`

	rows, err := r.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	var employees []*model.Employee
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		employees = append(employees, employee)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}

	return employees, nil
}

// FindByName looks an employee up by name, case-insensitively. Returns nil
// when no employee matches.
func (r *EmployeeRepository) FindByName(ctx context.Context, name string) (*model.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE LOWER(name) = LOWER($1)`

	employee, err := scanEmployee(r.QueryRow(ctx, query, name))
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find employee by name: %w", err)
	}

	return employee, nil
}

// FindByEmail looks an employee up by its unique email.
func (r *EmployeeRepository) FindByEmail(ctx context.Context, email string) (*model.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE LOWER(email) = LOWER($1)`

	employee, err := scanEmployee(r.QueryRow(ctx, query, email))
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find employee by email: %w", err)
	}

	return employee, nil
}

// Upsert inserts the employee unless one with the same email exists, in which
// case the existing record is returned unchanged.
func (r *EmployeeRepository) Upsert(ctx context.Context, employee *model.Employee) (*model.Employee, error) {
	existing, err := r.FindByEmail(ctx, employee.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	availabilityRaw, err := json.Marshal(employee.Availability.Raw())
	if err != nil {
		return nil, fmt.Errorf("encode availability: %w", err)
	}

	query := `
		INSERT INTO employees (name, email, phone, role, availability)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err = r.QueryRow(ctx, query,
		employee.Name,
		employee.Email,
		employee.Phone,
		employee.Role,
		availabilityRaw,
	).Scan(&employee.ID, &employee.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert employee: %w", err)
	}

	return employee, nil
}
