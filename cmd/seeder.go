package cmd

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type seedEmployee struct {
	FirstName    string          `db:"first_name"`
	LastName     string          `db:"last_name"`
	DateOfBirth  time.Time       `db:"date_of_birth"`
	HireDate     time.Time       `db:"hire_date"`
	Salary       decimal.Decimal `db:"salary"`
	DepartmentID int64           `db:"department_id"`
}

type seedDepartment struct {
	Name      string `db:"name"`
	Employees []seedEmployee
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

var seedData = []seedDepartment{
	{
		Name: "Engineering",
		Employees: []seedEmployee{
			{FirstName: "Ada", LastName: "Lovelace", DateOfBirth: day(1815, time.December, 10), HireDate: day(1842, time.June, 1), Salary: decimal.RequireFromString("85000.50")},
			{FirstName: "Grace", LastName: "Hopper", DateOfBirth: day(1906, time.December, 9), HireDate: day(1944, time.July, 2), Salary: decimal.RequireFromString("92000.00")},
		},
	},
	{
		Name: "Research",
		Employees: []seedEmployee{
			// hire date never recorded
			{FirstName: "Charles", LastName: "Babbage", DateOfBirth: day(1791, time.December, 26), Salary: decimal.RequireFromString("78000.00")},
		},
	},
	{
		Name: "Finance",
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample departments and employees for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer db.Close()

		if err := seed(cmd.Context(), db, clearData); err != nil {
			log.Fatalf("failed to seed: %v", err)
		}
	},
}

func seed(ctx context.Context, db *sqlx.DB, clear bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if clear {
		if _, err := db.ExecContext(ctx, "TRUNCATE employees, departments RESTART IDENTITY"); err != nil {
			return fmt.Errorf("clear tables: %w", err)
		}
		fmt.Println("Cleared departments and employees")
	}

	// placeholders are rebound to the driver's style in seedInTx
	sb := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

	for _, d := range seedData {
		seeded, err := seedInTx(ctx, db, sb, d)
		if err != nil {
			return err
		}
		if !seeded {
			fmt.Printf("department %s already exists; skipping\n", d.Name)
			continue
		}
		fmt.Printf("Seeded department %s with %d employees\n", d.Name, len(d.Employees))
	}

	return nil
}

// seedInTx inserts d and its employees in one transaction, so a failed
// employee insert never leaves a department that later runs would skip.
func seedInTx(ctx context.Context, db *sqlx.DB, sb squirrel.StatementBuilderType, d seedDepartment) (bool, error) {
	query, args, err := sb.Select("id").
		From("departments").
		Where(squirrel.Eq{"name": d.Name}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build department lookup: %w", err)
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin seeding %s: %w", d.Name, err)
	}
	defer tx.Rollback()

	var id int64
	err = tx.GetContext(ctx, &id, tx.Rebind(query), args...)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return false, fmt.Errorf("lookup department %s: %w", d.Name, err)
	}

	insertDepartment, err := tx.PrepareNamedContext(ctx, "INSERT INTO departments (name) VALUES (:name) RETURNING id")
	if err != nil {
		return false, fmt.Errorf("prepare department insert: %w", err)
	}
	defer insertDepartment.Close()

	if err := insertDepartment.GetContext(ctx, &id, d); err != nil {
		return false, fmt.Errorf("insert department %s: %w", d.Name, err)
	}

	if len(d.Employees) > 0 {
		employees := make([]seedEmployee, len(d.Employees))
		for i, e := range d.Employees {
			e.DepartmentID = id
			employees[i] = e
		}

		_, err = tx.NamedExecContext(ctx, `INSERT INTO employees (first_name, last_name, date_of_birth, hire_date, salary, department_id)
			VALUES (:first_name, :last_name, :date_of_birth, :hire_date, :salary, :department_id)`, employees)
		if err != nil {
			return false, fmt.Errorf("insert employees of %s: %w", d.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit %s: %w", d.Name, err)
	}
	return true, nil
}
