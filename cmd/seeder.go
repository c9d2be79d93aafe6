package cmd

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

const seedActor = "seeder"

var pg = goqu.Dialect("postgres")

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
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

		ctx := context.Background()
		if clearData {
			truncate, _, err := pg.Truncate("workers", "job_positions", "compensation_bands", "org_units").
				Identity("RESTART").Cascade().ToSQL()
			if err != nil {
				log.Fatalf("failed to build truncate: %v", err)
			}
			if _, err := db.ExecContext(ctx, truncate); err != nil {
				log.Fatalf("failed to clear data: %v", err)
			}
			fmt.Println("Cleared existing HR records")
		}

		tx, err := db.BeginTxx(ctx, nil)
		if err != nil {
			log.Fatalf("failed to begin transaction: %v", err)
		}
		if err := seed(ctx, tx); err != nil {
			_ = tx.Rollback()
			log.Fatalf("failed to seed: %v", err)
		}
		if err := tx.Commit(); err != nil {
			log.Fatalf("failed to commit seed: %v", err)
		}

		fmt.Println("HR records seeded successfully")
	},
}

type seedPosition struct {
	Number string
	Title  string
	Unit   string
	Band   string
}

type seedWorker struct {
	Number    string
	FirstName string
	LastName  string
	Gender    string
	Birthday  string
	Salary    string
	Position  string
}

func seed(ctx context.Context, tx *sqlx.Tx) error {
	units := []struct {
		Name string
		Desc string
	}{
		{"Human Resources", "people operations and recruiting"},
		{"Engineering", "product development and infrastructure"},
		{"Marketing", "brand, campaigns and communication"},
		{"Finance", "accounting, payroll and controlling"},
		{"Operations", "facilities and internal services"},
	}

	unitIDs := make(map[string]int64, len(units))
	for _, u := range units {
		id, err := ensureRow(ctx, tx, "org_units", goqu.Ex{"name": u.Name}, goqu.Record{
			"name":        u.Name,
			"description": u.Desc,
			"created_by":  seedActor,
			"updated_by":  seedActor,
		})
		if err != nil {
			return fmt.Errorf("org unit %s: %w", u.Name, err)
		}
		unitIDs[u.Name] = id
	}
	fmt.Printf("Seeded %d org units\n", len(unitIDs))

	bandIDs := make(map[string]int64, 5)
	for level := 1; level <= 5; level++ {
		name := fmt.Sprintf("Level %d", level)
		minSalary := decimal.NewFromInt(int64(30000 + (level-1)*15000))
		maxSalary := minSalary.Add(decimal.NewFromInt(20000))
		id, err := ensureRow(ctx, tx, "compensation_bands", goqu.Ex{"name": name}, goqu.Record{
			"name":       name,
			"currency":   "EUR",
			"min_salary": minSalary.StringFixed(2),
			"max_salary": maxSalary.StringFixed(2),
			"created_by": seedActor,
			"updated_by": seedActor,
		})
		if err != nil {
			return fmt.Errorf("band %s: %w", name, err)
		}
		bandIDs[name] = id
	}
	fmt.Printf("Seeded %d compensation bands\n", len(bandIDs))

	positions := []seedPosition{
		{"HR-001", "HR Generalist", "Human Resources", "Level 2"},
		{"ENG-001", "Backend Engineer", "Engineering", "Level 3"},
		{"ENG-002", "Engineering Manager", "Engineering", "Level 5"},
		{"MKT-001", "Content Strategist", "Marketing", "Level 2"},
		{"FIN-001", "Accountant", "Finance", "Level 3"},
		{"OPS-001", "Office Coordinator", "Operations", "Level 1"},
	}

	positionIDs := make(map[string]int64, len(positions))
	for _, p := range positions {
		id, err := ensureRow(ctx, tx, "job_positions", goqu.Ex{"number": p.Number}, goqu.Record{
			"number":      p.Number,
			"title":       p.Title,
			"org_unit_id": unitIDs[p.Unit],
			"band_id":     bandIDs[p.Band],
			"created_by":  seedActor,
			"updated_by":  seedActor,
		})
		if err != nil {
			return fmt.Errorf("position %s: %w", p.Number, err)
		}
		positionIDs[p.Number] = id
	}
	fmt.Printf("Seeded %d job positions\n", len(positionIDs))

	workers := []seedWorker{
		{"W-0001", "John", "Doe", "male", "1988-04-12", "52000", "ENG-001"},
		{"W-0002", "Jane", "Roe", "female", "1985-09-30", "98000", "ENG-002"},
		{"W-0003", "Alex", "Kim", "other", "1993-01-05", "41000", "HR-001"},
		{"W-0004", "Maria", "Lopez", "female", "1990-06-18", "56000", "FIN-001"},
		{"W-0005", "Tom", "Berg", "male", "1996-11-02", "36000", "OPS-001"},
		{"W-0006", "Sara", "Nilsen", "female", "1991-03-22", "44000", "MKT-001"},
	}

	for _, w := range workers {
		birthday, err := time.Parse(time.DateOnly, w.Birthday)
		if err != nil {
			return fmt.Errorf("worker %s: %w", w.Number, err)
		}
		salary, err := decimal.NewFromString(w.Salary)
		if err != nil {
			return fmt.Errorf("worker %s: %w", w.Number, err)
		}
		if _, err := ensureRow(ctx, tx, "workers", goqu.Ex{"worker_number": w.Number}, goqu.Record{
			"worker_number": w.Number,
			"first_name":    w.FirstName,
			"last_name":     w.LastName,
			"email":         fmt.Sprintf("%s.%s@example.com", strings.ToLower(w.FirstName), strings.ToLower(w.LastName)),
			"gender":        w.Gender,
			"birthday":      birthday,
			"salary":        salary.StringFixed(2),
			"position_id":   positionIDs[w.Position],
			"created_by":    seedActor,
			"updated_by":    seedActor,
		}); err != nil {
			return fmt.Errorf("worker %s: %w", w.Number, err)
		}
	}
	fmt.Printf("Seeded %d workers\n", len(workers))

	return nil
}

// ensureRow returns the id of the row in table matching key, inserting row
// when there is none.
func ensureRow(ctx context.Context, tx *sqlx.Tx, table string, key goqu.Ex, row goqu.Record) (int64, error) {
	lookup, args, err := pg.From(table).Select("id").Where(key).Prepared(true).ToSQL()
	if err != nil {
		return 0, err
	}

	var id int64
	err = tx.GetContext(ctx, &id, lookup, args...)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, err
	}

	insert, args, err := pg.Insert(table).Rows(row).Returning("id").Prepared(true).ToSQL()
	if err != nil {
		return 0, err
	}
	if err := tx.GetContext(ctx, &id, insert, args...); err != nil {
		return 0, err
	}
	return id, nil
}
