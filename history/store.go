// SPDX-License-Identifier: MIT

package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/vptk/reducer"
)

// Run is one recorded calculation.
type Run struct {
	ID         int64 // assigned by Record
	TaskID     uuid.UUID
	Inputs     reducer.Inputs
	Resolution int
	Passes     bool
	Boundary   float64 // NaN and ±Inf survive the round trip
	Status     string  // terminal task state name
	Points     int     // profile points produced
	Balls      int     // ball centres produced
	Error      string
	CreatedAt  time.Time
}

// row is the column layout of the runs table.
type row struct {
	ID         int64           `db:"id"`
	TaskID     string          `db:"task_id"`
	Dsh        float64         `db:"dsh"`
	U          float64         `db:"u"`
	I          float64         `db:"i"`
	Rout       float64         `db:"rout"`
	Resolution int             `db:"resolution"`
	Passes     bool            `db:"passes"`
	Boundary   sql.NullFloat64 `db:"boundary"`
	Status     string          `db:"status"`
	Points     int             `db:"points"`
	Balls      int             `db:"balls"`
	Error      string          `db:"error"`
	CreatedAt  int64           `db:"created_at"`
}

const columns = `id, task_id, dsh, u, i, rout, resolution, passes, boundary,
	status, points, balls, error, created_at`

func (r row) run() (Run, error) {
	id, err := uuid.Parse(r.TaskID)
	if err != nil {
		return Run{}, fmt.Errorf("history: run %d: task id: %w", r.ID, err)
	}
	boundary := math.NaN()
	if r.Boundary.Valid {
		boundary = r.Boundary.Float64
	}

	return Run{
		ID:         r.ID,
		TaskID:     id,
		Inputs:     reducer.Inputs{Dsh: r.Dsh, U: r.U, I: r.I, Rout: r.Rout},
		Resolution: r.Resolution,
		Passes:     r.Passes,
		Boundary:   boundary,
		Status:     r.Status,
		Points:     r.Points,
		Balls:      r.Balls,
		Error:      r.Error,
		CreatedAt:  time.Unix(0, r.CreatedAt).UTC(),
	}, nil
}

// Store wraps a SQLite connection holding the runs table.
type Store struct {
	conn *sqlx.DB
}

// Open opens or creates the database at path and applies the schema.
func Open(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("history: open: %w", err)
	}

	st := &Store{conn: conn}
	if err := st.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("history: migrate: %w", err)
	}

	return st, nil
}

// Close closes the database connection.
func (st *Store) Close() error {
	return st.conn.Close()
}

func (st *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		task_id TEXT NOT NULL,
		dsh REAL NOT NULL,
		u REAL NOT NULL,
		i REAL NOT NULL,
		rout REAL NOT NULL,
		resolution INTEGER NOT NULL,
		passes INTEGER NOT NULL,
		boundary REAL,
		status TEXT NOT NULL,
		points INTEGER NOT NULL,
		balls INTEGER NOT NULL,
		error TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_task ON runs(task_id);
	`
	_, err := st.conn.Exec(schema)
	return err
}

// Record stores r and returns it with ID (and CreatedAt, when zero) filled in.
func (st *Store) Record(ctx context.Context, r Run) (Run, error) {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	var boundary sql.NullFloat64
	// SQLite turns NaN into NULL; ±Inf is a regular REAL.
	if !math.IsNaN(r.Boundary) {
		boundary = sql.NullFloat64{Float64: r.Boundary, Valid: true}
	}

	res, err := st.conn.NamedExecContext(ctx, `INSERT INTO runs
		(task_id, dsh, u, i, rout, resolution, passes, boundary,
		 status, points, balls, error, created_at)
		VALUES (:task_id, :dsh, :u, :i, :rout, :resolution, :passes, :boundary,
		 :status, :points, :balls, :error, :created_at)`,
		row{
			TaskID:     r.TaskID.String(),
			Dsh:        r.Inputs.Dsh,
			U:          r.Inputs.U,
			I:          r.Inputs.I,
			Rout:       r.Inputs.Rout,
			Resolution: r.Resolution,
			Passes:     r.Passes,
			Boundary:   boundary,
			Status:     r.Status,
			Points:     r.Points,
			Balls:      r.Balls,
			Error:      r.Error,
			CreatedAt:  r.CreatedAt.UnixNano(),
		})
	if err != nil {
		return Run{}, fmt.Errorf("history: record: %w", err)
	}
	if r.ID, err = res.LastInsertId(); err != nil {
		return Run{}, fmt.Errorf("history: record: %w", err)
	}

	return r, nil
}

// Recent returns up to limit runs, newest first.
func (st *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	var rows []row
	err := st.conn.SelectContext(ctx, &rows,
		"SELECT "+columns+" FROM runs ORDER BY id DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("history: recent: %w", err)
	}

	out := make([]Run, 0, len(rows))
	for _, r := range rows {
		run, err := r.run()
		if err != nil {
			return nil, err
		}
		out = append(out, run)
	}

	return out, nil
}

// Get returns the latest run recorded for taskID.
func (st *Store) Get(ctx context.Context, taskID uuid.UUID) (Run, error) {
	var r row
	err := st.conn.GetContext(ctx, &r,
		"SELECT "+columns+" FROM runs WHERE task_id = ? ORDER BY id DESC LIMIT 1", taskID.String())
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: task %s", ErrNotFound, taskID)
	}
	if err != nil {
		return Run{}, fmt.Errorf("history: get: %w", err)
	}

	return r.run()
}
