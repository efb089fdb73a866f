// Package store keeps uploaded catalogs and generated schedules in sqlite.
package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var Schema string

var ErrNotFound = errors.New("not found")

const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

type Catalog struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Data      string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

type Schedule struct {
	ID        string    `json:"id"`
	CatalogID string    `json:"catalogId"`
	Request   string    `json:"request,omitempty"`
	Data      string    `json:"data,omitempty"`
	Status    string    `json:"status"`
	Report    string    `json:"report"`
	CreatedAt time.Time `json:"createdAt"`
}

type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (and creates if needed) the database at path. Use ":memory:" for
// a throwaway database.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	// sqlite allows one writer; a single connection also keeps :memory: shared
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) SaveCatalog(ctx context.Context, name, data string) (Catalog, error) {
	c := Catalog{
		ID:        uuid.NewString(),
		Name:      name,
		Data:      data,
		CreatedAt: s.now().Truncate(time.Second),
	}
	_, err := s.db.ExecContext(ctx,
		"insert into catalog (id, name, data, created_at) values (?, ?, ?, ?)",
		c.ID, c.Name, c.Data, c.CreatedAt.Unix(),
	)
	if err != nil {
		return Catalog{}, fmt.Errorf("insert catalog: %w", err)
	}
	return c, nil
}

func (s *Store) GetCatalog(ctx context.Context, id string) (Catalog, error) {
	var c Catalog
	var created int64
	err := s.db.QueryRowContext(ctx,
		"select id, name, data, created_at from catalog where id = ?", id,
	).Scan(&c.ID, &c.Name, &c.Data, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return Catalog{}, fmt.Errorf("catalog %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return Catalog{}, fmt.Errorf("select catalog: %w", err)
	}
	c.CreatedAt = time.Unix(created, 0)
	return c, nil
}

// SaveSchedule stores a run and returns it with its id and timestamp set.
func (s *Store) SaveSchedule(ctx context.Context, sched Schedule) (Schedule, error) {
	sched.ID = uuid.NewString()
	sched.CreatedAt = s.now().Truncate(time.Second)
	_, err := s.db.ExecContext(ctx,
		`insert into schedule (id, catalog_id, request, data, status, report, created_at)
		values (?, ?, ?, ?, ?, ?, ?)`,
		sched.ID, sched.CatalogID, sched.Request, sched.Data, sched.Status, sched.Report, sched.CreatedAt.Unix(),
	)
	if err != nil {
		return Schedule{}, fmt.Errorf("insert schedule: %w", err)
	}
	return sched, nil
}

func (s *Store) GetSchedule(ctx context.Context, id string) (Schedule, error) {
	var sched Schedule
	var created int64
	err := s.db.QueryRowContext(ctx,
		"select id, catalog_id, request, data, status, report, created_at from schedule where id = ?", id,
	).Scan(&sched.ID, &sched.CatalogID, &sched.Request, &sched.Data, &sched.Status, &sched.Report, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return Schedule{}, fmt.Errorf("schedule %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return Schedule{}, fmt.Errorf("select schedule: %w", err)
	}
	sched.CreatedAt = time.Unix(created, 0)
	return sched, nil
}

// ListSchedules returns run metadata, newest first, without the data column.
func (s *Store) ListSchedules(ctx context.Context) ([]Schedule, error) {
	rows, err := s.db.QueryContext(ctx,
		"select id, catalog_id, status, report, created_at from schedule order by created_at desc, rowid desc",
	)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	defer rows.Close()

	out := []Schedule{}
	for rows.Next() {
		var sched Schedule
		var created int64
		if err := rows.Scan(&sched.ID, &sched.CatalogID, &sched.Status, &sched.Report, &created); err != nil {
			return nil, fmt.Errorf("scan schedule: %w", err)
		}
		sched.CreatedAt = time.Unix(created, 0)
		out = append(out, sched)
	}
	return out, rows.Err()
}

func (s *Store) DeleteSchedule(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "delete from schedule where id = ?", id)
	if err != nil {
		return fmt.Errorf("delete schedule: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete schedule: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("schedule %s: %w", id, ErrNotFound)
	}
	return nil
}
