package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/vitos/crypto_scenario/internal/domain"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}
	if dbPath == ":memory:" {
		// Every connection would otherwise open its own empty database.
		db.SetMaxOpenConns(1)
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) initSchema() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS analyses (
			id TEXT PRIMARY KEY,
			price_action TEXT NOT NULL,
			cvd TEXT NOT NULL,
			open_interest TEXT NOT NULL,
			funding_rate TEXT NOT NULL DEFAULT '',
			volume TEXT NOT NULL DEFAULT '',
			scenario_key TEXT NOT NULL,
			locale TEXT NOT NULL,
			scenario_number INTEGER NOT NULL,
			scenario_name TEXT NOT NULL,
			scenario_type TEXT NOT NULL,
			volume_insight TEXT NOT NULL DEFAULT '',
			created_at DATETIME NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_created_at ON analyses(created_at);`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_scenario ON analyses(scenario_number);`,
	}

	for _, q := range queries {
		if _, err := s.db.Exec(q); err != nil {
			return fmt.Errorf("failed to exec query %s: %w", q, err)
		}
	}
	return nil
}

const analysisColumns = `id, price_action, cvd, open_interest, funding_rate, volume, scenario_key, locale, scenario_number, scenario_name, scenario_type, volume_insight, created_at`

func (s *SQLiteStore) SaveAnalysis(ctx context.Context, a *domain.Analysis) error {
	query := `INSERT INTO analyses (` + analysisColumns + `)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query,
		a.ID, a.Input.PriceAction, a.Input.CVD, a.Input.OpenInterest, a.Input.FundingRate, a.Input.Volume,
		a.Key, a.Locale, a.ScenarioNumber, a.ScenarioName, a.ScenarioType, a.VolumeInsight, a.CreatedAt)
	return err
}

func (s *SQLiteStore) GetAnalysis(ctx context.Context, id string) (*domain.Analysis, error) {
	query := `SELECT ` + analysisColumns + ` FROM analyses WHERE id = ?`
	row := s.db.QueryRowContext(ctx, query, id)

	a, err := scanAnalysis(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrAnalysisNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (s *SQLiteStore) ListAnalyses(ctx context.Context, limit int) ([]*domain.Analysis, error) {
	query := `SELECT ` + analysisColumns + ` FROM analyses ORDER BY created_at DESC, rowid DESC LIMIT ?`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	analyses := []*domain.Analysis{}
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		analyses = append(analyses, a)
	}
	return analyses, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row scanner) (*domain.Analysis, error) {
	var a domain.Analysis
	err := row.Scan(&a.ID, &a.Input.PriceAction, &a.Input.CVD, &a.Input.OpenInterest, &a.Input.FundingRate, &a.Input.Volume,
		&a.Key, &a.Locale, &a.ScenarioNumber, &a.ScenarioName, &a.ScenarioType, &a.VolumeInsight, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
