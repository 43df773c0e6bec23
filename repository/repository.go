package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/CedricFinance/sms_operator/model"
	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
)

const (
	CommandLogType = "CommandLogType"
)

type Repository struct {
	db *sql.DB
}

type NotFound struct {
	ID   string
	Type string
}

func (e NotFound) Error() string {
	return fmt.Sprintf("no %s with id %q", e.Type, e.ID)
}

type duplicateEntry struct {
}

func (e duplicateEntry) Error() string {
	return "duplicate entry"
}

var DuplicateEntry = duplicateEntry{}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Open connects to MySQL. parseTime is forced so created_at scans into a
// time.Time.
func Open(dsn string) (*sql.DB, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid database dsn: %w", err)
	}
	cfg.ParseTime = true
	cfg.Loc = time.UTC

	return sql.Open("mysql", cfg.FormatDSN())
}

func (r *Repository) CreateTables(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS CommandLogs (
  id VARCHAR(64) NOT NULL PRIMARY KEY,
  msisdn VARCHAR(32) NOT NULL,
  keyword VARCHAR(64) NOT NULL,
  text TEXT NOT NULL,
  outcome VARCHAR(32) NOT NULL,
  error TEXT NOT NULL,
  created_at DATETIME NOT NULL,
  INDEX msisdn_created_at (msisdn, created_at)
)`)
	return err
}

func (r *Repository) SaveCommandLog(ctx context.Context, entry *model.CommandLog) error {
	_, err := r.db.ExecContext(
		ctx,
		"INSERT INTO CommandLogs(id, msisdn, keyword, text, outcome, error, created_at) VALUES(?,?,?,?,?,?,?)",
		entry.Id,
		entry.MSISDN,
		entry.Keyword,
		entry.Text,
		entry.Outcome,
		entry.Error,
		entry.CreatedAt,
	)

	if mysqlErr, ok := err.(*mysql.MySQLError); ok {
		if mysqlErr.Number == 1062 {
			return DuplicateEntry
		}
	}

	return err
}

func (r *Repository) GetCommandLog(ctx context.Context, id string) (*model.CommandLog, error) {
	q := "SELECT id, msisdn, keyword, text, outcome, error, created_at FROM CommandLogs WHERE id = ? LIMIT 1"
	rows, err := r.db.QueryContext(ctx, q, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, NotFound{ID: id, Type: CommandLogType}
	}

	return scanCommandLog(rows)
}

func (r *Repository) GetCommandLogs(ctx context.Context, msisdn string) ([]*model.CommandLog, error) {
	q := "SELECT id, msisdn, keyword, text, outcome, error, created_at\n  FROM CommandLogs\n WHERE msisdn = ?\n ORDER BY created_at DESC\n LIMIT 10"

	rows, err := r.db.QueryContext(ctx, q, msisdn)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*model.CommandLog

	for rows.Next() {
		result, err := scanCommandLog(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return results, rows.Err()
}

func scanCommandLog(rows *sql.Rows) (*model.CommandLog, error) {
	var result model.CommandLog

	err := rows.Scan(
		&result.Id,
		&result.MSISDN,
		&result.Keyword,
		&result.Text,
		&result.Outcome,
		&result.Error,
		&result.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// NewCommandLog keys the entry by the provider message id so a redelivered
// webhook is reported as a DuplicateEntry.
func NewCommandLog(event model.InboundEvent, outcome string, errorText string) *model.CommandLog {
	id := event.MessageID
	if id == "" {
		id = uuid.New().String()
	}

	return &model.CommandLog{
		Id:        id,
		MSISDN:    event.MSISDN,
		Keyword:   event.Keyword,
		Text:      event.Text,
		Outcome:   outcome,
		Error:     errorText,
		CreatedAt: time.Now().UTC(),
	}
}
