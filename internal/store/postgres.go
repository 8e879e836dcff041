package store

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"sync"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/PratikDhanave/satisfaction-survey-service/internal/models"
)

// schemaSQL is embedded so the service can self-bootstrap its database schema.
//
//go:embed schema.sql
var schemaSQL string

const responsesTable = "survey_responses"

// maxBindParams is the Postgres extended-protocol limit on parameters per statement.
const maxBindParams = 65535

var (
	psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	insertColumns = []string{
		"survey_id", "question_id", "question_text", "value",
		"suggestion", "respondent_name", "respondent_contact", "survey_date",
		"created_at",
	}
	selectColumns = []string{
		"id", "survey_id", "question_id", "question_text", "value",
		"suggestion", "respondent_name", "respondent_contact", "survey_date",
		"created_at", "recorded_at",
	}
)

// pool is the subset of *pgxpool.Pool the store needs.
type pool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Ping(ctx context.Context) error
	Close()
}

// PostgresStore is the durable persistence layer for survey responses.
type PostgresStore struct {
	pool pool

	// writeMu serializes multi-row inserts.
	writeMu sync.Mutex
}

// NewPostgresStore creates a connection pool and fails fast if DB is unreachable.
func NewPostgresStore(dbURL string, maxConns int32) (*PostgresStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cfg, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("parse db url: %w", err)
	}
	if maxConns > 0 {
		cfg.MaxConns = maxConns
	}

	p, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := p.Ping(ctx); err != nil {
		p.Close()
		return nil, err
	}

	return &PostgresStore{pool: p}, nil
}

func newPostgresStore(p pool) *PostgresStore {
	return &PostgresStore{pool: p}
}

// EnsureSchema applies schema.sql. Safe to run multiple times.
func (p *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := p.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// Ping is used by readiness endpoint to validate DB connectivity.
func (p *PostgresStore) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// Close shuts down the connection pool.
func (p *PostgresStore) Close() {
	p.pool.Close()
}

// InsertResponses writes all rows in a single transaction: either every row
// becomes visible or none does. Large batches are split into several
// statements that stay under the bind parameter limit.
func (p *PostgresStore) InsertResponses(ctx context.Context, rows []models.Response) error {
	if len(rows) == 0 {
		return nil
	}

	type statement struct {
		query string
		args  []any
		rows  int
	}
	var stmts []statement
	for _, chunk := range chunkRows(rows, maxBindParams/len(insertColumns)) {
		q := psql.Insert(responsesTable).Columns(insertColumns...)
		for _, r := range chunk {
			q = q.Values(
				r.SurveyID, r.QuestionID, r.QuestionText, r.Value,
				r.Suggestion, r.RespondentName, r.RespondentContact, r.SurveyDate,
				r.CreatedAt,
			)
		}
		query, args, err := q.ToSql()
		if err != nil {
			return fmt.Errorf("build insert: %w", err)
		}
		stmts = append(stmts, statement{query: query, args: args, rows: len(chunk)})
	}

	p.writeMu.Lock()
	defer p.writeMu.Unlock()

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	for _, st := range stmts {
		tag, err := tx.Exec(ctx, st.query, st.args...)
		if err == nil && tag.RowsAffected() != int64(st.rows) {
			err = fmt.Errorf("inserted %d of %d rows", tag.RowsAffected(), st.rows)
		}
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				return fmt.Errorf("rollback failed: %w (original error: %v)", rbErr, err)
			}
			return fmt.Errorf("insert responses: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// chunkRows splits rows into consecutive slices of at most size elements.
func chunkRows(rows []models.Response, size int) [][]models.Response {
	var out [][]models.Response
	for len(rows) > size {
		out = append(out, rows[:size])
		rows = rows[size:]
	}
	return append(out, rows)
}

// ListResponses returns every stored row ordered by insertion.
func (p *PostgresStore) ListResponses(ctx context.Context) ([]models.Response, error) {
	query, args, err := psql.Select(selectColumns...).From(responsesTable).OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query responses: %w", err)
	}
	defer rows.Close()

	var out []models.Response
	for rows.Next() {
		var r models.Response
		if err := rows.Scan(
			&r.ID, &r.SurveyID, &r.QuestionID, &r.QuestionText, &r.Value,
			&r.Suggestion, &r.RespondentName, &r.RespondentContact, &r.SurveyDate,
			&r.CreatedAt, &r.RecordedAt,
		); err != nil {
			return nil, fmt.Errorf("scan response: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate responses: %w", err)
	}
	return out, nil
}
