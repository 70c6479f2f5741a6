package store

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/foomo/showcase/content"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var fieldNameRegex = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

type (
	// Postgres stores every collection in a table of the same name
	Postgres struct {
		l    *zap.Logger
		pool *pgxpool.Pool
	}
	PostgresOption func(*pgxpool.Config)
)

// ------------------------------------------------------------------------------------------------
// ~ Constructor
// ------------------------------------------------------------------------------------------------

func NewPostgres(ctx context.Context, l *zap.Logger, dsn string, opts ...PostgresOption) (*Postgres, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse database config")
	}

	config.MaxConns = 5
	config.MinConns = 1
	config.MaxConnLifetime = 30 * time.Minute
	config.MaxConnIdleTime = 5 * time.Minute
	config.HealthCheckPeriod = time.Minute

	for _, opt := range opts {
		opt(config)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create connection pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "failed to ping database")
	}

	return &Postgres{
		l:    l.Named("postgres"),
		pool: pool,
	}, nil
}

// ------------------------------------------------------------------------------------------------
// ~ Options
// ------------------------------------------------------------------------------------------------

func PostgresWithMaxConns(v int32) PostgresOption {
	return func(o *pgxpool.Config) {
		o.MaxConns = v
	}
}

// ------------------------------------------------------------------------------------------------
// ~ Public methods
// ------------------------------------------------------------------------------------------------

func (p *Postgres) Select(ctx context.Context, collection content.Collection, q *Query) ([]content.Row, error) {
	sql, args, err := buildSelect(collection, q)
	if err != nil {
		return nil, err
	}
	rows, err := p.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to select from %s", collection)
	}
	raws, err := pgx.CollectRows(rows, pgx.RowTo[[]byte])
	if isInvalidText(err) {
		// a malformed id filter cannot match anything
		return []content.Row{}, nil
	} else if err != nil {
		return nil, errors.Wrapf(err, "failed to read rows of %s", collection)
	}
	return decodeRows(raws)
}

func (p *Postgres) Insert(ctx context.Context, collection content.Collection, row content.Row) (content.Row, error) {
	sql, args, err := buildInsert(collection, row)
	if err != nil {
		return nil, err
	}
	return p.queryRow(ctx, collection, "insert into", sql, args, false)
}

func (p *Postgres) Update(ctx context.Context, collection content.Collection, id string, patch content.Row) (content.Row, error) {
	if len(withoutID(patch)) == 0 {
		return Get(ctx, p, collection, id)
	}
	sql, args, err := buildUpdate(collection, id, patch)
	if err != nil {
		return nil, err
	}
	return p.queryRow(ctx, collection, "update", sql, args, true)
}

func (p *Postgres) Delete(ctx context.Context, collection content.Collection, id string) error {
	if err := validateCollection(collection); err != nil {
		return err
	}
	tag, err := p.pool.Exec(ctx,
		"DELETE FROM "+pgx.Identifier{string(collection)}.Sanitize()+" WHERE "+pgx.Identifier{content.FieldID}.Sanitize()+" = $1",
		id,
	)
	if err != nil {
		return writeError(err, collection, "delete from", true)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Postgres) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}

// ------------------------------------------------------------------------------------------------
// ~ Private methods
// ------------------------------------------------------------------------------------------------

func (p *Postgres) queryRow(ctx context.Context, collection content.Collection, op, sql string, args []interface{}, byID bool) (content.Row, error) {
	var raw []byte
	err := p.pool.QueryRow(ctx, sql, args...).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, writeError(err, collection, op, byID)
	}
	row := content.Row{}
	if err := json.Unmarshal(raw, &row); err != nil {
		return nil, errors.Wrap(err, "failed to decode row")
	}
	return row, nil
}

func decodeRows(raws [][]byte) ([]content.Row, error) {
	result := make([]content.Row, 0, len(raws))
	for _, raw := range raws {
		row := content.Row{}
		if err := json.Unmarshal(raw, &row); err != nil {
			return nil, errors.Wrap(err, "failed to decode row")
		}
		result = append(result, row)
	}
	return result, nil
}

func ident(field string) (string, error) {
	if !fieldNameRegex.MatchString(field) {
		return "", errors.Errorf("invalid field name %q", field)
	}
	return pgx.Identifier{field}.Sanitize(), nil
}

// sqlArg converts whole JSON numbers to integers so they bind to integer columns
func sqlArg(v interface{}) interface{} {
	if f, ok := v.(float64); ok && f == float64(int64(f)) {
		return int64(f)
	}
	return v
}

func withoutID(row content.Row) content.Row {
	c := row.Clone()
	delete(c, content.FieldID)
	return c
}

func sortedFields(row content.Row) []string {
	fields := make([]string, 0, len(row))
	for field := range row {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

func buildSelect(collection content.Collection, q *Query) (string, []interface{}, error) {
	if err := validateCollection(collection); err != nil {
		return "", nil, err
	}
	var (
		sb   strings.Builder
		args []interface{}
	)
	sb.WriteString("SELECT row_to_json(t) FROM ")
	sb.WriteString(pgx.Identifier{string(collection)}.Sanitize())
	sb.WriteString(" t")

	if q == nil {
		q = NewQuery()
	}
	for i, f := range q.Filters {
		col, err := ident(f.Field)
		if err != nil {
			return "", nil, err
		}
		if i == 0 {
			sb.WriteString(" WHERE ")
		} else {
			sb.WriteString(" AND ")
		}
		if f.Value == nil {
			sb.WriteString("t." + col + " IS NULL")
			continue
		}
		args = append(args, sqlArg(f.Value))
		sb.WriteString(fmt.Sprintf("t.%s = $%d", col, len(args)))
	}

	if q.Order != nil {
		col, err := ident(q.Order.Field)
		if err != nil {
			return "", nil, err
		}
		dir := "ASC"
		if q.Order.Descending {
			dir = "DESC"
		}
		// ties keep insertion order
		sb.WriteString(" ORDER BY t." + col + " " + dir + ", t.created_at ASC")
	}
	if q.Limit > 0 {
		sb.WriteString(fmt.Sprintf(" LIMIT %d", q.Limit))
	}
	return sb.String(), args, nil
}

func buildInsert(collection content.Collection, row content.Row) (string, []interface{}, error) {
	if err := validateCollection(collection); err != nil {
		return "", nil, err
	}
	if row.ID() == "" {
		row = withoutID(row)
	}
	table := pgx.Identifier{string(collection)}.Sanitize()
	if len(row) == 0 {
		return "WITH t AS (INSERT INTO " + table + " DEFAULT VALUES RETURNING *) SELECT row_to_json(t) FROM t", nil, nil
	}

	var (
		cols         []string
		placeholders []string
		args         []interface{}
	)
	for _, field := range sortedFields(row) {
		col, err := ident(field)
		if err != nil {
			return "", nil, err
		}
		args = append(args, sqlArg(row[field]))
		cols = append(cols, col)
		placeholders = append(placeholders, fmt.Sprintf("$%d", len(args)))
	}
	sql := "WITH t AS (INSERT INTO " + table + " (" + strings.Join(cols, ", ") + ") VALUES (" +
		strings.Join(placeholders, ", ") + ") RETURNING *) SELECT row_to_json(t) FROM t"
	return sql, args, nil
}

func buildUpdate(collection content.Collection, id string, patch content.Row) (string, []interface{}, error) {
	if err := validateCollection(collection); err != nil {
		return "", nil, err
	}
	patch = withoutID(patch)

	var (
		sets []string
		args []interface{}
	)
	for _, field := range sortedFields(patch) {
		col, err := ident(field)
		if err != nil {
			return "", nil, err
		}
		args = append(args, sqlArg(patch[field]))
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	args = append(args, id)
	sql := fmt.Sprintf("WITH t AS (UPDATE %s SET %s WHERE %s = $%d RETURNING *) SELECT row_to_json(t) FROM t",
		pgx.Identifier{string(collection)}.Sanitize(),
		strings.Join(sets, ", "),
		pgx.Identifier{content.FieldID}.Sanitize(),
		len(args),
	)
	return sql, args, nil
}
