package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// Values maps column names to the values written by insert, update and upsert.
type Values map[string]any

// columns returns the sorted value columns, validated against the table.
func (v Values) columns(table Table) ([]string, error) {
	cols := slices.Sorted(maps.Keys(v))
	for _, c := range cols {
		if !table.HasColumn(c) {
			return nil, fmt.Errorf("%w: %s.%s", ErrUnknownColumn, table.Name, c)
		}
	}
	return cols, nil
}

func quoteAll(cols []string) string {
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = ident(c)
	}
	return strings.Join(quoted, ", ")
}

func placeholders(from, n int) string {
	ph := make([]string, n)
	for i := range ph {
		ph[i] = fmt.Sprintf("$%d", from+i)
	}
	return "(" + strings.Join(ph, ", ") + ")"
}

// Select returns all rows matched by q, scanned by column name into T.
func Select[T any](ctx context.Context, s *Store, q *Query) (rows []T, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.select")
	span.SetAttributes(attribute.String("table", q.table.Name))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	sql, args, err := q.SQL()
	if err != nil {
		return nil, err
	}

	var (
		key string
		gen uint64
	)
	if s.cached() {
		key = q.cacheKey(sql, args)
		gen = s.cache.Generation(q.table.Name)
		if data, found := s.cache.Get(q.table.Name, key); found {
			decodeErr := json.Unmarshal(data, &rows)
			if decodeErr == nil {
				span.SetAttributes(attribute.Bool("cache_hit", true))
				return rows, nil
			}
			log.Warnf("decode cached %s rows: %s", q.table.Name, decodeErr)
			rows = nil
		}
	}

	pgRows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", q.table.Name, err)
	}
	rows, err = pgx.CollectRows(pgRows, pgx.RowToStructByNameLax[T])
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", q.table.Name, err)
	}
	if rows == nil {
		rows = []T{}
	}

	if s.cached() {
		if data, err := json.Marshal(rows); err == nil {
			s.cache.SetIfGen(q.table.Name, key, gen, data)
		}
	}

	return rows, nil
}

// Single returns the first row matched by q, or ErrNotFound.
func Single[T any](ctx context.Context, s *Store, q *Query) (T, error) {
	var zero T
	rows, err := Select[T](ctx, s, q.Limit(1))
	if err != nil {
		return zero, err
	}
	if len(rows) == 0 {
		return zero, ErrNotFound
	}
	return rows[0], nil
}

// Count returns the number of rows matched by the filters of q.
func Count(ctx context.Context, s *Store, q *Query) (count int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.count")
	span.SetAttributes(attribute.String("table", q.table.Name))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	sql, args, err := q.CountSQL()
	if err != nil {
		return 0, err
	}

	var (
		key string
		gen uint64
	)
	if s.cached() {
		key = q.cacheKey(sql, args)
		gen = s.cache.Generation(q.table.Name)
		if data, found := s.cache.Get(q.table.Name, key); found {
			if err := json.Unmarshal(data, &count); err == nil {
				return count, nil
			}
		}
	}

	if err := s.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count %s: %w", q.table.Name, err)
	}

	if s.cached() {
		if data, err := json.Marshal(count); err == nil {
			s.cache.SetIfGen(q.table.Name, key, gen, data)
		}
	}

	return count, nil
}

// Insert writes one row and returns it as stored, with generated columns filled in.
func Insert[T any](ctx context.Context, s *Store, table Table, values Values) (row T, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.insert")
	span.SetAttributes(attribute.String("table", table.Name))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	cols, err := values.columns(table)
	if err != nil {
		return row, err
	}
	args := make([]any, len(cols))
	for i, c := range cols {
		args[i] = values[c]
	}

	sql := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES %s RETURNING *",
		ident(table.Name), quoteAll(cols), placeholders(1, len(cols)),
	)

	row, err = returningOne[T](ctx, s, sql, args)
	if err != nil {
		return row, fmt.Errorf("insert %s: %w", table.Name, err)
	}
	s.touch(table)
	return row, nil
}

// InsertMany writes all rows in one statement. All rows must set the same columns.
func InsertMany[T any](ctx context.Context, s *Store, table Table, rows []Values) (inserted []T, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.insertMany")
	span.SetAttributes(
		attribute.String("table", table.Name),
		attribute.Int("rows", len(rows)),
	)
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if len(rows) == 0 {
		return []T{}, nil
	}

	cols, err := rows[0].columns(table)
	if err != nil {
		return nil, err
	}

	args := make([]any, 0, len(rows)*len(cols))
	tuples := make([]string, 0, len(rows))
	for i, r := range rows {
		if len(r) != len(cols) {
			return nil, fmt.Errorf("insert %s: row %d sets %d columns, expected %d", table.Name, i, len(r), len(cols))
		}
		tuples = append(tuples, placeholders(len(args)+1, len(cols)))
		for _, c := range cols {
			v, ok := r[c]
			if !ok {
				return nil, fmt.Errorf("insert %s: row %d misses column %s", table.Name, i, c)
			}
			args = append(args, v)
		}
	}

	sql := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES %s RETURNING *",
		ident(table.Name), quoteAll(cols), strings.Join(tuples, ", "),
	)

	pgRows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("insert %s: %w", table.Name, err)
	}
	inserted, err = pgx.CollectRows(pgRows, pgx.RowToStructByNameLax[T])
	if err != nil {
		return nil, fmt.Errorf("insert %s: %w", table.Name, err)
	}

	s.touch(table)
	return inserted, nil
}

// Update sets the given columns on the row with the given id and returns the
// updated row, or ErrNotFound.
func Update[T any](ctx context.Context, s *Store, table Table, id string, values Values) (row T, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.update")
	span.SetAttributes(attribute.String("table", table.Name))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	values = maps.Clone(values)
	delete(values, "id")
	if len(values) == 0 {
		return row, errors.New("nothing to update")
	}
	cols, err := values.columns(table)
	if err != nil {
		return row, err
	}

	sets := make([]string, len(cols))
	args := make([]any, 0, len(cols)+1)
	for i, c := range cols {
		args = append(args, values[c])
		sets[i] = fmt.Sprintf("%s = $%d", ident(c), len(args))
	}
	args = append(args, id)

	sql := fmt.Sprintf(
		"UPDATE %s SET %s WHERE %s = $%d RETURNING *",
		ident(table.Name), strings.Join(sets, ", "), ident("id"), len(args),
	)

	row, err = returningOne[T](ctx, s, sql, args)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return row, ErrNotFound
		}
		return row, fmt.Errorf("update %s: %w", table.Name, err)
	}
	s.touch(table)
	return row, nil
}

// Upsert inserts the row, or when a row with the same conflictColumn value
// exists, replaces all its other given columns.
func Upsert[T any](ctx context.Context, s *Store, table Table, conflictColumn string, values Values) (row T, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.upsert")
	span.SetAttributes(
		attribute.String("table", table.Name),
		attribute.String("on_conflict", conflictColumn),
	)
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, ok := values[conflictColumn]; !ok {
		return row, fmt.Errorf("upsert %s: conflict column %s not set", table.Name, conflictColumn)
	}
	cols, err := values.columns(table)
	if err != nil {
		return row, err
	}

	args := make([]any, len(cols))
	var sets []string
	for i, c := range cols {
		args[i] = values[c]
		if c != conflictColumn {
			sets = append(sets, fmt.Sprintf("%s = EXCLUDED.%s", ident(c), ident(c)))
		}
	}

	action := "DO NOTHING"
	if len(sets) > 0 {
		action = "DO UPDATE SET " + strings.Join(sets, ", ")
	}

	sql := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES %s ON CONFLICT (%s) %s RETURNING *",
		ident(table.Name), quoteAll(cols), placeholders(1, len(cols)), ident(conflictColumn), action,
	)

	row, err = returningOne[T](ctx, s, sql, args)
	if err != nil {
		return row, fmt.Errorf("upsert %s: %w", table.Name, err)
	}
	s.touch(table)
	return row, nil
}

// Delete removes the row with the given id, or returns ErrNotFound.
func Delete(ctx context.Context, s *Store, table Table, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.delete")
	span.SetAttributes(attribute.String("table", table.Name))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := s.db.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE %s = $1", ident(table.Name), ident("id")), id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", table.Name, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	s.touch(table)
	return nil
}

// Columns returns the columns the table actually has in the database.
func Columns(ctx context.Context, s *Store, table Table) (cols []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.columns")
	span.SetAttributes(attribute.String("table", table.Name))
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := s.db.Query(ctx, `
		SELECT column_name FROM information_schema.columns
		WHERE table_schema = current_schema() AND table_name = $1
		ORDER BY ordinal_position`,
		table.Name,
	)
	if err != nil {
		return nil, fmt.Errorf("columns of %s: %w", table.Name, err)
	}
	cols, err = pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("columns of %s: %w", table.Name, err)
	}
	return cols, nil
}

func returningOne[T any](ctx context.Context, s *Store, sql string, args []any) (T, error) {
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		var zero T
		return zero, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByNameLax[T])
}
