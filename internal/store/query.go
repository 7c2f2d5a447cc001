package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

var ErrUnknownColumn = errors.New("unknown column")

type filterOp string

const (
	opEq  filterOp = "="
	opGte filterOp = ">="
	opIn  filterOp = "= ANY"
)

type filter struct {
	column string
	op     filterOp
	value  any
}

type order struct {
	column string
	desc   bool
}

// Query is a select over a single table. Builder methods record the first
// error (e.g. a column not in the table), which is returned when the query is
// turned into SQL.
type Query struct {
	table   Table
	columns []string
	filters []filter
	orders  []order
	limit   int
	err     error
}

func From(table Table) *Query {
	return &Query{table: table}
}

func (q *Query) Table() Table {
	return q.table
}

func (q *Query) checkColumn(col string) bool {
	if q.err != nil {
		return false
	}
	if !q.table.HasColumn(col) {
		q.err = fmt.Errorf("%w: %s.%s", ErrUnknownColumn, q.table.Name, col)
		return false
	}
	return true
}

// Select restricts the returned columns. Without it all columns are returned.
func (q *Query) Select(columns ...string) *Query {
	for _, c := range columns {
		if q.checkColumn(c) {
			q.columns = append(q.columns, c)
		}
	}
	return q
}

func (q *Query) Eq(column string, value any) *Query {
	return q.where(column, opEq, value)
}

func (q *Query) Gte(column string, value any) *Query {
	return q.where(column, opGte, value)
}

// In matches rows whose column value is one of values.
func (q *Query) In(column string, values []string) *Query {
	return q.where(column, opIn, values)
}

func (q *Query) where(column string, op filterOp, value any) *Query {
	if q.checkColumn(column) {
		q.filters = append(q.filters, filter{column: column, op: op, value: value})
	}
	return q
}

func (q *Query) Order(column string, desc bool) *Query {
	if q.checkColumn(column) {
		q.orders = append(q.orders, order{column: column, desc: desc})
	}
	return q
}

func (q *Query) Limit(n int) *Query {
	q.limit = n
	return q
}

func ident(name string) string {
	return pgx.Identifier{name}.Sanitize()
}

func (q *Query) whereSQL(args []any) (string, []any) {
	if len(q.filters) == 0 {
		return "", args
	}
	conds := make([]string, 0, len(q.filters))
	for _, f := range q.filters {
		args = append(args, f.value)
		if f.op == opIn {
			conds = append(conds, fmt.Sprintf("%s = ANY($%d)", ident(f.column), len(args)))
			continue
		}
		conds = append(conds, fmt.Sprintf("%s %s $%d", ident(f.column), f.op, len(args)))
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// SQL renders the select statement and its positional arguments.
func (q *Query) SQL() (string, []any, error) {
	if q.err != nil {
		return "", nil, q.err
	}

	cols := "*"
	if len(q.columns) > 0 {
		quoted := make([]string, len(q.columns))
		for i, c := range q.columns {
			quoted[i] = ident(c)
		}
		cols = strings.Join(quoted, ", ")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "SELECT %s FROM %s", cols, ident(q.table.Name))

	where, args := q.whereSQL(nil)
	sb.WriteString(where)

	if len(q.orders) > 0 {
		parts := make([]string, len(q.orders))
		for i, o := range q.orders {
			dir := "ASC"
			if o.desc {
				dir = "DESC"
			}
			parts[i] = ident(o.column) + " " + dir
		}
		sb.WriteString(" ORDER BY " + strings.Join(parts, ", "))
	}

	if q.limit > 0 {
		fmt.Fprintf(&sb, " LIMIT %d", q.limit)
	}

	return sb.String(), args, nil
}

// CountSQL renders a count(*) over the rows matched by the filters. Ordering,
// projection and limit are ignored.
func (q *Query) CountSQL() (string, []any, error) {
	if q.err != nil {
		return "", nil, q.err
	}
	where, args := q.whereSQL(nil)
	return fmt.Sprintf("SELECT count(*) FROM %s%s", ident(q.table.Name), where), args, nil
}

func (q *Query) cacheKey(sql string, args []any) string {
	return fmt.Sprintf("%s|%v", sql, args)
}
