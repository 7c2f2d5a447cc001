package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/2beens/fittrack/internal/cache"
	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	log "github.com/sirupsen/logrus"
)

var ErrNotFound = errors.New("not found")

// DB is the query surface shared by the pool and a transaction.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Pool is satisfied by *pgxpool.Pool.
type Pool interface {
	DB
	Begin(ctx context.Context) (pgx.Tx, error)
	Ping(ctx context.Context) error
}

// Store is the generic table client all repos go through. Reads are served
// from the list cache when one is set; every mutation invalidates the mutated
// table and its dependents.
type Store struct {
	pool  Pool
	db    DB
	cache *cache.ListCache

	// set only on a store bound to a transaction
	tx        bool
	txMu      sync.Mutex
	txTouched []string
}

func New(pool Pool, listCache *cache.ListCache) *Store {
	return &Store{
		pool:  pool,
		db:    pool,
		cache: listCache,
	}
}

func (s *Store) Ping(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.ping")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if s.pool == nil {
		return errors.New("ping inside transaction")
	}
	return s.pool.Ping(ctx)
}

// Uncached returns a store that reads straight from the database. It is meant
// for reads only: its writes would not invalidate the list cache.
func (s *Store) Uncached() *Store {
	return &Store{
		pool: s.pool,
		db:   s.db,
		tx:   s.tx,
	}
}

// InTx runs fn with a store bound to a single transaction. The transaction is
// committed when fn returns nil and rolled back otherwise. Cache invalidation
// of the touched tables happens after commit.
func (s *Store) InTx(ctx context.Context, fn func(tx *Store) error) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.tx")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if s.tx {
		return fn(s)
	}

	pgTx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	txStore := &Store{
		db:    pgTx,
		cache: s.cache,
		tx:    true,
	}

	// rolls back on error and on panic in fn; a no-op after commit
	defer func() {
		if rbErr := pgTx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			log.Errorf("rollback tx: %s", rbErr)
		}
	}()

	if err := fn(txStore); err != nil {
		return err
	}

	if err := pgTx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	s.invalidate(txStore.txTouched...)
	return nil
}

// touch records a mutation of table; outside a transaction the cache is
// invalidated right away.
func (s *Store) touch(table Table) {
	tables := append([]string{table.Name}, table.Dependents...)
	if s.tx {
		s.txMu.Lock()
		s.txTouched = append(s.txTouched, tables...)
		s.txMu.Unlock()
		return
	}
	s.invalidate(tables...)
}

func (s *Store) invalidate(tables ...string) {
	if s.cache == nil || len(tables) == 0 {
		return
	}
	s.cache.Invalidate(tables...)
}

// cached reports whether reads may go through the list cache. Reads inside a
// transaction must see its own uncommitted writes.
func (s *Store) cached() bool {
	return s.cache != nil && !s.tx
}
