package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/domain/errors"
	"github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/domain/model"
	"github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/domain/repository"
	"github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/pkg/livequery"
)

const pgUniqueViolation = "23505"

// Change-notification topics for live queries.
const (
	topicOrders     = "orders"
	topicOrderItems = "order_items"
)

// Pool is the subset of pgxpool.Pool the storage uses. Tests substitute a
// pgxmock pool.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   Pool
	hub    *livequery.Hub
	logger *slog.Logger
}

type accountRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, hub: livequery.NewHub(), logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Accounts() repository.AccountRepository {
	return &accountRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            email TEXT UNIQUE NOT NULL,
            phone TEXT NOT NULL DEFAULT '',
            password_hash TEXT NOT NULL,
            address TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            order_number TEXT PRIMARY KEY,
            user_id BIGINT NOT NULL,
            status TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            confirmed_at TIMESTAMPTZ,
            shipped_at TIMESTAMPTZ,
            delivered_at TIMESTAMPTZ,
            dispatch_number TEXT
        )`,
		`CREATE TABLE IF NOT EXISTS order_items (
            id SERIAL PRIMARY KEY,
            order_number TEXT NOT NULL,
            product_id TEXT NOT NULL,
            product_name TEXT NOT NULL,
            quantity INT NOT NULL,
            unit_price DOUBLE PRECISION NOT NULL,
            UNIQUE (order_number, product_id)
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_number)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- AccountRepository implementation ---

func (r *accountRepository) Create(ctx context.Context, account *model.Account) (int64, error) {
	const query = `INSERT INTO users (name, email, phone, password_hash, address)
                   VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	err := r.storage.pool.QueryRow(ctx, query,
		account.Name, account.Email, account.Phone, account.PasswordHash, account.Address,
	).Scan(&account.ID, &account.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return 0, domainErrors.ErrEmailTaken
		}
		return 0, err
	}
	return account.ID, nil
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*model.Account, error) {
	const query = `SELECT id, name, email, phone, password_hash, address, created_at
                   FROM users WHERE email=$1`
	return r.scanOne(r.storage.pool.QueryRow(ctx, query, email))
}

func (r *accountRepository) GetByID(ctx context.Context, id int64) (*model.Account, error) {
	const query = `SELECT id, name, email, phone, password_hash, address, created_at
                   FROM users WHERE id=$1`
	return r.scanOne(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *accountRepository) scanOne(row pgx.Row) (*model.Account, error) {
	var a model.Account
	err := row.Scan(&a.ID, &a.Name, &a.Email, &a.Phone, &a.PasswordHash, &a.Address, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *accountRepository) Update(ctx context.Context, account *model.Account) error {
	const query = `UPDATE users SET name=$2, email=$3, phone=$4, password_hash=$5, address=$6
                   WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query,
		account.ID, account.Name, account.Email, account.Phone, account.PasswordHash, account.Address)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domainErrors.ErrEmailTaken
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *accountRepository) DeleteAll(ctx context.Context) error {
	_, err := r.storage.pool.Exec(ctx, `DELETE FROM users`)
	return err
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Hub exposes the change-notification hub backing live queries.
func (s *Storage) Hub() *livequery.Hub {
	return s.hub
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
