package pg

import (
	"context"

	"github.com/admin/tg-bots/resume-bot/internal/ports/persistence"
	"github.com/jmoiron/sqlx"
)

// DB обёртка над sqlx.DB для работы с базой данных
type DB struct {
	Db *sqlx.DB
}

var _ persistence.Persistence = (*DB)(nil)

func NewDB(db *sqlx.DB) *DB {
	return &DB{Db: db}
}

// Select выполняет запрос и сканирует результаты в слайс структур
func (d *DB) Select(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return d.Db.SelectContext(ctx, dest, query, args...)
}

// NamedExec выполняет именованный запрос (использует struct tags)
func (d *DB) NamedExec(ctx context.Context, query string, arg interface{}) error {
	_, err := d.Db.NamedExecContext(ctx, query, arg)
	return err
}

// Ping проверка соединения для /ready
func (d *DB) Ping(ctx context.Context) error {
	return d.Db.PingContext(ctx)
}

// Close закрывает подключение к базе данных
func (d *DB) Close() error {
	return d.Db.Close()
}
