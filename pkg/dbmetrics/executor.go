package dbmetrics

import (
	"context"
	"database/sql"
)

// DBExecutor общий интерфейс для выполнения запросов.
// Его реализуют *sql.DB, *sql.Tx и обёртки этого пакета,
// что позволяет репозиториям работать одинаково внутри и вне транзакции.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// TxExecutor исполнитель запросов внутри открытой транзакции
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}
