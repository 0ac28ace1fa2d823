package postgres

import (
	"context"
	"database/sql"
)

// Queryer é o subconjunto comum a *sql.DB e *sql.Tx usado pelos repositórios.
// Todo acesso passa por aqui para que a mesma query rode dentro ou fora de uma
// transação sem mudança de código.
type Queryer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
