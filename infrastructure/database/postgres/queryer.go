package postgres

import (
	"context"
	"database/sql"
)

// Queryer é o subconjunto de operações de consulta e escrita que os
// repositórios precisam; Conn acrescenta o ciclo de vida da conexão.
type Queryer interface {
	Exec(ctx context.Context, query string, args ...any) (sql.Result, error)
	Query(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) *sql.Row
}
