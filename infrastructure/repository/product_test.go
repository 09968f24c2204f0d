package repository

import (
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/Kyosue/vetra/infrastructure/database/postgres"
	"github.com/Kyosue/vetra/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockConnection(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &postgres.Connection{DB: db}, mock
}

// A remoção lógica escreve deleted e deleted_at; o UPDATE gerado precisa
// casar com as colunas que o schema declara.
func TestProductRepository_UpdateProduct_RemocaoLogica(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewProductRepository(conn)

	deletedAt := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE products SET name = $1, category = $2, price = $3, stock = $4, updated_at = NOW(), deleted = $5, deleted_at = $6 WHERE id = $7",
	)).
		WithArgs("Café torrado 500g", "Mercearia", 25.90, 10, true, deletedAt, 3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateProduct(&domain.Product{
		ID:        3,
		Name:      "Café torrado 500g",
		Category:  "Mercearia",
		Price:     25.90,
		Stock:     10,
		Deleted:   true,
		DeletedAt: &deletedAt,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_UpdateProduct_SemRemocao(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewProductRepository(conn)

	// Sem Deleted, as colunas de soft delete ficam fora do UPDATE
	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE products SET name = $1, category = $2, price = $3, stock = $4, updated_at = NOW() WHERE id = $5",
	)).
		WithArgs("Café torrado 500g", "Mercearia", 27.50, 8, 3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateProduct(&domain.Product{
		ID:       3,
		Name:     "Café torrado 500g",
		Category: "Mercearia",
		Price:    27.50,
		Stock:    8,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
