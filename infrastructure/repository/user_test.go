package repository

import (
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/Kyosue/vetra/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_UpdateUser_RemocaoLogica(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewUserRepository(conn)

	deletedAt := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE users SET active = $1, updated_at = NOW(), name = $2, lastname = $3, email = $4, role_id = $5, deleted = $6, deleted_at = $7 WHERE id = $8",
	)).
		WithArgs(false, "Ana", "Souza", "ana@vetra.local", 3, true, deletedAt, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateUser(&domain.User{
		ID:        7,
		Name:      "Ana",
		Lastname:  "Souza",
		Email:     "ana@vetra.local",
		RoleID:    3,
		Deleted:   true,
		DeletedAt: &deletedAt,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdateUser_Ativacao(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewUserRepository(conn)

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE users SET active = $1, updated_at = NOW(), name = $2, lastname = $3, email = $4, role_id = $5 WHERE id = $6",
	)).
		WithArgs(true, "Ana", "Souza", "ana@vetra.local", 2, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateUser(&domain.User{
		ID:       7,
		Name:     "Ana",
		Lastname: "Souza",
		Email:    "ana@vetra.local",
		Active:   true,
		RoleID:   2,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
