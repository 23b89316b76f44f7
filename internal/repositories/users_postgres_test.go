package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evn/budget_backendl/internal/models"
	"github.com/evn/budget_backendl/internal/pkg/apperrors"
)

func newUserRepoWithMock(t *testing.T) (*PostgresUserRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresUserRepository(db), mock
}

func TestUserRepo_GetByUsername(t *testing.T) {
	repo, mock := newUserRepoWithMock(t)

	rows := sqlmock.NewRows([]string{"id", "username", "password_hash", "is_admin"}).
		AddRow(1, "admin", "hash", true)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, username, password_hash, is_admin FROM budget_users WHERE username = $1`)).
		WithArgs("admin").
		WillReturnRows(rows)

	user, err := repo.GetByUsername(context.Background(), "admin")
	require.NoError(t, err)
	assert.Equal(t, &models.User{ID: 1, Username: "admin", PasswordHash: "hash", IsAdmin: true}, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_GetByUsername_NotFound(t *testing.T) {
	repo, mock := newUserRepoWithMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, username, password_hash, is_admin FROM budget_users WHERE username = $1`)).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUserRepo_Create(t *testing.T) {
	repo, mock := newUserRepoWithMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO budget_users (username, password_hash, is_admin)`)).
		WithArgs("bob", "hash", false).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	user, err := repo.Create(context.Background(), &models.User{Username: "bob", PasswordHash: "hash"})
	require.NoError(t, err)
	assert.Equal(t, 5, user.ID)
}

func TestUserRepo_Create_Conflict(t *testing.T) {
	repo, mock := newUserRepoWithMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO budget_users (username, password_hash, is_admin)`)).
		WithArgs("bob", "hash", false).
		WillReturnError(&pq.Error{Code: uniqueViolation})

	_, err := repo.Create(context.Background(), &models.User{Username: "bob", PasswordHash: "hash"})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestUserRepo_Delete_NotFound(t *testing.T) {
	repo, mock := newUserRepoWithMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`DELETE FROM budget_users WHERE username = $1`)).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Delete(context.Background(), "ghost")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUserRepo_List(t *testing.T) {
	repo, mock := newUserRepoWithMock(t)

	rows := sqlmock.NewRows([]string{"id", "username", "password_hash", "is_admin"}).
		AddRow(1, "admin", "h1", true).
		AddRow(2, "bob", "h2", false)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, username, password_hash, is_admin FROM budget_users ORDER BY id`)).
		WillReturnRows(rows)

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "admin", users[0].Username)
	assert.Equal(t, "bob", users[1].Username)
}
