package services

import (
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pradiptars/stockpoint-be/internal/auth"
	"github.com/pradiptars/stockpoint-be/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userCols = []string{"id", "username", "full_name", "address", "phone_number", "photo", "role", "created_at", "updated_at"}

func newUserServiceTest(t *testing.T) (*UserService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewUserService(db), mock
}

func TestGetUserByID(t *testing.T) {
	svc, mock := newUserServiceTest(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT "+userColumns+" FROM user_system WHERE id = $1")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow(1, "alice", "Alice Example", "Jl. Merdeka 1", "0800", "alice.png", "admin", now, now))

	user, err := svc.GetUserByID(1)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Empty(t, user.PasswordHash)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByID_NotFound(t *testing.T) {
	svc, mock := newUserServiceTest(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT "+userColumns+" FROM user_system WHERE id = $1")).
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows(userCols))

	_, err := svc.GetUserByID(99)
	assert.ErrorIs(t, err, ErrUserNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByUsername_IncludesHash(t *testing.T) {
	svc, mock := newUserServiceTest(t)
	now := time.Now()

	cols := []string{"id", "username", "password", "full_name", "address", "phone_number", "photo", "role", "created_at", "updated_at"}
	mock.ExpectQuery(regexp.QuoteMeta("FROM user_system WHERE username = $1")).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(1, "alice", "$2a$10$hash", "Alice Example", "", "", "", "admin", now, now))

	user, err := svc.FindByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, "$2a$10$hash", user.PasswordHash)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByUsername_NotFound(t *testing.T) {
	svc, mock := newUserServiceTest(t)

	cols := []string{"id", "username", "password", "full_name", "address", "phone_number", "photo", "role", "created_at", "updated_at"}
	mock.ExpectQuery(regexp.QuoteMeta("FROM user_system WHERE username = $1")).
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows(cols))

	_, err := svc.FindByUsername("nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_HashesPassword(t *testing.T) {
	svc, mock := newUserServiceTest(t)
	now := time.Now()

	var storedHash string
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO user_system")).
		WithArgs("bob", hashCapture(&storedHash), "Bob Example", "", "", "", "staff").
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow(2, "bob", "Bob Example", "", "", "", "staff", now, now))

	user, err := svc.CreateUser(models.UserCreate{
		Username: "bob",
		Password: "plain-secret",
		FullName: "Bob Example",
		Role:     "staff",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, user.ID)
	assert.NotEqual(t, "plain-secret", storedHash)
	assert.True(t, auth.CheckPassword("plain-secret", storedHash))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUser_PartialOnlyTouchesGivenColumns(t *testing.T) {
	svc, mock := newUserServiceTest(t)
	now := time.Now()
	fullName := "Alice Renamed"

	mock.ExpectExec(regexp.QuoteMeta("UPDATE user_system SET updated_at = now(), full_name = $1 WHERE id = $2")).
		WithArgs("Alice Renamed", 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT "+userColumns+" FROM user_system WHERE id = $1")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow(1, "alice", "Alice Renamed", "", "", "", "admin", now, now))

	user, err := svc.UpdateUser(1, models.UserUpdate{FullName: &fullName})
	require.NoError(t, err)
	assert.Equal(t, "Alice Renamed", user.FullName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePasswordHash(t *testing.T) {
	svc, mock := newUserServiceTest(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE user_system SET password = $1, updated_at = now() WHERE username = $2")).
		WithArgs("$2a$10$newhash", "alice").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, svc.UpdatePasswordHash("alice", "$2a$10$newhash"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteUser(t *testing.T) {
	svc, mock := newUserServiceTest(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM user_system WHERE id = $1")).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, svc.DeleteUser(1))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserSearchPaginate(t *testing.T) {
	svc, mock := newUserServiceTest(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM user_system WHERE username ILIKE $1 OR full_name ILIKE $2")).
		WithArgs("%ali%", "%ali%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))
	mock.ExpectQuery("SELECT .+ FROM user_system").
		WithArgs("%ali%", "%ali%", models.PerPage, 10).
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow(11, "alice", "Alice Example", "", "", "", "admin", now, now))

	users, paginate, err := svc.SearchPaginate(models.PaginationBody{Term: "ali", Page: 2})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, models.Pagination{PerPage: 10, TotalPage: 3, Count: 25, CurrentPage: 2}, paginate)
	require.NoError(t, mock.ExpectationsWereMet())
}

// hashCapture matches any string argument and records it for inspection.
type hashCaptureArg struct{ dst *string }

func hashCapture(dst *string) sqlmock.Argument { return hashCaptureArg{dst: dst} }

func (a hashCaptureArg) Match(v driver.Value) bool {
	s, ok := v.(string)
	if ok {
		*a.dst = s
	}
	return ok
}
