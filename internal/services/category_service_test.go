package services

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pradiptars/stockpoint-be/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var categoryCols = []string{"id", "name", "created_at", "updated_at"}

func newCategoryServiceTest(t *testing.T) (*CategoryService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewCategoryService(db), mock
}

func TestGetAllCategories(t *testing.T) {
	svc, mock := newCategoryServiceTest(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, created_at, updated_at FROM category ORDER BY name ASC")).
		WillReturnRows(sqlmock.NewRows(categoryCols).
			AddRow(2, "Beverages", now, now).
			AddRow(1, "Snacks", now, now))

	categories, err := svc.GetAllCategories()
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Beverages", categories[0].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCategory(t *testing.T) {
	svc, mock := newCategoryServiceTest(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO category (name) VALUES ($1) RETURNING id, name, created_at, updated_at")).
		WithArgs("Snacks").
		WillReturnRows(sqlmock.NewRows(categoryCols).AddRow(1, "Snacks", now, now))

	category, err := svc.CreateCategory(models.CategoryCreate{Name: "Snacks"})
	require.NoError(t, err)
	assert.Equal(t, 1, category.ID)
	assert.Equal(t, "Snacks", category.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateCategory_Rename(t *testing.T) {
	svc, mock := newCategoryServiceTest(t)
	name := "Drinks"

	mock.ExpectExec(regexp.QuoteMeta("UPDATE category SET name = $1, updated_at = now() WHERE id = $2")).
		WithArgs("Drinks", 2).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, svc.UpdateCategory(2, models.CategoryUpdate{Name: &name}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteCategory(t *testing.T) {
	svc, mock := newCategoryServiceTest(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM category WHERE id = $1")).
		WithArgs(2).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, svc.DeleteCategory(2))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCategorySearchPaginate_EmptyResult(t *testing.T) {
	svc, mock := newCategoryServiceTest(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM category WHERE name ILIKE $1")).
		WithArgs("%nothing%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("SELECT id, name, created_at, updated_at FROM category").
		WithArgs("%nothing%", models.PerPage, 0).
		WillReturnRows(sqlmock.NewRows(categoryCols))

	categories, paginate, err := svc.SearchPaginate(models.PaginationBody{Term: "nothing", Page: 1})
	require.NoError(t, err)
	assert.Empty(t, categories)
	assert.Equal(t, models.Pagination{PerPage: 10, TotalPage: 0, Count: 0, CurrentPage: 1}, paginate)
	require.NoError(t, mock.ExpectationsWereMet())
}
