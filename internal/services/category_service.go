package services

import (
	"database/sql"
	"fmt"

	"github.com/pradiptars/stockpoint-be/internal/models"
)

// CategoryServiceProvider defines the interface for category services.
type CategoryServiceProvider interface {
	GetAllCategories() ([]models.Category, error)
	CreateCategory(payload models.CategoryCreate) (models.Category, error)
	UpdateCategory(id int, payload models.CategoryUpdate) error
	DeleteCategory(id int) error
	SearchPaginate(body models.PaginationBody) ([]models.Category, models.Pagination, error)
}

// CategoryService provides business logic for category management.
type CategoryService struct {
	db *sql.DB
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(db *sql.DB) *CategoryService {
	return &CategoryService{db: db}
}

func scanCategory(scanner interface{ Scan(...interface{}) error }) (models.Category, error) {
	var category models.Category
	err := scanner.Scan(&category.ID, &category.Name, &category.CreatedAt, &category.UpdatedAt)
	return category, err
}

// GetAllCategories retrieves every category, ordered by name.
func (s *CategoryService) GetAllCategories() ([]models.Category, error) {
	rows, err := s.db.Query("SELECT id, name, created_at, updated_at FROM category ORDER BY name ASC")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return categories, nil
}

// CreateCategory inserts a new category and returns the stored row.
func (s *CategoryService) CreateCategory(payload models.CategoryCreate) (models.Category, error) {
	row := s.db.QueryRow(
		"INSERT INTO category (name) VALUES ($1) RETURNING id, name, created_at, updated_at",
		payload.Name,
	)
	category, err := scanCategory(row)
	if err != nil {
		return models.Category{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return category, nil
}

// UpdateCategory renames a category. A payload without a name is a no-op
// beyond bumping updated_at.
func (s *CategoryService) UpdateCategory(id int, payload models.CategoryUpdate) error {
	var err error
	if payload.Name != nil {
		_, err = s.db.Exec("UPDATE category SET name = $1, updated_at = now() WHERE id = $2", *payload.Name, id)
	} else {
		_, err = s.db.Exec("UPDATE category SET updated_at = now() WHERE id = $1", id)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// DeleteCategory removes a category from the database.
func (s *CategoryService) DeleteCategory(id int) error {
	if _, err := s.db.Exec("DELETE FROM category WHERE id = $1", id); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// SearchPaginate returns one page of categories whose name matches the
// search term, with the pagination block for the full result.
func (s *CategoryService) SearchPaginate(body models.PaginationBody) ([]models.Category, models.Pagination, error) {
	pattern := "%" + body.Term + "%"

	var count int64
	row := s.db.QueryRow("SELECT COUNT(*) FROM category WHERE name ILIKE $1", pattern)
	if err := row.Scan(&count); err != nil {
		return nil, models.Pagination{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	rows, err := s.db.Query(
		`SELECT id, name, created_at, updated_at FROM category
		 WHERE name ILIKE $1 ORDER BY name ASC LIMIT $2 OFFSET $3`,
		pattern, models.PerPage, body.Offset(),
	)
	if err != nil {
		return nil, models.Pagination{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, models.Pagination{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, models.Pagination{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return categories, models.NewPagination(count, body.Page), nil
}
