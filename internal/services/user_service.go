package services

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/pradiptars/stockpoint-be/internal/auth"
	"github.com/pradiptars/stockpoint-be/internal/models"
)

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	GetUserByID(id int) (models.User, error)
	CreateUser(payload models.UserCreate) (models.User, error)
	UpdateUser(id int, payload models.UserUpdate) (models.User, error)
	DeleteUser(id int) error
	SearchPaginate(body models.PaginationBody) ([]models.User, models.Pagination, error)
}

// UserService provides business logic for user management. It also backs the
// authentication flows as their CredentialStore.
type UserService struct {
	db *sql.DB
}

// NewUserService creates a new UserService.
func NewUserService(db *sql.DB) *UserService {
	return &UserService{db: db}
}

const userColumns = "id, username, full_name, address, phone_number, photo, role, created_at, updated_at"

func scanUser(scanner interface{ Scan(...interface{}) error }) (models.User, error) {
	var user models.User
	err := scanner.Scan(
		&user.ID, &user.Username, &user.FullName, &user.Address,
		&user.PhoneNumber, &user.Photo, &user.Role, &user.CreatedAt, &user.UpdatedAt,
	)
	return user, err
}

// GetUserByID retrieves a single user by their ID.
func (s *UserService) GetUserByID(id int) (models.User, error) {
	row := s.db.QueryRow("SELECT "+userColumns+" FROM user_system WHERE id = $1", id)
	user, err := scanUser(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return user, nil
}

// FindByUsername retrieves a single user by exact username, including the
// password hash. It implements CredentialStore for the auth service.
func (s *UserService) FindByUsername(username string) (models.User, error) {
	var user models.User
	row := s.db.QueryRow(
		"SELECT id, username, password, full_name, address, phone_number, photo, role, created_at, updated_at FROM user_system WHERE username = $1",
		username,
	)
	err := row.Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.FullName, &user.Address,
		&user.PhoneNumber, &user.Photo, &user.Role, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// UpdatePasswordHash replaces the stored password hash for a username. It
// implements CredentialStore for the auth service.
func (s *UserService) UpdatePasswordHash(username, newHash string) error {
	_, err := s.db.Exec(
		"UPDATE user_system SET password = $1, updated_at = now() WHERE username = $2",
		newHash, username,
	)
	return err
}

// CreateUser creates a new user, hashing their password.
func (s *UserService) CreateUser(payload models.UserCreate) (models.User, error) {
	hashed, err := auth.HashPassword(payload.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	row := s.db.QueryRow(
		`INSERT INTO user_system (username, password, full_name, address, phone_number, photo, role)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+userColumns,
		payload.Username, hashed, payload.FullName, payload.Address,
		payload.PhoneNumber, payload.Photo, payload.Role,
	)
	user, err := scanUser(row)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return user, nil
}

// UpdateUser applies a partial update; only the fields present in the payload
// change. A password in the payload is hashed before it is stored.
func (s *UserService) UpdateUser(id int, payload models.UserUpdate) (models.User, error) {
	sets := []string{"updated_at = now()"}
	args := []interface{}{}

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if payload.Username != nil {
		addSet("username", *payload.Username)
	}
	if payload.Password != nil {
		hashed, err := auth.HashPassword(*payload.Password)
		if err != nil {
			return models.User{}, fmt.Errorf("failed to hash password: %w", err)
		}
		addSet("password", hashed)
	}
	if payload.FullName != nil {
		addSet("full_name", *payload.FullName)
	}
	if payload.Address != nil {
		addSet("address", *payload.Address)
	}
	if payload.PhoneNumber != nil {
		addSet("phone_number", *payload.PhoneNumber)
	}
	if payload.Photo != nil {
		addSet("photo", *payload.Photo)
	}
	if payload.Role != nil {
		addSet("role", *payload.Role)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE user_system SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))
	if _, err := s.db.Exec(query, args...); err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return s.GetUserByID(id)
}

// DeleteUser removes a user from the database.
func (s *UserService) DeleteUser(id int) error {
	if _, err := s.db.Exec("DELETE FROM user_system WHERE id = $1", id); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// SearchPaginate returns one page of users whose username or full name
// matches the search term, with the pagination block for the full result.
func (s *UserService) SearchPaginate(body models.PaginationBody) ([]models.User, models.Pagination, error) {
	pattern := "%" + body.Term + "%"

	var count int64
	row := s.db.QueryRow(
		"SELECT COUNT(*) FROM user_system WHERE username ILIKE $1 OR full_name ILIKE $2",
		pattern, pattern,
	)
	if err := row.Scan(&count); err != nil {
		return nil, models.Pagination{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	rows, err := s.db.Query(
		"SELECT "+userColumns+` FROM user_system
		 WHERE username ILIKE $1 OR full_name ILIKE $2
		 ORDER BY username ASC LIMIT $3 OFFSET $4`,
		pattern, pattern, models.PerPage, body.Offset(),
	)
	if err != nil {
		return nil, models.Pagination{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, models.Pagination{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, models.Pagination{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return users, models.NewPagination(count, body.Page), nil
}
