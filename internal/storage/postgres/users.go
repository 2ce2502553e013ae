package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/hongminglow/accounts-be/internal/models"
)

const userColumns = `id, email, username, name, surname, age, password_hash, created_at`

// CreateUser inserts a new user row.
func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	const query = `
		INSERT INTO users (email, username, name, surname, age, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + userColumns
	row := s.db.QueryRow(ctx, query, user.Email, user.Username, user.Name, user.Surname, user.Age, user.PasswordHash)
	created, err := scanUser(row)
	if err != nil {
		return models.User{}, wrap(err, "USER_INSERT_FAILED", "create user")
	}
	return created, nil
}

// FindUserByEmail fetches a user by email address.
func (s *Store) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	user, err := scanUser(s.db.QueryRow(ctx, query, email))
	if err != nil {
		return models.User{}, wrap(err, "USER_LOOKUP_FAILED", "find user by email")
	}
	return user, nil
}

// FindUserByUsername fetches a user by username.
func (s *Store) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	user, err := scanUser(s.db.QueryRow(ctx, query, username))
	if err != nil {
		return models.User{}, wrap(err, "USER_LOOKUP_FAILED", "find user by username")
	}
	return user, nil
}

// UpdateUser replaces the columns set in patch. An empty patch reads the row
// back unchanged. A missing row yields nil without error.
func (s *Store) UpdateUser(ctx context.Context, id int64, patch models.UserPatch) (*models.User, error) {
	query, args := buildUserUpdate(id, patch)
	user, err := scanUser(s.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrap(err, "USER_UPDATE_FAILED", "update user")
	}
	return &user, nil
}

func buildUserUpdate(id int64, patch models.UserPatch) (string, []any) {
	if patch.Empty() {
		return `SELECT ` + userColumns + ` FROM users WHERE id = $1`, []any{id}
	}

	var sets []string
	var args []any
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.Email != nil {
		add("email", *patch.Email)
	}
	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Surname != nil {
		add("surname", *patch.Surname)
	}
	if patch.Username != nil {
		add("username", *patch.Username)
	}
	if patch.Age != nil {
		add("age", *patch.Age)
	}
	if patch.PasswordHash != nil {
		add("password_hash", *patch.PasswordHash)
	}
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), userColumns)
	return query, args
}

func scanUser(row pgx.Row) (models.User, error) {
	var user models.User
	if err := row.Scan(&user.ID, &user.Email, &user.Username, &user.Name, &user.Surname, &user.Age, &user.PasswordHash, &user.CreatedAt); err != nil {
		return models.User{}, err
	}
	return user, nil
}
