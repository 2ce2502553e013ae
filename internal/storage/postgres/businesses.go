package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/hongminglow/accounts-be/internal/models"
)

const businessColumns = `id, email, busi_username, name, category, rating, description, address, password_hash, created_at`

// CreateBusiness inserts a new business row.
func (s *Store) CreateBusiness(ctx context.Context, business models.Business) (models.Business, error) {
	const query = `
		INSERT INTO businesses (email, busi_username, name, category, rating, description, address, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + businessColumns
	row := s.db.QueryRow(ctx, query,
		business.Email, business.Username, business.Name, business.Category,
		business.Rating, business.Description, business.Address, business.PasswordHash)
	created, err := scanBusiness(row)
	if err != nil {
		return models.Business{}, wrap(err, "BUSINESS_INSERT_FAILED", "create business")
	}
	return created, nil
}

// FindBusinessByEmail fetches a business by email address.
func (s *Store) FindBusinessByEmail(ctx context.Context, email string) (models.Business, error) {
	const query = `SELECT ` + businessColumns + ` FROM businesses WHERE email = $1`
	business, err := scanBusiness(s.db.QueryRow(ctx, query, email))
	if err != nil {
		return models.Business{}, wrap(err, "BUSINESS_LOOKUP_FAILED", "find business by email")
	}
	return business, nil
}

// FindBusinessByUsername fetches a business by busi_username.
func (s *Store) FindBusinessByUsername(ctx context.Context, username string) (models.Business, error) {
	const query = `SELECT ` + businessColumns + ` FROM businesses WHERE busi_username = $1`
	business, err := scanBusiness(s.db.QueryRow(ctx, query, username))
	if err != nil {
		return models.Business{}, wrap(err, "BUSINESS_LOOKUP_FAILED", "find business by username")
	}
	return business, nil
}

func scanBusiness(row pgx.Row) (models.Business, error) {
	var b models.Business
	if err := row.Scan(&b.ID, &b.Email, &b.Username, &b.Name, &b.Category, &b.Rating, &b.Description, &b.Address, &b.PasswordHash, &b.CreatedAt); err != nil {
		return models.Business{}, err
	}
	return b, nil
}
