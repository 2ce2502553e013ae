package storage

import (
	"context"
	"errors"

	"github.com/hongminglow/accounts-be/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// UserStore captures persistence operations on individual accounts.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	// UpdateUser applies patch and returns the resulting row, or nil when no
	// row has the given id.
	UpdateUser(ctx context.Context, id int64, patch models.UserPatch) (*models.User, error)
}

// BusinessStore captures persistence operations on business accounts.
type BusinessStore interface {
	CreateBusiness(ctx context.Context, business models.Business) (models.Business, error)
	FindBusinessByEmail(ctx context.Context, email string) (models.Business, error)
	FindBusinessByUsername(ctx context.Context, username string) (models.Business, error)
}
