package accounts

import (
	"context"
	"errors"
	"net/http"

	"github.com/hongminglow/accounts-be/internal/auth"
	"github.com/hongminglow/accounts-be/internal/models"
	"github.com/hongminglow/accounts-be/internal/models/dto"
	"github.com/hongminglow/accounts-be/internal/storage"
	"github.com/hongminglow/accounts-be/internal/validation"
)

// RegisterBusiness mirrors RegisterUser for businesses. Store failures answer
// 500 with the store's message rather than a generic one.
func (s *Service) RegisterBusiness(ctx context.Context, payload dto.Payload) Result {
	created, err := s.registerBusiness(ctx, payload)
	if err != nil {
		return s.fail(ctx, "register business", err)
	}
	return success(http.StatusCreated, created.Summary())
}

func (s *Service) registerBusiness(ctx context.Context, payload dto.Payload) (models.Business, error) {
	reg, err := validation.ValidateBusinessRegistration(payload)
	if err != nil {
		return models.Business{}, invalid(err)
	}

	exists, err := taken(ctx,
		func(ctx context.Context) error {
			_, err := s.businesses.FindBusinessByEmail(ctx, reg.Email)
			return err
		},
		func(ctx context.Context) error {
			_, err := s.businesses.FindBusinessByUsername(ctx, reg.Username)
			return err
		},
	)
	if err != nil {
		return models.Business{}, leakyDependency(err)
	}
	if exists {
		return models.Business{}, conflict(nil)
	}

	hash, err := s.hasher.Hash(reg.Password)
	if err != nil {
		return models.Business{}, leakyDependency(err)
	}
	created, err := s.businesses.CreateBusiness(ctx, models.Business{
		Email:        reg.Email,
		Username:     reg.Username,
		Name:         reg.Name,
		Category:     reg.Category,
		Rating:       reg.Rating,
		Description:  reg.Description,
		Address:      reg.Address,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return models.Business{}, conflict(err)
		}
		return models.Business{}, leakyDependency(err)
	}
	return created, nil
}

// LoginBusiness checks the credentials and answers 200 with a signed token
// and the business profile.
func (s *Service) LoginBusiness(ctx context.Context, payload dto.Payload) Result {
	creds, err := validation.ValidateLogin(payload)
	if err != nil {
		return s.fail(ctx, "login business", invalid(err))
	}

	business, err := s.businesses.FindBusinessByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return s.fail(ctx, "login business", notFound(msgBusinessNotFound))
		}
		return s.fail(ctx, "login business", dependency(msgServerError, err))
	}
	if !s.hasher.Verify(creds.Password, business.PasswordHash) {
		return s.fail(ctx, "login business", incorrectPassword())
	}

	token, err := s.tokens.Issue(auth.Claims{ID: business.ID, Email: business.Email, Username: business.Username})
	if err != nil {
		return s.fail(ctx, "login business", dependency(msgServerError, err))
	}
	return success(http.StatusOK, dto.LoginResponse[models.BusinessProfile]{
		Message: msgLoginSuccessful,
		Token:   token,
		User:    business.Profile(),
	})
}
