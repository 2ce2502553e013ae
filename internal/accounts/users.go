package accounts

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/hongminglow/accounts-be/internal/auth"
	"github.com/hongminglow/accounts-be/internal/models"
	"github.com/hongminglow/accounts-be/internal/models/dto"
	"github.com/hongminglow/accounts-be/internal/storage"
	"github.com/hongminglow/accounts-be/internal/validation"
)

// RegisterUser validates the payload, checks email and username are free,
// hashes the password and stores the user. It answers 201 with the user's
// summary, which never includes the password hash.
func (s *Service) RegisterUser(ctx context.Context, payload dto.Payload) Result {
	created, err := s.registerUser(ctx, payload)
	if err != nil {
		return s.fail(ctx, "register user", err)
	}
	return success(http.StatusCreated, created.Summary())
}

func (s *Service) registerUser(ctx context.Context, payload dto.Payload) (models.User, error) {
	reg, err := validation.ValidateUserRegistration(payload)
	if err != nil {
		return models.User{}, invalid(err)
	}

	var byUsername func(context.Context) error
	if reg.Username != nil {
		byUsername = func(ctx context.Context) error {
			_, err := s.users.FindUserByUsername(ctx, *reg.Username)
			return err
		}
	}
	exists, err := taken(ctx, func(ctx context.Context) error {
		_, err := s.users.FindUserByEmail(ctx, reg.Email)
		return err
	}, byUsername)
	if err != nil {
		return models.User{}, dependency(msgServerError, err)
	}
	if exists {
		return models.User{}, conflict(nil)
	}

	hash, err := s.hasher.Hash(reg.Password)
	if err != nil {
		return models.User{}, dependency(msgServerError, err)
	}
	created, err := s.users.CreateUser(ctx, models.User{
		Email:        reg.Email,
		Username:     reg.Username,
		Name:         reg.Name,
		Surname:      reg.Surname,
		Age:          reg.Age,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return models.User{}, conflict(err)
		}
		return models.User{}, dependency(msgServerError, err)
	}
	return created, nil
}

// LoginUser checks the credentials and answers 200 with a signed token and
// the user's profile. Unknown emails get 404, wrong passwords 400.
func (s *Service) LoginUser(ctx context.Context, payload dto.Payload) Result {
	creds, err := validation.ValidateLogin(payload)
	if err != nil {
		return s.fail(ctx, "login user", invalid(err))
	}

	user, err := s.users.FindUserByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return s.fail(ctx, "login user", notFound(msgUserNotFound))
		}
		return s.fail(ctx, "login user", dependency(msgServerError, err))
	}
	if !s.hasher.Verify(creds.Password, user.PasswordHash) {
		return s.fail(ctx, "login user", incorrectPassword())
	}

	claims := auth.Claims{ID: user.ID, Email: user.Email}
	if user.Username != nil {
		claims.Username = *user.Username
	}
	token, err := s.tokens.Issue(claims)
	if err != nil {
		return s.fail(ctx, "login user", dependency(msgServerError, err))
	}
	return success(http.StatusOK, dto.LoginResponse[models.UserProfile]{
		Message: msgLoginSuccessful,
		Token:   token,
		User:    user.Profile(),
	})
}

// UpdateUser applies the well-typed fields of payload to the user identified
// by id, re-hashing a new password. No existence check is made: an id that
// matches nothing answers 200 with a null user. Store failures answer 500
// with the store's message.
func (s *Service) UpdateUser(ctx context.Context, id string, payload dto.Payload) Result {
	updated, err := s.updateUser(ctx, id, payload)
	if err != nil {
		return s.fail(ctx, "update user", err)
	}
	return success(http.StatusOK, dto.UpdateResponse[models.User]{
		Message:     msgUserUpdated,
		UpdatedUser: updated,
	})
}

func (s *Service) updateUser(ctx context.Context, id string, payload dto.Payload) (*models.User, error) {
	userID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		// ids are numeric, so nothing can match
		return nil, nil
	}

	fields := validation.ValidateUserUpdate(payload)
	patch := models.UserPatch{
		Email:    fields.Email,
		Name:     fields.Name,
		Surname:  fields.Surname,
		Username: fields.Username,
		Age:      fields.Age,
	}
	if fields.Password != nil {
		hash, err := s.hasher.Hash(*fields.Password)
		if err != nil {
			return nil, leakyDependency(err)
		}
		patch.PasswordHash = &hash
	}

	updated, err := s.users.UpdateUser(ctx, userID, patch)
	if err != nil {
		return nil, leakyDependency(err)
	}
	return updated, nil
}
