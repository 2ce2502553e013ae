// Package accounts implements the registration, login and update workflows
// for users and businesses. Workflows take a decoded payload and return the
// status and body to send back; they know nothing about HTTP routing.
package accounts

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/hongminglow/accounts-be/internal/auth"
	"github.com/hongminglow/accounts-be/internal/models/dto"
	"github.com/hongminglow/accounts-be/internal/storage"
)

// PasswordHasher hashes and checks passwords.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

// TokenIssuer signs session tokens.
type TokenIssuer interface {
	Issue(claims auth.Claims) (string, error)
}

// Result is a workflow outcome: an HTTP status and a JSON-encodable body.
type Result struct {
	Status int
	Body   any
}

// Service runs the account workflows. It holds no per-request state and is
// safe for concurrent use.
type Service struct {
	users      storage.UserStore
	businesses storage.BusinessStore
	hasher     PasswordHasher
	tokens     TokenIssuer
	logger     *slog.Logger
}

// NewService wires the workflows to their collaborators.
func NewService(users storage.UserStore, businesses storage.BusinessStore, hasher PasswordHasher, tokens TokenIssuer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		users:      users,
		businesses: businesses,
		hasher:     hasher,
		tokens:     tokens,
		logger:     logger,
	}
}

func success(status int, body any) Result {
	return Result{Status: status, Body: body}
}

// fail converts err into the response body. Server-side failures are logged.
func (s *Service) fail(ctx context.Context, operation string, err error) Result {
	var werr *Error
	if !errors.As(err, &werr) {
		werr = unexpected(err)
	}
	if werr.Status >= http.StatusInternalServerError {
		s.logger.ErrorContext(ctx, "account workflow failed", "operation", operation, "kind", werr.Kind, "error", werr.Err)
	} else {
		s.logger.DebugContext(ctx, "account workflow rejected", "operation", operation, "kind", werr.Kind, "status", werr.Status)
	}
	return Result{Status: werr.Status, Body: dto.ErrorResponse{Error: werr.Message}}
}

// taken runs both uniqueness lookups concurrently and reports whether either
// key is already in use. A lookup is skipped when its finder is nil.
// Two concurrent registrations can both pass this check; the store's unique
// indexes reject the second insert.
func taken(ctx context.Context, byEmail, byUsername func(context.Context) error) (bool, error) {
	var emailHit, usernameHit bool
	g, gctx := errgroup.WithContext(ctx)
	probe := func(find func(context.Context) error, hit *bool) {
		if find == nil {
			return
		}
		g.Go(func() error {
			err := find(gctx)
			switch {
			case err == nil:
				*hit = true
				return nil
			case errors.Is(err, storage.ErrNotFound):
				return nil
			default:
				return err
			}
		})
	}
	probe(byEmail, &emailHit)
	probe(byUsername, &usernameHit)
	if err := g.Wait(); err != nil {
		return false, err
	}
	return emailHit || usernameHit, nil
}
