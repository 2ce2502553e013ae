package handlers

import (
	"context"
	"net/http"

	"github.com/hongminglow/accounts-be/internal/accounts"
	"github.com/hongminglow/accounts-be/internal/http/respond"
	"github.com/hongminglow/accounts-be/internal/models/dto"
)

// UserWorkflows is the part of accounts.Service the user routes need.
type UserWorkflows interface {
	RegisterUser(ctx context.Context, payload dto.Payload) accounts.Result
	LoginUser(ctx context.Context, payload dto.Payload) accounts.Result
	UpdateUser(ctx context.Context, id string, payload dto.Payload) accounts.Result
}

// UsersHandler owns the /api/users routes.
type UsersHandler struct {
	workflows UserWorkflows
}

// NewUsersHandler constructs the handler.
func NewUsersHandler(workflows UserWorkflows) *UsersHandler {
	return &UsersHandler{workflows: workflows}
}

// Register attaches user routes to the mux.
func (h *UsersHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/users/register", h.handleRegister)
	mux.HandleFunc("POST /api/users/login", h.handleLogin)
	mux.HandleFunc("PUT /api/users/{id}", h.handleUpdate)
}

func (h *UsersHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodePayload(w, r)
	if !ok {
		return
	}
	write(w, h.workflows.RegisterUser(r.Context(), payload))
}

func (h *UsersHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodePayload(w, r)
	if !ok {
		return
	}
	write(w, h.workflows.LoginUser(r.Context(), payload))
}

func (h *UsersHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodePayload(w, r)
	if !ok {
		return
	}
	write(w, h.workflows.UpdateUser(r.Context(), r.PathValue("id"), payload))
}

func write(w http.ResponseWriter, res accounts.Result) {
	respond.JSON(w, res.Status, res.Body)
}
