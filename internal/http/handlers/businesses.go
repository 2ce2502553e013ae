package handlers

import (
	"context"
	"net/http"

	"github.com/hongminglow/accounts-be/internal/accounts"
	"github.com/hongminglow/accounts-be/internal/models/dto"
)

// BusinessWorkflows is the part of accounts.Service the business routes need.
type BusinessWorkflows interface {
	RegisterBusiness(ctx context.Context, payload dto.Payload) accounts.Result
	LoginBusiness(ctx context.Context, payload dto.Payload) accounts.Result
}

// BusinessesHandler owns the /api/businesses routes.
type BusinessesHandler struct {
	workflows BusinessWorkflows
}

func NewBusinessesHandler(workflows BusinessWorkflows) *BusinessesHandler {
	return &BusinessesHandler{workflows: workflows}
}

func (h *BusinessesHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/businesses/register", h.handleRegister)
	mux.HandleFunc("POST /api/businesses/login", h.handleLogin)
}

func (h *BusinessesHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodePayload(w, r)
	if !ok {
		return
	}
	write(w, h.workflows.RegisterBusiness(r.Context(), payload))
}

func (h *BusinessesHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodePayload(w, r)
	if !ok {
		return
	}
	write(w, h.workflows.LoginBusiness(r.Context(), payload))
}
