package rest

import (
	"context"
	"net/http"

	"github.com/flickstack/rental-api/internal/service"
	"github.com/flickstack/rental-api/internal/transport/rest/response"
	"github.com/go-chi/render"
)

// AuthService is the slice of the auth core the handlers need.
type AuthService interface {
	LoginWithPin(ctx context.Context, id, pin string) (*service.LoginResult, error)
	LoginWithAnswer(ctx context.Context, id, answer string) (*service.LoginResult, error)
	Logout(ctx context.Context, id string) error
}

type AuthHandler struct {
	svc AuthService
}

func NewAuthHandler(svc AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// loginRequest uses pointers so an absent field can be told apart from an
// empty one: presence of pin selects the primary path, otherwise presence
// of answer selects the security-question path.
type loginRequest struct {
	ID     *string `json:"id"`
	Pin    *string `json:"pin"`
	Answer *string `json:"answer"`
}

type loginResponse struct {
	ID                    string `json:"id"`
	FName                 string `json:"f_name"`
	LName                 string `json:"l_name"`
	Role                  string `json:"role"`
	Token                 string `json:"token"`
	NeedsSecurityQuestion bool   `json:"needsSecurityQuestion"`
	response.Envelope
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		response.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.ID == nil {
		response.Fail(w, statusRetryWith, "No ID provided")
		return
	}

	var (
		res *service.LoginResult
		err error
	)
	switch {
	case req.Pin != nil:
		res, err = h.svc.LoginWithPin(r.Context(), *req.ID, *req.Pin)
	case req.Answer != nil:
		res, err = h.svc.LoginWithAnswer(r.Context(), *req.ID, *req.Answer)
	default:
		response.Fail(w, statusRetryWith, "No pin provided")
		return
	}
	if err != nil {
		handleErr(w, r, err)
		return
	}

	response.OK(w, loginResponse{
		ID:                    res.ID,
		FName:                 res.FName,
		LName:                 res.LName,
		Role:                  res.Role,
		Token:                 res.Token,
		NeedsSecurityQuestion: res.NeedsSecurityQuestion,
	})
}

type logoutRequest struct {
	ID string `json:"id"`
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var req logoutRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		response.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.svc.Logout(r.Context(), req.ID); err != nil {
		handleErr(w, r, err)
		return
	}

	response.OK(w, response.Envelope{})
}
