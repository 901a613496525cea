package rest

import (
	"net/http"

	"github.com/flickstack/rental-api/internal/domain"
	"github.com/flickstack/rental-api/internal/service"
	"github.com/flickstack/rental-api/internal/transport/rest/response"
	"github.com/go-chi/render"
)

type UserHandler struct {
	svc *service.Users
}

func NewUserHandler(svc *service.Users) *UserHandler {
	return &UserHandler{svc: svc}
}

type createUserRequest struct {
	ID      string `json:"id" validate:"required"`
	Pin     string `json:"pin" validate:"required"`
	Role    string `json:"role" validate:"required"`
	FName   string `json:"f_name"`
	LName   string `json:"l_name"`
	Phone   string `json:"phoneNum"`
	Address string `json:"address"`
}

var createUserMsgs = map[string]string{
	"ID":   "No ID provided",
	"Pin":  "No pin provided",
	"Role": "No role provided",
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		response.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		response.Fail(w, statusRetryWith, requiredFieldMsg(err, createUserMsgs))
		return
	}

	err := h.svc.Create(r.Context(), service.NewUserInput{
		ID:      req.ID,
		Pin:     req.Pin,
		Role:    req.Role,
		FName:   req.FName,
		LName:   req.LName,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		handleErr(w, r, err)
		return
	}

	response.OK(w, response.Envelope{})
}

type signedInResponse struct {
	NumRows int                   `json:"numRows"`
	Rows    []domain.SignedInUser `json:"rows"`
	response.Envelope
}

func (h *UserHandler) SignedIn(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.SignedIn(r.Context())
	if err != nil {
		handleErr(w, r, err)
		return
	}

	response.OK(w, signedInResponse{
		NumRows: len(users),
		Rows:    users,
	})
}
