package rest

import (
	"net/http"

	"github.com/flickstack/rental-api/internal/domain"
	"github.com/flickstack/rental-api/internal/service"
	"github.com/flickstack/rental-api/internal/transport/rest/response"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type CustomerHandler struct {
	svc *service.Customers
}

func NewCustomerHandler(svc *service.Customers) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

type customersResponse struct {
	NumRows int               `json:"numRows"`
	Rows    []domain.Customer `json:"rows"`
	response.Envelope
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	phone := r.URL.Query().Get("phone")
	excludeInactive := r.URL.Query().Get("exclude_inactive") == "true"

	customers, err := h.svc.List(r.Context(), phone, excludeInactive)
	if err != nil {
		handleErr(w, r, err)
		return
	}

	response.OK(w, customersResponse{
		NumRows: len(customers),
		Rows:    customers,
	})
}

type customerRequest struct {
	ID      string `json:"id" validate:"required"`
	FName   string `json:"f_name"`
	LName   string `json:"l_name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Active  bool   `json:"active"`
	Email   string `json:"email"`
}

var customerMsgs = map[string]string{
	"ID": "No ID provided",
}

func (req customerRequest) toDomain() domain.Customer {
	return domain.Customer{
		ID:      req.ID,
		FName:   req.FName,
		LName:   req.LName,
		Phone:   req.Phone,
		Address: req.Address,
		Active:  req.Active,
		Email:   req.Email,
	}
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		response.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		response.Fail(w, statusRetryWith, requiredFieldMsg(err, customerMsgs))
		return
	}

	if err := h.svc.Create(r.Context(), req.toDomain()); err != nil {
		handleErr(w, r, err)
		return
	}

	response.OK(w, response.Envelope{})
}

func (h *CustomerHandler) Edit(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		response.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	// The path parameter wins over whatever the body says.
	req.ID = chi.URLParam(r, "id")
	if req.ID == "" {
		response.Fail(w, statusRetryWith, "No ID provided")
		return
	}

	if err := h.svc.Edit(r.Context(), req.toDomain()); err != nil {
		handleErr(w, r, err)
		return
	}

	response.OK(w, response.Envelope{})
}
