package rest

import (
	"net/http"

	"github.com/flickstack/rental-api/internal/domain"
	"github.com/flickstack/rental-api/internal/service"
	"github.com/flickstack/rental-api/internal/transport/rest/response"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type MovieHandler struct {
	svc *service.Movies
}

func NewMovieHandler(svc *service.Movies) *MovieHandler {
	return &MovieHandler{svc: svc}
}

type moviesResponse struct {
	NumRows int            `json:"numRows"`
	Rows    []domain.Movie `json:"rows"`
	response.Envelope
}

func (h *MovieHandler) Get(w http.ResponseWriter, r *http.Request) {
	q := service.MovieQuery{
		UPC:    r.URL.Query().Get("upc"),
		Title:  r.URL.Query().Get("title"),
		CopyID: r.URL.Query().Get("copy_id"),
		// Inactive copies are hidden unless explicitly requested.
		ExcludeInactive: r.URL.Query().Get("exclude_inactive") != "false",
	}

	if q.UPC == "" && q.Title == "" && q.CopyID == "" {
		response.Fail(w, statusRetryWith, "No UPC provided")
		return
	}

	movies, err := h.svc.Get(r.Context(), q)
	if err != nil {
		handleErr(w, r, err)
		return
	}

	response.OK(w, moviesResponse{
		NumRows: len(movies),
		Rows:    movies,
	})
}

type movieRequest struct {
	UPC       string `json:"upc" validate:"required"`
	Title     string `json:"title" validate:"required"`
	PosterLoc string `json:"poster_loc"`
}

var movieMsgs = map[string]string{
	"UPC":   "No UPC provided",
	"Title": "No title provided",
}

func (h *MovieHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req movieRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		response.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		response.Fail(w, statusRetryWith, requiredFieldMsg(err, movieMsgs))
		return
	}

	m := domain.Movie{UPC: req.UPC, Title: req.Title, PosterLoc: req.PosterLoc}
	if err := h.svc.Create(r.Context(), m); err != nil {
		handleErr(w, r, err)
		return
	}

	response.OK(w, response.Envelope{})
}

func (h *MovieHandler) Edit(w http.ResponseWriter, r *http.Request) {
	var req movieRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		response.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.UPC = chi.URLParam(r, "upc")
	if req.UPC == "" {
		response.Fail(w, statusRetryWith, "No UPC provided")
		return
	}

	m := domain.Movie{UPC: req.UPC, Title: req.Title, PosterLoc: req.PosterLoc}
	if err := h.svc.Edit(r.Context(), m); err != nil {
		handleErr(w, r, err)
		return
	}

	response.OK(w, response.Envelope{})
}

type addCopyRequest struct {
	ID string `json:"id"`
}

func (h *MovieHandler) AddCopy(w http.ResponseWriter, r *http.Request) {
	var req addCopyRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		response.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ID == "" {
		response.Fail(w, statusRetryWith, "Copy ID not provided")
		return
	}

	upc := chi.URLParam(r, "upc")
	if err := h.svc.AddCopy(r.Context(), upc, req.ID); err != nil {
		handleErr(w, r, err)
		return
	}

	response.OK(w, response.Envelope{})
}
