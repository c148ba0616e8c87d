package book

import (
	"bookstore/internal/httpx"
	"errors"
	"log"
	"net/http"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type listResponse struct {
	Books []Book `json:"books"`
}

type bookResponse struct {
	Book Book `json:"book"`
}

// Register mounts the book routes on mux. Known paths hit with an unsupported
// method get a JSON 405.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /books", h.List)
	mux.HandleFunc("POST /books", h.Create)
	mux.HandleFunc("GET /books/{isbn}", h.GetByISBN)
	mux.HandleFunc("PUT /books/{isbn}", h.Update)
	mux.HandleFunc("DELETE /books/{isbn}", h.Delete)

	mux.Handle("/books", httpx.MethodNotAllowedHandler(http.MethodGet, http.MethodPost))
	mux.Handle("/books/{isbn}", httpx.MethodNotAllowedHandler(http.MethodGet, http.MethodPut, http.MethodDelete))
}

// List handles GET /books
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.List(r.Context())
	if err != nil {
		h.writeError(w, r, "list", err)
		return
	}
	httpx.JSON(w, http.StatusOK, listResponse{Books: books})
}

// GetByISBN handles GET /books/{isbn}
func (h *HTTPHandler) GetByISBN(w http.ResponseWriter, r *http.Request) {
	book, err := h.service.GetByISBN(r.Context(), r.PathValue("isbn"))
	if err != nil {
		h.writeError(w, r, "get", err)
		return
	}
	httpx.JSON(w, http.StatusOK, bookResponse{Book: book})
}

// Create handles POST /books
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	input, err := DecodeCreate(r.Body)
	if err != nil {
		h.writeError(w, r, "create", err)
		return
	}

	book, err := h.service.Create(r.Context(), input)
	if err != nil {
		h.writeError(w, r, "create", err)
		return
	}
	httpx.JSON(w, http.StatusCreated, bookResponse{Book: book})
}

// Update handles PUT /books/{isbn}
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	details, err := DecodeUpdate(r.Body)
	if err != nil {
		h.writeError(w, r, "update", err)
		return
	}

	book, err := h.service.Update(r.Context(), r.PathValue("isbn"), details)
	if err != nil {
		h.writeError(w, r, "update", err)
		return
	}
	httpx.JSON(w, http.StatusOK, bookResponse{Book: book})
}

// Delete handles DELETE /books/{isbn}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), r.PathValue("isbn")); err != nil {
		h.writeError(w, r, "delete", err)
		return
	}
	httpx.JSON(w, http.StatusOK, httpx.MessageResponse{Message: "Book deleted"})
}

// writeError is the only place where errors become status codes.
func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var tooLarge *http.MaxBytesError

	if ve, ok := IsValidationError(err); ok {
		httpx.JSONError(w, http.StatusBadRequest, ve.Messages)
		return
	}

	switch {
	case errors.Is(err, ErrNotFound):
		httpx.JSONError(w, http.StatusNotFound, "There is no book with isbn '"+r.PathValue("isbn")+"'")
	case errors.Is(err, ErrDuplicateISBN):
		httpx.JSONError(w, http.StatusConflict, "A book with this isbn already exists")
	case errors.As(err, &tooLarge):
		httpx.JSONError(w, http.StatusRequestEntityTooLarge, "Request body too large")
	default:
		log.Printf("book handler error: op=%s request_id=%s error=%v", op, httpx.RequestIDFrom(r), err)
		httpx.JSONError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}
