package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookstore/internal/book"
	"bookstore/internal/testutil"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

func newTestRouter(t *testing.T, db pinger) (*http.ServeMux, *book.MockRepository) {
	ctrl := gomock.NewController(t)
	repo := book.NewMockRepository(ctrl)
	return newRouter(book.NewHTTPHandler(book.NewService(repo)), db), repo
}

func TestRouter_Health(t *testing.T) {
	router, _ := newTestRouter(t, fakePinger{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_ReadyzDatabaseDown(t *testing.T) {
	router, _ := newTestRouter(t, fakePinger{err: errors.New("down")})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRouter_UnknownPathIsJSON404(t *testing.T) {
	router, _ := newTestRouter(t, fakePinger{})

	for _, path := range []string{"/authors", "/books/", "/books/1/extra"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusNotFound, resp.Code, path)
		assert.Equal(t, map[string]any{"message": "Not Found", "status": float64(404)}, resp.Body["error"], path)
	}
}

func TestRouter_BookRoutes(t *testing.T) {
	router, repo := newTestRouter(t, fakePinger{})
	repo.EXPECT().Delete(gomock.Any(), "12345678").Return(nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/books/12345678", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Book deleted"}`, w.Body.String())
}
