package httpx

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
)

// ErrorBody is the payload under the "error" key. Message is a string, or a
// list of strings when several fields failed validation.
type ErrorBody struct {
	Message any `json:"message"`
	Status  int `json:"status"`
}

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("response encode failed: status=%d error=%v", statusCode, err)
	}
}

func JSONError(w http.ResponseWriter, statusCode int, message any) {
	JSON(w, statusCode, ErrorResponse{
		Error: ErrorBody{Message: message, Status: statusCode},
	})
}

// NotFoundHandler answers every request with a JSON 404.
func NotFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		JSONError(w, http.StatusNotFound, "Not Found")
	})
}

// MethodNotAllowedHandler answers with a JSON 405 and an Allow header listing allowed.
func MethodNotAllowedHandler(allowed ...string) http.Handler {
	allow := strings.Join(allowed, ", ")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", allow)
		JSONError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})
}
