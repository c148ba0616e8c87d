package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
)

// SeedBookPayload is the book the integration suites insert before each test.
func SeedBookPayload() map[string]any {
	return map[string]any{
		"isbn":       "12345678",
		"amazon_url": "https://amazon.com/bookhere",
		"author":     "Bryce",
		"language":   "en",
		"pages":      246,
		"publisher":  "Fortress",
		"title":      "booktitle",
		"year":       2021,
	}
}

// NewBookPayload is a complete, valid create payload.
func NewBookPayload() map[string]any {
	return map[string]any{
		"isbn":       "0691161518",
		"amazon_url": "http://a.co/eobPtX2",
		"author":     "Matthew Lane",
		"language":   "english",
		"pages":      264,
		"publisher":  "Princeton University Press",
		"title":      "Power-Up: Unlocking the Hidden Mathematics in Video Games",
		"year":       2017,
	}
}

// UpdatePayload is NewBookPayload without its isbn.
func UpdatePayload() map[string]any {
	return Without(NewBookPayload(), "isbn")
}

// Without returns a copy of payload with keys removed.
func Without(payload map[string]any, keys ...string) map[string]any {
	out := make(map[string]any, len(payload))
	for k, v := range payload {
		out[k] = v
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

// With returns a copy of payload with key set to value.
func With(payload map[string]any, key string, value any) map[string]any {
	out := Without(payload)
	out[key] = value
	return out
}

// NewRequest creates a new HTTP request for testing
func NewRequest(method, path string, body interface{}) *http.Request {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}
	var r *http.Request
	if bodyBytes != nil {
		r = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	return r
}

// NewRawRequest sends body exactly as given, for malformed JSON cases.
func NewRawRequest(method, path, body string) *http.Request {
	r := httptest.NewRequest(method, path, strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	return r
}

// RecordResponse records the HTTP response for testing
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]interface{}
}

// RecordHTTPResponse records the HTTP response
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]interface{}
	if len(bodyBytes) > 0 {
		json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
	}
}

// JSONNumbers converts ints in payload to float64 so it compares equal to a decoded response body.
func JSONNumbers(payload map[string]any) map[string]any {
	out := make(map[string]any, len(payload))
	for k, v := range payload {
		if n, ok := v.(int); ok {
			out[k] = float64(n)
			continue
		}
		out[k] = v
	}
	return out
}
