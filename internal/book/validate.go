package book

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Mode selects the field set a payload is checked against.
type Mode int

const (
	ModeCreate Mode = iota
	ModeUpdate
)

func (m Mode) String() string {
	if m == ModeUpdate {
		return "update"
	}
	return "create"
}

type kind int

const (
	kindString kind = iota
	kindURL
	kindInteger
	kindPositiveInteger
)

type presence int

const (
	required presence = iota
	forbidden
)

type fieldRule struct {
	name     string
	kind     kind
	onCreate presence
	onUpdate presence
}

func (f fieldRule) presence(mode Mode) presence {
	if mode == ModeUpdate {
		return f.onUpdate
	}
	return f.onCreate
}

// bookSchema lists the fields in the order their errors are reported.
var bookSchema = []fieldRule{
	{name: "isbn", kind: kindString, onCreate: required, onUpdate: forbidden},
	{name: "amazon_url", kind: kindURL, onCreate: required, onUpdate: required},
	{name: "author", kind: kindString, onCreate: required, onUpdate: required},
	{name: "language", kind: kindString, onCreate: required, onUpdate: required},
	{name: "pages", kind: kindPositiveInteger, onCreate: required, onUpdate: required},
	{name: "publisher", kind: kindString, onCreate: required, onUpdate: required},
	{name: "title", kind: kindString, onCreate: required, onUpdate: required},
	{name: "year", kind: kindInteger, onCreate: required, onUpdate: required},
}

var formats *validator.Validate

func init() {
	formats = validator.New()
}

// ValidationError carries one message per failing field.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "invalid book payload: " + strings.Join(e.Messages, "; ")
}

// Validate checks a decoded JSON object against the book schema for mode.
// An empty result means the payload is valid.
//
// Numbers may be json.Number or float64. A json.Number must be written without
// fraction or exponent. A float64 has already lost that spelling, so 264.0 and
// 2.64e2 are accepted there as long as the value is integral; decode with
// UseNumber, as DecodeCreate and DecodeUpdate do, to get the strict check.
func Validate(payload map[string]any, mode Mode) []string {
	var messages []string
	known := make(map[string]bool, len(bookSchema))

	for _, rule := range bookSchema {
		known[rule.name] = true
		value, present := payload[rule.name]

		if rule.presence(mode) == forbidden {
			if present {
				messages = append(messages, fmt.Sprintf("%s is not allowed on %s", rule.name, mode))
			}
			continue
		}
		if !present {
			messages = append(messages, fmt.Sprintf("%s is required", rule.name))
			continue
		}
		if msg := checkValue(rule, value); msg != "" {
			messages = append(messages, msg)
		}
	}

	var unknown []string
	for name := range payload {
		if !known[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		messages = append(messages, fmt.Sprintf("%s is not a recognized field", name))
	}

	return messages
}

func checkValue(rule fieldRule, value any) string {
	switch rule.kind {
	case kindString, kindURL:
		s, ok := value.(string)
		if !ok {
			return fmt.Sprintf("%s must be a string", rule.name)
		}
		if strings.TrimSpace(s) == "" {
			return fmt.Sprintf("%s must not be empty", rule.name)
		}
		if rule.kind == kindURL && formats.Var(s, "url") != nil {
			return fmt.Sprintf("%s must be a valid URL", rule.name)
		}
	case kindInteger, kindPositiveInteger:
		n, ok := asInteger(value)
		if !ok {
			return fmt.Sprintf("%s must be an integer", rule.name)
		}
		if rule.kind == kindPositiveInteger && n < 1 {
			return fmt.Sprintf("%s must be greater than 0", rule.name)
		}
	}
	return ""
}

func asInteger(value any) (int64, bool) {
	switch v := value.(type) {
	case json.Number:
		n, err := v.Int64()
		if err != nil || n > math.MaxInt32 || n < math.MinInt32 {
			return 0, false
		}
		return n, true
	case float64:
		if v != math.Trunc(v) || v > math.MaxInt32 || v < math.MinInt32 {
			return 0, false
		}
		return int64(v), true
	}
	return 0, false
}

// DecodeCreate reads a create payload, validates it and returns the typed book.
func DecodeCreate(r io.Reader) (Book, error) {
	var b Book
	if err := decodeAndValidate(r, ModeCreate, &b); err != nil {
		return Book{}, err
	}
	return b, nil
}

// DecodeUpdate reads an update payload. The isbn comes from the route, never the body.
func DecodeUpdate(r io.Reader) (Details, error) {
	var d Details
	if err := decodeAndValidate(r, ModeUpdate, &d); err != nil {
		return Details{}, err
	}
	return d, nil
}

func decodeAndValidate(r io.Reader, mode Mode, dst any) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var payload any
	if err := dec.Decode(&payload); err != nil {
		return &ValidationError{Messages: []string{"request body must be valid JSON"}}
	}
	if _, err := dec.Token(); err != io.EOF {
		return &ValidationError{Messages: []string{"request body must contain a single JSON object"}}
	}

	obj, ok := payload.(map[string]any)
	if !ok {
		return &ValidationError{Messages: []string{"request body must be a JSON object"}}
	}
	if messages := Validate(obj, mode); len(messages) > 0 {
		return &ValidationError{Messages: messages}
	}

	strict := json.NewDecoder(bytes.NewReader(raw))
	strict.DisallowUnknownFields()
	if err := strict.Decode(dst); err != nil {
		return &ValidationError{Messages: []string{err.Error()}}
	}
	return nil
}

// IsValidationError reports whether err is a *ValidationError and returns it.
func IsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
