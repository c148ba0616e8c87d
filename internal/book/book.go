package book

import "errors"

var (
	// ErrNotFound is returned when no book matches the given ISBN.
	ErrNotFound = errors.New("book not found")
	// ErrDuplicateISBN is returned when a book with the same ISBN already exists.
	ErrDuplicateISBN = errors.New("book with this isbn already exists")
)

// Details holds every field of a book except its key. An update replaces all of them.
type Details struct {
	AmazonURL string `json:"amazon_url"`
	Author    string `json:"author"`
	Language  string `json:"language"`
	Pages     int    `json:"pages"`
	Publisher string `json:"publisher"`
	Title     string `json:"title"`
	Year      int    `json:"year"`
}

// Book represents a catalog entry keyed by ISBN.
type Book struct {
	ISBN string `json:"isbn"`
	Details
}
