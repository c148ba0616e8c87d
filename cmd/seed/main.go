package main

import (
	"context"
	"errors"
	"log"

	"bookstore/internal/book"
	"bookstore/internal/database"
)

var sampleBooks = []book.Book{
	{ISBN: "0691161518", Details: book.Details{
		AmazonURL: "http://a.co/eobPtX2", Author: "Matthew Lane", Language: "english", Pages: 264,
		Publisher: "Princeton University Press", Title: "Power-Up: Unlocking the Hidden Mathematics in Video Games", Year: 2017,
	}},
	{ISBN: "0262033844", Details: book.Details{
		AmazonURL: "https://www.amazon.com/dp/0262033844", Author: "Thomas H. Cormen", Language: "english", Pages: 1312,
		Publisher: "MIT Press", Title: "Introduction to Algorithms", Year: 2009,
	}},
	{ISBN: "0134190440", Details: book.Details{
		AmazonURL: "https://www.amazon.com/dp/0134190440", Author: "Alan A. A. Donovan", Language: "english", Pages: 380,
		Publisher: "Addison-Wesley", Title: "The Go Programming Language", Year: 2015,
	}},
	{ISBN: "1593279280", Details: book.Details{
		AmazonURL: "https://www.amazon.com/dp/1593279280", Author: "Marijn Haverbeke", Language: "english", Pages: 472,
		Publisher: "No Starch Press", Title: "Eloquent JavaScript", Year: 2018,
	}},
}

func main() {
	ctx := context.Background()
	database.LoadEnvFiles()

	dsn := database.DSN()
	log.Printf("seeding %s", database.RedactDSN(dsn))

	pool, err := database.Open(ctx, dsn)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	repo := book.NewPostgresRepo(pool, 0)

	inserted := 0
	for _, b := range sampleBooks {
		if _, err := repo.Create(ctx, b); err != nil {
			if errors.Is(err, book.ErrDuplicateISBN) {
				log.Printf("skip isbn=%s: already present", b.ISBN)
				continue
			}
			log.Fatalf("Failed to insert isbn=%s: %v", b.ISBN, err)
		}
		inserted++
	}
	log.Printf("Inserted %d of %d sample books", inserted, len(sampleBooks))

	books, err := repo.List(ctx)
	if err != nil {
		log.Fatalf("Failed to list books: %v", err)
	}
	log.Printf("Total books in database: %d", len(books))
}
