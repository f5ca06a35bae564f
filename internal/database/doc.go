// Package database contains the sqlc generated queries for the persons table and the
// goose migration runner.
//
// Do not edit the generated files (db.go, models.go, *.sql.go). Change sql/queries or
// sql/schema and run `sqlc generate` from the repository root.
package database
