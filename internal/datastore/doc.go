// Package datastore is the persistence gateway shared by the services.
//
// A Table[T] describes a table: its name, the columns read back, and how a
// row scans into T. Postgres[T] turns that description into a Gateway[T]
// whose statements are built with squirrel and executed over database/sql
// (the pgx stdlib driver in production, go-sqlmock in tests).
//
// Every failure is an *Error carrying a Code. CodeNoRows is the one callers
// branch on: SelectOne, Update and Delete report it when no row matched the
// key. Constraint violations raised by PostgreSQL are classified by
// SQLSTATE through package pg.
package datastore
