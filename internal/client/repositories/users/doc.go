// Package users persists registered accounts in the local SQLite store.
//
// Repository is the contract used by the record service; SQLiteRepository
// implements it over a dbx.DBTX, so it runs the same on a *sqlx.DB or inside
// a transaction. Queries are built with squirrel using '?' placeholders.
//
// Lookups that match nothing return common.ErrNotFound. Inserting an email
// that is already taken returns common.ErrAlreadyExists. Everything else is
// returned wrapped, with the driver error intact.
package users
