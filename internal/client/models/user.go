// Package models defines the records persisted by the local store and the
// values exchanged with the scoring service.
package models

// Sex values accepted at registration.
const (
	SexMale   = "M"
	SexFemale = "F"
)

// User is a registered account. Password holds an argon2id PHC hash, never
// the raw password.
type User struct {
	ID       int64  `db:"id"`
	Email    string `db:"email"`
	Password string `db:"password"`
	Age      int    `db:"age"`
	Sex      string `db:"sex"`
}

// Profile is the part of a user the assessment pipeline needs.
type Profile struct {
	Age int    `db:"age"`
	Sex string `db:"sex"`
}
