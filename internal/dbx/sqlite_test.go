package dbx

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsUniqueViolation(t *testing.T) {
	db := setupDB(t)
	_, err := db.Exec(`CREATE TABLE u (email TEXT NOT NULL UNIQUE)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO u(email) VALUES ('a@b.c')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO u(email) VALUES ('a@b.c')`)
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
	assert.True(t, IsUniqueViolation(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, IsForeignKeyViolation(err))

	assert.False(t, IsUniqueViolation(errors.New("UNIQUE constraint failed")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestIsForeignKeyViolation(t *testing.T) {
	db := setupDB(t)
	_, err := db.Exec(`CREATE TABLE p (id INTEGER PRIMARY KEY)`)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE c (pid INTEGER NOT NULL REFERENCES p(id))`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO c(pid) VALUES (7)`)
	require.Error(t, err)
	assert.True(t, IsForeignKeyViolation(err))
	assert.False(t, IsUniqueViolation(err))
}
