package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ---------- WipeByteArray ----------

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	WipeByteArray(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("expected buf[%d]==0, got %d", i, v)
		}
	}
}

func TestWipeByteArray_NilSafe(t *testing.T) {
	WipeByteArray(nil)
}

// ---------- NormalizeEmail ----------

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"A@B.com", "a@b.com"},
		{"  a@b.com\t", "a@b.com"},
		{" MiXeD@Example.COM ", "mixed@example.com"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeEmail(tt.in), tt.in)
	}
}

// ---------- CoerceAge ----------

func TestCoerceAge(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"30", 30},
		{" 41 ", 41},
		{"0", 0},
		{"abc", 0},
		{"", 0},
		{"-5", 0},
		{"12.5", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CoerceAge(tt.in), tt.in)
	}
}

// ---------- UserMessage ----------

func TestUserMessage(t *testing.T) {
	assert.Empty(t, UserMessage(nil))
	assert.Equal(t, "User already exists", UserMessage(fmt.Errorf("register: %w", ErrAlreadyExists)))
	assert.Equal(t, "Invalid email or password", UserMessage(ErrAuthFailure))
	assert.Equal(t, "Some fields are missing or invalid: resting bp", UserMessage(fmt.Errorf("%w: resting bp", ErrInvalidInput)))
	assert.Equal(t, "Failed to save assessment", UserMessage(errors.Join(ErrPersistenceFailed, ErrStorageFault)))
	assert.Equal(t, "Something went wrong, please try again", UserMessage(errors.New("boom")))
}
