package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/heartrisk/internal/common"
)

// Register asks for email, password (twice), age and sex and creates the
// account. The user is not logged in afterwards.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword("Repeat password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if string(password) != string(confirm) {
		return fmt.Errorf("%w: passwords do not match", common.ErrInvalidInput)
	}

	age, err := getSimpleText(a.reader, "Enter age", a.out)
	if err != nil {
		return err
	}
	sex, err := getSimpleText(a.reader, "Enter sex (M/F)", a.out)
	if err != nil {
		return err
	}

	if _, err := a.store.Register(ctx, email, password, age, sex); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Registration successful, you can log in now")
	return nil
}

// Login prompts for credentials and makes the matching user current.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	id, err := a.store.Authenticate(ctx, email, password)
	if err != nil {
		return err
	}

	a.userID = id
	a.email = common.NormalizeEmail(email)
	fmt.Fprintln(a.out, "Login successful")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.userID = 0
	a.email = ""
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// DeleteAccount removes the current user and every stored assessment after
// an explicit confirmation.
func (a *App) DeleteAccount(ctx context.Context) error {
	ok, err := Confirm(a.reader, "Delete your account and all assessments?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}

	if err := a.store.DeleteUser(ctx, a.userID); err != nil {
		return err
	}
	a.userID = 0
	a.email = ""
	fmt.Fprintln(a.out, "Account deleted")
	return nil
}
