package cli

import (
	"context"
	"fmt"

	pb "github.com/dmitrijs2005/unielect/internal/proto"
	"github.com/dmitrijs2005/unielect/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login authenticates a staff account and stores the token for later runs.
func (a *App) Login(ctx context.Context, args []string) error {
	email, err := a.arg(args, 0, "Enter email")
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	resp, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		return err
	}

	a.email = email
	a.role = resp.Role
	if err := a.saveSession(ctx, resp.AccessToken, resp.GetExpiresAt().AsTime()); err != nil {
		fmt.Fprintf(a.out, "Warning: session not saved: %v\n", err)
	}

	fmt.Fprintf(a.out, "Logged in as %s (%s)\n", email, resp.Role)
	return nil
}

func (a *App) forget(ctx context.Context) error {
	a.client.SetAccessToken("")
	a.email = ""
	a.role = ""
	return a.session.Clear(ctx)
}

func (a *App) Logout(ctx context.Context, _ []string) error {
	if err := a.forget(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) WhoAmI(_ context.Context, _ []string) error {
	fmt.Fprintf(a.out, "%s (%s)\n", a.email, a.role)
	return nil
}

// AcceptInvite redeems an invitation token and creates the account.
func (a *App) AcceptInvite(ctx context.Context, args []string) error {
	token, err := a.arg(args, 0, "Enter invitation token")
	if err != nil {
		return err
	}

	fullName, err := getSimpleText(a.reader, "Enter your full name", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Choose a password", a.out)
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
		return fmt.Errorf("passwords do not match")
	}

	resp, err := a.client.AcceptInvitation(ctx, &pb.AcceptInvitationRequest{
		Token:    token,
		FullName: fullName,
		Password: string(password),
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Account %s created with role %s. You can now log in.\n", resp.Email, resp.Role)
	return nil
}
