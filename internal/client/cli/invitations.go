package cli

import (
	"context"
	"fmt"
	"strings"

	pb "github.com/dmitrijs2005/unielect/internal/proto"
	"github.com/dustin/go-humanize"
)

const roleAdmin = "ADMIN"

// Invite sends an invitation. For an election ADMIN the assignment is
// checked first so a move from another election can be confirmed.
func (a *App) Invite(ctx context.Context, args []string) error {
	email, err := a.arg(args, 0, "Email")
	if err != nil {
		return err
	}
	role, err := a.arg(args, 1, "Role (SUPERADMIN, ORCHESTRATOR, APPROVER, ADMIN)")
	if err != nil {
		return err
	}
	role = strings.ToUpper(role)

	var electionID string
	if role == roleAdmin {
		if electionID, err = a.arg(args, 2, "Election ID"); err != nil {
			return err
		}

		p, err := a.client.ProposeInvite(ctx, email, electionID)
		if err != nil {
			return err
		}
		if p.RequiresReassignment {
			return a.confirmReassign(ctx, email, electionID, p.Current)
		}
		if p.ExistingAccount {
			fmt.Fprintf(a.out, "%s already has an admin account; it will be assigned when the invitation is accepted.\n", email)
		}
	}

	resp, err := a.client.IssueInvitation(ctx, &pb.IssueInvitationRequest{Email: email, Role: role, ElectionId: electionID})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Invitation sent to %s, expires %s\n", email, humanize.Time(resp.GetExpiresAt().AsTime()))
	return nil
}

func (a *App) confirmReassign(ctx context.Context, email, electionID string, current *pb.Election) error {
	title := "another election"
	if current != nil {
		title = fmt.Sprintf("%q", current.Title)
	}
	answer, err := getSimpleText(a.reader, fmt.Sprintf("%s already manages %s. Move them to this election? (yes/no)", email, title), a.out)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "yes") {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}
	return a.reassign(ctx, email, electionID)
}

func (a *App) Reassign(ctx context.Context, args []string) error {
	email, err := a.arg(args, 0, "Admin email")
	if err != nil {
		return err
	}
	electionID, err := a.arg(args, 1, "Election ID")
	if err != nil {
		return err
	}
	return a.reassign(ctx, email, electionID)
}

func (a *App) reassign(ctx context.Context, email, electionID string) error {
	resp, err := a.client.Reassign(ctx, email, electionID)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s now manages election %s\n", email, resp.ElectionId)
	return nil
}
