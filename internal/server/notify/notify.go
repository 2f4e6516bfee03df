// Package notify delivers the outbound e-mails of the election workflow.
package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/unielect/internal/server/models"
	"github.com/dustin/go-humanize"
)

type Invitation struct {
	Email       string
	Link        string
	Role        models.Role
	InviterName string
	ExpiresAt   time.Time
}

type ApprovalRequest struct {
	ApproverEmail string
	ApproverName  string
	ElectionID    string
	ElectionTitle string
	RequesterName string
}

type AssignmentChange struct {
	Email         string
	AdminName     string
	ElectionTitle string
	PreviousTitle string
}

// Sink is implemented by every delivery channel.
type Sink interface {
	SendInvitation(ctx context.Context, msg Invitation) error
	SendApprovalRequested(ctx context.Context, msg ApprovalRequest) error
	SendAssignmentChanged(ctx context.Context, msg AssignmentChange) error
}

// message is a rendered e-mail.
type message struct {
	To      string
	Subject string
	Body    string
}

var now = time.Now

func renderInvitation(m Invitation) message {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello,\n\n%s has invited you to join the election office as %s.\n\n", m.InviterName, roleTitle(m.Role))
	fmt.Fprintf(&b, "Accept the invitation here: %s\n\n", m.Link)
	fmt.Fprintf(&b, "The link expires %s (%s).\n", humanize.RelTime(m.ExpiresAt, now(), "ago", "from now"),
		m.ExpiresAt.UTC().Format(time.RFC1123))
	return message{To: m.Email, Subject: "You have been invited to the election office", Body: b.String()}
}

func renderApprovalRequested(m ApprovalRequest) message {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", m.ApproverName)
	fmt.Fprintf(&b, "%s has submitted %q for approval.\n", m.RequesterName, m.ElectionTitle)
	fmt.Fprintf(&b, "Election id: %s\n", m.ElectionID)
	return message{To: m.ApproverEmail, Subject: "Election awaiting approval: " + m.ElectionTitle, Body: b.String()}
}

func renderAssignmentChanged(m AssignmentChange) message {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", m.AdminName)
	if m.PreviousTitle != "" {
		fmt.Fprintf(&b, "You are no longer managing %q.\n", m.PreviousTitle)
	}
	fmt.Fprintf(&b, "You are now the administrator of %q.\n", m.ElectionTitle)
	return message{To: m.Email, Subject: "Your election assignment has changed", Body: b.String()}
}

func roleTitle(r models.Role) string {
	switch r {
	case models.RoleSuperAdmin:
		return "super administrator"
	case models.RoleOrchestrator:
		return "orchestrator"
	case models.RoleAdmin:
		return "election administrator"
	case models.RoleApprover:
		return "approver"
	}
	return strings.ToLower(string(r))
}
