// Package services contains the server-side business logic: the election
// lifecycle, admin assignments, invitations, voting and login. Every
// multi-step write runs inside one RepositoryManager transaction; audit
// entries and notifications are written after commit and never fail the
// operation.
package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/dmitrijs2005/unielect/internal/common"
	"github.com/dmitrijs2005/unielect/internal/logging"
	"github.com/dmitrijs2005/unielect/internal/server/models"
	"github.com/dmitrijs2005/unielect/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// base holds what every service needs.
type base struct {
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
	now         func() time.Time
}

func newBase(m repomanager.RepositoryManager, logger logging.Logger, module string) base {
	return base{repomanager: m, logger: logger.With("module", module), now: time.Now}
}

// record appends an audit entry outside any transaction. Failures are
// logged and swallowed.
func (b *base) record(ctx context.Context, actor models.Actor, action, electionID string, meta map[string]any) {
	entry := &models.AuditEntry{ActorID: actor.UserID, Action: action, Metadata: meta}
	if electionID != "" {
		entry.ElectionID = &electionID
	}
	if err := b.repomanager.Repos().Audit().Append(ctx, entry); err != nil {
		b.logger.Warn(ctx, "audit write failed", "action", action, "election_id", electionID, "error", err)
	}
}

// displayName returns the full name of userID, or fallback.
func (b *base) displayName(ctx context.Context, userID, fallback string) string {
	u, err := b.repomanager.Repos().Users().GetByID(ctx, userID)
	if err != nil || u.FullName == "" {
		return fallback
	}
	return u.FullName
}

// isRowID reports whether id has the canonical uuid form stored in every
// id column. Anything else cannot match a row.
func isRowID(id string) bool {
	return len(id) == 36 && uuid.Validate(id) == nil
}

func loadElection(ctx context.Context, repos repomanager.Repositories, id string, lock bool) (*models.Election, error) {
	if !isRowID(id) {
		return nil, common.ErrElectionNotFound
	}
	get := repos.Elections().Get
	if lock {
		get = repos.Elections().GetForUpdate
	}
	e, err := get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrElectionNotFound
		}
		return nil, fmt.Errorf("load election: %w", err)
	}
	return e, nil
}

// checkScope limits ADMIN callers to the election they are assigned to.
func checkScope(ctx context.Context, repos repomanager.Repositories, actor models.Actor, electionID string) error {
	if actor.Role != models.RoleAdmin {
		return nil
	}
	a, err := repos.Assignments().GetByAdmin(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorForbidden
		}
		return fmt.Errorf("load assignment: %w", err)
	}
	if a.ElectionID != electionID {
		return common.ErrorForbidden
	}
	return nil
}

// normalizeEmail lowercases addr and rejects anything but a bare address.
func normalizeEmail(addr string) (string, error) {
	addr = strings.ToLower(strings.TrimSpace(addr))
	if addr == "" {
		return "", common.NewValidationError("email", "is required")
	}
	parsed, err := mail.ParseAddress(addr)
	if err != nil || parsed.Address != addr {
		return "", common.NewValidationError("email", "is not a valid address")
	}
	return addr, nil
}
