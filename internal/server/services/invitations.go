package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/unielect/internal/common"
	"github.com/dmitrijs2005/unielect/internal/cryptox"
	"github.com/dmitrijs2005/unielect/internal/logging"
	"github.com/dmitrijs2005/unielect/internal/server/config"
	"github.com/dmitrijs2005/unielect/internal/server/models"
	"github.com/dmitrijs2005/unielect/internal/server/notify"
	"github.com/dmitrijs2005/unielect/internal/server/repositories/repomanager"
)

const (
	minPasswordLength = 8
	// discardTimeout bounds the cleanup of an invitation whose mail could
	// not be sent. It runs detached from the request context.
	discardTimeout = 5 * time.Second
)

// InvitationService issues and redeems single-use staff invitations.
type InvitationService struct {
	base
	notifier notify.Sink
	validity time.Duration
	linkBase string
}

func NewInvitationService(m repomanager.RepositoryManager, notifier notify.Sink, cfg *config.Config, logger logging.Logger) *InvitationService {
	return &InvitationService{
		base:     newBase(m, logger, "invitations"),
		notifier: notifier,
		validity: cfg.InvitationValidityDuration,
		linkBase: cfg.InviteBaseURL,
	}
}

// discard removes an invitation that was never delivered. The caller's
// context may already be done when delivery timed out.
func (s *InvitationService) discard(ctx context.Context, id string) error {
	dctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), discardTimeout)
	defer cancel()
	return s.repomanager.Repos().Invitations().Delete(dctx, id)
}

// canInvite reports whether actor may invite someone into role.
func canInvite(actor models.Actor, role models.Role) error {
	if actor == models.SystemActor {
		return nil
	}
	switch actor.Role {
	case models.RoleSuperAdmin:
		return nil
	case models.RoleOrchestrator:
		if role == models.RoleAdmin {
			return nil
		}
	}
	return common.ErrorForbidden
}

// Issue creates an invitation for email and delivers it. When delivery
// fails the invitation is removed again and ErrDeliveryFailed is returned.
func (s *InvitationService) Issue(ctx context.Context, actor models.Actor, email string, role models.Role, electionID string) (*models.Invitation, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if !role.Valid() {
		return nil, common.NewValidationError("role", fmt.Sprintf("unknown role %q", role))
	}
	if role == models.RoleVoter {
		return nil, common.NewValidationError("role", "voters receive credentials, not invitations")
	}
	if err := canInvite(actor, role); err != nil {
		return nil, err
	}
	if electionID != "" && role != models.RoleAdmin {
		return nil, common.NewValidationError("election_id", "only admin invitations target an election")
	}

	token, err := common.MakeRandHexString(common.InvitationTokenSize)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	now := s.now()
	inv := &models.Invitation{
		Email:     email,
		Token:     token,
		Role:      role,
		ExpiresAt: now.Add(s.validity),
		IssuerID:  actor.UserID,
	}
	if electionID != "" {
		inv.ElectionID = &electionID
	}

	err = s.repomanager.WithTx(ctx, func(ctx context.Context, repos repomanager.Repositories) error {
		if role == models.RoleAdmin && electionID != "" {
			p, err := propose(ctx, repos, email, electionID)
			if err != nil {
				return err
			}
			if err := p.Err(); err != nil {
				return err
			}
		} else if _, err := repos.Users().GetByEmail(ctx, email); err == nil {
			return common.ErrEmailInUse
		} else if !errors.Is(err, common.ErrorNotFound) {
			return fmt.Errorf("load user: %w", err)
		}

		prior, err := repos.Invitations().ListByEmail(ctx, email)
		if err != nil {
			return fmt.Errorf("load invitations: %w", err)
		}
		for _, p := range prior {
			if p.Live(now) {
				return common.ErrPendingInvitation
			}
			if err := repos.Invitations().Delete(ctx, p.ID); err != nil {
				return fmt.Errorf("discard stale invitation: %w", err)
			}
		}

		if err := repos.Invitations().Create(ctx, inv); err != nil {
			if errors.Is(err, common.ErrUniqueViolation) {
				return common.ErrPendingInvitation
			}
			return fmt.Errorf("create invitation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	msg := notify.Invitation{
		Email:       email,
		Link:        s.link(token),
		Role:        role,
		InviterName: s.displayName(ctx, actor.UserID, "The election office"),
		ExpiresAt:   inv.ExpiresAt,
	}
	if err := s.notifier.SendInvitation(ctx, msg); err != nil {
		s.logger.Error(ctx, "invitation delivery failed", "invitation_id", inv.ID, "error", err)
		if derr := s.discard(ctx, inv.ID); derr != nil {
			s.logger.Error(ctx, "orphaned invitation left behind", "invitation_id", inv.ID, "error", derr)
			return nil, fmt.Errorf("discard undelivered invitation: %w", derr)
		}
		return nil, common.ErrDeliveryFailed
	}

	s.record(ctx, actor, models.ActionInvitationIssued, electionID, map[string]any{
		"invitation_id": inv.ID, "role": string(role),
	})
	return inv, nil
}

func (s *InvitationService) link(token string) string {
	sep := "?"
	if strings.Contains(s.linkBase, "?") {
		sep = "&"
	}
	return s.linkBase + sep + "token=" + url.QueryEscape(token)
}

// Accept redeems token and creates the account it was issued for. The
// account, any admin assignment and the used flag are written together.
func (s *InvitationService) Accept(ctx context.Context, token, fullName, password string, role models.Role) (*models.User, error) {
	fullName = strings.TrimSpace(fullName)
	if token == "" {
		return nil, common.ErrTokenNotFound
	}
	if fullName == "" {
		return nil, common.NewValidationError("full_name", "is required")
	}
	if len(password) < minPasswordLength {
		return nil, common.NewValidationError("password", fmt.Sprintf("must be at least %d characters", minPasswordLength))
	}
	hash := cryptox.HashPassword(password)

	var (
		inv      *models.Invitation
		user     *models.User
		replaced []string
	)
	err := s.repomanager.WithTx(ctx, func(ctx context.Context, repos repomanager.Repositories) error {
		var err error
		inv, err = repos.Invitations().GetByTokenForUpdate(ctx, token)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrTokenNotFound
			}
			return fmt.Errorf("load invitation: %w", err)
		}
		if inv.Used {
			return common.ErrTokenUsed
		}
		if !s.now().Before(inv.ExpiresAt) {
			return common.ErrTokenExpired
		}
		if role != "" && role != inv.Role {
			return common.NewValidationError("role", "does not match the invitation")
		}

		if inv.Role.Singleton() {
			replaced, err = repos.Users().DeleteByRole(ctx, inv.Role)
			if err != nil {
				return fmt.Errorf("replace %s: %w", inv.Role, err)
			}
		}

		user, err = s.resolveAccount(ctx, repos, inv, fullName, hash)
		if err != nil {
			return err
		}

		if inv.Role == models.RoleAdmin && inv.ElectionID != nil {
			if _, err := loadElection(ctx, repos, *inv.ElectionID, false); err != nil {
				return err
			}
			a := &models.AdminAssignment{AdminID: user.ID, ElectionID: *inv.ElectionID, AssignerID: inv.IssuerID}
			if err := repos.Assignments().Create(ctx, a); err != nil {
				if errors.Is(err, common.ErrUniqueViolation) {
					return common.ErrAlreadyAssigned
				}
				return fmt.Errorf("create assignment: %w", err)
			}
		}

		ok, err := repos.Invitations().MarkUsed(ctx, inv.ID)
		if err != nil {
			return fmt.Errorf("mark invitation used: %w", err)
		}
		if !ok {
			return common.ErrTokenUsed
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	actor := models.Actor{UserID: user.ID, Role: user.Role}
	electionID := ""
	if inv.ElectionID != nil {
		electionID = *inv.ElectionID
	}
	if len(replaced) > 0 {
		s.record(ctx, actor, models.ActionSingletonRoleReplaced, "", map[string]any{
			"role": string(inv.Role), "removed_user_ids": replaced,
		})
	}
	s.record(ctx, actor, models.ActionUserCreated, electionID, map[string]any{"user_id": user.ID, "role": string(user.Role)})
	s.record(ctx, actor, models.ActionInvitationAccepted, electionID, map[string]any{"invitation_id": inv.ID})

	return user, nil
}

// resolveAccount creates the invited account. An existing admin without an
// assignment is reused for a new admin invitation.
func (s *InvitationService) resolveAccount(ctx context.Context, repos repomanager.Repositories, inv *models.Invitation, fullName, hash string) (*models.User, error) {
	existing, err := repos.Users().GetByEmail(ctx, inv.Email)
	switch {
	case errors.Is(err, common.ErrorNotFound):
	case err != nil:
		return nil, fmt.Errorf("load user: %w", err)
	case existing.Role == models.RoleAdmin && inv.Role == models.RoleAdmin:
		return existing, nil
	default:
		return nil, common.ErrEmailInUse
	}

	user, err := repos.Users().Create(ctx, &models.User{
		Email:        inv.Email,
		FullName:     fullName,
		PasswordHash: hash,
		Role:         inv.Role,
		Status:       models.UserActive,
	})
	if err != nil {
		if errors.Is(err, common.ErrUniqueViolation) {
			return nil, common.ErrEmailInUse
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Bootstrap invites email as SUPERADMIN when nobody holds the role yet.
// It is a no-op when email is empty or a SUPERADMIN exists.
func (s *InvitationService) Bootstrap(ctx context.Context, email string) (*models.Invitation, error) {
	if email == "" {
		return nil, nil
	}
	holders, err := s.repomanager.Repos().Users().ListByRole(ctx, models.RoleSuperAdmin, models.UserActive)
	if err != nil {
		return nil, fmt.Errorf("load superadmins: %w", err)
	}
	if len(holders) > 0 {
		return nil, nil
	}
	inv, err := s.Issue(ctx, models.SystemActor, email, models.RoleSuperAdmin, "")
	if errors.Is(err, common.ErrPendingInvitation) {
		s.logger.Info(ctx, "bootstrap invitation already pending", "email", email)
		return nil, nil
	}
	return inv, err
}
