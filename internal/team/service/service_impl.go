package service

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"

	authdomain "github.com/featureblastlabs/featureblast/internal/auth/domain"
	"github.com/featureblastlabs/featureblast/internal/config"
	"github.com/featureblastlabs/featureblast/internal/providers/email"
	"github.com/featureblastlabs/featureblast/internal/team/domain"
)

type service struct {
	repo   domain.Repository
	users  authdomain.Repository
	mailer email.Provider
	cfg    config.Config
	genID  *snowflake.Node
	log    *zap.Logger
}

func New(repo domain.Repository, users authdomain.Repository, mailer email.Provider, cfg config.Config, genID *snowflake.Node, log *zap.Logger) domain.Service {
	return &service{repo: repo, users: users, mailer: mailer, cfg: cfg, genID: genID, log: log}
}

func (s *service) Invite(ctx context.Context, userID int64, req domain.InviteRequest) (*domain.TeamMember, error) {
	address := strings.ToLower(strings.TrimSpace(req.Email))
	if address == "" {
		return nil, domain.ErrEmailRequired
	}
	if _, err := mail.ParseAddress(address); err != nil {
		return nil, domain.ErrInvalidEmail
	}
	if !req.Role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	member := &domain.TeamMember{
		ID:           s.genID.Generate().Int64(),
		UserID:       userID,
		InvitedEmail: address,
		Role:         req.Role,
	}
	if err := s.repo.Create(ctx, member); err != nil {
		return nil, err
	}

	// Invitation email is best effort. The membership row is already
	// committed and the owner sees it in the list either way.
	go s.sendInviteEmail(member)

	return member, nil
}

func (s *service) List(ctx context.Context, userID int64) ([]domain.TeamMember, error) {
	return s.repo.ListByOwner(ctx, userID)
}

func (s *service) Remove(ctx context.Context, userID, memberID int64) error {
	return s.repo.Delete(ctx, userID, memberID)
}

func (s *service) sendInviteEmail(member *domain.TeamMember) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	inviter := "A Feature Blast user"
	if owner, err := s.users.FindByID(ctx, member.UserID); err == nil {
		inviter = owner.Username
	}

	data := map[string]interface{}{
		"inviter":    inviter,
		"role":       string(member.Role),
		"accept_url": s.cfg.PublicBaseURL + "/signup",
	}
	if err := s.mailer.SendTemplate(ctx, []string{member.InvitedEmail}, "invite_member", data); err != nil {
		s.log.Warn("invite email failed",
			zap.String("email", member.InvitedEmail),
			zap.Error(err))
	}
}
