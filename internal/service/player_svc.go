package service

import (
	"context"
	"fmt"

	"github.com/you/padel-club/internal/domain"
)

type PlayerSvc struct {
	players PlayerStore
}

func NewPlayerSvc(players PlayerStore) *PlayerSvc {
	return &PlayerSvc{players: players}
}

func (s *PlayerSvc) Create(ctx context.Context, in domain.Player) (*domain.Player, error) {
	if in.Email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	if in.Role == "" {
		in.Role = domain.RolePlayer
	}
	if in.SkillLevel != "" && !in.SkillLevel.Valid() {
		return nil, fmt.Errorf("%w: unknown skill level %q", domain.ErrValidation, in.SkillLevel)
	}
	in.Active = true
	if err := s.players.Create(ctx, &in); err != nil {
		return nil, err
	}
	return &in, nil
}

func (s *PlayerSvc) Get(ctx context.Context, id string) (*domain.Player, error) {
	return s.players.ByID(ctx, id)
}

func (s *PlayerSvc) List(ctx context.Context, page, size int32, activeOnly bool) ([]domain.Player, error) {
	return s.players.List(ctx, page, size, activeOnly)
}

func (s *PlayerSvc) Update(ctx context.Context, in domain.Player) (*domain.Player, error) {
	current, err := s.players.ByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if in.SkillLevel != "" && !in.SkillLevel.Valid() {
		return nil, fmt.Errorf("%w: unknown skill level %q", domain.ErrValidation, in.SkillLevel)
	}
	in.Role = current.Role // role changes go through admin tooling, not profile updates
	in.CreatedAt = current.CreatedAt
	if err := s.players.Update(ctx, &in); err != nil {
		return nil, err
	}
	return &in, nil
}

func (s *PlayerSvc) Deactivate(ctx context.Context, id string) error {
	return s.players.SetActive(ctx, id, false)
}

func (s *PlayerSvc) Activate(ctx context.Context, id string) error {
	return s.players.SetActive(ctx, id, true)
}
