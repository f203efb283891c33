package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nojimad/collab-todo/internal/models"
	"github.com/nojimad/collab-todo/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrInvalidClanName = errors.New("clan name cannot be empty")
	ErrClanNameTaken   = errors.New("a clan with that name already exists")
	ErrClanNotFound    = errors.New("clan not found")
)

// ClanService provides business logic for clan membership. A user
// belongs to at most one clan at a time.
type ClanService struct {
	clanRepo repository.ClanRepository
	userRepo repository.UserRepository
}

// NewClanService creates a new ClanService.
func NewClanService(clanRepo repository.ClanRepository, userRepo repository.UserRepository) *ClanService {
	return &ClanService{
		clanRepo: clanRepo,
		userRepo: userRepo,
	}
}

// CreateClan creates a clan and makes the actor a member. No founder
// role is persisted; every member is equal.
func (s *ClanService) CreateClan(actor *models.User, name string) (*models.Clan, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidClanName
	}

	if _, err := s.clanRepo.FindByName(name); err == nil {
		return nil, ErrClanNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check clan name: %w", err)
	}

	clan := &models.Clan{Name: name}
	if err := s.clanRepo.Create(clan); err != nil {
		return nil, fmt.Errorf("failed to create clan: %w", err)
	}

	if err := s.userRepo.SetClan(actor.ID, &clan.ID); err != nil {
		return nil, fmt.Errorf("failed to add creator to clan: %w", err)
	}
	actor.ClanID = &clan.ID

	return clan, nil
}

// JoinClan moves the actor into the named clan. An existing membership
// is overwritten; joining a second clan silently leaves the first.
func (s *ClanService) JoinClan(actor *models.User, name string) (*models.Clan, error) {
	clan, err := s.clanRepo.FindByName(strings.TrimSpace(name))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClanNotFound
		}
		return nil, fmt.Errorf("failed to find clan: %w", err)
	}

	if err := s.userRepo.SetClan(actor.ID, &clan.ID); err != nil {
		return nil, fmt.Errorf("failed to join clan: %w", err)
	}
	actor.ClanID = &clan.ID

	return clan, nil
}

// LeaveClan clears the actor's membership. The clan itself is kept.
// Leaving while clanless is an idempotent success.
func (s *ClanService) LeaveClan(actor *models.User) error {
	if err := s.userRepo.SetClan(actor.ID, nil); err != nil {
		return fmt.Errorf("failed to leave clan: %w", err)
	}
	actor.ClanID = nil

	return nil
}
