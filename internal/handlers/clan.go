package handlers

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/nojimad/collab-todo/internal/flash"
	"github.com/nojimad/collab-todo/internal/services"
)

// ClanHandler coordinates clan membership endpoints.
type ClanHandler struct {
	clanService *services.ClanService
	authService *services.AuthService
}

// NewClanHandler creates a new ClanHandler.
func NewClanHandler(clanService *services.ClanService, authService *services.AuthService) *ClanHandler {
	return &ClanHandler{
		clanService: clanService,
		authService: authService,
	}
}

// CreateClan creates a clan and adds the actor to it.
func (h *ClanHandler) CreateClan(c *gin.Context) {
	user, ok := currentUser(c, h.authService)
	if !ok {
		return
	}

	clan, err := h.clanService.CreateClan(user, c.PostForm("clan_name"))
	if err != nil {
		respondClanError(c, err)
		return
	}

	flash.Success(c, fmt.Sprintf("Clan '%s' created!", clan.Name))
	redirectBack(c)
}

// JoinClan moves the actor into an existing clan.
func (h *ClanHandler) JoinClan(c *gin.Context) {
	user, ok := currentUser(c, h.authService)
	if !ok {
		return
	}

	clan, err := h.clanService.JoinClan(user, c.PostForm("clan_name"))
	if err != nil {
		respondClanError(c, err)
		return
	}

	flash.Success(c, fmt.Sprintf("Joined clan %s", clan.Name))
	redirectBack(c)
}

// LeaveClan clears the actor's membership.
func (h *ClanHandler) LeaveClan(c *gin.Context) {
	user, ok := currentUser(c, h.authService)
	if !ok {
		return
	}

	if err := h.clanService.LeaveClan(user); err != nil {
		flash.Error(c, "Failed to leave clan")
		redirectBack(c)
		return
	}

	flash.Success(c, "You left the clan")
	redirectBack(c)
}

func respondClanError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidClanName):
		flash.Error(c, "Clan name is required")
	case errors.Is(err, services.ErrClanNameTaken):
		flash.Error(c, "A clan with that name already exists")
	case errors.Is(err, services.ErrClanNotFound):
		flash.Error(c, "Clan not found")
	default:
		flash.Error(c, "Clan operation failed. Please try again.")
	}
	redirectBack(c)
}
