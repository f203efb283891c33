package services

import (
	"errors"

	"github.com/nojimad/collab-todo/internal/models"
)

// ErrAssignmentForbidden is surfaced verbatim to the user when the
// assignment gate refuses a target assignee.
var ErrAssignmentForbidden = errors.New("You can only assign tasks to members of your clan.")

// CanAssign decides whether actor may assign a task to assignee.
// Leaving a task unassigned is always allowed. Otherwise the actor
// must be in a clan and the assignee must be in the same one, which
// means a clanless actor can never assign to anyone.
func CanAssign(actor, assignee *models.User) bool {
	if assignee == nil {
		return true
	}
	if actor.ClanID == nil || assignee.ClanID == nil {
		return false
	}
	return *actor.ClanID == *assignee.ClanID
}
