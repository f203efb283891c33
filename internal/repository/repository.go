package repository

import (
	"github.com/nojimad/collab-todo/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// ListAll returns every user, ordered by username
	ListAll() ([]models.User, error)

	// SetClan updates a user's clan membership; nil clears it
	SetClan(userID uint64, clanID *uint64) error
}

// ClanRepository defines the interface for clan data access
type ClanRepository interface {
	// Create creates a new clan
	Create(clan *models.Clan) error

	// FindByName finds a clan by its unique name
	FindByName(name string) (*models.Clan, error)
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// GetOrCreate returns the owner's project, creating it with the
	// given name when absent. Safe under concurrent first access.
	GetOrCreate(ownerID uint64, name string) (*models.Project, error)
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Task, error)

	// ListByProject returns a project's tasks ordered by deadline
	// ascending, tasks without a deadline first
	ListByProject(projectID uint64) ([]models.Task, error)

	// UpdateStatus overwrites a task's status
	UpdateStatus(taskID uint64, status models.TaskStatus) error

	// Delete permanently removes a task
	Delete(id uint64) error
}
