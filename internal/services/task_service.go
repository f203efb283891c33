package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nojimad/collab-todo/internal/constants"
	"github.com/nojimad/collab-todo/internal/models"
	"github.com/nojimad/collab-todo/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTitleRequired        = errors.New("task title is required")
	ErrInvalidDeadline      = errors.New("invalid date format (use YYYY-MM-DD)")
	ErrInvalidStatus        = errors.New("invalid status")
	ErrTaskNotFound         = errors.New("task not found")
	ErrTaskPermissionDenied = errors.New("you do not have permission to modify this task")
)

// TaskService handles project provisioning and the task lifecycle.
type TaskService struct {
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository, projectRepo repository.ProjectRepository, userRepo repository.UserRepository) *TaskService {
	return &TaskService{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		userRepo:    userRepo,
	}
}

// EnsureProject returns the owner's project, provisioning
// "{username}'s Project" on first access. At most one project per
// owner ever exists; the repository upsert absorbs concurrent first
// visits.
func (s *TaskService) EnsureProject(owner *models.User) (*models.Project, error) {
	name := fmt.Sprintf("%s's Project", owner.Username)
	project, err := s.projectRepo.GetOrCreate(owner.ID, name)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure project: %w", err)
	}
	return project, nil
}

// CreateTaskInput represents the dashboard form for a new task.
// Deadline and AssigneeName are the raw form values.
type CreateTaskInput struct {
	Project      *models.Project
	Actor        *models.User
	Title        string
	Description  string
	Deadline     string
	AssigneeName string
}

// CreateTaskResult reports a created task plus non-fatal conditions
// the caller should surface.
type CreateTaskResult struct {
	Task *models.Task
	// AssigneeNotFound is set when an assignee name was given but no
	// such user exists; the task is created unassigned.
	AssigneeNotFound bool
}

// CreateTask validates and persists a new task. Any validation or
// authorization failure aborts the whole creation; no partial task is
// ever persisted.
func (s *TaskService) CreateTask(input CreateTaskInput) (*CreateTaskResult, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	var deadline *time.Time
	if raw := strings.TrimSpace(input.Deadline); raw != "" {
		parsed, err := time.Parse(constants.DeadlineLayout, raw)
		if err != nil {
			return nil, ErrInvalidDeadline
		}
		deadline = &parsed
	}

	result := &CreateTaskResult{}

	var assignee *models.User
	if name := strings.TrimSpace(input.AssigneeName); name != "" {
		found, err := s.userRepo.FindByUsername(name)
		switch {
		case err == nil:
			assignee = found
		case errors.Is(err, gorm.ErrRecordNotFound):
			result.AssigneeNotFound = true
		default:
			return nil, fmt.Errorf("failed to find assignee: %w", err)
		}
	}

	if !CanAssign(input.Actor, assignee) {
		return nil, ErrAssignmentForbidden
	}

	task := &models.Task{
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Deadline:    deadline,
		Status:      models.TaskStatusTodo,
		ProjectID:   input.Project.ID,
	}
	if assignee != nil {
		task.AssigneeID = &assignee.ID
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	result.Task = task
	return result, nil
}

// SetStatus transitions a task to the given status. All transitions
// between valid statuses are permitted and repeating the current
// status is a no-op success.
func (s *TaskService) SetStatus(taskID uint64, status models.TaskStatus, actor *models.User) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}

	task, err := s.findForMutation(taskID, actor)
	if err != nil {
		return err
	}

	if err := s.taskRepo.UpdateStatus(task.ID, status); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	return nil
}

// DeleteTask permanently removes a task.
func (s *TaskService) DeleteTask(taskID uint64, actor *models.User) error {
	task, err := s.findForMutation(taskID, actor)
	if err != nil {
		return err
	}

	if err := s.taskRepo.Delete(task.ID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}

// ListTasks returns a project's tasks, deadline ascending, undated
// tasks first.
func (s *TaskService) ListTasks(project *models.Project) ([]models.Task, error) {
	tasks, err := s.taskRepo.ListByProject(project.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// ListUsers returns every registered user for the assignee picker.
func (s *TaskService) ListUsers() ([]models.User, error) {
	users, err := s.userRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// findForMutation loads a task and checks that the actor may mutate
// it: the actor must own the task's project or be its assignee.
func (s *TaskService) findForMutation(taskID uint64, actor *models.User) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID, "Project")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if task.Project.OwnerID != actor.ID {
		if task.AssigneeID == nil || *task.AssigneeID != actor.ID {
			return nil, ErrTaskPermissionDenied
		}
	}

	return task, nil
}
