package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nojimad/collab-todo/internal/flash"
	"github.com/nojimad/collab-todo/internal/middleware"
	"github.com/nojimad/collab-todo/internal/models"
	"github.com/nojimad/collab-todo/internal/services"
	"github.com/nojimad/collab-todo/internal/views"
)

// TaskHandler serves the dashboard and the task lifecycle endpoints.
type TaskHandler struct {
	taskService *services.TaskService
	authService *services.AuthService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService, authService *services.AuthService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		authService: authService,
	}
}

// Dashboard renders the user's project with its tasks and the
// assignee picker. The project is provisioned on first visit.
func (h *TaskHandler) Dashboard(c *gin.Context) {
	user, ok := currentUser(c, h.authService)
	if !ok {
		return
	}

	project, err := h.taskService.EnsureProject(user)
	if err != nil {
		flash.Error(c, "Failed to load your project")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	tasks, err := h.taskService.ListTasks(project)
	if err != nil {
		flash.Error(c, "Failed to load tasks")
		tasks = nil
	}

	users, err := h.taskService.ListUsers()
	if err != nil {
		flash.Error(c, "Failed to load users")
		users = nil
	}

	view := views.DashboardView{
		Username:    user.Username,
		ProjectName: project.Name,
		Tasks:       views.ToTaskViews(tasks),
		Users:       views.ToUserViews(users),
		Flashes:     flash.Take(c),
	}
	if user.Clan != nil {
		view.ClanName = user.Clan.Name
	}

	c.HTML(http.StatusOK, "dashboard.html", view)
}

// CreateTask handles the dashboard's new-task form.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	user, ok := currentUser(c, h.authService)
	if !ok {
		return
	}

	project, err := h.taskService.EnsureProject(user)
	if err != nil {
		flash.Error(c, "Failed to load your project")
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	result, err := h.taskService.CreateTask(services.CreateTaskInput{
		Project:      project,
		Actor:        user,
		Title:        c.PostForm("title"),
		Description:  c.PostForm("description"),
		Deadline:     c.PostForm("deadline"),
		AssigneeName: c.PostForm("assigned_to"),
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	if result.AssigneeNotFound {
		flash.Warning(c, "Assigned user not found; leaving unassigned.")
	}
	flash.Success(c, "Task created!")
	c.Redirect(http.StatusFound, "/dashboard")
}

// ChangeStatus transitions a task's status.
func (h *TaskHandler) ChangeStatus(c *gin.Context) {
	user, ok := currentUser(c, h.authService)
	if !ok {
		return
	}

	task, ok := middleware.GetTask(c)
	if !ok {
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	status := models.TaskStatus(c.Param("new_status"))
	if err := h.taskService.SetStatus(task.ID, status, user); err != nil {
		respondTaskError(c, err)
		return
	}

	flash.Success(c, "Task updated!")
	c.Redirect(http.StatusFound, "/dashboard")
}

// DeleteTask permanently removes a task.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	user, ok := currentUser(c, h.authService)
	if !ok {
		return
	}

	task, ok := middleware.GetTask(c)
	if !ok {
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	if err := h.taskService.DeleteTask(task.ID, user); err != nil {
		respondTaskError(c, err)
		return
	}

	flash.Success(c, "Task deleted")
	c.Redirect(http.StatusFound, "/dashboard")
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTaskNotFound):
		// The task vanished between the middleware lookup and the
		// mutation; keep the 404 contract.
		c.String(http.StatusNotFound, "Task not found")
		return
	case errors.Is(err, services.ErrTitleRequired):
		flash.Error(c, "Task title is required")
	case errors.Is(err, services.ErrInvalidDeadline):
		flash.Error(c, "Invalid date format (use YYYY-MM-DD)")
	case errors.Is(err, services.ErrAssignmentForbidden):
		flash.Error(c, services.ErrAssignmentForbidden.Error())
	case errors.Is(err, services.ErrInvalidStatus):
		flash.Error(c, "Invalid status")
	case errors.Is(err, services.ErrTaskPermissionDenied):
		flash.Error(c, "You do not have permission to modify this task")
	default:
		flash.Error(c, "Task operation failed. Please try again.")
	}
	c.Redirect(http.StatusFound, "/dashboard")
}
