// Package views holds the read models handed to the page templates.
package views

import (
	"github.com/nojimad/collab-todo/internal/constants"
	"github.com/nojimad/collab-todo/internal/flash"
	"github.com/nojimad/collab-todo/internal/models"
)

// UserView represents a user in template data
type UserView struct {
	ID       uint64
	Username string
}

// TaskView represents a task row on the dashboard
type TaskView struct {
	ID          uint64
	Title       string
	Description string
	Deadline    string
	Status      models.TaskStatus
	Assignee    string
}

// DashboardView is the full dashboard page payload
type DashboardView struct {
	Username    string
	ClanName    string
	ProjectName string
	Tasks       []TaskView
	Users       []UserView
	Flashes     []flash.Message
}

// PageView is the payload for the login and register pages
type PageView struct {
	Flashes []flash.Message
}

// ToUserView converts a User model to UserView
func ToUserView(user models.User) UserView {
	return UserView{
		ID:       user.ID,
		Username: user.Username,
	}
}

// ToTaskView converts a Task model to TaskView
func ToTaskView(task models.Task) TaskView {
	view := TaskView{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
	}
	if task.Deadline != nil {
		view.Deadline = task.Deadline.Format(constants.DeadlineLayout)
	}
	if task.Assignee != nil {
		view.Assignee = task.Assignee.Username
	}
	return view
}

// ToTaskViews converts a slice of tasks, preserving order
func ToTaskViews(tasks []models.Task) []TaskView {
	items := make([]TaskView, len(tasks))
	for i, task := range tasks {
		items[i] = ToTaskView(task)
	}
	return items
}

// ToUserViews converts a slice of users, preserving order
func ToUserViews(users []models.User) []UserView {
	items := make([]UserView, len(users))
	for i, user := range users {
		items[i] = ToUserView(user)
	}
	return items
}
