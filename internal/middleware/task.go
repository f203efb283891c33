package middleware

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nojimad/collab-todo/internal/constants"
	"github.com/nojimad/collab-todo/internal/models"
	"github.com/nojimad/collab-todo/internal/repository"
	"gorm.io/gorm"
)

// RequireTask resolves the :id route parameter to an existing task and
// stores it in the context. An unknown or malformed id is the one
// place the application answers with a plain 404 instead of a flash
// message.
func RequireTask(taskRepo repository.TaskRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.String(http.StatusNotFound, "Task not found")
			c.Abort()
			return
		}

		task, err := taskRepo.FindByID(taskID, "Project")
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.String(http.StatusNotFound, "Task not found")
			} else {
				c.String(http.StatusInternalServerError, "Internal server error")
			}
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyTask, *task)
		c.Next()
	}
}

// GetTask retrieves the task stored by RequireTask.
func GetTask(c *gin.Context) (models.Task, bool) {
	v, exists := c.Get(constants.ContextKeyTask)
	if !exists {
		return models.Task{}, false
	}

	task, ok := v.(models.Task)
	return task, ok
}
