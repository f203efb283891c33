package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/nojimad/collab-todo/internal/middleware"
	"github.com/nojimad/collab-todo/internal/models"
	"github.com/nojimad/collab-todo/internal/services"
)

// redirectBack sends the browser to the page it came from, falling
// back to the dashboard.
func redirectBack(c *gin.Context) {
	target := c.Request.Referer()
	if target == "" {
		target = "/dashboard"
	}
	c.Redirect(http.StatusFound, target)
}

// currentUser resolves the session user. A stale session (user row
// gone) is cleared and the browser sent back to the login page.
func currentUser(c *gin.Context, authService *services.AuthService) (*models.User, bool) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.Redirect(http.StatusFound, "/login")
		return nil, false
	}

	user, err := authService.GetUser(userID)
	if err != nil {
		session := sessions.Default(c)
		session.Clear()
		_ = session.Save()
		c.Redirect(http.StatusFound, "/login")
		return nil, false
	}

	return user, true
}
