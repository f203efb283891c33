package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/nojimad/collab-todo/internal/constants"
	"github.com/nojimad/collab-todo/internal/middleware"
	"github.com/nojimad/collab-todo/internal/repository"
	"github.com/nojimad/collab-todo/internal/templates"
)

// NewRouter builds the full application router. The session store is
// injected so production can use Redis while tests use an in-memory
// cookie store.
func NewRouter(
	store sessions.Store,
	authHandler *AuthHandler,
	clanHandler *ClanHandler,
	taskHandler *TaskHandler,
	taskRepo repository.TaskRepository,
) *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(templates.Load())
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "collab-todo is running",
		})
	})

	r.GET("/", func(c *gin.Context) {
		if sessions.Default(c).Get(constants.ContextKeyUserID) != nil {
			c.Redirect(http.StatusFound, "/dashboard")
			return
		}
		c.Redirect(http.StatusFound, "/login")
	})

	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.GET("/register", authHandler.ShowRegister)
	r.POST("/register", authHandler.Register)

	authed := r.Group("/")
	authed.Use(middleware.RequireAuth())
	{
		authed.GET("/logout", authHandler.Logout)

		authed.GET("/dashboard", taskHandler.Dashboard)
		authed.POST("/dashboard", taskHandler.CreateTask)

		authed.POST("/create_clan", clanHandler.CreateClan)
		authed.POST("/join_clan", clanHandler.JoinClan)
		authed.POST("/leave_clan", clanHandler.LeaveClan)

		task := authed.Group("/task/:id")
		task.Use(middleware.RequireTask(taskRepo))
		{
			task.POST("/status/:new_status", taskHandler.ChangeStatus)
			task.POST("/delete", taskHandler.DeleteTask)
		}
	}

	return r
}
