package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/nojimad/collab-todo/internal/constants"
	"github.com/nojimad/collab-todo/internal/flash"
	"github.com/nojimad/collab-todo/internal/services"
	"github.com/nojimad/collab-todo/internal/views"
)

// AuthHandler coordinates registration, login and logout.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// ShowLogin renders the login form. Authenticated users go straight
// to the dashboard.
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	if sessions.Default(c).Get(constants.ContextKeyUserID) != nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	c.HTML(http.StatusOK, "login.html", views.PageView{Flashes: flash.Take(c)})
}

// Login authenticates a user and initializes the session.
func (h *AuthHandler) Login(c *gin.Context) {
	user, err := h.authService.Login(services.LoginInput{
		Username: c.PostForm("username"),
		Password: c.PostForm("password"),
	})
	if err != nil {
		flash.Error(c, "Invalid username or password")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	session := sessions.Default(c)
	session.Set(constants.ContextKeyUserID, user.ID)
	if err := session.Save(); err != nil {
		flash.Error(c, "Failed to save session")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}

// ShowRegister renders the registration form.
func (h *AuthHandler) ShowRegister(c *gin.Context) {
	if sessions.Default(c).Get(constants.ContextKeyUserID) != nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	c.HTML(http.StatusOK, "register.html", views.PageView{Flashes: flash.Take(c)})
}

// Register creates a new user account.
func (h *AuthHandler) Register(c *gin.Context) {
	_, err := h.authService.Register(services.RegisterInput{
		Username: c.PostForm("username"),
		Password: c.PostForm("password"),
	})
	if err != nil {
		respondRegisterError(c, err)
		return
	}

	flash.Success(c, "Account created. Please log in.")
	c.Redirect(http.StatusFound, "/login")
}

// Logout removes the authentication session.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	_ = session.Save()

	c.Redirect(http.StatusFound, "/login")
}

func respondRegisterError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrFieldsRequired):
		flash.Error(c, "Please fill all fields")
	case errors.Is(err, services.ErrUsernameTaken):
		flash.Error(c, "Username already taken")
	default:
		flash.Error(c, "Registration failed. Please try again.")
	}
	c.Redirect(http.StatusFound, "/register")
}
