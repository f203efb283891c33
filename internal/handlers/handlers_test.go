package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/nojimad/collab-todo/internal/models"
	"github.com/nojimad/collab-todo/internal/repository"
	"github.com/nojimad/collab-todo/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type webTestEnv struct {
	db     *gorm.DB
	router *gin.Engine
}

func setupWebTestEnv(t *testing.T) webTestEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Clan{},
		&models.Project{},
		&models.Task{},
	)
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(db)
	clanRepo := repository.NewClanRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	authService := services.NewAuthService(userRepo)
	clanService := services.NewClanService(clanRepo, userRepo)
	taskService := services.NewTaskService(taskRepo, projectRepo, userRepo)

	router := NewRouter(
		cookie.NewStore([]byte("test-secret")),
		NewAuthHandler(authService),
		NewClanHandler(clanService, authService),
		NewTaskHandler(taskService, authService),
		taskRepo,
	)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return webTestEnv{
		db:     db,
		router: router,
	}
}

// browser drives the router like a cookie-keeping HTTP client so the
// session survives across requests, mirroring a real login flow.
type browser struct {
	t       *testing.T
	router  *gin.Engine
	cookies []*http.Cookie
}

func newBrowser(t *testing.T, env webTestEnv) *browser {
	return &browser{t: t, router: env.router}
}

func (b *browser) do(req *http.Request) *httptest.ResponseRecorder {
	b.t.Helper()

	for _, c := range b.cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	b.router.ServeHTTP(w, req)

	b.storeCookies(w.Result().Cookies())
	return w
}

func (b *browser) storeCookies(incoming []*http.Cookie) {
	for _, c := range incoming {
		replaced := false
		for i, existing := range b.cookies {
			if existing.Name == c.Name {
				b.cookies[i] = c
				replaced = true
				break
			}
		}
		if !replaced {
			b.cookies = append(b.cookies, c)
		}
	}
}

func (b *browser) get(path string) *httptest.ResponseRecorder {
	b.t.Helper()
	return b.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (b *browser) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	b.t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return b.do(req)
}

// postFollow issues a form POST and then fetches the redirect target,
// returning the rendered page (where flashes show up).
func (b *browser) postFollow(path string, form url.Values) *httptest.ResponseRecorder {
	b.t.Helper()

	w := b.postForm(path, form)
	require.Equal(b.t, http.StatusFound, w.Code, "expected redirect from %s, got %d: %s", path, w.Code, w.Body.String())
	location := w.Header().Get("Location")
	require.NotEmpty(b.t, location)

	return b.get(location)
}

func (b *browser) register(username, password string) {
	b.t.Helper()
	w := b.postFollow("/register", url.Values{
		"username": {username},
		"password": {password},
	})
	require.Contains(b.t, w.Body.String(), "Account created. Please log in.")
}

func (b *browser) login(username, password string) {
	b.t.Helper()
	w := b.postForm("/login", url.Values{
		"username": {username},
		"password": {password},
	})
	require.Equal(b.t, http.StatusFound, w.Code)
	require.Equal(b.t, "/dashboard", w.Header().Get("Location"))
}

func (b *browser) logout() {
	b.t.Helper()
	w := b.get("/logout")
	require.Equal(b.t, http.StatusFound, w.Code)
}
