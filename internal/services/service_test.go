package services

import (
	"testing"

	"github.com/nojimad/collab-todo/internal/models"
	"github.com/nojimad/collab-todo/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type serviceTestEnv struct {
	db          *gorm.DB
	authService *AuthService
	clanService *ClanService
	taskService *TaskService
}

func setupServiceTestEnv(t *testing.T) serviceTestEnv {
	t.Helper()

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

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return serviceTestEnv{
		db:          db,
		authService: NewAuthService(userRepo),
		clanService: NewClanService(clanRepo, userRepo),
		taskService: NewTaskService(taskRepo, projectRepo, userRepo),
	}
}

func registerTestUser(t *testing.T, env serviceTestEnv, username string) *models.User {
	t.Helper()

	user, err := env.authService.Register(RegisterInput{
		Username: username,
		Password: "password",
	})
	require.NoError(t, err)
	return user
}
