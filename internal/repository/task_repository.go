package repository

import (
	"github.com/nojimad/collab-todo/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindByID finds a task by ID with optional preloading
func (r *GormTaskRepository) FindByID(id uint64, preload ...string) (*models.Task, error) {
	var task models.Task
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&task, id).Error; err != nil {
		return nil, err
	}

	return &task, nil
}

// ListByProject returns a project's tasks ordered by deadline ascending.
// Tasks without a deadline sort first; the CASE expression keeps the
// NULL ordering identical across MySQL, Postgres and SQLite.
func (r *GormTaskRepository) ListByProject(projectID uint64) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.
		Preload("Assignee").
		Where("project_id = ?", projectID).
		Order("CASE WHEN tasks.deadline IS NULL THEN 0 ELSE 1 END, tasks.deadline ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// UpdateStatus overwrites a task's status
func (r *GormTaskRepository) UpdateStatus(taskID uint64, status models.TaskStatus) error {
	return r.db.Model(&models.Task{}).
		Where("id = ?", taskID).
		Update("status", status).Error
}

// Delete permanently removes a task
func (r *GormTaskRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Task{}, id).Error
}
