package repository

import (
	"errors"

	"github.com/nojimad/collab-todo/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// GetOrCreate returns the owner's project, creating it when absent.
// The insert ignores a conflicting row on owner_id, so two concurrent
// first visits end up with a single project; the loser re-reads the
// winner's row.
func (r *GormProjectRepository) GetOrCreate(ownerID uint64, name string) (*models.Project, error) {
	var project models.Project
	err := r.db.Where("owner_id = ?", ownerID).First(&project).Error
	if err == nil {
		return &project, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	project = models.Project{
		Name:    name,
		OwnerID: ownerID,
	}
	err = r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "owner_id"}},
		DoNothing: true,
	}).Create(&project).Error
	if err != nil {
		return nil, err
	}

	if project.ID == 0 {
		// Lost the race; fetch the row the other request inserted.
		if err := r.db.Where("owner_id = ?", ownerID).First(&project).Error; err != nil {
			return nil, err
		}
	}

	return &project, nil
}
