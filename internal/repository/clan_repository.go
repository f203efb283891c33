package repository

import (
	"github.com/nojimad/collab-todo/internal/models"
	"gorm.io/gorm"
)

// GormClanRepository is a GORM implementation of ClanRepository
type GormClanRepository struct {
	db *gorm.DB
}

// NewClanRepository creates a new ClanRepository
func NewClanRepository(db *gorm.DB) ClanRepository {
	return &GormClanRepository{db: db}
}

// Create creates a new clan
func (r *GormClanRepository) Create(clan *models.Clan) error {
	return r.db.Create(clan).Error
}

// FindByName finds a clan by its unique name
func (r *GormClanRepository) FindByName(name string) (*models.Clan, error) {
	var clan models.Clan
	if err := r.db.Where("name = ?", name).First(&clan).Error; err != nil {
		return nil, err
	}
	return &clan, nil
}
