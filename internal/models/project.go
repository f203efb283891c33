package models

import "time"

type Project struct {
	ID   uint64 `gorm:"primarykey"`
	Name string `gorm:"type:varchar(120);not null"`
	// OwnerID is unique so concurrent first visits cannot create two
	// projects for the same user.
	OwnerID   uint64 `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// Relations
	Owner User   `gorm:"foreignKey:OwnerID"`
	Tasks []Task `gorm:"foreignKey:ProjectID"`
}
