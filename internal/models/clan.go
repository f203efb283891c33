package models

import "time"

type Clan struct {
	ID        uint64 `gorm:"primarykey"`
	Name      string `gorm:"type:varchar(120);uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// Relations
	Members []User `gorm:"foreignKey:ClanID"`
}
