package models

import "time"

type User struct {
	ID           uint64  `gorm:"primarykey"`
	Username     string  `gorm:"type:varchar(80);uniqueIndex;not null"`
	PasswordHash string  `gorm:"type:varchar(255);not null"`
	ClanID       *uint64 `gorm:"index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Relations
	Clan          *Clan  `gorm:"foreignKey:ClanID"`
	AssignedTasks []Task `gorm:"foreignKey:AssigneeID"`
}
