package models

import "time"

type TaskStatus string

const (
	TaskStatusTodo  TaskStatus = "todo"
	TaskStatusDoing TaskStatus = "doing"
	TaskStatusDone  TaskStatus = "done"
)

// Valid reports whether s is one of the three known statuses. Every
// transition between valid statuses is permitted.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusDoing, TaskStatusDone:
		return true
	}
	return false
}

type Task struct {
	ID          uint64     `gorm:"primarykey"`
	Title       string     `gorm:"type:varchar(200);not null"`
	Description string     `gorm:"type:text"`
	Deadline    *time.Time `gorm:"index"`
	Status      TaskStatus `gorm:"type:varchar(20);not null;default:'todo'"`
	ProjectID   uint64     `gorm:"index;not null"`
	AssigneeID  *uint64    `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Relations
	Project  Project `gorm:"foreignKey:ProjectID"`
	Assignee *User   `gorm:"foreignKey:AssigneeID"`
}
