// models/group.go
package models

// Group: именованная группа студентов. Связь с Student хранится только
// на стороне студента (students.group_id).
type Group struct {
	ID   uint   `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" db:"name" gorm:"uniqueIndex;not null;size:15"`
}

func (Group) TableName() string {
	return "groups"
}

// GroupRef is the short form of a group embedded into a student view.
type GroupRef struct {
	ID   uint   `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// GroupView is a group together with its current members.
type GroupView struct {
	ID       uint         `json:"id"`
	Name     string       `json:"name"`
	Students []StudentRef `json:"students"`
}
