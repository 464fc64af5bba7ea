package models

type Student struct {
	ID        uint   `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	GroupID   *uint  `json:"group_id,omitempty" db:"group_id" gorm:"index"`
	FirstName string `json:"first_name" db:"first_name" gorm:"not null;size:150"`
	LastName  string `json:"last_name" db:"last_name" gorm:"not null;size:150"`
}

func (Student) TableName() string {
	return "students"
}

// StudentRef is the short form of a student embedded into a group view.
type StudentRef struct {
	ID        uint   `json:"id" db:"id"`
	FirstName string `json:"first_name" db:"first_name"`
	LastName  string `json:"last_name" db:"last_name"`
}

// StudentView: студент вместе с группой (может отсутствовать) и курсами.
type StudentView struct {
	ID        uint         `json:"id"`
	FirstName string       `json:"first_name"`
	LastName  string       `json:"last_name"`
	Group     *GroupRef    `json:"group"`
	Courses   []CourseView `json:"courses"`
}

// Page задаёт смещение и ограничение выборки. Limit == 0 означает "без ограничения".
type Page struct {
	Limit  int `json:"limit" validate:"min=0"`
	Offset int `json:"offset" validate:"min=0"`
}
