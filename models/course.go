package models

type Course struct {
	ID          uint   `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Name        string `json:"name" db:"name" gorm:"uniqueIndex;not null;size:100"`
	Description string `json:"description" db:"description" gorm:"size:250"`
}

func (Course) TableName() string {
	return "courses"
}

// Enrollment is the student/course join entity. The composite primary key
// rules out duplicate pairs.
type Enrollment struct {
	StudentID uint `json:"student_id" db:"student_id" gorm:"primaryKey;autoIncrement:false"`
	CourseID  uint `json:"course_id" db:"course_id" gorm:"primaryKey;autoIncrement:false;index"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}

type CourseView struct {
	ID          uint   `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
}
