package models

// Записи, которые генерируются при заполнении базы тестовыми данными.

type GroupRecord struct {
	Name string `json:"name"`
}

type StudentRecord struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type CourseRecord struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// SeedResult is returned by a seeding pass for verification and echo.
type SeedResult struct {
	Groups   []GroupRecord   `json:"groups"`
	Students []StudentRecord `json:"students"`
	Courses  []CourseRecord  `json:"courses"`
}

// SeedIDs holds the identifiers the store assigned to a freshly inserted batch,
// in insertion order.
type SeedIDs struct {
	Groups     []Group
	StudentIDs []uint
	CourseIDs  []uint
}
