package generators

import "school-backend/models"

var StudentFirstNames = []string{
	"James", "John", "Robert", "Michael", "William",
	"David", "Richard", "Joseph", "Charles", "Thomas",
	"Mary", "Patricia", "Jennifer", "Elizabeth", "Linda",
	"Barbara", "Susan", "Margaret", "Jessica", "Sarah",
}

var StudentLastNames = []string{
	"Smith", "Murphy", "Jones", "Williams", "O'Kelly",
	"Brown", "Walsh", "Taylor", "Davies", "O'Brien",
	"Miller", "Wilson", "Garcia", "Rodriguez", "O'Neill",
	"Li", "Lam", "Lee", "White", "Anderson",
}

// DefaultCourses: каталог курсов по умолчанию.
var DefaultCourses = []models.CourseRecord{
	{Name: "English", Description: "English"},
	{Name: "World Literature", Description: "World Literature"},
	{Name: "Art", Description: "Art"},
	{Name: "Physics", Description: "Physics"},
	{Name: "Chemistry", Description: "Chemistry"},
	{Name: "Biology", Description: "Biology"},
	{Name: "Geology", Description: "Geology"},
	{Name: "Astronomy", Description: "Astronomy"},
	{Name: "Algebra", Description: "Algebra"},
	{Name: "Geometry", Description: "Geometry"},
}
