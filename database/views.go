package database

import (
	"context"

	"school-backend/models"

	"github.com/jmoiron/sqlx"
)

// Обратные связи (группа -> студенты, студент -> курсы) собираются
// отдельными запросами по индексам, а не через связи ORM.

func (s *Store) groupRefs(ctx context.Context, ids []uint) (map[uint]models.GroupRef, error) {
	refs := make(map[uint]models.GroupRef, len(ids))
	if len(ids) == 0 {
		return refs, nil
	}

	query, args, err := sqlx.In(`SELECT id, name FROM "groups" WHERE id IN (?)`, ids)
	if err != nil {
		return nil, err
	}

	var rows []models.GroupRef
	if err := s.x.SelectContext(ctx, &rows, s.x.Rebind(query), args...); err != nil {
		return nil, err
	}
	for _, r := range rows {
		refs[r.ID] = r
	}
	return refs, nil
}

type enrolledCourse struct {
	StudentID uint `db:"student_id"`
	models.CourseView
}

func (s *Store) coursesByStudent(ctx context.Context, studentIDs []uint) (map[uint][]models.CourseView, error) {
	courses := make(map[uint][]models.CourseView, len(studentIDs))
	if len(studentIDs) == 0 {
		return courses, nil
	}

	query, args, err := sqlx.In(`
		SELECT e.student_id, c.id, c.name, c.description
		FROM enrollments e
		JOIN courses c ON c.id = e.course_id
		WHERE e.student_id IN (?)
		ORDER BY e.student_id, c.id`, studentIDs)
	if err != nil {
		return nil, err
	}

	var rows []enrolledCourse
	if err := s.x.SelectContext(ctx, &rows, s.x.Rebind(query), args...); err != nil {
		return nil, err
	}
	for _, r := range rows {
		courses[r.StudentID] = append(courses[r.StudentID], r.CourseView)
	}
	return courses, nil
}

type groupMember struct {
	GroupID uint `db:"group_id"`
	models.StudentRef
}

func (s *Store) studentsByGroup(ctx context.Context, groupIDs []uint) (map[uint][]models.StudentRef, error) {
	members := make(map[uint][]models.StudentRef, len(groupIDs))
	if len(groupIDs) == 0 {
		return members, nil
	}

	query, args, err := sqlx.In(`
		SELECT group_id, id, first_name, last_name
		FROM students
		WHERE group_id IN (?)
		ORDER BY group_id, id`, groupIDs)
	if err != nil {
		return nil, err
	}

	var rows []groupMember
	if err := s.x.SelectContext(ctx, &rows, s.x.Rebind(query), args...); err != nil {
		return nil, err
	}
	for _, r := range rows {
		members[r.GroupID] = append(members[r.GroupID], r.StudentRef)
	}
	return members, nil
}

func (s *Store) studentViews(ctx context.Context, students []models.Student) ([]models.StudentView, error) {
	studentIDs := make([]uint, 0, len(students))
	var groupIDs []uint
	for _, st := range students {
		studentIDs = append(studentIDs, st.ID)
		if st.GroupID != nil {
			groupIDs = append(groupIDs, *st.GroupID)
		}
	}

	groups, err := s.groupRefs(ctx, groupIDs)
	if err != nil {
		return nil, err
	}
	courses, err := s.coursesByStudent(ctx, studentIDs)
	if err != nil {
		return nil, err
	}

	views := make([]models.StudentView, len(students))
	for i, st := range students {
		view := models.StudentView{
			ID:        st.ID,
			FirstName: st.FirstName,
			LastName:  st.LastName,
			Courses:   courses[st.ID],
		}
		if view.Courses == nil {
			view.Courses = []models.CourseView{}
		}
		if st.GroupID != nil {
			if ref, ok := groups[*st.GroupID]; ok {
				view.Group = &ref
			}
		}
		views[i] = view
	}
	return views, nil
}

func (s *Store) groupViews(ctx context.Context, groups []models.Group) ([]models.GroupView, error) {
	ids := make([]uint, len(groups))
	for i, g := range groups {
		ids[i] = g.ID
	}

	members, err := s.studentsByGroup(ctx, ids)
	if err != nil {
		return nil, err
	}

	views := make([]models.GroupView, len(groups))
	for i, g := range groups {
		students := members[g.ID]
		if students == nil {
			students = []models.StudentRef{}
		}
		views[i] = models.GroupView{ID: g.ID, Name: g.Name, Students: students}
	}
	return views, nil
}
