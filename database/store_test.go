package database_test

import (
	"context"
	"fmt"
	"testing"

	"school-backend/database"
	"school-backend/database/dbtest"
	"school-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedStudents(t *testing.T, store *database.Store, n int) models.SeedIDs {
	t.Helper()
	students := make([]models.StudentRecord, n)
	for i := range students {
		students[i] = models.StudentRecord{FirstName: fmt.Sprintf("First%03d", i+1), LastName: "Last"}
	}
	ids, err := store.CreateSeed(context.Background(), nil, students, nil)
	require.NoError(t, err)
	return ids
}

func TestCreateSeedAssignsIDsInOrder(t *testing.T) {
	store := dbtest.New(t)
	ctx := context.Background()

	ids, err := store.CreateSeed(ctx,
		[]models.GroupRecord{{Name: "AA_01"}, {Name: "BB_02"}},
		[]models.StudentRecord{{FirstName: "Ann", LastName: "Lee"}, {FirstName: "Bob", LastName: "Li"}},
		[]models.CourseRecord{{Name: "Art", Description: "Art"}},
	)
	require.NoError(t, err)

	require.Len(t, ids.Groups, 2)
	assert.Equal(t, "AA_01", ids.Groups[0].Name)
	assert.Less(t, ids.Groups[0].ID, ids.Groups[1].ID)
	assert.Equal(t, []uint{1, 2}, ids.StudentIDs)
	assert.Equal(t, []uint{1}, ids.CourseIDs)
}

func TestCreateSeedIsAllOrNothing(t *testing.T) {
	store := dbtest.New(t)
	ctx := context.Background()

	_, err := store.CreateSeed(ctx,
		[]models.GroupRecord{{Name: "AA_01"}},
		[]models.StudentRecord{{FirstName: "Ann", LastName: "Lee"}},
		[]models.CourseRecord{{Name: "Art"}, {Name: "Art"}},
	)
	require.Error(t, err)

	groups, err := store.ListGroups(ctx, models.Page{})
	require.NoError(t, err)
	assert.Empty(t, groups)
	students, err := store.ListStudents(ctx, models.Page{})
	require.NoError(t, err)
	assert.Empty(t, students)
}

func TestPaginateStudents(t *testing.T) {
	store := dbtest.New(t)
	ctx := context.Background()
	seedStudents(t, store, 200)

	page, err := store.ListStudents(ctx, models.Page{Limit: 20, Offset: 5})
	require.NoError(t, err)
	require.Len(t, page, 20)
	assert.Equal(t, uint(6), page[0].ID)
	assert.Equal(t, uint(25), page[19].ID)

	rest, err := store.ListStudents(ctx, models.Page{Limit: 0, Offset: 5})
	require.NoError(t, err)
	require.Len(t, rest, 195)
	assert.Equal(t, uint(6), rest[0].ID)
	assert.Equal(t, uint(200), rest[194].ID)

	all, err := store.ListStudents(ctx, models.Page{})
	require.NoError(t, err)
	assert.Len(t, all, 200)

	again, err := store.ListStudents(ctx, models.Page{Limit: 20, Offset: 5})
	require.NoError(t, err)
	assert.Equal(t, page, again)

	past, err := store.ListStudents(ctx, models.Page{Limit: 10, Offset: 500})
	require.NoError(t, err)
	assert.Empty(t, past)
}

func TestPaginateTreatsNegativeOffsetAsZero(t *testing.T) {
	store := dbtest.New(t)
	seedStudents(t, store, 3)

	got, err := store.ListStudents(context.Background(), models.Page{Limit: 2, Offset: -4})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, uint(1), got[0].ID)
}

// G1 has two students, G2 one and G3 none.
func seedAggregate(t *testing.T, store *database.Store) models.SeedIDs {
	t.Helper()
	ctx := context.Background()

	ids, err := store.CreateSeed(ctx,
		[]models.GroupRecord{{Name: "G1_01"}, {Name: "G2_02"}, {Name: "G3_03"}},
		[]models.StudentRecord{
			{FirstName: "Ann", LastName: "Lee"},
			{FirstName: "Bob", LastName: "Li"},
			{FirstName: "Cid", LastName: "Lam"},
			{FirstName: "Dan", LastName: "Lam"},
		},
		[]models.CourseRecord{{Name: "Art", Description: "Art"}, {Name: "Biology", Description: "Biology"}},
	)
	require.NoError(t, err)

	require.NoError(t, store.AssignToGroup(ctx, ids.Groups[0].ID, ids.StudentIDs[0:2]))
	require.NoError(t, store.AssignToGroup(ctx, ids.Groups[1].ID, ids.StudentIDs[2:3]))
	return ids
}

func groupNames(groups []models.GroupView) []string {
	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = g.Name
	}
	return names
}

func TestGroupsWithAtMost(t *testing.T) {
	store := dbtest.New(t)
	ctx := context.Background()
	seedAggregate(t, store)

	got, err := store.GroupsWithAtMost(ctx, 2, models.Page{})
	require.NoError(t, err)
	assert.Equal(t, []string{"G1_01", "G2_02"}, groupNames(got))
	assert.Len(t, got[0].Students, 2)
	assert.Len(t, got[1].Students, 1)

	got, err = store.GroupsWithAtMost(ctx, 1, models.Page{})
	require.NoError(t, err)
	assert.Equal(t, []string{"G2_02"}, groupNames(got))

	for _, threshold := range []int64{0, 100} {
		got, err = store.GroupsWithAtMost(ctx, threshold, models.Page{})
		require.NoError(t, err)
		assert.NotContains(t, groupNames(got), "G3_03")
	}

	got, err = store.GroupsWithAtMost(ctx, 2, models.Page{Limit: 1, Offset: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"G2_02"}, groupNames(got))
}

func TestGroupsByStudentCount(t *testing.T) {
	store := dbtest.New(t)
	ctx := context.Background()
	seedAggregate(t, store)

	got, err := store.GroupsByStudentCount(ctx, "G1_01", models.Page{})
	require.NoError(t, err)
	assert.Equal(t, []string{"G1_01", "G2_02"}, groupNames(got))

	got, err = store.GroupsByStudentCount(ctx, "G2_02", models.Page{})
	require.NoError(t, err)
	assert.Equal(t, []string{"G2_02"}, groupNames(got))

	// группа без студентов не попадает даже в собственную выборку
	got, err = store.GroupsByStudentCount(ctx, "G3_03", models.Page{})
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = store.GroupsByStudentCount(ctx, "ZZ_99", models.Page{})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

// Lookup, count and filter run in one transaction; the connection is
// released afterwards both on success and on an unknown group.
func TestGroupsByStudentCountInTransaction(t *testing.T) {
	store := dbtest.New(t)
	ctx := context.Background()
	seedAggregate(t, store)

	got, err := store.GroupsByStudentCount(ctx, "G1_01", models.Page{Limit: 1, Offset: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"G2_02"}, groupNames(got))
	assert.Len(t, got[0].Students, 1)

	_, err = store.GroupsByStudentCount(ctx, "ZZ_99", models.Page{})
	require.ErrorIs(t, err, models.ErrNotFound)

	got, err = store.GroupsByStudentCount(ctx, "G1_01", models.Page{})
	require.NoError(t, err)
	assert.Equal(t, []string{"G1_01", "G2_02"}, groupNames(got))
	assert.Len(t, got[0].Students, 2)
}

func TestListGroupsIncludesEmptyGroups(t *testing.T) {
	store := dbtest.New(t)
	seedAggregate(t, store)

	got, err := store.ListGroups(context.Background(), models.Page{})
	require.NoError(t, err)
	assert.Equal(t, []string{"G1_01", "G2_02", "G3_03"}, groupNames(got))
	assert.Empty(t, got[2].Students)
	assert.NotNil(t, got[2].Students)
}

func TestAssignToGroupRejectsStudentsWithGroup(t *testing.T) {
	store := dbtest.New(t)
	ctx := context.Background()
	ids := seedAggregate(t, store)

	err := store.AssignToGroup(ctx, ids.Groups[2].ID, []uint{ids.StudentIDs[0], ids.StudentIDs[3]})
	require.Error(t, err)

	// the batch is rolled back: student 4 is still free
	free, err := store.UnassignedStudentIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []uint{ids.StudentIDs[3]}, free)
}

func TestStudentViewsCarryGroupAndCourses(t *testing.T) {
	store := dbtest.New(t)
	ctx := context.Background()
	ids := seedAggregate(t, store)

	require.NoError(t, store.Enroll(ctx, ids.StudentIDs[0], ids.CourseIDs))
	// повторная запись той же пары игнорируется
	require.NoError(t, store.Enroll(ctx, ids.StudentIDs[0], ids.CourseIDs[:1]))

	students, err := store.ListStudents(ctx, models.Page{})
	require.NoError(t, err)
	require.Len(t, students, 4)

	first := students[0]
	require.NotNil(t, first.Group)
	assert.Equal(t, "G1_01", first.Group.Name)
	require.Len(t, first.Courses, 2)
	assert.Equal(t, "Art", first.Courses[0].Name)
	assert.Equal(t, "Biology", first.Courses[1].Name)

	last := students[3]
	assert.Nil(t, last.Group)
	assert.Empty(t, last.Courses)
}

func TestStudentsByCourse(t *testing.T) {
	store := dbtest.New(t)
	ctx := context.Background()
	ids := seedAggregate(t, store)

	require.NoError(t, store.Enroll(ctx, ids.StudentIDs[1], ids.CourseIDs[1:]))
	require.NoError(t, store.Enroll(ctx, ids.StudentIDs[3], ids.CourseIDs[1:]))

	got, err := store.StudentsByCourse(ctx, "Biology", models.Page{})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, ids.StudentIDs[1], got[0].ID)
	assert.Equal(t, ids.StudentIDs[3], got[1].ID)

	got, err = store.StudentsByCourse(ctx, "Art", models.Page{})
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = store.StudentsByCourse(ctx, "Alchemy", models.Page{})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestAddAndRemoveCourses(t *testing.T) {
	store := dbtest.New(t)
	ctx := context.Background()
	ids := seedAggregate(t, store)
	studentID := ids.StudentIDs[2]

	view, err := store.AddStudentToCourses(ctx, studentID, []string{"Art", "Biology"})
	require.NoError(t, err)
	assert.Len(t, view.Courses, 2)

	_, err = store.AddStudentToCourses(ctx, studentID, []string{"Alchemy"})
	assert.ErrorIs(t, err, models.ErrNotFound)
	_, err = store.AddStudentToCourses(ctx, 999, []string{"Art"})
	assert.ErrorIs(t, err, models.ErrNotFound)

	view, err = store.RemoveStudentFromCourse(ctx, studentID, "Art")
	require.NoError(t, err)
	require.Len(t, view.Courses, 1)
	assert.Equal(t, "Biology", view.Courses[0].Name)

	_, err = store.RemoveStudentFromCourse(ctx, studentID, "Art")
	assert.ErrorIs(t, err, models.ErrNotEnrolled)
	_, err = store.RemoveStudentFromCourse(ctx, studentID, "Alchemy")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestAddAndDeleteStudent(t *testing.T) {
	store := dbtest.New(t)
	ctx := context.Background()
	ids := seedAggregate(t, store)

	created, err := store.AddStudent(ctx, "Eve", "White")
	require.NoError(t, err)
	assert.Equal(t, "Eve", created.FirstName)
	assert.Nil(t, created.Group)

	require.NoError(t, store.Enroll(ctx, created.ID, ids.CourseIDs))
	require.NoError(t, store.DeleteStudent(ctx, created.ID))

	_, err = store.GetStudent(ctx, created.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.ErrorIs(t, store.DeleteStudent(ctx, created.ID), models.ErrNotFound)

	got, err := store.StudentsByCourse(ctx, "Art", models.Page{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListCourses(t *testing.T) {
	store := dbtest.New(t)
	seedAggregate(t, store)

	courses, err := store.ListCourses(context.Background(), models.Page{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "Biology", courses[0].Name)
}

func TestPing(t *testing.T) {
	assert.NoError(t, dbtest.New(t).Ping(context.Background()))
}
