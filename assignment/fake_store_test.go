package assignment

import (
	"context"
	"fmt"
	"sort"
)

// memoryStore keeps students and enrollments in memory for engine tests.
type memoryStore struct {
	groupOf  map[uint]uint
	students []uint
	// appended records every Enroll call in order, duplicates included.
	appended    map[uint][]uint
	assignCalls int
}

func newMemoryStore(students int) *memoryStore {
	s := &memoryStore{
		groupOf:  map[uint]uint{},
		appended: map[uint][]uint{},
	}
	for i := 1; i <= students; i++ {
		s.students = append(s.students, uint(i))
	}
	return s
}

func (s *memoryStore) UnassignedStudentIDs(ctx context.Context) ([]uint, error) {
	var ids []uint
	for _, id := range s.students {
		if _, ok := s.groupOf[id]; !ok {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (s *memoryStore) AssignToGroup(ctx context.Context, groupID uint, studentIDs []uint) error {
	s.assignCalls++
	for _, id := range studentIDs {
		if g, ok := s.groupOf[id]; ok {
			return fmt.Errorf("student %d already in group %d", id, g)
		}
		s.groupOf[id] = groupID
	}
	return nil
}

func (s *memoryStore) Enroll(ctx context.Context, studentID uint, courseIDs []uint) error {
	s.appended[studentID] = append(s.appended[studentID], courseIDs...)
	return nil
}

func (s *memoryStore) groupSizes() map[uint]int {
	sizes := map[uint]int{}
	for _, g := range s.groupOf {
		sizes[g]++
	}
	return sizes
}
