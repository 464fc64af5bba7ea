package assignment

import (
	"context"
	"fmt"
	"log"

	"school-backend/models"
	"school-backend/random"
)

type GroupEngine struct {
	store GroupStore
	rnd   *random.Source
}

func NewGroupEngine(store GroupStore, rnd *random.Source) *GroupEngine {
	return &GroupEngine{store: store, rnd: rnd}
}

// GroupReport describes the outcome of one group assignment pass.
type GroupReport struct {
	// Assigned holds the number of students given to each processed group, by group id.
	Assigned     map[uint]int
	StoppedEarly bool
	// StoppedAt is the id of the first group left unprocessed when StoppedEarly is set.
	StoppedAt  uint
	Unassigned int
}

// Assign walks groups in the given order and gives each one between min and
// max random students from the pool of students without a group. As soon as
// fewer than min students remain the whole pass stops: the current group and
// every group after it get nobody. That branch is normal operation.
func (e *GroupEngine) Assign(ctx context.Context, groups []models.Group, min, max int) (GroupReport, error) {
	report := GroupReport{Assigned: make(map[uint]int, len(groups))}

	if min < 0 || min > max {
		return report, fmt.Errorf("%w: group size [%d, %d]", models.ErrInvalidBounds, min, max)
	}

	for _, group := range groups {
		unassigned, err := e.store.UnassignedStudentIDs(ctx)
		if err != nil {
			return report, fmt.Errorf("load unassigned students: %w", err)
		}
		report.Unassigned = len(unassigned)

		if len(unassigned) < min {
			report.StoppedEarly = true
			report.StoppedAt = group.ID
			log.Printf("ℹ️ Group assignment stopped at group %s: %d students left, minimum is %d",
				group.Name, len(unassigned), min)
			break
		}

		count := e.rnd.IntRange(min, minInt(max, len(unassigned)))
		picked, err := random.Sample(e.rnd, unassigned, count)
		if err != nil {
			return report, fmt.Errorf("sample students for group %s: %w", group.Name, err)
		}

		if err := e.store.AssignToGroup(ctx, group.ID, picked); err != nil {
			return report, fmt.Errorf("assign students to group %s: %w", group.Name, err)
		}

		report.Assigned[group.ID] = len(picked)
		report.Unassigned -= len(picked)
	}

	return report, nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
