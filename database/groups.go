package database

import (
	"context"
	"fmt"

	"school-backend/models"

	"gorm.io/gorm"
)

func (s *Store) ListGroups(ctx context.Context, page models.Page) ([]models.GroupView, error) {
	var groups []models.Group
	q := s.db.WithContext(ctx).Model(&models.Group{}).Order("id ASC")
	if err := Paginate(q, page).Find(&groups).Error; err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	return s.groupViews(ctx, groups)
}

func (s *Store) GroupByName(ctx context.Context, name string) (models.Group, error) {
	return groupByName(s.db.WithContext(ctx), name)
}

func (s *Store) CountStudentsInGroup(ctx context.Context, groupID uint) (int64, error) {
	return countStudentsInGroup(s.db.WithContext(ctx), groupID)
}

// GroupsWithAtMost returns the groups that have between 1 and threshold
// students, ordered by id. The inner join drops groups without students.
func (s *Store) GroupsWithAtMost(ctx context.Context, threshold int64, page models.Page) ([]models.GroupView, error) {
	groups, err := groupsWithAtMost(s.db.WithContext(ctx), threshold, page)
	if err != nil {
		return nil, err
	}
	return s.groupViews(ctx, groups)
}

// GroupsByStudentCount runs GroupsWithAtMost with the named group's own
// student count as threshold. Lookup, count and filter share one transaction
// so the group always sees its own size.
func (s *Store) GroupsByStudentCount(ctx context.Context, groupName string, page models.Page) ([]models.GroupView, error) {
	var groups []models.Group
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		group, err := groupByName(tx, groupName)
		if err != nil {
			return err
		}
		count, err := countStudentsInGroup(tx, group.ID)
		if err != nil {
			return fmt.Errorf("count students of group %s: %w", groupName, err)
		}
		groups, err = groupsWithAtMost(tx, count, page)
		return err
	})
	if err != nil {
		return nil, err
	}
	// состав групп читается через sqlx уже после коммита
	return s.groupViews(ctx, groups)
}

func groupByName(tx *gorm.DB, name string) (models.Group, error) {
	var group models.Group
	if err := tx.Where("name = ?", name).First(&group).Error; err != nil {
		return group, notFound(err, "group '%s' does not exist", name)
	}
	return group, nil
}

func countStudentsInGroup(tx *gorm.DB, groupID uint) (int64, error) {
	var count int64
	err := tx.Model(&models.Student{}).Where("group_id = ?", groupID).Count(&count).Error
	return count, err
}

func groupsWithAtMost(tx *gorm.DB, threshold int64, page models.Page) ([]models.Group, error) {
	sizes := tx.Session(&gorm.Session{NewDB: true}).
		Table(`"groups" AS g`).
		Select("g.id, g.name, COUNT(st.id) AS group_size").
		Joins("JOIN students AS st ON st.group_id = g.id").
		Group("g.id, g.name")

	var groups []models.Group
	q := tx.Session(&gorm.Session{NewDB: true}).
		Table("(?) AS gs", sizes).
		Select("gs.id, gs.name").
		Where("gs.group_size <= ?", threshold).
		Order("gs.id ASC")
	if err := Paginate(q, page).Scan(&groups).Error; err != nil {
		return nil, fmt.Errorf("groups with at most %d students: %w", threshold, err)
	}
	return groups, nil
}
