package groups

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	groupsdomain "split-app-go/internal/domain/groups"
	"split-app-go/internal/repository/postgres/pgerr"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(groupsdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) GetGroupByID(ctx context.Context, groupID int64) (*groupsdomain.Group, error) {
	var group groupsdomain.Group
	if err := r.db.WithContext(ctx).Where("id = ?", groupID).First(&group).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, groupsdomain.ErrGroupNotFound
		}
		return nil, err
	}
	return &group, nil
}

func (r *PostgresRepository) CreateGroup(ctx context.Context, group *groupsdomain.Group) error {
	return r.db.WithContext(ctx).Create(group).Error
}

func (r *PostgresRepository) ListFriendsByHomeGroup(ctx context.Context, groupID int64) ([]groupsdomain.Friend, error) {
	var friends []groupsdomain.Friend
	if err := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("id asc").
		Find(&friends).Error; err != nil {
		return nil, err
	}
	return friends, nil
}

func (r *PostgresRepository) CreateFriend(ctx context.Context, friend *groupsdomain.Friend) error {
	err := r.db.WithContext(ctx).Create(friend).Error
	if _, ok := pgerr.ForeignKeyConstraint(err); ok {
		return groupsdomain.ErrGroupNotFound
	}
	return err
}

func (r *PostgresRepository) AddMember(ctx context.Context, membership *groupsdomain.Membership) error {
	err := r.db.WithContext(ctx).Create(membership).Error
	if err == nil {
		return nil
	}
	if pgerr.IsUniqueViolation(err) {
		return groupsdomain.ErrAlreadyMember
	}
	if constraint, ok := pgerr.ForeignKeyConstraint(err); ok {
		if strings.Contains(constraint, "friend_id") {
			return groupsdomain.ErrFriendNotFound
		}
		return groupsdomain.ErrGroupNotFound
	}
	return err
}

func (r *PostgresRepository) ListMembers(ctx context.Context, groupID int64) ([]groupsdomain.Member, error) {
	var members []groupsdomain.Member
	if err := r.db.WithContext(ctx).
		Table("friends").
		Select("friends.id, friends.name").
		Joins("JOIN groups_members ON friends.id = groups_members.friend_id").
		Where("groups_members.group_id = ?", groupID).
		Order("groups_members.id asc").
		Scan(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}
