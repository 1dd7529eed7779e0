package groups

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	GetGroupByID(ctx context.Context, groupID int64) (*Group, error)
	CreateGroup(ctx context.Context, group *Group) error
	ListFriendsByHomeGroup(ctx context.Context, groupID int64) ([]Friend, error)
	CreateFriend(ctx context.Context, friend *Friend) error
	AddMember(ctx context.Context, membership *Membership) error
	ListMembers(ctx context.Context, groupID int64) ([]Member, error)
}
