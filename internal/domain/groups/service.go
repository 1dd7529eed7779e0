package groups

import (
	"context"
	"fmt"
	"strings"
	"time"
)

type Service struct {
	repo     Repository
	cache    Cache
	cacheTTL time.Duration
}

type Option func(*Service)

// WithCache caches group lookups. Groups are never updated, so the TTL only
// bounds memory.
func WithCache(cache Cache, ttl time.Duration) Option {
	return func(s *Service) {
		if cache != nil {
			s.cache = cache
			s.cacheTTL = ttl
		}
	}
}

func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{repo: repo, cache: noopCache{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) GetGroup(ctx context.Context, groupID int64) (*Group, error) {
	if group, ok := s.cache.GetByID(groupID); ok {
		return group, nil
	}

	group, err := s.repo.GetGroupByID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	s.cache.SetByID(groupID, group, s.cacheTTL)
	return group, nil
}

// GetGroupWithFriends returns the group together with the friends whose home
// group it is.
func (s *Service) GetGroupWithFriends(ctx context.Context, groupID int64) (*GroupWithFriends, error) {
	group, err := s.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	friends, err := s.repo.ListFriendsByHomeGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("list friends: %w", err)
	}

	return &GroupWithFriends{Group: *group, Friends: friends}, nil
}

func (s *Service) CreateGroup(ctx context.Context, name string) (*Group, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	group := Group{Name: name}
	if err := s.repo.CreateGroup(ctx, &group); err != nil {
		return nil, err
	}

	s.cache.SetByID(group.ID, &group, s.cacheTTL)
	return &group, nil
}

// AddFriend creates a friend whose home group is groupID and makes them a
// member of that group in the same transaction.
func (s *Service) AddFriend(ctx context.Context, groupID int64, name string) (*Friend, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	var result Friend
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		if _, err := tx.GetGroupByID(ctx, groupID); err != nil {
			return err
		}

		friend := Friend{Name: name, GroupID: &groupID}
		if err := tx.CreateFriend(ctx, &friend); err != nil {
			return err
		}

		if err := tx.AddMember(ctx, &Membership{GroupID: groupID, FriendID: friend.ID}); err != nil {
			return err
		}

		result = friend
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (s *Service) AddMember(ctx context.Context, groupID, friendID int64) (*Membership, error) {
	if friendID <= 0 {
		return nil, fmt.Errorf("%w: friend_id is required", ErrInvalidInput)
	}

	membership := Membership{GroupID: groupID, FriendID: friendID}
	if err := s.repo.AddMember(ctx, &membership); err != nil {
		return nil, err
	}
	return &membership, nil
}

func (s *Service) ListMembers(ctx context.Context, groupID int64) ([]Member, error) {
	return s.repo.ListMembers(ctx, groupID)
}
