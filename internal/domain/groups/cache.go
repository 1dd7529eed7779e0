package groups

import "time"

type Cache interface {
	GetByID(groupID int64) (*Group, bool)
	SetByID(groupID int64, group *Group, ttl time.Duration)
	DeleteByID(groupID int64)
}

type noopCache struct{}

func (noopCache) GetByID(int64) (*Group, bool) {
	return nil, false
}

func (noopCache) SetByID(int64, *Group, time.Duration) {}

func (noopCache) DeleteByID(int64) {}
