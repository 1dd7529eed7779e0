package inmemory

import (
	"sync"
	"time"

	groupsdomain "split-app-go/internal/domain/groups"
)

type GroupCache struct {
	mu    sync.RWMutex
	items map[int64]groupItem
}

type groupItem struct {
	value     groupsdomain.Group
	expiresAt time.Time
}

func NewGroupCache() *GroupCache {
	return &GroupCache{
		items: make(map[int64]groupItem),
	}
}

func (c *GroupCache) GetByID(groupID int64) (*groupsdomain.Group, bool) {
	now := time.Now()

	c.mu.RLock()
	item, ok := c.items[groupID]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if !item.expiresAt.After(now) {
		c.mu.Lock()
		item, ok = c.items[groupID]
		if ok && !item.expiresAt.After(now) {
			delete(c.items, groupID)
		}
		c.mu.Unlock()
		return nil, false
	}

	value := item.value
	return &value, true
}

func (c *GroupCache) SetByID(groupID int64, group *groupsdomain.Group, ttl time.Duration) {
	if group == nil || ttl <= 0 {
		c.DeleteByID(groupID)
		return
	}

	c.mu.Lock()
	c.items[groupID] = groupItem{
		value:     *group,
		expiresAt: time.Now().Add(ttl),
	}
	c.mu.Unlock()
}

func (c *GroupCache) DeleteByID(groupID int64) {
	c.mu.Lock()
	delete(c.items, groupID)
	c.mu.Unlock()
}

// Len reports how many entries are held, expired ones included.
func (c *GroupCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
