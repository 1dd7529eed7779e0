package groups

type Group struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"not null"`
}

// Friend.GroupID is the friend's home group. It is independent of the
// memberships that decide who takes part in a group's balances.
type Friend struct {
	ID      int64  `gorm:"primaryKey"`
	Name    string `gorm:"not null"`
	GroupID *int64 `gorm:"index"`
}

type Membership struct {
	ID       int64 `gorm:"primaryKey"`
	GroupID  int64 `gorm:"not null;uniqueIndex:groups_members_group_friend_idx"`
	FriendID int64 `gorm:"not null;uniqueIndex:groups_members_group_friend_idx"`
}

func (Membership) TableName() string {
	return "groups_members"
}

// Member is a friend as seen through a group's membership list.
type Member struct {
	ID   int64
	Name string
}

type GroupWithFriends struct {
	Group   Group
	Friends []Friend
}
