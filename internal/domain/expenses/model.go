package expenses

import (
	"time"

	"split-app-go/internal/domain/balances"
)

// Kind tags an expense row. Settlements are stored with a negative amount
// attributed to the payer, so balance arithmetic can ignore the kind.
type Kind string

const (
	KindExpense    Kind = "expense"
	KindSettlement Kind = "settlement"
)

type Expense struct {
	ID          int64     `gorm:"primaryKey"`
	GroupID     int64     `gorm:"not null;index"`
	FriendID    int64     `gorm:"not null"`
	Amount      float64   `gorm:"type:numeric(12,2);not null"`
	Description string    `gorm:"not null"`
	Kind        Kind      `gorm:"type:varchar(16);not null"`
	PayeeID     *int64
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

type FriendTotal struct {
	FriendID int64
	Total    float64
}

type ListFilter struct {
	Limit  int
	Offset int
}

type RecordExpenseInput struct {
	GroupID     int64
	FriendID    int64
	Amount      float64
	Description string
}

type RecordSettlementInput struct {
	GroupID int64
	PayerID int64
	PayeeID int64
	Amount  float64
}

type GroupBalances struct {
	GroupID int64
	balances.Result
	Summary []string
}
