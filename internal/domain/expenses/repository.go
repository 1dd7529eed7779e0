package expenses

import "context"

type Repository interface {
	CreateExpense(ctx context.Context, expense *Expense) error
	SumByFriend(ctx context.Context, groupID int64) ([]FriendTotal, error)
	ListExpenses(ctx context.Context, groupID int64, filter ListFilter) ([]Expense, int64, error)
}
