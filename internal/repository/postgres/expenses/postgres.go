package expenses

import (
	"context"

	"gorm.io/gorm"

	expensesdomain "split-app-go/internal/domain/expenses"
	"split-app-go/internal/repository/postgres/pgerr"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateExpense(ctx context.Context, expense *expensesdomain.Expense) error {
	err := r.db.WithContext(ctx).Create(expense).Error
	if _, ok := pgerr.ForeignKeyConstraint(err); ok {
		return expensesdomain.ErrReferenceNotFound
	}
	return err
}

func (r *PostgresRepository) SumByFriend(ctx context.Context, groupID int64) ([]expensesdomain.FriendTotal, error) {
	var totals []expensesdomain.FriendTotal
	if err := r.db.WithContext(ctx).
		Model(&expensesdomain.Expense{}).
		Select("friend_id, SUM(amount)::float8 AS total").
		Where("group_id = ?", groupID).
		Group("friend_id").
		Scan(&totals).Error; err != nil {
		return nil, err
	}
	return totals, nil
}

func (r *PostgresRepository) ListExpenses(ctx context.Context, groupID int64, filter expensesdomain.ListFilter) ([]expensesdomain.Expense, int64, error) {
	query := r.db.WithContext(ctx).Model(&expensesdomain.Expense{}).Where("group_id = ?", groupID)

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at desc, id desc")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var items []expensesdomain.Expense
	if err := query.Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
