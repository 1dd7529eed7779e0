package expenses

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	expensesdomain "split-app-go/internal/domain/expenses"
)

func newTestRepo(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	require.NoError(t, err)
	return NewPostgres(gormDB), mock
}

const insertExpense = `INSERT INTO "expenses" \("group_id","friend_id","amount","description","kind","payee_id","created_at"\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6,\$7\) RETURNING "id"`

func TestCreateSettlementExpense(t *testing.T) {
	repo, mock := newTestRepo(t)

	description := "1 paid ₹100 to 2 to settle the balance"
	mock.ExpectBegin()
	mock.ExpectQuery(insertExpense).
		WithArgs(int64(1), int64(1), -100.0, description, "settlement", int64(2), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
	mock.ExpectCommit()

	payee := int64(2)
	expense := expensesdomain.Expense{
		GroupID:     1,
		FriendID:    1,
		Amount:      -100,
		Description: description,
		Kind:        expensesdomain.KindSettlement,
		PayeeID:     &payee,
	}
	require.NoError(t, repo.CreateExpense(context.Background(), &expense))
	assert.Equal(t, int64(10), expense.ID)
	assert.False(t, expense.CreatedAt.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateExpenseUnknownReference(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(insertExpense).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "expenses_friend_id_fkey"})
	mock.ExpectRollback()

	err := repo.CreateExpense(context.Background(), &expensesdomain.Expense{
		GroupID:     1,
		FriendID:    99,
		Amount:      10,
		Description: "Snacks",
		Kind:        expensesdomain.KindExpense,
	})
	assert.ErrorIs(t, err, expensesdomain.ErrReferenceNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSumByFriend(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`SELECT friend_id, SUM\(amount\)::float8 AS total FROM "expenses" WHERE group_id = \$1 GROUP BY "?friend_id"?`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"friend_id", "total"}).
			AddRow(1, 300.0).
			AddRow(2, -100.0))

	totals, err := repo.SumByFriend(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []expensesdomain.FriendTotal{
		{FriendID: 1, Total: 300},
		{FriendID: 2, Total: -100},
	}, totals)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListExpenses(t *testing.T) {
	repo, mock := newTestRepo(t)

	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "expenses" WHERE group_id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`SELECT \* FROM "expenses" WHERE group_id = \$1 ORDER BY created_at desc, id desc LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "group_id", "friend_id", "amount", "description", "kind", "payee_id", "created_at"}).
			AddRow(2, 1, 1, -100.0, "1 paid ₹100 to 2 to settle the balance", "settlement", 2, created).
			AddRow(1, 1, 1, 300.0, "Villa", "expense", nil, created))

	items, total, err := repo.ListExpenses(context.Background(), 1, expensesdomain.ListFilter{Limit: 50})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, items, 2)
	assert.Equal(t, expensesdomain.KindSettlement, items[0].Kind)
	require.NotNil(t, items[0].PayeeID)
	assert.Equal(t, int64(2), *items[0].PayeeID)
	assert.Nil(t, items[1].PayeeID)
	require.NoError(t, mock.ExpectationsWereMet())
}
