package groups

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	groupsdomain "split-app-go/internal/domain/groups"
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

func TestGetGroupByID(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "groups" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "Trip to Goa"))

	group, err := repo.GetGroupByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), group.ID)
	assert.Equal(t, "Trip to Goa", group.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetGroupByIDNotFound(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "groups" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	_, err := repo.GetGroupByID(context.Background(), 999)
	assert.ErrorIs(t, err, groupsdomain.ErrGroupNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateGroup(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "groups" \("name"\) VALUES \(\$1\) RETURNING "id"`).
		WithArgs("Weekend").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	mock.ExpectCommit()

	group := groupsdomain.Group{Name: "Weekend"}
	require.NoError(t, repo.CreateGroup(context.Background(), &group))
	assert.Equal(t, int64(5), group.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateFriendUnknownGroup(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "friends" \("name","group_id"\)`).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "friends_group_id_fkey"})
	mock.ExpectRollback()

	groupID := int64(42)
	err := repo.CreateFriend(context.Background(), &groupsdomain.Friend{Name: "Dan", GroupID: &groupID})
	assert.ErrorIs(t, err, groupsdomain.ErrGroupNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAddMemberErrors(t *testing.T) {
	tests := []struct {
		name  string
		pgErr *pgconn.PgError
		want  error
	}{
		{name: "duplicate", pgErr: &pgconn.PgError{Code: "23505", ConstraintName: "groups_members_group_friend_idx"}, want: groupsdomain.ErrAlreadyMember},
		{name: "unknown friend", pgErr: &pgconn.PgError{Code: "23503", ConstraintName: "groups_members_friend_id_fkey"}, want: groupsdomain.ErrFriendNotFound},
		{name: "unknown group", pgErr: &pgconn.PgError{Code: "23503", ConstraintName: "groups_members_group_id_fkey"}, want: groupsdomain.ErrGroupNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestRepo(t)

			mock.ExpectBegin()
			mock.ExpectQuery(`INSERT INTO "groups_members" \("group_id","friend_id"\)`).
				WithArgs(int64(1), int64(2)).
				WillReturnError(tt.pgErr)
			mock.ExpectRollback()

			err := repo.AddMember(context.Background(), &groupsdomain.Membership{GroupID: 1, FriendID: 2})
			assert.ErrorIs(t, err, tt.want)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestListMembers(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`SELECT friends.id, friends.name FROM "friends" JOIN groups_members ON friends.id = groups_members.friend_id WHERE groups_members.group_id = \$1 ORDER BY groups_members.id asc`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(1, "Alice").
			AddRow(2, "Bob").
			AddRow(3, "Charlie"))

	members, err := repo.ListMembers(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, members, 3)
	assert.Equal(t, groupsdomain.Member{ID: 3, Name: "Charlie"}, members[2])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListFriendsByHomeGroup(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "friends" WHERE group_id = \$1 ORDER BY id asc`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "group_id"}).
			AddRow(1, "Alice", 1).
			AddRow(4, "Dora", nil))

	friends, err := repo.ListFriendsByHomeGroup(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, friends, 2)
	require.NotNil(t, friends[0].GroupID)
	assert.Equal(t, int64(1), *friends[0].GroupID)
	assert.Nil(t, friends[1].GroupID)
	require.NoError(t, mock.ExpectationsWereMet())
}
