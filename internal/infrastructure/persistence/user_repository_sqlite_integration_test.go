//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/errs"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/users"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/pkg/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserSqliteRepository_CreateAndGet(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	user := CreateTestUser(t, ctx, "ryota")

	byID, err := ctx.UserRepo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ryota", byID.Username)
	assert.Equal(t, users.PaletteDeepPurple, byID.Palette)

	byName, err := ctx.UserRepo.GetByUsername(context.Background(), "ryota")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)
}

func TestUserSqliteRepository_DuplicateUsername(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	CreateTestUser(t, ctx, "ryota")

	duplicate := &users.User{
		ID:              uuid.NewString(),
		Username:        "ryota",
		PasswordHash:    TestPasswordHash,
		Palette:         users.DefaultPalette,
		Theme:           users.DefaultTheme,
		DateTimeCreated: time.Now(),
	}
	err := ctx.UserRepo.Create(context.Background(), duplicate)
	require.Error(t, err)
	assert.Equal(t, errs.KindInvalid, errs.KindOf(err))
	assert.Equal(t, []string{errs.MsgUsernameTaken}, errs.MessagesOf(err))
}

func TestUserSqliteRepository_NotFound(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	_, err := ctx.UserRepo.GetByID(context.Background(), uuid.NewString())
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))

	_, err = ctx.UserRepo.GetByID(context.Background(), "malformed")
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))

	_, err = ctx.UserRepo.GetByUsername(context.Background(), "nobody")
	assert.Equal(t, []string{errs.MsgUserNotFound}, errs.MessagesOf(err))
}

func TestUserSqliteRepository_UpdateByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	user := CreateTestUser(t, ctx, "ryota")

	user.Theme = users.ThemeDark
	user.Palette = users.PaletteAmber
	require.NoError(t, ctx.UserRepo.UpdateByID(context.Background(), user))

	updated, err := ctx.UserRepo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, users.ThemeDark, updated.Theme)
	assert.Equal(t, users.PaletteAmber, updated.Palette)

	ghost := *user
	ghost.ID = uuid.NewString()
	ghost.Username = "ghost"
	err = ctx.UserRepo.UpdateByID(context.Background(), &ghost)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
}

func TestUserSqliteRepository_List(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	CreateTestUser(t, ctx, "zelda")
	CreateTestUser(t, ctx, "alice")

	list, err := ctx.UserRepo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "alice", list[0].Username)
}
