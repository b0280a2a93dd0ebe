//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/errs"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/domain/users"
	"github.com/RyotaMitaraiWeb/ecommerce-server/internal/pkg/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_Register(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	user, err := services.UserService.Register(ctx, users.Credentials{Username: "  ryota ", Password: "123456"})
	require.NoError(t, err)
	assert.Equal(t, "ryota", user.Username)
	assert.NotEqual(t, "123456", user.PasswordHash)
	assert.Equal(t, users.PaletteDeepPurple, user.Palette)
	assert.Equal(t, users.ThemeLight, user.Theme)

	_, err = services.UserService.Register(ctx, users.Credentials{Username: "ryota", Password: "abcdef"})
	require.Error(t, err)
	assert.Equal(t, []string{errs.MsgUsernameTaken}, errs.MessagesOf(err))
}

func TestUserService_RegisterInvalid(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	_, err := services.UserService.Register(context.Background(), users.Credentials{Username: "r", Password: "1"})
	require.Error(t, err)
	assert.Equal(t, errs.KindInvalid, errs.KindOf(err))
	assert.Len(t, errs.MessagesOf(err), 2)
}

func TestUserService_Login(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	registered, err := services.UserService.Register(ctx, users.Credentials{Username: "ryota", Password: "123456"})
	require.NoError(t, err)

	user, err := services.UserService.Login(ctx, users.Credentials{Username: "ryota", Password: "123456"})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	for _, creds := range []users.Credentials{
		{Username: "ryota", Password: "wrong1"},
		{Username: "nobody", Password: "123456"},
	} {
		_, err := services.UserService.Login(ctx, creds)
		require.Error(t, err)
		assert.Equal(t, errs.KindUnauthorized, errs.KindOf(err))
		assert.Equal(t, []string{errs.MsgWrongCredentials}, errs.MessagesOf(err))
	}
}

func TestUserService_ChangePreferences(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	user, err := services.UserService.Register(ctx, users.Credentials{Username: "ryota", Password: "123456"})
	require.NoError(t, err)

	require.NoError(t, services.UserService.ChangeTheme(ctx, user.ID, users.ThemeDark))
	require.NoError(t, services.UserService.ChangePalette(ctx, user.ID, users.PalettePink))

	updated, err := services.UserService.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, users.ThemeDark, updated.Theme)
	assert.Equal(t, users.PalettePink, updated.Palette)

	err = services.UserService.ChangeTheme(ctx, user.ID, "sepia")
	assert.Equal(t, errs.KindInvalid, errs.KindOf(err))

	err = services.UserService.ChangePalette(ctx, uuid.NewString(), users.PaletteBlue)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
}
