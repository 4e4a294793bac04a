package identity_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"salonbooking/infras/baas"
	"salonbooking/shared/identity"
	"salonbooking/shared/identity/mocks"
)

func TestSession_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	refresher := mocks.NewMockRefresher(ctrl)

	refresher.EXPECT().
		RefreshSession(gomock.Any(), "refresh-1").
		Return(&baas.Tokens{AccessToken: "access-2", RefreshToken: "refresh-2"}, nil)
	refresher.EXPECT().
		RefreshSession(gomock.Any(), "refresh-2").
		Return(nil, errors.New("invalid grant"))

	session := identity.New("user-1", "giulia@example.com", "access-1", "refresh-1", refresher)

	assert.Equal(t, "user-1", session.UserID())
	assert.Equal(t, "user-1", session.ProfileID())
	assert.Equal(t, "giulia@example.com", session.Email())
	assert.Equal(t, "access-1", session.AccessToken())

	require.NoError(t, session.Refresh(context.Background()))
	assert.Equal(t, "access-2", session.AccessToken())

	require.Error(t, session.Refresh(context.Background()))
	assert.Equal(t, "access-2", session.AccessToken())
}

func TestSession_RefreshWithoutToken(t *testing.T) {
	session := identity.New("user-1", "", "access-1", "", nil)

	require.ErrorIs(t, session.Refresh(context.Background()), identity.ErrNoRefreshToken)
}

func TestContext(t *testing.T) {
	ctx := context.Background()

	_, ok := identity.FromContext(ctx)
	assert.False(t, ok)
	assert.Empty(t, identity.AccessToken(ctx))

	ctx = identity.WithSession(ctx, identity.New("user-1", "", "access-1", "", nil))

	session, ok := identity.FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "user-1", session.UserID())
	assert.Equal(t, "access-1", identity.AccessToken(ctx))
}
