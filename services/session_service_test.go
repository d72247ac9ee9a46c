// file: services/session_service_test.go
package services

import (
	"context"
	"testing"
	"time"

	"PracticeCTF/models"
	"PracticeCTF/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionService() (*SessionService, *fakeSessionRepo) {
	repo := newFakeSessionRepo()
	tokens := utils.NewTokenManager("test-secret", time.Hour)
	return NewSessionService(repo, tokens, time.Hour), repo
}

func TestSessionIssueAndResolve(t *testing.T) {
	sessions, _ := newTestSessionService()
	ctx := context.Background()
	user := &models.User{ID: 42, Username: "alice"}

	token, err := sessions.Issue(ctx, user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := sessions.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, uint32(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestSessionRevoke(t *testing.T) {
	sessions, _ := newTestSessionService()
	ctx := context.Background()

	token, err := sessions.Issue(ctx, &models.User{ID: 1, Username: "alice"})
	require.NoError(t, err)

	// 注销后令牌签名仍有效，但注册表里已无会话
	sessions.Revoke(ctx, token)

	_, err = sessions.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestSessionResolveGarbageToken(t *testing.T) {
	sessions, _ := newTestSessionService()

	_, err := sessions.Resolve(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestSessionResolveForeignSignature(t *testing.T) {
	sessions, _ := newTestSessionService()
	other := utils.NewTokenManager("other-secret", time.Hour)

	token, err := other.Generate(1, "alice", "some-session")
	require.NoError(t, err)

	_, err = sessions.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}
