package services

import (
	"testing"

	"github.com/nojimad/collab-todo/internal/models"
	"github.com/stretchr/testify/require"
)

func TestClanService_CreateClan(t *testing.T) {
	env := setupServiceTestEnv(t)

	user := registerTestUser(t, env, "owner")

	clan, err := env.clanService.CreateClan(user, "TestClan")
	require.NoError(t, err)
	require.NotZero(t, clan.ID)

	var stored models.User
	require.NoError(t, env.db.First(&stored, user.ID).Error)
	require.NotNil(t, stored.ClanID)
	require.Equal(t, clan.ID, *stored.ClanID)
}

func TestClanService_CreateClan_DuplicateName(t *testing.T) {
	env := setupServiceTestEnv(t)

	owner := registerTestUser(t, env, "owner")
	other := registerTestUser(t, env, "other")

	_, err := env.clanService.CreateClan(owner, "TestClan")
	require.NoError(t, err)

	_, err = env.clanService.CreateClan(other, "TestClan")
	require.ErrorIs(t, err, ErrClanNameTaken)
}

func TestClanService_CreateClan_EmptyName(t *testing.T) {
	env := setupServiceTestEnv(t)

	user := registerTestUser(t, env, "owner")

	_, err := env.clanService.CreateClan(user, "   ")
	require.ErrorIs(t, err, ErrInvalidClanName)
}

func TestClanService_JoinThenLeave_RoundTrip(t *testing.T) {
	env := setupServiceTestEnv(t)

	owner := registerTestUser(t, env, "owner")
	member := registerTestUser(t, env, "member")

	clan, err := env.clanService.CreateClan(owner, "TestClan")
	require.NoError(t, err)

	_, err = env.clanService.JoinClan(member, "TestClan")
	require.NoError(t, err)

	var stored models.User
	require.NoError(t, env.db.First(&stored, member.ID).Error)
	require.NotNil(t, stored.ClanID)
	require.Equal(t, clan.ID, *stored.ClanID)

	require.NoError(t, env.clanService.LeaveClan(member))

	require.NoError(t, env.db.First(&stored, member.ID).Error)
	require.Nil(t, stored.ClanID)
}

func TestClanService_JoinClan_NotFound(t *testing.T) {
	env := setupServiceTestEnv(t)

	user := registerTestUser(t, env, "wanderer")

	_, err := env.clanService.JoinClan(user, "NoSuchClan")
	require.ErrorIs(t, err, ErrClanNotFound)
}

func TestClanService_JoinClan_OverwritesMembership(t *testing.T) {
	env := setupServiceTestEnv(t)

	first := registerTestUser(t, env, "first")
	second := registerTestUser(t, env, "second")
	mover := registerTestUser(t, env, "mover")

	_, err := env.clanService.CreateClan(first, "Alpha")
	require.NoError(t, err)
	beta, err := env.clanService.CreateClan(second, "Beta")
	require.NoError(t, err)

	_, err = env.clanService.JoinClan(mover, "Alpha")
	require.NoError(t, err)

	// Joining a second clan silently leaves the first.
	_, err = env.clanService.JoinClan(mover, "Beta")
	require.NoError(t, err)

	var stored models.User
	require.NoError(t, env.db.First(&stored, mover.ID).Error)
	require.NotNil(t, stored.ClanID)
	require.Equal(t, beta.ID, *stored.ClanID)
}

func TestClanService_LeaveClan_Idempotent(t *testing.T) {
	env := setupServiceTestEnv(t)

	user := registerTestUser(t, env, "loner")

	// Leaving without a clan still succeeds.
	require.NoError(t, env.clanService.LeaveClan(user))
	require.NoError(t, env.clanService.LeaveClan(user))
}
