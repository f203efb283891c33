package services

import (
	"testing"

	"github.com/nojimad/collab-todo/internal/models"
	"github.com/stretchr/testify/require"
)

func TestCanAssign(t *testing.T) {
	clanA := uint64(1)
	clanB := uint64(2)

	inA := &models.User{ID: 1, ClanID: &clanA}
	alsoInA := &models.User{ID: 2, ClanID: &clanA}
	inB := &models.User{ID: 3, ClanID: &clanB}
	clanless := &models.User{ID: 4}

	// Leaving unassigned is always legal.
	require.True(t, CanAssign(clanless, nil))
	require.True(t, CanAssign(inA, nil))

	// Same clan.
	require.True(t, CanAssign(inA, alsoInA))
	require.True(t, CanAssign(inA, inA))

	// Cross-clan and clanless actors can never assign.
	require.False(t, CanAssign(inA, inB))
	require.False(t, CanAssign(clanless, inA))
	require.False(t, CanAssign(inA, clanless))
	require.False(t, CanAssign(clanless, clanless))
}
