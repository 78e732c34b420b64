package repository

import (
	"testing"

	"github.com/rocketscienceinc/word-duel/internal/apperror"
	"github.com/rocketscienceinc/word-duel/internal/entity"
	"github.com/rocketscienceinc/word-duel/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerRepository_Upsert(t *testing.T) {
	ctx, st := suite.New(t)

	playerRepo := NewPlayerRepository(st.Logger, st.Storage)

	// Given: a leaderboard with two players
	require.NoError(t, playerRepo.Upsert(ctx, &entity.Player{Name: "alice", TotalWins: 1}, &entity.Player{Name: "bob"}))

	// When: alice wins again and a new player joins
	require.NoError(t, playerRepo.Upsert(ctx, &entity.Player{Name: "alice", TotalWins: 2}, &entity.Player{Name: "carol"}))

	// Then: alice is updated in place and carol appended
	players, err := playerRepo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*entity.Player{
		{Name: "alice", TotalWins: 2},
		{Name: "bob"},
		{Name: "carol"},
	}, players)
}

func TestPlayerRepository_Upsert_StoresSnapshot(t *testing.T) {
	ctx, st := suite.New(t)

	playerRepo := NewPlayerRepository(st.Logger, st.Storage)

	// Given: a live player object
	player := &entity.Player{Name: "alice", TotalWins: 1}
	require.NoError(t, playerRepo.Upsert(ctx, player))

	// When: the live object changes without another upsert
	player.TotalWins = 10

	// Then: the stored record is unaffected
	stored, err := playerRepo.GetByName(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 1, stored.TotalWins)
}

func TestPlayerRepository_GetByName(t *testing.T) {
	t.Run("GetByName_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		playerRepo := NewPlayerRepository(st.Logger, st.Storage)
		require.NoError(t, playerRepo.Upsert(ctx, &entity.Player{Name: "Alice", TotalWins: 4}))

		player, err := playerRepo.GetByName(ctx, "Alice")

		require.NoError(t, err)
		assert.Equal(t, 4, player.TotalWins)
	})

	t.Run("GetByName_IsCaseSensitive", func(t *testing.T) {
		ctx, st := suite.New(t)

		playerRepo := NewPlayerRepository(st.Logger, st.Storage)
		require.NoError(t, playerRepo.Upsert(ctx, &entity.Player{Name: "Alice"}))

		player, err := playerRepo.GetByName(ctx, "alice")

		require.ErrorIs(t, err, apperror.ErrPlayerNotFound)
		assert.Nil(t, player)
	})

	t.Run("GetByName_NotFound on empty leaderboard", func(t *testing.T) {
		ctx, st := suite.New(t)

		_, err := NewPlayerRepository(st.Logger, st.Storage).GetByName(ctx, "nobody")

		require.ErrorIs(t, err, apperror.ErrPlayerNotFound)
	})
}

func TestPlayerRepository_List_Corrupted(t *testing.T) {
	ctx, st := suite.New(t)

	playerRepo := NewPlayerRepository(st.Logger, st.Storage)

	// Given: a corrupt leaderboard document
	require.NoError(t, st.Storage.Put(ctx, PlayersKey, []byte(`[{"name": `)))

	// When: it is listed
	players, err := playerRepo.List(ctx)

	// Then: it reads as empty
	require.NoError(t, err)
	assert.Empty(t, players)
}
