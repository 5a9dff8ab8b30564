package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bridgetable/server/bridge/card"
	"github.com/bridgetable/server/consts"
)

func twoPlayers() []Player {
	return []Player{
		{ID: 1, Name: "Alice"},
		{ID: 2, Name: "Bob"},
	}
}

func fourPlayers() []Player {
	return []Player{
		{ID: 1, Name: "Alice"},
		{ID: 2, Name: "Bob"},
		{ID: 3, Name: "Carol"},
		{ID: 4, Name: "Dave"},
	}
}

func mustGame(t *testing.T, players []Player) *Game {
	t.Helper()
	g, err := New(players)
	require.NoError(t, err)
	return g
}

func setHand(g *Game, playerID int64, cards ...card.Card) {
	g.hands[playerID] = cards
}

// finishAuction drives a scripted auction through the public API.
func finishAuction(t *testing.T, g *Game, calls ...string) {
	t.Helper()
	for _, raw := range calls {
		_, err := g.SubmitBid(g.Turn().ID, raw)
		require.NoError(t, err)
	}
	require.Equal(t, consts.PhasePlaying, g.Phase())
}

func TestNew(t *testing.T) {
	t.Run("two_players", func(t *testing.T) {
		g := mustGame(t, twoPlayers())
		require.Equal(t, consts.PhaseBidding, g.Phase())
		require.Equal(t, int64(1), g.Turn().ID)
	})

	t.Run("four_players", func(t *testing.T) {
		g := mustGame(t, fourPlayers())
		require.Len(t, g.Players(), 4)
	})

	t.Run("bad_player_count", func(t *testing.T) {
		_, err := New(fourPlayers()[:3])
		require.ErrorIs(t, err, consts.ErrorsBadPlayerCount)
	})

	t.Run("duplicate_player", func(t *testing.T) {
		players := twoPlayers()
		players[1].ID = players[0].ID
		_, err := New(players)
		require.ErrorIs(t, err, consts.ErrorsDuplicatePlayer)
	})
}

func TestTeam(t *testing.T) {
	require.Equal(t, consts.TeamNS, Team(0))
	require.Equal(t, consts.TeamEW, Team(1))
	require.Equal(t, consts.TeamNS, Team(2))
	require.Equal(t, consts.TeamEW, Team(3))
}
