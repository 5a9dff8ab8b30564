package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bridgetable/server/bridge/card"
	"github.com/bridgetable/server/consts"
)

func TestResultBeforeFinishRejected(t *testing.T) {
	g := mustGame(t, twoPlayers())
	_, err := g.Result()
	require.ErrorIs(t, err, consts.ErrorsWrongPhase)
}

func playTrick(t *testing.T, g *Game, plays ...string) {
	t.Helper()
	for _, raw := range plays {
		_, err := g.PlayCard(g.Turn().ID, raw)
		require.NoError(t, err)
	}
}

func TestResultTwoPlayers(t *testing.T) {
	t.Run("winner", func(t *testing.T) {
		g := mustGame(t, twoPlayers())
		finishAuction(t, g, "1♠", "pass", "pass")
		setHand(g, 1,
			card.Card{Suit: card.Spades, Rank: card.Ace},
			card.Card{Suit: card.Spades, Rank: card.King},
		)
		setHand(g, 2,
			card.Card{Suit: card.Spades, Rank: card.Three},
			card.Card{Suit: card.Spades, Rank: card.Two},
		)
		playTrick(t, g, "♠A", "♠3")
		playTrick(t, g, "♠K", "♠2")

		res, err := g.Result()
		require.NoError(t, err)
		assert.False(t, res.Tie)
		assert.Equal(t, int64(1), res.Winner.ID)
		assert.Equal(t, 7, res.Target)
		assert.Equal(t, 2, res.Achieved)
		assert.False(t, res.ContractMade)
	})

	t.Run("explicit_tie", func(t *testing.T) {
		g := mustGame(t, twoPlayers())
		finishAuction(t, g, "1♠", "pass", "pass")
		setHand(g, 1,
			card.Card{Suit: card.Spades, Rank: card.Ace},
			card.Card{Suit: card.Hearts, Rank: card.Two},
		)
		setHand(g, 2,
			card.Card{Suit: card.Spades, Rank: card.Two},
			card.Card{Suit: card.Hearts, Rank: card.Ace},
		)
		playTrick(t, g, "♠A", "♠2")
		playTrick(t, g, "♥2", "♥A")

		res, err := g.Result()
		require.NoError(t, err)
		assert.True(t, res.Tie)
		assert.Zero(t, res.Winner.ID)
	})
}

func TestResultFourPlayers(t *testing.T) {
	g := mustGame(t, fourPlayers())
	finishAuction(t, g, "1♥", "pass", "pass", "pass")
	setHand(g, 1, card.Card{Suit: card.Hearts, Rank: card.Ace})
	setHand(g, 2, card.Card{Suit: card.Hearts, Rank: card.Two})
	setHand(g, 3, card.Card{Suit: card.Hearts, Rank: card.Three})
	setHand(g, 4, card.Card{Suit: card.Hearts, Rank: card.Four})
	playTrick(t, g, "♥A", "♥2", "♥3", "♥4")

	res, err := g.Result()
	require.NoError(t, err)
	assert.False(t, res.Tie)
	assert.Equal(t, consts.TeamNS, res.WinningTeam)
	assert.Equal(t, int64(1), res.Declarer.ID)
	assert.Equal(t, 7, res.Target)
	assert.Equal(t, 1, res.Achieved, "declarer's partnership total counts")
	assert.False(t, res.ContractMade)
}

func TestContractMade(t *testing.T) {
	// A seven-trick heads-up game where the declarer takes them all.
	g := mustGame(t, twoPlayers())
	finishAuction(t, g, "1♠", "pass", "pass")

	var h1, h2 []card.Card
	for _, r := range []card.Rank{card.Eight, card.Nine, card.Ten, card.Jack, card.Queen, card.King, card.Ace} {
		h1 = append(h1, card.Card{Suit: card.Spades, Rank: r})
	}
	for _, r := range []card.Rank{card.Ace, card.Three, card.Four, card.Five, card.Six, card.Seven, card.Two} {
		h2 = append(h2, card.Card{Suit: card.Hearts, Rank: r})
	}
	setHand(g, 1, h1...)
	setHand(g, 2, h2...)

	for _, play := range []struct{ a, b string }{
		{"♠8", "♥A"}, {"♠9", "♥3"}, {"♠10", "♥4"}, {"♠J", "♥5"},
		{"♠Q", "♥6"}, {"♠K", "♥7"}, {"♠A", "♥2"},
	} {
		playTrick(t, g, play.a, play.b)
	}

	res, err := g.Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Winner.ID)
	assert.Equal(t, 7, res.Achieved)
	assert.True(t, res.ContractMade)
}
