package render_test

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bridgetable/server/bridge/bid"
	"github.com/bridgetable/server/bridge/game"
	"github.com/bridgetable/server/render"
)

func init() {
	color.NoColor = true
}

func TestHandRendering(t *testing.T) {
	view := game.HandView{
		Count: 3,
		Suits: []game.SuitGroup{
			{Suit: "♠", Ranks: []string{"A", "K"}},
			{Suit: "♣", Ranks: []string{"2"}},
		},
	}
	text := render.Hand(view)
	assert.Contains(t, text, "Your hand (3)")
	assert.Contains(t, text, "♠: A K")
	assert.Contains(t, text, "♣: 2")

	// Rendering is a pure function of the view.
	require.Equal(t, text, render.Hand(view))
}

func TestFinalRendering(t *testing.T) {
	contract := game.Contract{Bid: bid.Bid{Level: 2, Denom: bid.Spades}, Declarer: 0}

	t.Run("team_win", func(t *testing.T) {
		text := render.Final(game.Result{
			WinningTeam:  "NS",
			Contract:     contract,
			Declarer:     game.Player{ID: 1, Name: "Alice"},
			Target:       8,
			Achieved:     9,
			ContractMade: true,
		})
		assert.Contains(t, text, "Team NS wins")
		assert.Contains(t, text, "2♠ by Alice made: 9 of 8 tricks")
	})

	t.Run("tie", func(t *testing.T) {
		text := render.Final(game.Result{
			Tie:      true,
			Contract: contract,
			Declarer: game.Player{ID: 1, Name: "Alice"},
			Target:   8,
			Achieved: 6,
		})
		assert.Contains(t, text, "It's a tie")
		assert.Contains(t, text, "failed")
	})
}
