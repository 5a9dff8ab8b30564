package game

import (
	"sort"

	"github.com/bridgetable/server/bridge/card"
)

// Deal shuffles a fresh deck and partitions it round-robin across the
// seats: 26 cards each heads-up, 13 each at a four-player table. Hands
// are sorted for display, spades first, high ranks first.
func (g *Game) Deal() {
	deck := card.NewDeck()
	card.Shuffle(deck)

	for _, p := range g.players {
		g.hands[p.ID] = g.hands[p.ID][:0]
	}
	for i, c := range deck {
		p := g.players[i%len(g.players)]
		g.hands[p.ID] = append(g.hands[p.ID], c)
	}
	for _, p := range g.players {
		sortHand(g.hands[p.ID])
	}
}

func sortHand(hand []card.Card) {
	sort.Slice(hand, func(i, j int) bool {
		if hand[i].Suit != hand[j].Suit {
			return hand[i].Suit.DisplayRank() > hand[j].Suit.DisplayRank()
		}
		return hand[i].Rank > hand[j].Rank
	})
}
