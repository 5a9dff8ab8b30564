package game

import (
	"github.com/bridgetable/server/bridge/bid"
	"github.com/bridgetable/server/bridge/card"
	"github.com/bridgetable/server/consts"
)

// Player is the engine's view of a participant: an opaque platform id
// plus a display name. Seat order is fixed at creation and drives both
// turn rotation and, on four-player tables, the partnerships
// (seats 0 and 2 are NS, seats 1 and 3 are EW).
type Player struct {
	ID   int64
	Name string
}

// Call is one entry of the auction ledger.
type Call struct {
	Seat int
	Pass bool
	Bid  bid.Bid
}

// Play is one card laid into the current trick.
type Play struct {
	Seat int
	Card card.Card
}

// Trick is a completed trick archived into history.
type Trick struct {
	Plays  []Play
	Winner int
}

type Contract struct {
	Bid      bid.Bid
	Declarer int
}

// Target is the trick count the declaring side must reach.
func (c Contract) Target() int {
	return c.Bid.Level + consts.ContractBase
}

// Game is the state machine for one table. It owns all nested state and
// performs no locking; the owning service serializes actions per table.
type Game struct {
	players []Player
	hands   map[int64][]card.Card

	phase consts.Phase
	turn  int

	calls      []Call
	passStreak int

	contract Contract
	trump    card.Trump

	current []Play
	history []Trick

	tricksWon  []int
	teamTricks map[string]int
}

// New validates the seating and creates a game in the bidding phase.
// Hands stay empty until Deal.
func New(players []Player) (*Game, error) {
	if len(players) != consts.TwoPlayers && len(players) != consts.FourPlayers {
		return nil, consts.ErrorsBadPlayerCount
	}
	seen := map[int64]bool{}
	for _, p := range players {
		if seen[p.ID] {
			return nil, consts.ErrorsDuplicatePlayer
		}
		seen[p.ID] = true
	}
	g := &Game{
		players:   append([]Player(nil), players...),
		hands:     map[int64][]card.Card{},
		phase:     consts.PhaseBidding,
		trump:     card.NoTrump(),
		tricksWon: make([]int, len(players)),
	}
	for _, p := range players {
		g.hands[p.ID] = nil
	}
	if len(players) == consts.FourPlayers {
		g.teamTricks = map[string]int{consts.TeamNS: 0, consts.TeamEW: 0}
	}
	return g, nil
}

func (g *Game) Players() []Player {
	return append([]Player(nil), g.players...)
}

func (g *Game) Phase() consts.Phase {
	return g.phase
}

// Turn returns the player expected to act next. During bidding this is
// the bidding pointer, during play the current-player pointer.
func (g *Game) Turn() Player {
	return g.players[g.turn]
}

func (g *Game) seatOf(playerID int64) (int, bool) {
	for i, p := range g.players {
		if p.ID == playerID {
			return i, true
		}
	}
	return 0, false
}

// Team returns the partnership label for a seat on four-player tables.
func Team(seat int) string {
	if seat%2 == 0 {
		return consts.TeamNS
	}
	return consts.TeamEW
}

func (g *Game) fourPlayer() bool {
	return len(g.players) == consts.FourPlayers
}
