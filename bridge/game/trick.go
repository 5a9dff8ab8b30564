package game

import (
	"github.com/bridgetable/server/bridge/card"
	"github.com/bridgetable/server/consts"
)

// PlayResult reports an accepted play and, when it completed a trick,
// the resolution.
type PlayResult struct {
	Card      card.Card
	TrickOver bool
	Winner    Player
	GameOver  bool
}

// CanPlay checks card legality only: the card must be held, and the
// lead suit must be followed when the hand can. Turn order is enforced
// by PlayCard, not here.
func (g *Game) CanPlay(playerID int64, c card.Card) error {
	if !g.holds(playerID, c) {
		return consts.ErrorsCardNotHeld
	}
	if len(g.current) == 0 {
		return nil
	}
	lead := g.current[0].Card.Suit
	if c.Suit == lead {
		return nil
	}
	for _, held := range g.hands[playerID] {
		if held.Suit == lead {
			return consts.ErrorsMustFollowSuit
		}
	}
	return nil
}

// PlayCard applies one play for the given player, resolving the trick
// once every seat has contributed. Validation is strictly before
// mutation; a rejected play leaves the game unchanged.
func (g *Game) PlayCard(playerID int64, raw string) (PlayResult, error) {
	if g.phase != consts.PhasePlaying {
		return PlayResult{}, consts.ErrorsWrongPhase
	}
	seat, ok := g.seatOf(playerID)
	if !ok {
		return PlayResult{}, consts.ErrorsNotParticipant
	}
	if seat != g.turn {
		return PlayResult{}, consts.ErrorsOutOfTurn
	}
	c, err := card.Parse(raw)
	if err != nil {
		return PlayResult{}, consts.ErrorsInputInvalid
	}
	if err := g.CanPlay(playerID, c); err != nil {
		return PlayResult{}, err
	}

	g.removeCard(playerID, c)
	g.current = append(g.current, Play{Seat: seat, Card: c})

	res := PlayResult{Card: c}
	if len(g.current) < len(g.players) {
		g.turn = (g.turn + 1) % len(g.players)
		return res, nil
	}

	winner := g.resolveTrick()
	res.TrickOver = true
	res.Winner = g.players[winner]
	if g.handsEmpty() {
		g.phase = consts.PhaseFinished
		res.GameOver = true
	}
	return res, nil
}

// resolveTrick scans the full trick for its winner. The comparison is
// not a total order: a 0 result means the suits are incomparable, and
// the candidate only takes the trick if it followed the lead suit while
// the running winner did not.
func (g *Game) resolveTrick() int {
	lead := g.current[0].Card.Suit
	winner := g.current[0]
	for _, p := range g.current[1:] {
		cmp := card.CompareTrick(p.Card, winner.Card, g.trump)
		if cmp > 0 || (cmp == 0 && p.Card.Suit == lead && winner.Card.Suit != lead) {
			winner = p
		}
	}

	g.history = append(g.history, Trick{Plays: g.current, Winner: winner.Seat})
	g.tricksWon[winner.Seat]++
	if g.fourPlayer() {
		g.teamTricks[Team(winner.Seat)]++
	}
	g.current = nil
	g.turn = winner.Seat
	return winner.Seat
}

// CurrentTrick returns a copy of the trick in progress.
func (g *Game) CurrentTrick() []Play {
	return append([]Play(nil), g.current...)
}

// LeadSuit reports the suit led in the trick in progress, if any card
// has been played.
func (g *Game) LeadSuit() (card.Suit, bool) {
	if len(g.current) == 0 {
		return 0, false
	}
	return g.current[0].Card.Suit, true
}

// History returns the archived tricks in play order.
func (g *Game) History() []Trick {
	return append([]Trick(nil), g.history...)
}

func (g *Game) holds(playerID int64, c card.Card) bool {
	for _, held := range g.hands[playerID] {
		if held == c {
			return true
		}
	}
	return false
}

func (g *Game) removeCard(playerID int64, c card.Card) {
	hand := g.hands[playerID]
	for i, held := range hand {
		if held == c {
			g.hands[playerID] = append(hand[:i], hand[i+1:]...)
			return
		}
	}
}

func (g *Game) handsEmpty() bool {
	for _, hand := range g.hands {
		if len(hand) > 0 {
			return false
		}
	}
	return true
}
