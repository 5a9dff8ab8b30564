package game

import (
	"github.com/bridgetable/server/bridge/card"
	"github.com/bridgetable/server/consts"
)

// Views are pure snapshots for the chat adapter to render. Building one
// never mutates the game.

type SuitGroup struct {
	Suit  string   `json:"suit"`
	Ranks []string `json:"ranks"`
}

type HandView struct {
	PlayerID int64       `json:"playerId"`
	Count    int         `json:"count"`
	Suits    []SuitGroup `json:"suits"`
}

type PlayView struct {
	Player string `json:"player"`
	Card   string `json:"card"`
}

type CallView struct {
	Player string `json:"player"`
	Call   string `json:"call"`
}

type ScoreView struct {
	Player string `json:"player"`
	Tricks int    `json:"tricks"`
}

type ContractView struct {
	Bid      string `json:"bid"`
	Declarer string `json:"declarer"`
	Trump    string `json:"trump"`
	Target   int    `json:"target"`
}

type StatusView struct {
	Phase        string         `json:"phase"`
	Turn         string         `json:"turn"`
	Scores       []ScoreView    `json:"scores"`
	TeamScores   map[string]int `json:"teamScores,omitempty"`
	Calls        []CallView     `json:"calls,omitempty"`
	Contract     *ContractView  `json:"contract,omitempty"`
	CurrentTrick []PlayView     `json:"currentTrick,omitempty"`
}

// HandView groups the player's remaining cards by suit in display
// order, spades first, the shape the adapter shows privately to the
// requesting player. Void suits are omitted.
func (g *Game) HandView(playerID int64) (HandView, error) {
	hand, ok := g.hands[playerID]
	if !ok {
		return HandView{}, consts.ErrorsNotParticipant
	}
	view := HandView{PlayerID: playerID, Count: len(hand)}
	for _, s := range card.DisplaySuits {
		var ranks []string
		for _, c := range hand {
			if c.Suit == s {
				ranks = append(ranks, c.Rank.String())
			}
		}
		if len(ranks) > 0 {
			view.Suits = append(view.Suits, SuitGroup{Suit: s.String(), Ranks: ranks})
		}
	}
	return view, nil
}

// StatusView summarizes the table for everyone: phase, whose turn it
// is, the auction so far, the contract once fixed, trick counters and
// the trick in progress.
func (g *Game) StatusView() StatusView {
	view := StatusView{
		Phase: g.phase.String(),
		Turn:  g.players[g.turn].Name,
	}
	for seat, p := range g.players {
		view.Scores = append(view.Scores, ScoreView{Player: p.Name, Tricks: g.tricksWon[seat]})
	}
	if g.fourPlayer() {
		view.TeamScores = g.TeamTricks()
	}
	for _, c := range g.calls {
		text := "Pass"
		if !c.Pass {
			text = c.Bid.String()
		}
		view.Calls = append(view.Calls, CallView{Player: g.players[c.Seat].Name, Call: text})
	}
	if contract, ok := g.Contract(); ok {
		view.Contract = &ContractView{
			Bid:      contract.Bid.String(),
			Declarer: g.players[contract.Declarer].Name,
			Trump:    g.trump.String(),
			Target:   contract.Target(),
		}
	}
	for _, p := range g.current {
		view.CurrentTrick = append(view.CurrentTrick, PlayView{Player: g.players[p.Seat].Name, Card: p.Card.String()})
	}
	return view
}

// Hand returns a copy of the player's current cards, sorted for
// display.
func (g *Game) Hand(playerID int64) []card.Card {
	return append([]card.Card(nil), g.hands[playerID]...)
}
