package render

import (
	"bytes"
	"fmt"

	"github.com/fatih/color"

	"github.com/bridgetable/server/bridge/game"
	"github.com/bridgetable/server/consts"
)

// Chat text rendering of engine views. Everything here is a pure
// function of its input; the network layer decides who sees what.

var red = color.New(color.FgHiRed).SprintfFunc()

func paintSuit(suit string) string {
	if suit == "♥" || suit == "♦" {
		return red("%s", suit)
	}
	return suit
}

func Start(players []game.Player) string {
	buf := bytes.Buffer{}
	if len(players) == consts.FourPlayers {
		buf.WriteString("Four-player bridge started!\n")
		buf.WriteString(fmt.Sprintf("NS: %s & %s\n", players[0].Name, players[2].Name))
		buf.WriteString(fmt.Sprintf("EW: %s & %s\n", players[1].Name, players[3].Name))
		buf.WriteString("13 cards each, the partnership with more tricks wins.\n")
	} else {
		buf.WriteString("Two-player bridge started!\n")
		buf.WriteString(fmt.Sprintf("%s vs %s\n", players[0].Name, players[1].Name))
		buf.WriteString("26 cards each, the player with more tricks wins.\n")
	}
	buf.WriteString(fmt.Sprintf("Bidding starts with %s. Bid like 1♠, 2NT, 3H, or pass.\n", players[0].Name))
	return buf.String()
}

func Hand(view game.HandView) string {
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("Your hand (%d):\n", view.Count))
	for _, group := range view.Suits {
		buf.WriteString(paintSuit(group.Suit))
		buf.WriteString(":")
		for _, r := range group.Ranks {
			buf.WriteString(" " + r)
		}
		buf.WriteString("\n")
	}
	return buf.String()
}

func Status(view game.StatusView) string {
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("Phase: %s, turn: %s\n", view.Phase, view.Turn))
	if view.Contract != nil {
		buf.WriteString(fmt.Sprintf("Contract: %s by %s (trump %s, target %d)\n",
			view.Contract.Bid, view.Contract.Declarer, paintSuit(view.Contract.Trump), view.Contract.Target))
	}
	if len(view.Calls) > 0 && view.Contract == nil {
		buf.WriteString("Auction:")
		for _, c := range view.Calls {
			buf.WriteString(fmt.Sprintf(" %s:%s", c.Player, c.Call))
		}
		buf.WriteString("\n")
	}
	if len(view.CurrentTrick) > 0 {
		buf.WriteString("Current trick:")
		for i, p := range view.CurrentTrick {
			lead := ""
			if i == 0 {
				lead = " (lead)"
			}
			buf.WriteString(fmt.Sprintf(" %s:%s%s", p.Player, p.Card, lead))
		}
		buf.WriteString("\n")
	}
	buf.WriteString(fmt.Sprintf("%-20s%-10s\n", "Player", "Tricks"))
	for _, s := range view.Scores {
		buf.WriteString(fmt.Sprintf("%-20s%-10d\n", s.Player, s.Tricks))
	}
	if len(view.TeamScores) > 0 {
		buf.WriteString(fmt.Sprintf("NS %d - EW %d\n",
			view.TeamScores[consts.TeamNS], view.TeamScores[consts.TeamEW]))
	}
	return buf.String()
}

func Bid(player string, res game.BidResult) string {
	if res.Pass {
		return fmt.Sprintf("%s passes.\n", player)
	}
	return fmt.Sprintf("%s bids %s.\n", player, res.Bid)
}

func Contract(c game.Contract, declarer string) string {
	trump := c.Bid.Denom.Trump()
	trumpInfo := "no trump"
	if s, ok := trump.Suit(); ok {
		trumpInfo = "trump " + paintSuit(s.String())
	}
	return fmt.Sprintf("Bidding is over! Contract %s by %s, %s, target %d tricks.\n",
		c.Bid, declarer, trumpInfo, c.Target())
}

func Play(player string, res game.PlayResult) string {
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("%s plays %s.\n", player, res.Card))
	if res.TrickOver {
		buf.WriteString(fmt.Sprintf("%s takes the trick and leads next.\n", res.Winner.Name))
	}
	return buf.String()
}

func Final(res game.Result) string {
	buf := bytes.Buffer{}
	buf.WriteString("Game over! ")
	switch {
	case res.Tie:
		buf.WriteString("It's a tie.\n")
	case res.WinningTeam != "":
		buf.WriteString(fmt.Sprintf("Team %s wins!\n", res.WinningTeam))
	default:
		buf.WriteString(fmt.Sprintf("%s wins!\n", res.Winner.Name))
	}
	made := "made"
	if !res.ContractMade {
		made = "failed"
	}
	buf.WriteString(fmt.Sprintf("Contract %s by %s %s: %d of %d tricks.\n",
		res.Contract.Bid, res.Declarer.Name, made, res.Achieved, res.Target))
	return buf.String()
}
