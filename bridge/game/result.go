package game

import (
	"github.com/bridgetable/server/consts"
)

// Result is the final outcome of a finished game. Exactly one of
// Winner/WinningTeam is meaningful depending on the table size, and a
// drawn game is an explicit Tie, never an arbitrary pick.
type Result struct {
	Tie         bool
	Winner      Player
	WinningTeam string

	Contract     Contract
	Declarer     Player
	Target       int
	Achieved     int
	ContractMade bool
}

// TricksWon returns the per-seat trick counters.
func (g *Game) TricksWon() []int {
	return append([]int(nil), g.tricksWon...)
}

// TeamTricks returns the partnership counters on four-player tables.
func (g *Game) TeamTricks() map[string]int {
	if g.teamTricks == nil {
		return nil
	}
	out := make(map[string]int, len(g.teamTricks))
	for k, v := range g.teamTricks {
		out[k] = v
	}
	return out
}

// Result computes the final standings once every card has been played.
// Contract fulfillment is reported alongside the winner: heads-up the
// declarer's own tricks count, four-player the declarer's partnership
// total.
func (g *Game) Result() (Result, error) {
	if g.phase != consts.PhaseFinished {
		return Result{}, consts.ErrorsWrongPhase
	}

	res := Result{
		Contract: g.contract,
		Declarer: g.players[g.contract.Declarer],
		Target:   g.contract.Target(),
	}
	if g.fourPlayer() {
		res.Achieved = g.teamTricks[Team(g.contract.Declarer)]
		ns, ew := g.teamTricks[consts.TeamNS], g.teamTricks[consts.TeamEW]
		switch {
		case ns > ew:
			res.WinningTeam = consts.TeamNS
		case ew > ns:
			res.WinningTeam = consts.TeamEW
		default:
			res.Tie = true
		}
	} else {
		res.Achieved = g.tricksWon[g.contract.Declarer]
		switch {
		case g.tricksWon[0] > g.tricksWon[1]:
			res.Winner = g.players[0]
		case g.tricksWon[1] > g.tricksWon[0]:
			res.Winner = g.players[1]
		default:
			res.Tie = true
		}
	}
	res.ContractMade = res.Achieved >= res.Target
	return res, nil
}
