package game

import (
	"github.com/bridgetable/server/bridge/bid"
	"github.com/bridgetable/server/consts"
)

// BidResult reports an accepted auction call.
type BidResult struct {
	Pass        bool
	Bid         bid.Bid
	AuctionOver bool
	Contract    Contract
}

// SubmitBid applies one auction call for the given player. The raw text
// is parsed here so the adapter can forward chat input untouched.
// Validation is strictly before mutation; a rejected call leaves the
// game unchanged.
func (g *Game) SubmitBid(playerID int64, raw string) (BidResult, error) {
	if g.phase != consts.PhaseBidding {
		return BidResult{}, consts.ErrorsWrongPhase
	}
	seat, ok := g.seatOf(playerID)
	if !ok {
		return BidResult{}, consts.ErrorsNotParticipant
	}
	if seat != g.turn {
		return BidResult{}, consts.ErrorsOutOfTurn
	}
	b, pass, err := bid.Parse(raw)
	if err != nil {
		return BidResult{}, consts.ErrorsInputInvalid
	}
	if !pass {
		if last, found := g.lastBid(); found && !b.Beats(last.Bid) {
			return BidResult{}, consts.ErrorsIllegalBid
		}
	}

	g.calls = append(g.calls, Call{Seat: seat, Pass: pass, Bid: b})
	if pass {
		g.passStreak++
	} else {
		g.passStreak = 0
	}

	res := BidResult{Pass: pass, Bid: b}
	if g.auctionOver() {
		g.finalizeContract()
		res.AuctionOver = true
		res.Contract = g.contract
	} else {
		g.turn = (g.turn + 1) % len(g.players)
	}
	return res, nil
}

// Calls returns a copy of the auction ledger.
func (g *Game) Calls() []Call {
	return append([]Call(nil), g.calls...)
}

// Contract returns the standing contract once the auction is over.
func (g *Game) Contract() (Contract, bool) {
	if g.phase == consts.PhaseBidding {
		return Contract{}, false
	}
	return g.contract, true
}

func (g *Game) lastBid() (Call, bool) {
	for i := len(g.calls) - 1; i >= 0; i-- {
		if !g.calls[i].Pass {
			return g.calls[i], true
		}
	}
	return Call{}, false
}

// auctionOver applies the pass-streak rule: two consecutive passes end
// a heads-up auction, three end a four-player one, and never before
// every seat has called once.
func (g *Game) auctionOver() bool {
	if len(g.calls) < len(g.players) {
		return false
	}
	if g.fourPlayer() {
		return g.passStreak >= consts.PassesToEndFour
	}
	return g.passStreak >= consts.PassesToEndTwo
}

// finalizeContract fixes the contract from the last standing bid and
// moves the game into the playing phase. An all-pass auction falls back
// to one no-trump declared by the first seat instead of redealing; that
// mirrors the chat game this engine replaces, not real bridge.
func (g *Game) finalizeContract() {
	if last, found := g.lastBid(); found {
		g.contract = Contract{Bid: last.Bid, Declarer: last.Seat}
	} else {
		g.contract = Contract{Bid: bid.Bid{Level: 1, Denom: bid.NoTrump}, Declarer: 0}
	}
	g.trump = g.contract.Bid.Denom.Trump()
	g.phase = consts.PhasePlaying
	g.turn = 0
}
