package consts

type Phase int

const (
	_ Phase = iota
	PhaseBidding
	PhasePlaying
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseBidding:
		return "bidding"
	case PhasePlaying:
		return "playing"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

const (
	TwoPlayers  = 2
	FourPlayers = 4

	// Passes in a row that close the auction, once every seat has called.
	PassesToEndTwo  = 2
	PassesToEndFour = 3

	// Tricks needed beyond the contract level, book of six.
	ContractBase = 6
)

// Partnership labels for four-player tables, seats 0/2 and 1/3.
const (
	TeamNS = "NS"
	TeamEW = "EW"
)

type Error struct {
	Code int
	Msg  string
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, msg string) Error {
	return Error{Code: code, Msg: msg}
}

var (
	ErrorsInputInvalid    = NewErr(1, "Input invalid. ")
	ErrorsOutOfTurn       = NewErr(2, "Not your turn. ")
	ErrorsIllegalBid      = NewErr(3, "Bid must be higher than the last bid. ")
	ErrorsCardNotHeld     = NewErr(4, "You do not hold that card. ")
	ErrorsMustFollowSuit  = NewErr(5, "You must follow the lead suit. ")
	ErrorsTableBusy       = NewErr(6, "A game is already running in this channel. ")
	ErrorsNoActiveTable   = NewErr(7, "No game is running in this channel. ")
	ErrorsNotParticipant  = NewErr(8, "You are not in this game. ")
	ErrorsDuplicatePlayer = NewErr(9, "Duplicate player. ")
	ErrorsBadPlayerCount  = NewErr(10, "Bridge needs 2 or 4 players. ")
	ErrorsWrongPhase      = NewErr(11, "That action is not allowed now. ")
)
