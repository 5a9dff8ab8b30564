package bid

import (
	"fmt"
	"strings"

	"github.com/bridgetable/server/bridge/card"
)

// Denom is a bid denomination. The declaration order is the auction
// ranking: clubs lowest, no-trump highest.
type Denom int

const (
	Clubs Denom = iota
	Diamonds
	Hearts
	Spades
	NoTrump
)

func (d Denom) String() string {
	switch d {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	case NoTrump:
		return "NT"
	default:
		return "?"
	}
}

// Trump maps the denomination onto the trick-comparison trump.
func (d Denom) Trump() card.Trump {
	switch d {
	case Clubs:
		return card.Of(card.Clubs)
	case Diamonds:
		return card.Of(card.Diamonds)
	case Hearts:
		return card.Of(card.Hearts)
	case Spades:
		return card.Of(card.Spades)
	default:
		return card.NoTrump()
	}
}

type Bid struct {
	Level int
	Denom Denom
}

func (b Bid) String() string {
	return fmt.Sprintf("%d%s", b.Level, b.Denom)
}

// Beats reports whether b outranks prev under the (level, denomination)
// auction order.
func (b Bid) Beats(prev Bid) bool {
	if b.Level != prev.Level {
		return b.Level > prev.Level
	}
	return b.Denom > prev.Denom
}

var passTokens = map[string]bool{
	"PASS": true,
	"P":    true,
}

// Denomination synonyms, longest form first so "NOTRUMP" is not eaten
// by the bare "N".
var denomTokens = []struct {
	token string
	denom Denom
}{
	{"♣", Clubs}, {"CLUBS", Clubs}, {"C", Clubs},
	{"♦", Diamonds}, {"DIAMONDS", Diamonds}, {"D", Diamonds},
	{"♥", Hearts}, {"HEARTS", Hearts}, {"H", Hearts},
	{"♠", Spades}, {"SPADES", Spades}, {"S", Spades},
	{"NOTRUMP", NoTrump}, {"NT", NoTrump}, {"N", NoTrump},
}

// Parse reads an auction call. It returns pass=true for the pass
// tokens, a Bid for "<level 1-7><denomination>" forms such as "1♠",
// "2NT" or "3 hearts", and an error for anything else. Unrecognized
// text is an error, never a silent pass.
func Parse(text string) (Bid, bool, error) {
	token := strings.ToUpper(strings.TrimSpace(text))
	token = strings.ReplaceAll(token, "️", "")
	if token == "" {
		return Bid{}, false, fmt.Errorf("empty bid")
	}
	if passTokens[token] {
		return Bid{}, true, nil
	}
	if len(token) < 2 {
		return Bid{}, false, fmt.Errorf("unrecognized bid %q", text)
	}
	level := int(token[0] - '0')
	if level < 1 || level > 7 {
		return Bid{}, false, fmt.Errorf("bid level must be 1-7, got %q", text)
	}
	rest := strings.TrimSpace(token[1:])
	for _, dt := range denomTokens {
		if strings.HasPrefix(rest, dt.token) {
			return Bid{Level: level, Denom: dt.denom}, false, nil
		}
	}
	return Bid{}, false, fmt.Errorf("unrecognized bid %q", text)
}
