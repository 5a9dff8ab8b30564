package card

import (
	"fmt"
	"math/rand"
	"strings"
)

type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

// DisplaySuits is the conventional hand-listing order, spades first.
// It only affects presentation, never trick comparison.
var DisplaySuits = []Suit{Spades, Hearts, Diamonds, Clubs}

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

func (s Suit) Letter() string {
	switch s {
	case Clubs:
		return "C"
	case Diamonds:
		return "D"
	case Hearts:
		return "H"
	case Spades:
		return "S"
	default:
		return "?"
	}
}

// DisplayRank orders suits for hand sorting, spades highest.
func (s Suit) DisplayRank() int {
	switch s {
	case Spades:
		return 4
	case Hearts:
		return 3
	case Diamonds:
		return 2
	case Clubs:
		return 1
	default:
		return 0
	}
}

type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return fmt.Sprintf("%d", int(r))
	}
}

type Card struct {
	Suit Suit
	Rank Rank
}

func (c Card) String() string {
	return c.Suit.String() + c.Rank.String()
}

// Trump is either a concrete suit or no-trump. The zero value means
// no-trump.
type Trump struct {
	suit  Suit
	valid bool
}

func Of(s Suit) Trump {
	return Trump{suit: s, valid: true}
}

func NoTrump() Trump {
	return Trump{}
}

func (t Trump) Suit() (Suit, bool) {
	return t.suit, t.valid
}

func (t Trump) Is(s Suit) bool {
	return t.valid && t.suit == s
}

func (t Trump) String() string {
	if !t.valid {
		return "NT"
	}
	return t.suit.String()
}

// CompareTrick compares two cards for trick resolution under the given
// trump. It is not a total order: two non-trump cards of different suits
// are incomparable and yield 0, which callers must resolve by lead-suit
// precedence rather than treating the cards as equal.
func CompareTrick(a, b Card, trump Trump) int {
	aTrump, bTrump := trump.Is(a.Suit), trump.Is(b.Suit)
	if aTrump != bTrump {
		if aTrump {
			return 1
		}
		return -1
	}
	if a.Suit == b.Suit {
		return int(a.Rank) - int(b.Rank)
	}
	return 0
}

// NewDeck returns the 52 distinct cards in a fixed order.
func NewDeck() []Card {
	deck := make([]Card, 0, 52)
	for _, s := range Suits {
		for _, r := range Ranks {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	return deck
}

func Shuffle(cards []Card) {
	rand.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
}

var suitTokens = map[string]Suit{
	"♣": Clubs, "C": Clubs,
	"♦": Diamonds, "D": Diamonds,
	"♥": Hearts, "H": Hearts,
	"♠": Spades, "S": Spades,
}

var rankTokens = map[string]Rank{
	"2": Two, "3": Three, "4": Four, "5": Five, "6": Six, "7": Seven,
	"8": Eight, "9": Nine, "10": Ten,
	"J": Jack, "Q": Queen, "K": King, "A": Ace,
}

// Parse reads a card token such as "♠A", "A♠", "h10" or "10H". The suit
// may appear before or after the rank, as a symbol or a letter; letter
// ranks are case-insensitive. Emoji variation selectors are stripped so
// chat-flavoured symbols like "♠️" parse too.
func Parse(text string) (Card, error) {
	token := strings.ToUpper(strings.TrimSpace(text))
	token = strings.ReplaceAll(token, "️", "")
	if token == "" {
		return Card{}, fmt.Errorf("empty card token")
	}
	for sym, suit := range suitTokens {
		if !strings.Contains(token, sym) {
			continue
		}
		rest := strings.TrimSpace(strings.Replace(token, sym, "", 1))
		if rank, ok := rankTokens[rest]; ok {
			return Card{Suit: suit, Rank: rank}, nil
		}
	}
	return Card{}, fmt.Errorf("unrecognized card %q", text)
}
