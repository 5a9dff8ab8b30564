package service

import (
	"sync"

	"github.com/awesome-cap/hashmap"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bridgetable/server/bridge/game"
	"github.com/bridgetable/server/consts"
	"github.com/bridgetable/server/logger"
)

// Table binds one channel to its running game. All mutating actions for
// a channel go through the table lock, which is what serializes chat
// events per table; games on different channels never share state.
type Table struct {
	sync.Mutex
	ID      string
	Channel int64
	Game    *game.Game
}

var tables = hashmap.New()
var createMu sync.Mutex

func getTable(channelID int64) (*Table, error) {
	if v, ok := tables.Get(channelID); ok {
		return v.(*Table), nil
	}
	return nil, consts.ErrorsNoActiveTable
}

// CreateGame starts a new game on the channel, dealing immediately. At
// most one game may run per channel; a second create fails with the
// table-busy error.
func CreateGame(channelID int64, players []game.Player) (*Table, error) {
	createMu.Lock()
	defer createMu.Unlock()
	if _, ok := tables.Get(channelID); ok {
		return nil, consts.ErrorsTableBusy
	}
	g, err := game.New(players)
	if err != nil {
		return nil, err
	}
	g.Deal()
	table := &Table{
		ID:      uuid.NewString(),
		Channel: channelID,
		Game:    g,
	}
	tables.Set(channelID, table)
	logger.Log.Info("game created",
		zap.String("gameID", table.ID),
		zap.Int64("channel", channelID),
		zap.Int("players", len(players)),
	)
	return table, nil
}

func deleteTable(table *Table) {
	createMu.Lock()
	defer createMu.Unlock()
	tables.Del(table.Channel)
	logger.Log.Info("game removed",
		zap.String("gameID", table.ID),
		zap.Int64("channel", table.Channel),
	)
}

// SubmitBid forwards one auction call to the channel's game.
func SubmitBid(channelID, playerID int64, raw string) (game.BidResult, error) {
	table, err := getTable(channelID)
	if err != nil {
		return game.BidResult{}, err
	}
	table.Lock()
	defer table.Unlock()
	res, err := table.Game.SubmitBid(playerID, raw)
	if err != nil {
		return game.BidResult{}, err
	}
	if res.AuctionOver {
		logger.Log.Info("contract fixed",
			zap.String("gameID", table.ID),
			zap.String("bid", res.Contract.Bid.String()),
			zap.Int("declarer", res.Contract.Declarer),
		)
	}
	return res, nil
}

// PlayOutcome wraps an accepted play with the final result when the
// play ended the game. A finished game is removed from the registry.
type PlayOutcome struct {
	game.PlayResult
	Final *game.Result
}

// PlayCard forwards one play to the channel's game.
func PlayCard(channelID, playerID int64, raw string) (PlayOutcome, error) {
	table, err := getTable(channelID)
	if err != nil {
		return PlayOutcome{}, err
	}
	table.Lock()
	defer table.Unlock()
	res, err := table.Game.PlayCard(playerID, raw)
	if err != nil {
		return PlayOutcome{}, err
	}
	out := PlayOutcome{PlayResult: res}
	if res.GameOver {
		final, err := table.Game.Result()
		if err != nil {
			return PlayOutcome{}, err
		}
		out.Final = &final
		deleteTable(table)
		logger.Log.Info("game finished",
			zap.String("gameID", table.ID),
			zap.Bool("tie", final.Tie),
			zap.Bool("contractMade", final.ContractMade),
		)
	}
	return out, nil
}

// HandView returns the requesting player's private hand summary.
func HandView(channelID, playerID int64) (game.HandView, error) {
	table, err := getTable(channelID)
	if err != nil {
		return game.HandView{}, err
	}
	table.Lock()
	defer table.Unlock()
	return table.Game.HandView(playerID)
}

// Status returns the public table summary.
func Status(channelID int64) (game.StatusView, error) {
	table, err := getTable(channelID)
	if err != nil {
		return game.StatusView{}, err
	}
	table.Lock()
	defer table.Unlock()
	return table.Game.StatusView(), nil
}

// Players lists the seats at the channel's table.
func Players(channelID int64) ([]game.Player, error) {
	table, err := getTable(channelID)
	if err != nil {
		return nil, err
	}
	return table.Game.Players(), nil
}

// Quit tears the table down on request of one of its players.
func Quit(channelID, playerID int64) error {
	table, err := getTable(channelID)
	if err != nil {
		return err
	}
	table.Lock()
	defer table.Unlock()
	participant := false
	for _, p := range table.Game.Players() {
		if p.ID == playerID {
			participant = true
			break
		}
	}
	if !participant {
		return consts.ErrorsNotParticipant
	}
	deleteTable(table)
	return nil
}
