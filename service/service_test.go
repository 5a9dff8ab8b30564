package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bridgetable/server/bridge/game"
	"github.com/bridgetable/server/consts"
)

func players() []game.Player {
	return []game.Player{
		{ID: 1, Name: "Alice"},
		{ID: 2, Name: "Bob"},
	}
}

func TestCreateGame(t *testing.T) {
	const channel = int64(100)

	table, err := CreateGame(channel, players())
	require.NoError(t, err)
	require.NotEmpty(t, table.ID)
	defer func() { _ = Quit(channel, 1) }()

	_, err = CreateGame(channel, players())
	require.ErrorIs(t, err, consts.ErrorsTableBusy)

	// A different channel is unaffected.
	other, err := CreateGame(channel+1, players())
	require.NoError(t, err)
	require.NoError(t, Quit(channel+1, 1))
	assert.NotEqual(t, table.ID, other.ID)
}

func TestCreateGameValidation(t *testing.T) {
	_, err := CreateGame(200, players()[:1])
	require.ErrorIs(t, err, consts.ErrorsBadPlayerCount)

	dup := players()
	dup[1].ID = dup[0].ID
	_, err = CreateGame(200, dup)
	require.ErrorIs(t, err, consts.ErrorsDuplicatePlayer)
}

func TestNoActiveTable(t *testing.T) {
	const channel = int64(300)
	_, err := SubmitBid(channel, 1, "1♠")
	require.ErrorIs(t, err, consts.ErrorsNoActiveTable)
	_, err = Status(channel)
	require.ErrorIs(t, err, consts.ErrorsNoActiveTable)
	err = Quit(channel, 1)
	require.ErrorIs(t, err, consts.ErrorsNoActiveTable)
}

func TestQuit(t *testing.T) {
	const channel = int64(400)
	_, err := CreateGame(channel, players())
	require.NoError(t, err)

	require.ErrorIs(t, Quit(channel, 99), consts.ErrorsNotParticipant)
	require.NoError(t, Quit(channel, 2))
	_, err = Status(channel)
	require.ErrorIs(t, err, consts.ErrorsNoActiveTable)
}

func TestGameFlowThroughService(t *testing.T) {
	const channel = int64(500)
	_, err := CreateGame(channel, players())
	require.NoError(t, err)
	defer func() { _ = Quit(channel, 1) }()

	view, err := HandView(channel, 1)
	require.NoError(t, err)
	assert.Equal(t, 26, view.Count)

	res, err := SubmitBid(channel, 1, "1NT")
	require.NoError(t, err)
	assert.False(t, res.AuctionOver)

	_, err = SubmitBid(channel, 1, "2NT")
	require.ErrorIs(t, err, consts.ErrorsOutOfTurn)

	_, err = SubmitBid(channel, 2, "pass")
	require.NoError(t, err)
	res, err = SubmitBid(channel, 1, "pass")
	require.NoError(t, err)
	require.True(t, res.AuctionOver)

	status, err := Status(channel)
	require.NoError(t, err)
	assert.Equal(t, "playing", status.Phase)
	require.NotNil(t, status.Contract)
	assert.Equal(t, "1NT", status.Contract.Bid)
}
