package network

import (
	"sync"

	"github.com/awesome-cap/hashmap"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/bridgetable/server/bridge/game"
	"github.com/bridgetable/server/consts"
	"github.com/bridgetable/server/logger"
	"github.com/bridgetable/server/render"
	"github.com/bridgetable/server/service"
)

// Network is the interface of all kinds of network.
type Network interface {
	Serve() error
}

// ClientMessage is one chat event from a connected player. Type is one
// of auth, start, bid, play, hand, status, quit.
type ClientMessage struct {
	Type    string      `json:"type"`
	ID      int64       `json:"id,omitempty"`
	Name    string      `json:"name,omitempty"`
	Channel int64       `json:"channel,omitempty"`
	Text    string      `json:"text,omitempty"`
	Players []PlayerRef `json:"players,omitempty"`
}

// PlayerRef names an invited player for a start command, in seat order
// after the inviter.
type PlayerRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ServerMessage struct {
	Type    string           `json:"type"`
	Channel int64            `json:"channel,omitempty"`
	Text    string           `json:"text,omitempty"`
	Hand    *game.HandView   `json:"hand,omitempty"`
	Status  *game.StatusView `json:"status,omitempty"`
	Error   string           `json:"error,omitempty"`
}

// Session is one player's connection. Writes are serialized per
// connection; game-state serialization lives in the service layer.
type Session struct {
	mu     sync.Mutex
	conn   *websocket.Conn
	player game.Player
}

func (s *Session) write(msg ServerMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.conn.WriteJSON(msg)
}

var sessions = hashmap.New()

func getSession(playerID int64) *Session {
	if v, ok := sessions.Get(playerID); ok {
		return v.(*Session)
	}
	return nil
}

func handle(conn *websocket.Conn) {
	logger.Log.Info("new connection")
	var session *Session
	defer func() {
		if session != nil {
			sessions.Del(session.player.ID)
			logger.Log.Info("player disconnected", zap.Int64("player", session.player.ID))
		}
		_ = conn.Close()
	}()
	for {
		var msg ClientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		if msg.Type == "auth" {
			session = &Session{conn: conn, player: game.Player{ID: msg.ID, Name: msg.Name}}
			sessions.Set(msg.ID, session)
			logger.Log.Info("player connected", zap.Int64("player", msg.ID), zap.String("name", msg.Name))
			continue
		}
		if session == nil {
			_ = conn.WriteJSON(ServerMessage{Type: "error", Error: "auth required"})
			continue
		}
		dispatch(session, msg)
	}
}

func dispatch(s *Session, msg ClientMessage) {
	switch msg.Type {
	case "start":
		start(s, msg)
	case "bid":
		bidCmd(s, msg)
	case "play":
		play(s, msg)
	case "hand":
		hand(s, msg)
	case "status":
		status(s, msg)
	case "quit":
		quit(s, msg)
	default:
		s.write(ServerMessage{Type: "error", Channel: msg.Channel, Error: "unknown command"})
	}
}

func fail(s *Session, channel int64, err error) {
	s.write(ServerMessage{Type: "error", Channel: channel, Error: err.Error()})
}

// broadcast sends a chat line to every player seated at the table.
func broadcast(channel int64, players []game.Player, text string) {
	for _, p := range players {
		if session := getSession(p.ID); session != nil {
			session.write(ServerMessage{Type: "text", Channel: channel, Text: text})
		}
	}
}

func start(s *Session, msg ClientMessage) {
	players := []game.Player{s.player}
	for _, ref := range msg.Players {
		players = append(players, game.Player{ID: ref.ID, Name: ref.Name})
	}
	if _, err := service.CreateGame(msg.Channel, players); err != nil {
		fail(s, msg.Channel, err)
		return
	}
	broadcast(msg.Channel, players, render.Start(players))
	broadcast(msg.Channel, players, "Use the hand command to see your cards (only you can see them).\n")
}

func bidCmd(s *Session, msg ClientMessage) {
	res, err := service.SubmitBid(msg.Channel, s.player.ID, msg.Text)
	if err != nil {
		fail(s, msg.Channel, err)
		return
	}
	players, perr := service.Players(msg.Channel)
	if perr != nil {
		return
	}
	broadcast(msg.Channel, players, render.Bid(s.player.Name, res))
	if res.AuctionOver {
		declarer := players[res.Contract.Declarer].Name
		broadcast(msg.Channel, players, render.Contract(res.Contract, declarer))
	}
	promptTurn(msg.Channel, players)
}

func play(s *Session, msg ClientMessage) {
	players, perr := service.Players(msg.Channel)
	out, err := service.PlayCard(msg.Channel, s.player.ID, msg.Text)
	if err != nil {
		// Unparsable text on a busy channel is most likely ordinary
		// chat; stay silent on format errors.
		if err != consts.ErrorsInputInvalid {
			fail(s, msg.Channel, err)
		}
		return
	}
	if perr != nil {
		return
	}
	broadcast(msg.Channel, players, render.Play(s.player.Name, out.PlayResult))
	if out.Final != nil {
		broadcast(msg.Channel, players, render.Final(*out.Final))
		return
	}
	promptTurn(msg.Channel, players)
}

func promptTurn(channel int64, players []game.Player) {
	view, err := service.Status(channel)
	if err != nil {
		return
	}
	broadcast(channel, players, "It's "+view.Turn+"'s turn.\n")
}

func hand(s *Session, msg ClientMessage) {
	view, err := service.HandView(msg.Channel, s.player.ID)
	if err != nil {
		fail(s, msg.Channel, err)
		return
	}
	s.write(ServerMessage{
		Type:    "hand",
		Channel: msg.Channel,
		Text:    render.Hand(view),
		Hand:    &view,
	})
}

func status(s *Session, msg ClientMessage) {
	view, err := service.Status(msg.Channel)
	if err != nil {
		fail(s, msg.Channel, err)
		return
	}
	s.write(ServerMessage{
		Type:    "status",
		Channel: msg.Channel,
		Text:    render.Status(view),
		Status:  &view,
	})
}

func quit(s *Session, msg ClientMessage) {
	players, perr := service.Players(msg.Channel)
	if err := service.Quit(msg.Channel, s.player.ID); err != nil {
		fail(s, msg.Channel, err)
		return
	}
	if perr == nil {
		broadcast(msg.Channel, players, s.player.Name+" ended the game.\n")
	}
}
