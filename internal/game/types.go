package game

import (
	"encoding/json"
	"time"
)

// Role is a player's part in the current round.
type Role string

const (
	RoleDrawer    Role = "drawer"
	RoleGuesser   Role = "guesser"
	RoleSpectator Role = "spectator"
)

// Status is the room lifecycle state. RoundEnded sits between a finished
// round (timer expiry or first correct guess) and the next rotation.
type Status string

const (
	StatusWaiting    Status = "waiting"
	StatusPlaying    Status = "playing"
	StatusRoundEnded Status = "round_ended"
	StatusFinished   Status = "finished"
)

// Player is a room member. Records are kept after a disconnect so a
// rejoining player gets their score back; they are only dropped together
// with the room.
type Player struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Score     int    `json:"score"`
	Connected bool   `json:"connected"`
	Role      Role   `json:"role"`
}

type DrawingKind string

const (
	DrawingStroke DrawingKind = "stroke"
	DrawingClear  DrawingKind = "clear"
)

// DrawingEvent is an opaque stroke or clear event relayed between the
// drawer and the rest of the room. The payload is never inspected.
type DrawingEvent struct {
	Kind      DrawingKind     `json:"kind"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// GuessEntry records a guess with its correctness as computed at
// submission time. The flag is never recomputed, even if the word changes
// later in the round.
type GuessEntry struct {
	PlayerID   string    `json:"player_id"`
	PlayerName string    `json:"player_name"`
	Text       string    `json:"text"`
	Correct    bool      `json:"correct"`
	Timestamp  time.Time `json:"timestamp"`
}

type ChatKind string

const (
	ChatPlayer ChatKind = "chat"
	ChatSystem ChatKind = "system"
)

type ChatMessage struct {
	PlayerID   string    `json:"player_id"`
	PlayerName string    `json:"player_name"`
	Text       string    `json:"text"`
	Kind       ChatKind  `json:"kind"`
	Timestamp  time.Time `json:"timestamp"`
}

// Rules holds the scoring and timing constants for a session.
type Rules struct {
	RoundSeconds  int
	GuesserPoints int
	DrawerPoints  int
}

func DefaultRules() Rules {
	return Rules{
		RoundSeconds:  60,
		GuesserPoints: 10,
		DrawerPoints:  5,
	}
}
