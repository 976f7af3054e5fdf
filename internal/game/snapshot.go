package game

// Snapshot is the authoritative, point-in-time view of a room handed to
// the gateway after every accepted mutation. CurrentWord is only filled
// in for the drawer's own view and for everyone once the round is over;
// MaskedWord is always safe to show.
type Snapshot struct {
	Code            string         `json:"code"`
	Status          Status         `json:"status"`
	HostID          string         `json:"host_id"`
	Players         []Player       `json:"players"`
	CurrentWord     string         `json:"current_word,omitempty"`
	MaskedWord      string         `json:"masked_word,omitempty"`
	CurrentDrawerID string         `json:"current_drawer_id"`
	TimeLeft        int            `json:"time_left"`
	Round           int            `json:"round"`
	DrawingLog      []DrawingEvent `json:"drawing_log"`
	GuessLog        []GuessEntry   `json:"guess_log"`
	ChatLog         []ChatMessage  `json:"chat_log"`
}

// SnapshotFor builds the view of the room personalized for playerID.
func (r *Room) SnapshotFor(playerID string) Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked(playerID)
}

func (r *Room) snapshotLocked(playerID string) Snapshot {
	players := make([]Player, len(r.players))
	for i, p := range r.players {
		players[i] = *p
	}
	snap := Snapshot{
		Code:            r.code,
		Status:          r.status,
		HostID:          r.hostID,
		Players:         players,
		MaskedWord:      maskWord(r.currentWord),
		CurrentDrawerID: r.currentDrawerID,
		TimeLeft:        r.timeLeft,
		Round:           r.round,
		DrawingLog:      append([]DrawingEvent(nil), r.drawingLog...),
		GuessLog:        append([]GuessEntry(nil), r.guessLog...),
		ChatLog:         append([]ChatMessage(nil), r.chatLog...),
	}
	if r.wordVisibleToLocked(playerID) {
		snap.CurrentWord = r.currentWord
	}
	return snap
}

func (r *Room) wordVisibleToLocked(playerID string) bool {
	if r.status == StatusRoundEnded || r.status == StatusFinished {
		return true
	}
	return playerID != "" && playerID == r.currentDrawerID
}
