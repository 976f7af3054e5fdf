package game

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"draw-guess/internal/words"
)

// Room owns the full state of one game session. Every mutating operation
// takes the room mutex, so intents for the same room apply strictly in
// arrival order; independent rooms never contend with each other.
type Room struct {
	code  string
	rules Rules
	bank  *words.Bank

	// notify fans the post-mutation state out to the gateway. It is
	// called without the mutex held.
	notify func(*Room)

	mu              sync.Mutex
	players         []*Player
	status          Status
	hostID          string
	currentWord     string
	currentDrawerID string
	timeLeft        int
	round           int
	drawingLog      []DrawingEvent
	guessLog        []GuessEntry
	chatLog         []ChatMessage
	timerGen        int
	closed          bool
}

func newRoom(code string, bank *words.Bank, rules Rules, hostID, hostName string) *Room {
	r := &Room{
		code:            code,
		rules:           rules,
		bank:            bank,
		status:          StatusWaiting,
		hostID:          hostID,
		currentDrawerID: hostID,
		round:           1,
	}
	r.players = append(r.players, &Player{
		ID:        hostID,
		Name:      hostName,
		Connected: true,
		Role:      RoleDrawer,
	})
	r.appendSystemLocked(fmt.Sprintf("Room %s created", code))
	return r
}

// SetNotifier registers the broadcast callback. The registry wires this
// before the room is reachable by any other goroutine.
func (r *Room) SetNotifier(fn func(*Room)) {
	r.mu.Lock()
	r.notify = fn
	r.mu.Unlock()
}

func (r *Room) Code() string {
	return r.code
}

// Join adds a new player or reconnects a returning one. A returning
// player keeps their score and role; a new player's role follows join
// order (drawer, guesser, then spectators), except that distinct joiners
// arriving after the waiting phase always enter as spectators.
func (r *Room) Join(playerID, name string) (Snapshot, error) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return Snapshot{}, ErrRoomNotFound
	}
	if existing := r.findPlayerLocked(playerID); existing != nil {
		existing.Connected = true
		r.appendSystemLocked(fmt.Sprintf("%s rejoined the game", existing.Name))
		snap := r.snapshotLocked(playerID)
		r.mu.Unlock()
		r.notifyAll()
		return snap, nil
	}
	role := RoleSpectator
	if r.status == StatusWaiting {
		switch len(r.players) {
		case 0:
			role = RoleDrawer
		case 1:
			role = RoleGuesser
		}
	}
	r.players = append(r.players, &Player{
		ID:        playerID,
		Name:      name,
		Connected: true,
		Role:      role,
	})
	if role == RoleDrawer {
		r.currentDrawerID = playerID
	}
	r.appendSystemLocked(fmt.Sprintf("%s joined the game", name))
	snap := r.snapshotLocked(playerID)
	r.mu.Unlock()
	r.notifyAll()
	return snap, nil
}

// Leave marks the player disconnected. The record stays so a rejoin
// restores the score, and role consequences are resolved lazily at the
// next rotation. A running round timer is unaffected.
func (r *Room) Leave(playerID string) (Snapshot, error) {
	r.mu.Lock()
	player := r.findPlayerLocked(playerID)
	if player == nil {
		r.mu.Unlock()
		return Snapshot{}, reject("unknown player")
	}
	if player.Connected {
		player.Connected = false
		r.appendSystemLocked(fmt.Sprintf("%s left the game", player.Name))
	}
	snap := r.snapshotLocked(playerID)
	r.mu.Unlock()
	r.notifyAll()
	return snap, nil
}

// ConnectedCount reports how many members are currently connected. The
// gateway uses it to reclaim drained rooms.
func (r *Room) ConnectedCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.connectedCountLocked()
}

// Start begins the first round. Only legal from the waiting state with at
// least two connected, non-spectator players.
func (r *Room) Start(playerID string) (Snapshot, error) {
	r.mu.Lock()
	if r.findPlayerLocked(playerID) == nil {
		r.mu.Unlock()
		return Snapshot{}, reject("unknown player")
	}
	if r.status != StatusWaiting {
		r.mu.Unlock()
		return Snapshot{}, reject("game already started")
	}
	if r.eligibleCountLocked() < 2 {
		r.mu.Unlock()
		return Snapshot{}, reject("need at least 2 players to start")
	}
	r.beginRoundLocked(r.bank.Pick())
	snap := r.snapshotLocked(playerID)
	r.mu.Unlock()
	r.notifyAll()
	return snap, nil
}

// Guess checks text against the current word. Correctness is computed
// once, recorded on the log entry, and the first correct guess scores and
// ends the round immediately.
func (r *Room) Guess(playerID, text string) (Snapshot, error) {
	r.mu.Lock()
	if r.status != StatusPlaying {
		r.mu.Unlock()
		return Snapshot{}, reject("guessing is only allowed during a round")
	}
	player := r.findPlayerLocked(playerID)
	if player == nil {
		r.mu.Unlock()
		return Snapshot{}, reject("unknown player")
	}
	if !player.Connected {
		r.mu.Unlock()
		return Snapshot{}, reject("player is not connected")
	}
	if player.ID == r.currentDrawerID {
		r.mu.Unlock()
		return Snapshot{}, reject("the drawer cannot guess")
	}
	if player.Role == RoleSpectator {
		r.mu.Unlock()
		return Snapshot{}, reject("spectators cannot guess")
	}
	correct := strings.EqualFold(strings.TrimSpace(text), strings.TrimSpace(r.currentWord))
	r.guessLog = append(r.guessLog, GuessEntry{
		PlayerID:   player.ID,
		PlayerName: player.Name,
		Text:       text,
		Correct:    correct,
		Timestamp:  timeNowUTC(),
	})
	if correct {
		player.Score += r.rules.GuesserPoints
		if drawer := r.findPlayerLocked(r.currentDrawerID); drawer != nil {
			drawer.Score += r.rules.DrawerPoints
		}
		r.appendSystemLocked(fmt.Sprintf("%s guessed correctly! The word was %q", player.Name, r.currentWord))
		r.status = StatusRoundEnded
	}
	snap := r.snapshotLocked(playerID)
	r.mu.Unlock()
	r.notifyAll()
	return snap, nil
}

// Draw appends a stroke or clear event from the current drawer. Events
// from anyone else are dropped silently: a lagging client may keep
// sending after losing drawer status and that is harmless.
func (r *Room) Draw(playerID string, kind DrawingKind, payload json.RawMessage) (Snapshot, bool) {
	r.mu.Lock()
	if r.status != StatusPlaying || playerID != r.currentDrawerID {
		snap := r.snapshotLocked(playerID)
		r.mu.Unlock()
		return snap, false
	}
	if kind != DrawingClear {
		kind = DrawingStroke
	}
	r.drawingLog = append(r.drawingLog, DrawingEvent{
		Kind:      kind,
		Data:      payload,
		Timestamp: timeNowUTC(),
	})
	snap := r.snapshotLocked(playerID)
	r.mu.Unlock()
	r.notifyAll()
	return snap, true
}

// Chat appends a player message. Legal for any connected member in any
// status; routing guess intents vs chat intents is the client's concern.
func (r *Room) Chat(playerID, text string) (Snapshot, error) {
	r.mu.Lock()
	player := r.findPlayerLocked(playerID)
	if player == nil {
		r.mu.Unlock()
		return Snapshot{}, reject("unknown player")
	}
	if !player.Connected {
		r.mu.Unlock()
		return Snapshot{}, reject("player is not connected")
	}
	r.chatLog = append(r.chatLog, ChatMessage{
		PlayerID:   player.ID,
		PlayerName: player.Name,
		Text:       text,
		Kind:       ChatPlayer,
		Timestamp:  timeNowUTC(),
	})
	snap := r.snapshotLocked(playerID)
	r.mu.Unlock()
	r.notifyAll()
	return snap, nil
}

// SkipWord swaps the current word for a different one and wipes the
// canvas. The timer and the guess log keep running untouched.
func (r *Room) SkipWord(playerID string) (Snapshot, error) {
	r.mu.Lock()
	if r.status != StatusPlaying {
		r.mu.Unlock()
		return Snapshot{}, reject("no active round")
	}
	if playerID != r.currentDrawerID {
		r.mu.Unlock()
		return Snapshot{}, reject("only the drawer can skip the word")
	}
	player := r.findPlayerLocked(playerID)
	r.currentWord = r.bank.PickDifferent(r.currentWord)
	r.drawingLog = nil
	if player != nil {
		r.appendSystemLocked(fmt.Sprintf("%s skipped the word", player.Name))
	}
	snap := r.snapshotLocked(playerID)
	r.mu.Unlock()
	r.notifyAll()
	return snap, nil
}

// NextRound rotates the drawer and starts a fresh round. Rotation walks
// the ordered player list from the previous drawer's position, wrapping,
// to the next connected non-spectator; a disconnected previous drawer
// still anchors the rotation by their last known position.
func (r *Room) NextRound(playerID string) (Snapshot, error) {
	r.mu.Lock()
	if r.findPlayerLocked(playerID) == nil {
		r.mu.Unlock()
		return Snapshot{}, reject("unknown player")
	}
	if r.status != StatusRoundEnded {
		r.mu.Unlock()
		return Snapshot{}, reject("round is still in progress")
	}
	if r.eligibleCountLocked() < 2 {
		// Back to the waiting room; the round cannot continue.
		r.status = StatusWaiting
		snap := r.snapshotLocked(playerID)
		r.mu.Unlock()
		r.notifyAll()
		return snap, reject("not enough players to continue")
	}
	next := r.nextDrawerLocked()
	r.currentDrawerID = next.ID
	for _, p := range r.players {
		if p.Role == RoleSpectator {
			continue
		}
		if p.ID == next.ID {
			p.Role = RoleDrawer
		} else {
			p.Role = RoleGuesser
		}
	}
	r.round++
	r.beginRoundLocked(r.bank.Pick())
	snap := r.snapshotLocked(playerID)
	r.mu.Unlock()
	r.notifyAll()
	return snap, nil
}

// End finishes the session at the host's discretion. Scores and chat
// history survive; round-scoped logs do not.
func (r *Room) End(playerID string) (Snapshot, error) {
	r.mu.Lock()
	if playerID != r.hostID {
		r.mu.Unlock()
		return Snapshot{}, reject("only the host can end the game")
	}
	player := r.findPlayerLocked(playerID)
	r.status = StatusFinished
	r.timerGen++
	r.drawingLog = nil
	r.guessLog = nil
	if player != nil {
		r.appendSystemLocked(fmt.Sprintf("%s ended the game", player.Name))
	}
	snap := r.snapshotLocked(playerID)
	r.mu.Unlock()
	r.notifyAll()
	return snap, nil
}

// beginRoundLocked resets the round-scoped slice of room state and starts
// the ticker for the new playing stretch.
func (r *Room) beginRoundLocked(word string) {
	r.currentWord = word
	r.status = StatusPlaying
	r.timeLeft = r.rules.RoundSeconds
	r.drawingLog = nil
	r.guessLog = nil
	r.startTimerLocked()
}

// nextDrawerLocked assumes at least two eligible players and a held lock.
func (r *Room) nextDrawerLocked() *Player {
	anchor := 0
	for i, p := range r.players {
		if p.ID == r.currentDrawerID {
			anchor = i
			break
		}
	}
	n := len(r.players)
	for step := 1; step <= n; step++ {
		candidate := r.players[(anchor+step)%n]
		if candidate.Connected && candidate.Role != RoleSpectator {
			return candidate
		}
	}
	// Unreachable when eligibleCountLocked() >= 2.
	return r.players[anchor]
}

func (r *Room) eligibleCountLocked() int {
	count := 0
	for _, p := range r.players {
		if p.Connected && p.Role != RoleSpectator {
			count++
		}
	}
	return count
}

func (r *Room) connectedCountLocked() int {
	count := 0
	for _, p := range r.players {
		if p.Connected {
			count++
		}
	}
	return count
}

func (r *Room) findPlayerLocked(playerID string) *Player {
	for _, p := range r.players {
		if p.ID == playerID {
			return p
		}
	}
	return nil
}

func (r *Room) appendSystemLocked(text string) {
	r.chatLog = append(r.chatLog, ChatMessage{
		PlayerID:   "system",
		PlayerName: "System",
		Text:       text,
		Kind:       ChatSystem,
		Timestamp:  timeNowUTC(),
	})
}

func (r *Room) notifyAll() {
	r.mu.Lock()
	fn := r.notify
	r.mu.Unlock()
	if fn != nil {
		fn(r)
	}
}

// close stops the timer and rejects any late intents. Called by the
// registry during teardown with no room lock held.
func (r *Room) close() {
	r.mu.Lock()
	r.closed = true
	r.timerGen++
	r.mu.Unlock()
}
