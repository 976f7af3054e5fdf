package game

import (
	"crypto/rand"
	"strings"
	"sync"

	"draw-guess/internal/words"
)

const (
	codeLength      = 6
	codeAlphabet    = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	maxCodeAttempts = 64
)

// Registry is the process-wide authority mapping room codes to rooms.
// Its lock only guards the map; each room serializes its own mutations.
type Registry struct {
	bank   *words.Bank
	rules  Rules
	notify func(*Room)

	mu    sync.RWMutex
	rooms map[string]*Room
}

func NewRegistry(bank *words.Bank, rules Rules) *Registry {
	return &Registry{
		bank:  bank,
		rules: rules,
		rooms: make(map[string]*Room),
	}
}

// SetNotifier installs the broadcast callback handed to every room the
// registry creates. Call before serving traffic.
func (g *Registry) SetNotifier(fn func(*Room)) {
	g.notify = fn
}

// CreateRoom allocates a fresh room with hostID as sole player and
// drawer-designate. The only possible failure is code-space exhaustion.
func (g *Registry) CreateRoom(hostID, hostName string) (*Room, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code := newRoomCode()
		if _, taken := g.rooms[code]; taken {
			continue
		}
		room := newRoom(code, g.bank, g.rules, hostID, hostName)
		room.notify = g.notify
		g.rooms[code] = room
		return room, nil
	}
	return nil, ErrCodeSpaceExhausted
}

// GetRoom looks a room up by code. Codes are stored uppercase; lookups
// normalize so callers may pass any case.
func (g *Registry) GetRoom(code string) (*Room, error) {
	g.mu.RLock()
	room, ok := g.rooms[NormalizeCode(code)]
	g.mu.RUnlock()
	if !ok {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

// RemoveRoom tears a room down: its timer stops, late intents are
// rejected, and the code becomes free again. Idempotent.
func (g *Registry) RemoveRoom(code string) {
	normalized := NormalizeCode(code)
	g.mu.Lock()
	room, ok := g.rooms[normalized]
	if ok {
		delete(g.rooms, normalized)
	}
	g.mu.Unlock()
	if ok {
		room.close()
	}
}

// RoomCount reports how many rooms currently exist.
func (g *Registry) RoomCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.rooms)
}

// NormalizeCode maps a caller-supplied room code to its canonical form.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func newRoomCode() string {
	buf := make([]byte, codeLength)
	if _, err := rand.Read(buf); err != nil {
		return strings.Repeat("A", codeLength)
	}
	for i := range buf {
		buf[i] = codeAlphabet[int(buf[i])%len(codeAlphabet)]
	}
	return string(buf)
}
