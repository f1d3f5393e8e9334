package app

import (
    "context"
    "errors"
    "sync"
    "time"

    "github.com/google/uuid"
    "go.uber.org/zap"

    "github.com/Thomas-X/Checkers/internal/domain"
)

// Errors exposed by the service layer.
var (
    ErrNotFound    = errors.New("game not found")
    ErrNotYourTurn = errors.New("not your turn")
    ErrNotAPlayer  = errors.New("not a player")
    ErrGameOver    = errors.New("game over")
)

// Seat is the role a visitor holds in a game.
type Seat uint8

const (
    Spectator Seat = iota
    WhiteSeat
    BlackSeat
)

// Player returns the side a seat plays. ok is false for spectators.
func (s Seat) Player() (p domain.Player, ok bool) {
    switch s {
    case WhiteSeat:
        return domain.White, true
    case BlackSeat:
        return domain.Black, true
    default:
        return domain.White, false
    }
}

func (s Seat) String() string {
    switch s {
    case WhiteSeat:
        return "white"
    case BlackSeat:
        return "black"
    default:
        return "spectator"
    }
}

// GameState is the in-memory state tracked per game.
type GameState struct {
    ID      string
    Game    *domain.Game
    White   string
    Black   string
    Created time.Time
    Updated time.Time
}

func (gs *GameState) snapshot() *GameState {
    cp := *gs
    cp.Game = gs.Game.Clone()
    return &cp
}

type subscriber struct {
    ch        chan []byte
    closeOnce sync.Once
}

func (s *subscriber) close() { s.closeOnce.Do(func() { close(s.ch) }) }

// Service manages games and subscribers.
type Service struct {
    mu     sync.Mutex
    games  map[string]*GameState
    subs   map[string]map[*subscriber]struct{}
    render func(GameState) []byte
    log    *zap.SugaredLogger
    width  int
    height int
}

// Option configures a Service.
type Option func(*Service)

// WithRenderer sets the function that encodes broadcast payloads.
func WithRenderer(renderer func(GameState) []byte) Option {
    return func(s *Service) {
        if renderer != nil {
            s.render = renderer
        }
    }
}

// WithLogger sets the service logger.
func WithLogger(log *zap.SugaredLogger) Option {
    return func(s *Service) {
        if log != nil {
            s.log = log
        }
    }
}

// WithBoardSize sets the dimensions of new games.
func WithBoardSize(width, height int) Option {
    return func(s *Service) {
        s.width, s.height = width, height
    }
}

// NewService creates a service for 10x10 games with a renderer that encodes nothing.
func NewService(opts ...Option) *Service {
    s := &Service{
        games:  make(map[string]*GameState),
        subs:   make(map[string]map[*subscriber]struct{}),
        render: func(gs GameState) []byte { return nil },
        log:    zap.NewNop().Sugar(),
        width:  domain.MinBoardSize,
        height: domain.MinBoardSize,
    }
    for _, opt := range opts {
        opt(s)
    }
    return s
}

// SetRenderer replaces the broadcast renderer function.
func (s *Service) SetRenderer(renderer func(GameState) []byte) {
    s.mu.Lock()
    defer s.mu.Unlock()
    if renderer == nil {
        s.render = func(gs GameState) []byte { return nil }
        return
    }
    s.render = renderer
}

// CreateGame creates and registers a new game.
func (s *Service) CreateGame() (*GameState, error) {
    g, err := domain.New(s.width, s.height)
    if err != nil {
        return nil, err
    }
    s.mu.Lock()
    defer s.mu.Unlock()
    id := uuid.NewString()
    now := time.Now()
    gs := &GameState{ID: id, Game: g, Created: now, Updated: now}
    s.games[id] = gs
    s.log.Infow("game created", "game", id, "width", s.width, "height", s.height)
    return gs.snapshot(), nil
}

// Get returns a copy of the game state if present.
func (s *Service) Get(id string) (*GameState, bool) {
    s.mu.Lock()
    defer s.mu.Unlock()
    gs, ok := s.games[id]
    if !ok {
        return nil, false
    }
    return gs.snapshot(), true
}

// Join assigns a seat to the player if available: White first, then Black.
// Everyone else spectates.
func (s *Service) Join(id, playerID string) (Seat, *GameState, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    gs, ok := s.games[id]
    if !ok {
        return Spectator, nil, ErrNotFound
    }
    seat := Spectator
    if gs.White == "" || gs.White == playerID {
        gs.White = playerID
        seat = WhiteSeat
    } else if gs.Black == "" || gs.Black == playerID {
        gs.Black = playerID
        seat = BlackSeat
    }
    gs.Updated = time.Now()
    s.log.Debugw("join", "game", id, "player", playerID, "seat", seat.String())
    return seat, gs.snapshot(), nil
}

// Play validates seat and turn, applies a move, updates timestamps, and broadcasts.
// Rule violations from the board are returned unchanged.
func (s *Service) Play(id, playerID string, from, to domain.Point) (*GameState, error) {
    s.mu.Lock()
    gs, ok := s.games[id]
    if !ok {
        s.mu.Unlock()
        return nil, ErrNotFound
    }
    var side domain.Player
    switch {
    case playerID == "":
        s.mu.Unlock()
        return nil, ErrNotAPlayer
    case playerID == gs.White:
        side = domain.White
    case playerID == gs.Black:
        side = domain.Black
    default:
        s.mu.Unlock()
        return nil, ErrNotAPlayer
    }
    if gs.Game.Board.HasWinner() {
        s.mu.Unlock()
        return nil, ErrGameOver
    }
    if side != gs.Game.Turn {
        s.mu.Unlock()
        return nil, ErrNotYourTurn
    }
    if err := gs.Game.Move(from, to); err != nil {
        s.mu.Unlock()
        s.log.Infow("move rejected", "game", id, "player", side.String(), zap.Error(err))
        return nil, err
    }
    gs.Updated = time.Now()
    s.log.Debugw("move", "game", id, "player", side.String(), "from", from, "to", to, "hit_required", gs.Game.HitRequired)

    cp := gs.snapshot()
    dropped := s.broadcastLocked(id, s.render(*cp))
    s.mu.Unlock()
    if dropped > 0 {
        s.log.Debugw("dropped slow subscribers", "game", id, "count", dropped)
    }
    return cp, nil
}

// Subscribe registers a subscriber for a game. Returns a channel and an unsubscribe func.
// The subscription ends when ctx is done.
func (s *Service) Subscribe(ctx context.Context, id string) (<-chan []byte, func(), error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    if _, ok := s.games[id]; !ok {
        return nil, nil, ErrNotFound
    }
    set := s.subs[id]
    if set == nil {
        set = make(map[*subscriber]struct{})
        s.subs[id] = set
    }
    sub := &subscriber{ch: make(chan []byte, 1)}
    set[sub] = struct{}{}

    unsubOnce := &sync.Once{}
    unsub := func() {
        unsubOnce.Do(func() {
            s.mu.Lock()
            defer s.mu.Unlock()
            if set, ok := s.subs[id]; ok {
                delete(set, sub)
            }
            sub.close()
        })
    }
    go func() {
        <-ctx.Done()
        unsub()
    }()
    return sub.ch, unsub, nil
}

// broadcastLocked sends payload to every subscriber of a game without
// blocking. Subscribers with a full buffer are closed and removed.
// Subscriber channels are only ever closed with s.mu held.
func (s *Service) broadcastLocked(id string, payload []byte) int {
    set := s.subs[id]
    dropped := 0
    for sub := range set {
        select {
        case sub.ch <- payload:
        default:
            delete(set, sub)
            sub.close()
            dropped++
        }
    }
    return dropped
}
