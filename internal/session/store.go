package session

import (
	"errors"
	"sync"
	"time"

	"investr/internal/models"
	"investr/internal/service"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session not found")

const cleanupInterval = 5 * time.Minute

// Slot is a part of the workspace filled by an upstream call.
type Slot string

const (
	SlotSimulation     Slot = "simulation"
	SlotRecommendation Slot = "recommendation"
)

// Ticket identifies one submission. Only the newest ticket of a slot may
// write its result into the workspace.
type Ticket struct {
	SessionID  uuid.UUID
	Slot       Slot
	Generation uint64
}

// Workspace is what one user currently sees: the form as typed and the last
// committed answers.
type Workspace struct {
	ID                  uuid.UUID
	Form                models.SimulationForm
	Simulation          *service.SimulationOutcome
	SimulationError     string
	Recommendation      *service.Advice
	RecommendationError string
	CreatedAt           time.Time
	UpdatedAt           time.Time

	generations map[Slot]uint64
}

func (w *Workspace) snapshot() Workspace {
	c := *w
	c.generations = nil
	return c
}

// Store holds workspaces in memory and drops the ones idle for longer than
// the ttl.
type Store struct {
	mu          sync.Mutex
	ttl         time.Duration
	sessions    map[uuid.UUID]*Workspace
	now         func() time.Time
	stopCleanup chan struct{}
	stopOnce    sync.Once
}

func NewStore(ttl time.Duration) *Store {
	s := &Store{
		ttl:         ttl,
		sessions:    make(map[uuid.UUID]*Workspace),
		now:         time.Now,
		stopCleanup: make(chan struct{}),
	}
	go s.cleanupLoop()
	return s
}

func (s *Store) Stop() {
	s.stopOnce.Do(func() { close(s.stopCleanup) })
}

func (s *Store) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopCleanup:
			return
		}
	}
}

func (s *Store) cleanup() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	now := s.now()
	for id, ws := range s.sessions {
		if now.Sub(ws.UpdatedAt) > s.ttl {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

func (s *Store) Create() Workspace {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	ws := &Workspace{
		ID:          uuid.New(),
		Form:        models.DefaultSimulationForm(),
		CreatedAt:   now,
		UpdatedAt:   now,
		generations: make(map[Slot]uint64),
	}
	s.sessions[ws.ID] = ws
	return ws.snapshot()
}

func (s *Store) Get(id uuid.UUID) (Workspace, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ws, ok := s.sessions[id]
	if !ok {
		return Workspace{}, ErrSessionNotFound
	}
	ws.UpdatedAt = s.now()
	return ws.snapshot(), nil
}

func (s *Store) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

// EditForm applies one field edit. applied is false when the edit was
// dropped, e.g. a negative amount.
func (s *Store) EditForm(id uuid.UUID, field, raw string) (Workspace, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ws, ok := s.sessions[id]
	if !ok {
		return Workspace{}, false, ErrSessionNotFound
	}

	form, applied, err := service.ApplyEdit(ws.Form, field, raw)
	if err != nil {
		return ws.snapshot(), false, err
	}
	ws.Form = form
	ws.UpdatedAt = s.now()
	return ws.snapshot(), applied, nil
}

// Begin hands out the next ticket for slot along with the workspace as it is
// at submission time. Earlier tickets of the slot stay in flight but can no
// longer commit.
func (s *Store) Begin(id uuid.UUID, slot Slot) (Ticket, Workspace, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ws, ok := s.sessions[id]
	if !ok {
		return Ticket{}, Workspace{}, ErrSessionNotFound
	}
	ws.generations[slot]++
	ws.UpdatedAt = s.now()

	return Ticket{SessionID: id, Slot: slot, Generation: ws.generations[slot]}, ws.snapshot(), nil
}

// Commit runs apply against the workspace if ticket is still the newest of
// its slot. It reports whether apply ran.
func (s *Store) Commit(ticket Ticket, apply func(ws *Workspace)) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ws, ok := s.sessions[ticket.SessionID]
	if !ok {
		return false, ErrSessionNotFound
	}
	if ws.generations[ticket.Slot] != ticket.Generation {
		return false, nil
	}
	apply(ws)
	ws.UpdatedAt = s.now()
	return true, nil
}
