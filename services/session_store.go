package services

import (
	"context"
	"sync"
	"time"

	"backend/models"

	"github.com/google/uuid"
)

// Session owns one user's in-memory state: a profile and the current day's
// log. Nothing here is shared across sessions. The mutex serializes the
// occasional concurrent request on the same token; within one UI the calls
// arrive one at a time anyway.
type Session struct {
	ID        string
	CreatedAt time.Time
	ExpiresAt time.Time // local midnight after CreatedAt

	mu      sync.Mutex
	profile models.Profile
	log     *models.DailyLog
}

func (s *Session) Profile() models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

func (s *Session) SetProfile(p models.Profile) {
	s.mu.Lock()
	s.profile = p
	s.mu.Unlock()
}

func (s *Session) AddMeal(e models.MealEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.log.AddMeal(e)
}

func (s *Session) AddWorkout(e models.WorkoutEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.log.AddWorkout(e)
}

func (s *Session) AddHydration(e models.HydrationEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.log.AddHydration(e)
}

func (s *Session) Totals() models.Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.log.Totals()
}

func (s *Session) LogDate() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.log.Date
}

// Entries returns copies so callers can't mutate the log behind the lock.
func (s *Session) Entries() (meals []models.MealEntry, workouts []models.WorkoutEntry, hydration []models.HydrationEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	meals = append(meals, s.log.Meals...)
	workouts = append(workouts, s.log.Workouts...)
	hydration = append(hydration, s.log.Hydration...)
	return
}

// ResetLog clears all entries for the day. Irreversible.
func (s *Session) ResetLog() {
	s.mu.Lock()
	s.log.Reset()
	s.mu.Unlock()
}

// SessionStore keeps live sessions keyed by id. Sessions expire at local
// midnight: a new day means a fresh log, so a fresh session.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*Session)}
}

func dayEndLocal(t time.Time) time.Time {
	loc := time.Local
	tt := t.In(loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day()+1, 0, 0, 0, 0, loc)
}

func (st *SessionStore) Create(now time.Time) *Session {
	sess := &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		ExpiresAt: dayEndLocal(now),
		log:       models.NewDailyLog(now),
	}
	st.mu.Lock()
	st.sessions[sess.ID] = sess
	st.mu.Unlock()
	return sess
}

// Get returns a live session; an expired or unknown id reads as absent.
func (st *SessionStore) Get(id string) (*Session, bool) {
	st.mu.RLock()
	sess, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok || !time.Now().Before(sess.ExpiresAt) {
		return nil, false
	}
	return sess, true
}

func (st *SessionStore) Remove(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}

func (st *SessionStore) sweep(now time.Time) {
	st.mu.Lock()
	for id, sess := range st.sessions {
		if !now.Before(sess.ExpiresAt) {
			delete(st.sessions, id)
		}
	}
	st.mu.Unlock()
}

// StartJanitor drops expired sessions in the background until ctx is done.
func (st *SessionStore) StartJanitor(ctx context.Context, every time.Duration) {
	go func() {
		t := time.NewTicker(every)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-t.C:
				st.sweep(now)
			}
		}
	}()
}
