package service

import "sync"

type playerLock struct {
	mu   sync.Mutex
	refs int
}

// PlayerLocks serialises every state change of one player across services.
// A player's entry lives only while someone holds or waits for it.
type PlayerLocks struct {
	mu    sync.Mutex
	locks map[string]*playerLock
}

// NewPlayerLocks creates an empty lock table
func NewPlayerLocks() *PlayerLocks {
	return &PlayerLocks{locks: make(map[string]*playerLock)}
}

// Lock acquires the lock of playerID and returns its release function
func (l *PlayerLocks) Lock(playerID string) func() {
	l.mu.Lock()
	pl, ok := l.locks[playerID]
	if !ok {
		pl = &playerLock{}
		l.locks[playerID] = pl
	}
	pl.refs++
	l.mu.Unlock()

	pl.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			pl.mu.Unlock()

			l.mu.Lock()
			pl.refs--
			if pl.refs == 0 {
				delete(l.locks, playerID)
			}
			l.mu.Unlock()
		})
	}
}

func (l *PlayerLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
