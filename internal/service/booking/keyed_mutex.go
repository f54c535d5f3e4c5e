package booking

import "sync"

// keyedMutex serializes bookings per (master, date) calendar. An entry is
// reference counted and evicted once its last holder unlocks, so the map
// only holds calendars with a booking in flight.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*calendarLock
}

type calendarLock struct {
	mu   sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*calendarLock)}
}

func (k *keyedMutex) Lock(key string) func() {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &calendarLock{}
		k.locks[key] = l
	}
	l.refs++
	k.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		k.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
