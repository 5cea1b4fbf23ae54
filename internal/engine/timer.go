package engine

import "sort"

// Token captures an object at a point in its activation history. It stops
// being valid once the object is deactivated, even if it is later reused.
type Token struct {
	obj        *GameObject
	generation uint64
}

// TokenFor issues a token for g's current activation.
func TokenFor(g *GameObject) Token {
	if g == nil {
		return Token{}
	}
	return Token{obj: g, generation: g.generation}
}

// Valid reports whether the object is still active in the same activation.
// The zero Token is never valid.
func (t Token) Valid() bool {
	return t.obj != nil && t.obj.active && t.obj.generation == t.generation
}

// Object returns the object the token was issued for.
func (t Token) Object() *GameObject {
	return t.obj
}

// TimerID identifies a scheduled action.
type TimerID uint64

type timer struct {
	id     TimerID
	due    float64
	token  Token
	guard  bool
	action func()
}

// Scheduler is a game-time queue of delayed actions. It only advances when
// Advance is called, so pausing the game loop pauses every pending action.
type Scheduler struct {
	now    float64
	nextID TimerID
	queue  []timer
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After runs action once delay seconds of game time have passed, provided
// token is still valid at that moment.
func (s *Scheduler) After(delay float32, token Token, action func()) TimerID {
	return s.push(delay, token, true, action)
}

// AfterUnguarded runs action after delay with no validity check.
func (s *Scheduler) AfterUnguarded(delay float32, action func()) TimerID {
	return s.push(delay, Token{}, false, action)
}

func (s *Scheduler) push(delay float32, token Token, guard bool, action func()) TimerID {
	if action == nil {
		return 0
	}
	if delay < 0 {
		delay = 0
	}
	s.nextID++
	t := timer{id: s.nextID, due: s.now + float64(delay), token: token, guard: guard, action: action}

	// Keep the queue sorted by due time; equal times stay in insertion order.
	i := sort.Search(len(s.queue), func(i int) bool { return s.queue[i].due > t.due })
	s.queue = append(s.queue, timer{})
	copy(s.queue[i+1:], s.queue[i:])
	s.queue[i] = t
	return t.id
}

// Cancel removes a pending action. Returns false if it already ran or never existed.
func (s *Scheduler) Cancel(id TimerID) bool {
	for i, t := range s.queue {
		if t.id == id {
			s.queue = append(s.queue[:i], s.queue[i+1:]...)
			return true
		}
	}
	return false
}

// Advance moves game time forward and runs every due action. Returns how
// many actions ran; entries with a stale token are dropped without running.
func (s *Scheduler) Advance(dt float32) int {
	s.now += float64(dt)
	fired := 0
	for len(s.queue) > 0 && s.queue[0].due <= s.now {
		t := s.queue[0]
		s.queue = s.queue[1:]
		if t.guard && !t.token.Valid() {
			continue
		}
		t.action()
		fired++
	}
	return fired
}

// Now is the elapsed game time in seconds.
func (s *Scheduler) Now() float64 {
	return s.now
}

// Len is the number of pending actions.
func (s *Scheduler) Len() int {
	return len(s.queue)
}

func (s *Scheduler) Clear() {
	s.queue = nil
}
