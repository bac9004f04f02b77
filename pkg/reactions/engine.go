package reactions

import "sync"

// Engine hands out one Session per signed-in viewer. A Session owns the
// optimistic reaction state for that viewer's active feed session and is
// discarded on sign-out or feed teardown.
type Engine struct {
	mu sync.Mutex

	writer   Writer
	onSettle SettleFunc
	sessions map[int]*Session
}

// SettleFunc is called once a post's writes have settled, with the
// state the store converged to.
type SettleFunc func(post string, viewer int, emoji string, reacted bool)

func NewEngine(writer Writer) *Engine {
	return &Engine{
		writer:   writer,
		sessions: make(map[int]*Session),
	}
}

// OnSettle registers a hook invoked after a toggle sequence settles
// successfully. Used for cache invalidation and event publishing.
func (e *Engine) OnSettle(fn SettleFunc) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.onSettle = fn
}

// Session returns the viewer's active session, creating one if needed.
func (e *Engine) Session(viewer int) *Session {
	e.mu.Lock()
	defer e.mu.Unlock()

	session, ok := e.sessions[viewer]
	if !ok {
		session = NewSession(viewer, e.writer)
		session.onSettle = e.onSettle
		e.sessions[viewer] = session
	}

	return session
}

// EndSession discards a viewer's cached reaction state.
func (e *Engine) EndSession(viewer int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	delete(e.sessions, viewer)
}

type key struct {
	post  string
	emoji string
}

// postState is the per-post machine: Idle -> Sending -> (Idle | rolled back).
type postState struct {
	state State

	// snapshot is taken once, before the first toggle of a sequence,
	// so a failure after several rapid toggles restores the state from
	// before the whole sequence rather than an intermediate one.
	snapshot State

	desired    bool
	hasDesired bool
	inFlight   bool
}

// Session coalesces reaction toggles into at most one in-flight store
// write per post, applying every toggle locally right away.
type Session struct {
	mu sync.Mutex

	viewer   int
	writer   Writer
	onSettle SettleFunc
	posts    map[key]*postState
}

func NewSession(viewer int, writer Writer) *Session {
	return &Session{
		viewer: viewer,
		writer: writer,
		posts:  make(map[key]*postState),
	}
}

// Hydrate seeds the session with reaction state read from the store.
// Posts with a write in flight keep their optimistic state.
func (s *Session) Hydrate(states map[string]State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for post, state := range states {
		k := key{post: post, emoji: DefaultEmoji}

		ps, ok := s.posts[k]
		if ok && (ps.inFlight || ps.hasDesired) {
			continue
		}

		s.posts[k] = &postState{state: state}
	}
}

// State returns the current local reaction state for a post.
func (s *Session) State(post string) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.get(key{post: post, emoji: DefaultEmoji}).state
}

// Idle reports whether no write is in flight for a post. The engine is
// always re-triggerable once idle, even after a rollback.
func (s *Session) Idle(post string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	ps := s.get(key{post: post, emoji: DefaultEmoji})
	return !ps.inFlight
}

// Toggle flips the viewer's reaction on a post.
func (s *Session) Toggle(post string) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key{post: post, emoji: DefaultEmoji}
	return s.setDesired(k, !s.get(k).state.ViewerHasReacted)
}

// React applies a double-action gesture: it always reacts and is a
// no-op when the viewer already has.
func (s *Session) React(post string) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key{post: post, emoji: DefaultEmoji}

	ps := s.get(k)
	if ps.state.ViewerHasReacted {
		return ps.state
	}

	return s.setDesired(k, true)
}

// AddEmoji reacts to a group post with a specific emoji.
func (s *Session) AddEmoji(post, emoji string) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key{post: post, emoji: emoji}

	ps := s.get(k)
	if ps.state.ViewerHasReacted {
		return ps.state
	}

	return s.setDesired(k, true)
}

// RemoveEmoji removes the viewer's emoji reaction from a group post.
func (s *Session) RemoveEmoji(post, emoji string) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key{post: post, emoji: emoji}

	ps := s.get(k)
	if !ps.state.ViewerHasReacted {
		return ps.state
	}

	return s.setDesired(k, false)
}

func (s *Session) get(k key) *postState {
	ps, ok := s.posts[k]
	if !ok {
		ps = &postState{}
		s.posts[k] = ps
	}

	return ps
}

// setDesired applies a toggle optimistically and records the viewer's
// latest intent. Caller must hold the session mutex.
func (s *Session) setDesired(k key, want bool) State {
	ps := s.get(k)

	if !ps.inFlight && !ps.hasDesired {
		ps.snapshot = ps.state
	}

	ps.state.ViewerHasReacted = want
	if want {
		ps.state.ReactionCount++
	} else {
		ps.state.ReactionCount--
	}

	ps.desired = want
	ps.hasDesired = true

	// An active loop will pick the new desired state up itself, never
	// more than one write is in flight per post.
	if !ps.inFlight {
		ps.inFlight = true
		go s.sendLoop(k, ps)
	}

	return ps.state
}

// sendLoop issues writes until the store matches the viewer's latest
// intent, then goes idle. It re-reads the desired state after every
// response, so the last write issued always equals the last intent.
func (s *Session) sendLoop(k key, ps *postState) {
	for {
		s.mu.Lock()
		want := ps.desired
		s.mu.Unlock()

		var err error
		if want {
			err = s.writer.Upsert(k.post, s.viewer, k.emoji)
		} else {
			err = s.writer.Delete(k.post, s.viewer, k.emoji)
		}

		// The row already being in the desired shape is success, only
		// unrelated failures roll back.
		if err != nil && !IsConflict(err) {
			s.mu.Lock()
			ps.state = ps.snapshot
			ps.hasDesired = false
			ps.inFlight = false
			s.mu.Unlock()
			return
		}

		s.mu.Lock()
		if ps.desired == want {
			ps.hasDesired = false
			ps.inFlight = false
			s.mu.Unlock()

			if s.onSettle != nil {
				s.onSettle(k.post, s.viewer, k.emoji, want)
			}
			return
		}
		s.mu.Unlock()
	}
}
