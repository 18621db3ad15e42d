package engine

// FrameContext is passed to every frame subscriber.
type FrameContext struct {
	DeltaTime float32
	Frame     uint64
}

type FrameFunc func(ctx FrameContext)

// FrameLoop is a multi-cast per-frame callback list. Listeners are keyed by ID
// so they can be removed again.
type FrameLoop struct {
	nextID uint64
	order  []uint64
	subs   map[uint64]FrameFunc
	frame  uint64
}

func NewFrameLoop() *FrameLoop {
	return &FrameLoop{
		subs: make(map[uint64]FrameFunc),
	}
}

// Subscription is the handle returned by Subscribe. Unsubscribe is safe to call
// any number of times.
type Subscription struct {
	loop *FrameLoop
	id   uint64
}

// Subscribe registers fn to run on every Tick, in subscription order.
// A nil fn returns a nil subscription.
func (l *FrameLoop) Subscribe(fn FrameFunc) *Subscription {
	if fn == nil {
		return nil
	}
	if l.subs == nil {
		l.subs = make(map[uint64]FrameFunc)
	}
	l.nextID++
	id := l.nextID
	l.subs[id] = fn
	l.order = append(l.order, id)
	return &Subscription{loop: l, id: id}
}

func (s *Subscription) Unsubscribe() {
	if s == nil || s.loop == nil {
		return
	}
	l := s.loop
	s.loop = nil
	if _, ok := l.subs[s.id]; !ok {
		return
	}
	delete(l.subs, s.id)
	for i, id := range l.order {
		if id == s.id {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
}

// Active reports whether the subscription is still registered.
func (s *Subscription) Active() bool {
	if s == nil || s.loop == nil {
		return false
	}
	_, ok := s.loop.subs[s.id]
	return ok
}

// Tick runs every subscriber once. Subscribers removed during the tick are
// not called afterwards; subscribers added during the tick first run next frame.
func (l *FrameLoop) Tick(deltaTime float32) {
	l.frame++
	ctx := FrameContext{DeltaTime: deltaTime, Frame: l.frame}

	ids := make([]uint64, len(l.order))
	copy(ids, l.order)
	for _, id := range ids {
		fn, ok := l.subs[id]
		if !ok {
			continue
		}
		fn(ctx)
	}
}

// Len returns the number of registered subscribers (for debugging)
func (l *FrameLoop) Len() int {
	return len(l.subs)
}

func (l *FrameLoop) Frame() uint64 {
	return l.frame
}
