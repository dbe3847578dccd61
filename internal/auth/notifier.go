package auth

import (
	"log"
	"sync"
	"sync/atomic"
)

// Listener receives session transitions. session is nil after sign-out.
type Listener func(event Event, session *Session)

// Subscription is returned by OnSessionChange.
type Subscription struct {
	id       uint64
	listener Listener
	active   atomic.Bool
	owner    *notifier
}

// Unsubscribe stops further deliveries, including ones already queued.
func (s *Subscription) Unsubscribe() {
	if s.active.CompareAndSwap(true, false) {
		s.owner.remove(s.id)
	}
}

type delivery struct {
	targets []*Subscription
	event   Event
	session *Session
}

// queued is a scheduled delivery. The worker only picks it up once it has
// been released and every earlier one has been too.
type queued struct {
	delivery
	released bool
}

// notifier delivers transitions on a single worker goroutine, in the order
// they were scheduled. A delivery is held until the call that scheduled it
// releases it as its last step. The queue is unbounded so scheduling never
// blocks the caller.
type notifier struct {
	mu      sync.Mutex
	subs    []*Subscription
	nextID  uint64
	queue   []*queued
	wake    chan struct{}
	done    chan struct{}
	stopped chan struct{}
	once    sync.Once
}

func newNotifier() *notifier {
	n := &notifier{
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go n.worker()
	return n
}

func (n *notifier) subscribe(l Listener) *Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.nextID++
	sub := &Subscription{id: n.nextID, listener: l, owner: n}
	sub.active.Store(true)
	n.subs = append(n.subs, sub)
	return sub
}

func (n *notifier) remove(id uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i, s := range n.subs {
		if s.id == id {
			n.subs = append(n.subs[:i], n.subs[i+1:]...)
			return
		}
	}
}

// broadcast schedules ev for every current subscriber.
func (n *notifier) broadcast(ev Event, session *Session) *queued {
	n.mu.Lock()
	targets := append([]*Subscription(nil), n.subs...)
	n.mu.Unlock()
	return n.schedule(delivery{targets: targets, event: ev, session: session})
}

// scheduleTo schedules ev for one subscriber only.
func (n *notifier) scheduleTo(sub *Subscription, ev Event, session *Session) *queued {
	return n.schedule(delivery{targets: []*Subscription{sub}, event: ev, session: session})
}

func (n *notifier) schedule(d delivery) *queued {
	if len(d.targets) == 0 {
		return nil
	}
	q := &queued{delivery: d}
	n.mu.Lock()
	n.queue = append(n.queue, q)
	n.mu.Unlock()
	return q
}

// release hands q to the worker. A nil q is ignored.
func (n *notifier) release(q *queued) {
	if q == nil {
		return
	}
	n.mu.Lock()
	q.released = true
	n.mu.Unlock()

	select {
	case n.wake <- struct{}{}:
	default:
	}
}

func (n *notifier) worker() {
	defer close(n.stopped)
	for {
		select {
		case <-n.wake:
			n.drain()
		case <-n.done:
			n.drain()
			return
		}
	}
}

// drain delivers the released prefix of the queue.
func (n *notifier) drain() {
	for {
		n.mu.Lock()
		i := 0
		for i < len(n.queue) && n.queue[i].released {
			i++
		}
		batch := n.queue[:i:i]
		n.queue = n.queue[i:]
		n.mu.Unlock()

		if len(batch) == 0 {
			return
		}
		for _, q := range batch {
			for _, sub := range q.targets {
				if !sub.active.Load() {
					continue
				}
				deliver(sub.listener, q.event, q.session.clone())
			}
		}
	}
}

func deliver(l Listener, ev Event, session *Session) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("auth: session listener panicked on %s: %v", ev, r)
		}
	}()
	l(ev, session)
}

// close delivers whatever is queued and stops the worker.
func (n *notifier) close() {
	n.once.Do(func() { close(n.done) })
	<-n.stopped
}
