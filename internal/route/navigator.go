package route

import "sync"

// Navigator tracks the current route and notifies subscribers on change. It
// is the server-side stand-in for the client's fragment-change listener: the
// new route is stored and every listener has run before Navigate returns, so
// no reader can observe the old path after a change.
type Navigator struct {
	mu        sync.Mutex
	current   Route
	listeners map[int]func(Route)
	nextID    int
	closed    bool
}

// NewNavigator starts at the home route.
func NewNavigator() *Navigator {
	return &Navigator{
		current:   Parse("/"),
		listeners: make(map[int]func(Route)),
	}
}

// Current returns the route of the last Navigate call.
func (n *Navigator) Current() Route {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Navigate parses path, makes it the current route and runs every listener
// with the new route before returning. It returns the route it installed, so
// a caller racing with other navigations still acts on its own route.
func (n *Navigator) Navigate(path string) Route {
	n.mu.Lock()
	n.current = Parse(path)
	r := n.current
	fns := make([]func(Route), 0, len(n.listeners))
	for _, fn := range n.listeners {
		fns = append(fns, fn)
	}
	n.mu.Unlock()

	for _, fn := range fns {
		fn(r)
	}
	return r
}

// Subscribe registers fn for route changes. The returned function removes
// the subscription; calling it more than once is harmless.
func (n *Navigator) Subscribe(fn func(Route)) (unsubscribe func()) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return func() {}
	}
	id := n.nextID
	n.nextID++
	n.listeners[id] = fn
	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.listeners, id)
	}
}

// Close drops every listener. The navigator still tracks routes afterwards,
// but silently; no callback outlives the teardown.
func (n *Navigator) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.closed = true
	n.listeners = make(map[int]func(Route))
}
