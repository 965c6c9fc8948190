// Package subscribe implements the callback registration contract shared by
// the controller components: Subscribe hands back a Token that must be
// released with Unsubscribe on teardown.
package subscribe

// Token identifies one registration within a Set.
type Token uint64

// Set holds callbacks in registration order. The zero value is ready to use.
type Set[T any] struct {
	next    Token
	order   []Token
	entries map[Token]func(T)
}

// Subscribe registers fn and returns its release token. A nil fn is ignored
// and yields the zero Token.
func (s *Set[T]) Subscribe(fn func(T)) Token {
	if fn == nil {
		return 0
	}
	if s.entries == nil {
		s.entries = make(map[Token]func(T))
	}
	s.next++
	tok := s.next
	s.entries[tok] = fn
	s.order = append(s.order, tok)
	return tok
}

// Unsubscribe releases tok. Unknown or already released tokens are ignored.
func (s *Set[T]) Unsubscribe(tok Token) bool {
	if _, ok := s.entries[tok]; !ok {
		return false
	}
	delete(s.entries, tok)
	for i, t := range s.order {
		if t == tok {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Publish delivers v to every subscriber in registration order. Callbacks
// registered during delivery first fire on the next Publish; callbacks
// released during delivery are skipped.
func (s *Set[T]) Publish(v T) {
	if len(s.order) == 0 {
		return
	}
	snapshot := make([]Token, len(s.order))
	copy(snapshot, s.order)
	for _, tok := range snapshot {
		if fn, ok := s.entries[tok]; ok {
			fn(v)
		}
	}
}

// Len returns the number of live subscriptions.
func (s *Set[T]) Len() int {
	return len(s.entries)
}

// Clear releases every subscription.
func (s *Set[T]) Clear() {
	s.entries = nil
	s.order = nil
}
