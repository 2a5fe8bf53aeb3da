package handle

// Lifetime bounds the validity of borrowed views. A lifetime ends
// explicitly, and also when any of its ancestors ends.
type Lifetime struct {
	parent *Lifetime
	ended  bool
}

// NewLifetime creates a lifetime nested in parent. parent may be nil.
func NewLifetime(parent *Lifetime) *Lifetime {
	return &Lifetime{parent: parent}
}

// End ends the lifetime. Ending twice is harmless.
func (l *Lifetime) End() {
	l.ended = true
}

// Ended reports whether this lifetime or any ancestor has ended.
func (l *Lifetime) Ended() bool {
	for x := l; x != nil; x = x.parent {
		if x.ended {
			return true
		}
	}
	return false
}

// Scope runs fn with a lifetime nested in parent that ends when fn returns.
func Scope(parent *Lifetime, fn func(lt *Lifetime)) {
	lt := NewLifetime(parent)
	defer lt.End()
	fn(lt)
}
