package domain

// MaxTravelers is the fixed capacity of a trip roster.
const MaxTravelers = 8

// Roster is an ordered sequence of at most MaxTravelers traveler names.
// Order reflects admission history. The zero value is an empty, usable roster.
//
// Roster does not enforce admission policy; it only guarantees Len() <= Cap().
type Roster struct {
	names []TravelerName
}

// NewRoster returns an empty roster with room for MaxTravelers preallocated.
func NewRoster() *Roster {
	return &Roster{names: make([]TravelerName, 0, MaxTravelers)}
}

// Cap is always MaxTravelers.
func (r *Roster) Cap() int { return MaxTravelers }

// Len is the number of travelers currently on the roster.
func (r *Roster) Len() int { return len(r.names) }

// Full reports whether no further Append can succeed.
func (r *Roster) Full() bool { return len(r.names) >= MaxTravelers }

// Append adds n at the tail. It returns false, leaving the roster unchanged, when full.
func (r *Roster) Append(n TravelerName) bool {
	if r.Full() {
		return false
	}
	r.names = append(r.names, n)
	return true
}

// RemoveAt removes the entry at index i, shifting later entries down by one.
func (r *Roster) RemoveAt(i int) (TravelerName, bool) {
	if i < 0 || i >= len(r.names) {
		return "", false
	}
	n := r.names[i]
	copy(r.names[i:], r.names[i+1:])
	r.names[len(r.names)-1] = ""
	r.names = r.names[:len(r.names)-1]
	return n, true
}

// IndexOf returns the lowest index holding n, or -1.
func (r *Roster) IndexOf(n TravelerName) int {
	for i, v := range r.names {
		if v == n {
			return i
		}
	}
	return -1
}

// LastIndexFunc returns the highest index whose entry satisfies f, or -1.
func (r *Roster) LastIndexFunc(f func(TravelerName) bool) int {
	for i := len(r.names) - 1; i >= 0; i-- {
		if f(r.names[i]) {
			return i
		}
	}
	return -1
}

// Names returns a copy of the roster in order.
func (r *Roster) Names() []TravelerName {
	out := make([]TravelerName, len(r.names))
	copy(out, r.names)
	return out
}
