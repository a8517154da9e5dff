package deck

// IDSet is a set of recipe ids that remembers insertion order. Promote moves
// an id to the front, which is how favorites keep super-likes on top.
type IDSet struct {
	order []int
	index map[int]struct{}
}

// NewIDSet builds a set from ids, dropping repeats after the first.
func NewIDSet(ids ...int) *IDSet {
	s := &IDSet{index: make(map[int]struct{}, len(ids))}
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add appends id if absent and reports whether the set changed.
func (s *IDSet) Add(id int) bool {
	if s.Has(id) {
		return false
	}
	s.index[id] = struct{}{}
	s.order = append(s.order, id)
	return true
}

// Promote puts id at the front, removing any earlier occurrence. It reports
// whether the ordering or membership changed.
func (s *IDSet) Promote(id int) bool {
	if len(s.order) > 0 && s.order[0] == id {
		return false
	}
	if s.Has(id) {
		for i, v := range s.order {
			if v == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
	s.index[id] = struct{}{}
	s.order = append([]int{id}, s.order...)
	return true
}

func (s *IDSet) Has(id int) bool {
	_, ok := s.index[id]
	return ok
}

func (s *IDSet) Len() int {
	return len(s.order)
}

// IDs returns a copy of the ids in order. Never nil.
func (s *IDSet) IDs() []int {
	return append(make([]int, 0, len(s.order)), s.order...)
}
