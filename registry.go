package vox

// registry is a growable table addressed by the ids stored in the file.
// Slots below the highest id that were never written stay empty.
type registry[T any] struct {
	slots []*T
}

func (r *registry[T]) occupied(id uint32) bool {
	return uint64(id) < uint64(len(r.slots)) && r.slots[id] != nil
}

func (r *registry[T]) set(id uint32, v T) {
	if uint64(id) >= uint64(len(r.slots)) {
		grown := make([]*T, int(id)+1)
		copy(grown, r.slots)
		r.slots = grown
	}
	r.slots[id] = &v
}

func (r *registry[T]) get(id int) (T, bool) {
	var zero T
	if id < 0 || id >= len(r.slots) || r.slots[id] == nil {
		return zero, false
	}
	return *r.slots[id], true
}

// size is the table length, one past the highest id ever set.
func (r *registry[T]) size() int {
	return len(r.slots)
}

func (r *registry[T]) values() []T {
	var out []T
	for _, v := range r.slots {
		if v != nil {
			out = append(out, *v)
		}
	}
	return out
}
