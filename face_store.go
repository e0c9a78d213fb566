package gortrace

// PrimitiveID indexes a primitive in a PrimitiveStore.
type PrimitiveID int

// PrimitiveStore owns the primitives of a scene. The BSP tree refers to them
// by PrimitiveID and never owns them.
type PrimitiveStore struct {
	primitives []Primitive
}

func NewPrimitiveStore() *PrimitiveStore {
	return &PrimitiveStore{primitives: make([]Primitive, 0, 10)}
}

func (ps *PrimitiveStore) Add(p Primitive) PrimitiveID {
	ps.primitives = append(ps.primitives, p)
	return PrimitiveID(len(ps.primitives) - 1)
}

func (ps *PrimitiveStore) Get(id PrimitiveID) Primitive {
	return ps.primitives[id]
}

func (ps *PrimitiveStore) Count() int {
	return len(ps.primitives)
}

// IDs returns the ids of every stored primitive in insertion order.
func (ps *PrimitiveStore) IDs() []PrimitiveID {
	ids := make([]PrimitiveID, len(ps.primitives))
	for i := range ids {
		ids[i] = PrimitiveID(i)
	}
	return ids
}

// Bounds returns the tight box around the given primitives, or the all-zero
// box when ids is empty.
func (ps *PrimitiveStore) Bounds(ids []PrimitiveID) BoundingBox {
	if len(ids) == 0 {
		return BoundingBox{}
	}
	box := ps.Get(ids[0]).BoundingBox()
	for _, id := range ids[1:] {
		box = box.Union(ps.Get(id).BoundingBox())
	}
	return box
}
