package gortrace

const (
	bspMaxDepth = 15
	bspLeafSize = 2
)

// BspStats counts tree work. Pass one to Scene.SetStats to collect it; a nil
// *BspStats counts nothing.
type BspStats struct {
	BuildCalls int
	FindCalls  int
}

func (s *BspStats) build() {
	if s != nil {
		s.BuildCalls++
	}
}

func (s *BspStats) find() {
	if s != nil {
		s.FindCalls++
	}
}

func (s *BspStats) Reset() {
	if s != nil {
		*s = BspStats{}
	}
}

// BspNode is either a leaf holding primitive ids or an inner node split by an
// axis-aligned plane. Left holds the low half of the axis, Right the high half.
type BspNode struct {
	box        BoundingBox
	leaf       bool
	axis       Axis
	split      float64
	Left       *BspNode
	Right      *BspNode
	primitives []PrimitiveID
}

// BspTree is a KD-style binary space partition over the primitives of a
// PrimitiveStore.
type BspTree struct {
	root  *BspNode
	store *PrimitiveStore
	stats *BspStats
}

// NewBspTree builds the tree over every primitive in store. stats may be nil.
func NewBspTree(store *PrimitiveStore, stats *BspStats) *BspTree {
	t := &BspTree{store: store, stats: stats}
	t.root = t.buildNode(store.IDs(), 0, infiniteBox())
	return t
}

func (t *BspTree) buildNode(ids []PrimitiveID, depth int, nodeBox BoundingBox) *BspNode {
	t.stats.build()

	n := &BspNode{box: t.store.Bounds(ids).Clip(nodeBox)}

	if depth > bspMaxDepth || len(ids) <= bspLeafSize {
		n.leaf = true
		n.primitives = ids
		return n
	}

	n.axis = Axis(depth % 3)
	n.split = n.box.Center().Component(n.axis)

	leftBox, rightBox := n.box, n.box
	leftBox.MaxCorner = leftBox.MaxCorner.withComponent(n.axis, n.split)
	rightBox.MinCorner = rightBox.MinCorner.withComponent(n.axis, n.split)

	leftIDs, rightIDs := t.divide(ids, newSplitPlane(n.axis, n.split))

	n.Left = t.buildNode(leftIDs, depth+1, leftBox)
	n.Right = t.buildNode(rightIDs, depth+1, rightBox)
	return n
}

// divide sorts primitives to the sides of the plane by their bounding boxes.
// A primitive that touches both sides goes to both.
func (t *BspTree) divide(ids []PrimitiveID, plane Plane) (left, right []PrimitiveID) {
	for _, id := range ids {
		box := t.store.Get(id).BoundingBox()
		if FloatGreaterOrEqual(plane.PointOnPlane(box.MinCorner), 0) {
			left = append(left, id)
		}
		if FloatLessOrEqual(plane.PointOnPlane(box.MaxCorner), 0) {
			right = append(right, id)
		}
	}
	return left, right
}

// FindRayIntersection returns the nearest hit of the ray, front or back face.
func (t *BspTree) FindRayIntersection(origin Point3d, direction Vector3) (Intersection, bool) {
	return t.find(t.root, origin, direction)
}

func (t *BspTree) find(n *BspNode, origin Point3d, direction Vector3) (Intersection, bool) {
	t.stats.find()

	if !n.box.IntersectsWithRay(origin, direction) {
		return NoIntersection(), false
	}

	if n.leaf {
		nearest := NoIntersection()
		for _, id := range n.primitives {
			hit, ok := t.store.Get(id).IntersectWithRay(origin, direction)
			if ok && hit.Closer(nearest) {
				nearest = hit
			}
		}
		return nearest, nearest.Hit()
	}

	near, far := n.Left, n.Right
	if !(direction.Component(n.axis) > 0) {
		near, far = n.Right, n.Left
	}

	nearest, ok := t.find(near, origin, direction)
	if !ok {
		return t.find(far, origin, direction)
	}
	if n.farSideCannotBeCloser(nearest, direction) {
		return nearest, true
	}

	if hit, ok := t.find(far, origin, direction); ok && hit.Closer(nearest) {
		nearest = hit
	}
	return nearest, true
}

// farSideCannotBeCloser reports whether hit lies strictly on the near side of
// the split plane. The ray only moves away from it after that, and every
// primitive reaching the near side has already been tested there.
func (n *BspNode) farSideCannotBeCloser(hit Intersection, direction Vector3) bool {
	d := direction.Component(n.axis)
	p := hit.Point.Component(n.axis)
	switch {
	case d > 0:
		return FloatLess(p, n.split)
	case d < 0:
		return FloatGreater(p, n.split)
	}
	return false
}

// bspShape summarises the tree layout.
type bspShape struct {
	nodes, leaves, maxDepth, references int
}

func (t *BspTree) shape() bspShape {
	var s bspShape
	var walk func(n *BspNode, depth int)
	walk = func(n *BspNode, depth int) {
		s.nodes++
		if depth > s.maxDepth {
			s.maxDepth = depth
		}
		if n.leaf {
			s.leaves++
			s.references += len(n.primitives)
			return
		}
		walk(n.Left, depth+1)
		walk(n.Right, depth+1)
	}
	walk(t.root, 0)
	return s
}
