package gortrace

import (
	"math/rand"
	"slices"
	"testing"
)

func randomPoint(rng *rand.Rand, size float64) Point3d {
	return NewPoint3d(
		(rng.Float64()*2-1)*size,
		(rng.Float64()*2-1)*size,
		(rng.Float64()*2-1)*size,
	)
}

// randomStore fills a store with n triangles and spheres scattered in a
// 10 unit cube.
func randomStore(rng *rand.Rand, n int) *PrimitiveStore {
	store := NewPrimitiveStore()
	for i := 0; i < n; i++ {
		center := randomPoint(rng, 5)
		if i%3 == 2 {
			store.Add(NewSphere(center, 0.2+rng.Float64(), testBlue))
			continue
		}
		store.Add(NewTriangle(
			center.Add(randomPoint(rng, 1.5)),
			center.Add(randomPoint(rng, 1.5)),
			center.Add(randomPoint(rng, 1.5)),
			testRed,
		))
	}
	return store
}

func bruteForceIntersection(store *PrimitiveStore, origin Point3d, direction Vector3) (Intersection, bool) {
	nearest := NoIntersection()
	for _, id := range store.IDs() {
		if hit, ok := store.Get(id).IntersectWithRay(origin, direction); ok && hit.Closer(nearest) {
			nearest = hit
		}
	}
	return nearest, nearest.Hit()
}

func TestBspMatchesBruteForce(t *testing.T) {
	testCases := []struct {
		name  string
		count int
		seed  int64
	}{
		{"Single primitive", 1, 1},
		{"Two primitives", 2, 2},
		{"Three primitives", 3, 3},
		{"Fifty primitives", 50, 4},
		{"Two hundred primitives", 200, 5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(tc.seed))
			store := randomStore(rng, tc.count)
			tree := NewBspTree(store, nil)

			hits := 0
			for i := 0; i < 500; i++ {
				origin := randomPoint(rng, 12)
				target := store.Get(PrimitiveID(rng.Intn(tc.count))).BoundingBox().Center().Add(randomPoint(rng, 1))
				direction := target.Sub(origin)

				want, wantOK := bruteForceIntersection(store, origin, direction)
				got, gotOK := tree.FindRayIntersection(origin, direction)
				if gotOK != wantOK {
					t.Fatalf("ray %d from %v along %v: tree hit = %v, brute force hit = %v", i, origin, direction, gotOK, wantOK)
				}
				if !wantOK {
					continue
				}
				hits++
				if !almostEqual(got.Distance, want.Distance) {
					t.Fatalf("ray %d: tree distance = %f, brute force distance = %f", i, got.Distance, want.Distance)
				}
				if !almostEqualVec(got.Point, want.Point) {
					t.Fatalf("ray %d: tree point = %v, brute force point = %v", i, got.Point, want.Point)
				}
			}
			if hits == 0 {
				t.Errorf("no ray hit anything, test is not exercising the tree")
			}
		})
	}
}

func TestBspLeafRules(t *testing.T) {
	t.Run("Small sets stay in the root leaf", func(t *testing.T) {
		for n := 1; n <= bspLeafSize; n++ {
			store := randomStore(rand.New(rand.NewSource(int64(n))), n)
			tree := NewBspTree(store, nil)
			if !tree.root.leaf {
				t.Errorf("%d primitives: root is not a leaf", n)
			}
			if len(tree.root.primitives) != n {
				t.Errorf("%d primitives: root holds %d", n, len(tree.root.primitives))
			}
		}
	})

	t.Run("Three primitives split", func(t *testing.T) {
		store := NewPrimitiveStore()
		for _, x := range []float64{-4, 0, 4} {
			store.Add(NewSphere(NewPoint3d(x, 0, 0), 1, testBlue))
		}
		tree := NewBspTree(store, nil)
		if tree.root.leaf {
			t.Fatalf("root is a leaf")
		}
		if tree.root.axis != AxisX {
			t.Errorf("root axis = %v, want X", tree.root.axis)
		}
		if !almostEqual(tree.root.split, 0) {
			t.Errorf("root split = %f, want 0", tree.root.split)
		}
		// the middle sphere straddles the split and is kept on both sides
		if !slices.Contains(tree.root.Left.primitives, 1) || !slices.Contains(tree.root.Right.primitives, 1) {
			t.Errorf("straddling sphere not duplicated: left %v, right %v", tree.root.Left.primitives, tree.root.Right.primitives)
		}
	})

	t.Run("Depth limit", func(t *testing.T) {
		store := NewPrimitiveStore()
		for i := 0; i < 3; i++ {
			store.Add(NewSphere(NewPoint3d(0, 0, 0), 1, testBlue))
		}
		var stats BspStats
		tree := NewBspTree(store, &stats)
		shape := tree.shape()
		if shape.maxDepth != bspMaxDepth+1 {
			t.Errorf("max depth = %d, want %d", shape.maxDepth, bspMaxDepth+1)
		}
		if shape.references != 3*shape.leaves {
			t.Errorf("references = %d, want %d", shape.references, 3*shape.leaves)
		}
		if stats.BuildCalls != shape.nodes {
			t.Errorf("build calls = %d, nodes = %d", stats.BuildCalls, shape.nodes)
		}
	})
}

func TestBspAxisCycle(t *testing.T) {
	store := NewPrimitiveStore()
	for i := 0; i < 27; i++ {
		store.Add(NewSphere(NewPoint3d(float64(i%3)*4, float64(i/3%3)*4, float64(i/9)*4), 0.5, testBlue))
	}
	tree := NewBspTree(store, nil)

	n := tree.root
	for _, want := range []Axis{AxisX, AxisY, AxisZ} {
		if n.leaf {
			t.Fatalf("reached a leaf before axis %v", want)
		}
		if n.axis != want {
			t.Errorf("axis = %v, want %v", n.axis, want)
		}
		n = n.Left
	}
}

func TestBspDivide(t *testing.T) {
	store := NewPrimitiveStore()
	lowID := store.Add(NewTriangle(NewPoint3d(-1, 0, 0), NewPoint3d(-0.5, 1, 0), NewPoint3d(-0.7, 0, 1), testRed))
	highID := store.Add(NewTriangle(NewPoint3d(0.5, 0, 0), NewPoint3d(1, 1, 0), NewPoint3d(0.7, 0, 1), testRed))
	crossID := store.Add(NewSphere(NewPoint3d(0, 0, 0), 1, testBlue))
	touchID := store.Add(NewTriangle(NewPoint3d(-1, 0, 0), NewPoint3d(0, 1, 0), NewPoint3d(-0.5, 0, 1), testRed))

	tree := &BspTree{store: store}
	left, right := tree.divide(store.IDs(), newSplitPlane(AxisX, 0))

	if !slices.Equal(left, []PrimitiveID{lowID, crossID, touchID}) {
		t.Errorf("left = %v", left)
	}
	if !slices.Equal(right, []PrimitiveID{highID, crossID, touchID}) {
		t.Errorf("right = %v", right)
	}
}

func TestBspNearestOfOverlapping(t *testing.T) {
	// a row of walls along the ray; each query must return the first wall
	store := NewPrimitiveStore()
	for z := 0; z < 10; z++ {
		store.Add(NewTriangle(NewPoint3d(-1, -1, float64(-z)), NewPoint3d(1, -1, float64(-z)), NewPoint3d(0, 1, float64(-z)), testRed))
	}
	var stats BspStats
	tree := NewBspTree(store, &stats)

	testCases := []struct {
		name      string
		origin    Point3d
		direction Vector3
		wantZ     float64
	}{
		{"Walking down", NewPoint3d(0, 0, 5), NewVector3(0, 0, -1), 0},
		{"Walking up", NewPoint3d(0, 0, -20), NewVector3(0, 0, 1), -9},
		{"Starting between walls", NewPoint3d(0, 0, -4.5), NewVector3(0, 0, -1), -5},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stats.Reset()
			hit, ok := tree.FindRayIntersection(tc.origin, tc.direction)
			if !ok {
				t.Fatalf("no hit")
			}
			if !almostEqual(hit.Point.Z(), tc.wantZ) {
				t.Errorf("hit z = %f, want %f", hit.Point.Z(), tc.wantZ)
			}
			if stats.FindCalls == 0 {
				t.Errorf("find calls not counted")
			}
		})
	}
}
