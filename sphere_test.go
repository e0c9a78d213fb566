package gortrace

import "testing"

func TestSphereIntersectWithRay(t *testing.T) {
	sphere := NewSphere(NewPoint3d(0, 0, 0), 1, testBlue)

	testCases := []struct {
		name         string
		origin       Point3d
		direction    Vector3
		wantHit      bool
		wantPoint    Point3d
		wantNormal   Vector3
		wantDistance float64
		wantFront    bool
	}{
		{"Outside, head on", NewPoint3d(0, 0, 5), NewVector3(0, 0, -1), true, NewPoint3d(0, 0, 1), NewVector3(0, 0, 1), 4, true},
		{"Direction length ignored", NewPoint3d(0, 0, 5), NewVector3(0, 0, -10), true, NewPoint3d(0, 0, 1), NewVector3(0, 0, 1), 4, true},
		{"Off center", NewPoint3d(0.6, 0, 5), NewVector3(0, 0, -1), true, NewPoint3d(0.6, 0, 0.8), NewVector3(0.6, 0, 0.8), 4.2, true},
		{"Inside", NewPoint3d(0, 0, 0), NewVector3(0, 0, -1), true, NewPoint3d(0, 0, -1), NewVector3(0, 0, 1), 1, false},
		{"Inside, off center", NewPoint3d(0, 0.5, 0), NewVector3(0, 1, 0), true, NewPoint3d(0, 1, 0), NewVector3(0, -1, 0), 0.5, false},
		{"Sphere behind origin", NewPoint3d(0, 0, 5), NewVector3(0, 0, 1), false, Point3d{}, Vector3{}, 0, false},
		{"Passing beside", NewPoint3d(2, 0, 5), NewVector3(0, 0, -1), false, Point3d{}, Vector3{}, 0, false},
		{"Zero direction", NewPoint3d(0, 0, 5), Vector3{}, false, Point3d{}, Vector3{}, 0, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			hit, ok := sphere.IntersectWithRay(tc.origin, tc.direction)
			if ok != tc.wantHit {
				t.Fatalf("hit = %v, want %v", ok, tc.wantHit)
			}
			if !ok {
				return
			}
			if !almostEqualVec(hit.Point, tc.wantPoint) {
				t.Errorf("point = %v, want %v", hit.Point, tc.wantPoint)
			}
			if !almostEqualVec(hit.Normal, tc.wantNormal) {
				t.Errorf("normal = %v, want %v", hit.Normal, tc.wantNormal)
			}
			if !almostEqual(hit.Distance, tc.wantDistance) {
				t.Errorf("distance = %f, want %f", hit.Distance, tc.wantDistance)
			}
			if hit.FrontFace != tc.wantFront {
				t.Errorf("front face = %v, want %v", hit.FrontFace, tc.wantFront)
			}
			wantColor := Black
			if tc.wantFront {
				wantColor = testBlue.Color
			}
			if hit.Color != wantColor {
				t.Errorf("color = %v, want %v", hit.Color, wantColor)
			}
		})
	}
}

func TestSphereBoundingBox(t *testing.T) {
	box := NewSphere(NewPoint3d(1, 2, 3), 2, testBlue).BoundingBox()
	if box.MinCorner != NewPoint3d(-1, 0, 1) || box.MaxCorner != NewPoint3d(3, 4, 5) {
		t.Errorf("BoundingBox() = %v", box)
	}
}
