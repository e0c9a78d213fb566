package gortrace

import "testing"

func TestNewViewport(t *testing.T) {
	testCases := []struct {
		name       string
		lbc        Point3d
		ltr, btt   Vector3
		wantCamera Point3d
	}{
		{"Looking down -Z", NewPoint3d(-4.0/3, -1, 1), NewVector3(8.0/3, 0, 0), NewVector3(0, 2, 0), NewPoint3d(0, 0, 5)},
		{"Looking down -X", NewPoint3d(0, -1, 1), NewVector3(0, 0, -2), NewVector3(0, 2, 0), NewPoint3d(3, 0, 0)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			vp := NewViewport(tc.lbc, tc.ltr, tc.btt)
			if !almostEqualVec(vp.Camera, tc.wantCamera) {
				t.Errorf("camera = %v, want %v", vp.Camera, tc.wantCamera)
			}
		})
	}
}

func TestViewportRays(t *testing.T) {
	vp := NewViewport(NewPoint3d(-4.0/3, -1, 1), NewVector3(8.0/3, 0, 0), NewVector3(0, 2, 0))

	testCases := []struct {
		name      string
		u, v      float64
		wantPoint Point3d
	}{
		{"Bottom left", 0, 0, NewPoint3d(-4.0/3, -1, 1)},
		{"Center", 0.5, 0.5, NewPoint3d(0, 0, 1)},
		{"Top right", 1, 1, NewPoint3d(4.0/3, 1, 1)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := vp.ScreenPoint(tc.u, tc.v)
			if !almostEqualVec(p, tc.wantPoint) {
				t.Errorf("ScreenPoint() = %v, want %v", p, tc.wantPoint)
			}
			if got := vp.PrimaryRay(tc.u, tc.v); !almostEqualVec(got, tc.wantPoint.Sub(vp.Camera)) {
				t.Errorf("PrimaryRay() = %v", got)
			}
		})
	}
}

func TestNewViewportLookAt(t *testing.T) {
	testCases := []struct {
		name             string
		eye, target, up  Vector3
		fovY, aspect     float64
		wantLBC          Point3d
		wantLTR, wantBTT Vector3
	}{
		{
			name: "Down -Z", eye: NewVector3(0, 0, 5), target: NewVector3(0, 0, 0), up: NewVector3(0, 1, 0),
			fovY: 90, aspect: 1,
			wantLBC: NewPoint3d(-1, -1, 4), wantLTR: NewVector3(2, 0, 0), wantBTT: NewVector3(0, 2, 0),
		},
		{
			name: "Wide, down -X", eye: NewVector3(5, 0, 0), target: NewVector3(0, 0, 0), up: NewVector3(0, 1, 0),
			fovY: 90, aspect: 2,
			wantLBC: NewPoint3d(4, -1, 2), wantLTR: NewVector3(0, 0, -4), wantBTT: NewVector3(0, 2, 0),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			vp := NewViewportLookAt(tc.eye, tc.target, tc.up, tc.fovY, tc.aspect)
			if !almostEqualVec(vp.Camera, tc.eye) {
				t.Errorf("camera = %v, want %v", vp.Camera, tc.eye)
			}
			if !almostEqualVec(vp.LeftBottomCorner, tc.wantLBC) {
				t.Errorf("left bottom corner = %v, want %v", vp.LeftBottomCorner, tc.wantLBC)
			}
			if !almostEqualVec(vp.LeftToRight, tc.wantLTR) {
				t.Errorf("left to right = %v, want %v", vp.LeftToRight, tc.wantLTR)
			}
			if !almostEqualVec(vp.BottomToTop, tc.wantBTT) {
				t.Errorf("bottom to top = %v, want %v", vp.BottomToTop, tc.wantBTT)
			}
			// the center ray looks at the target
			center := vp.PrimaryRay(0.5, 0.5).Normalize()
			if want := tc.target.Sub(tc.eye).Normalize(); !almostEqualVec(center, want) {
				t.Errorf("center ray = %v, want %v", center, want)
			}
		})
	}
}
