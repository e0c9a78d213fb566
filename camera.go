package gortrace

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Viewport is the rectangle in space the image is projected onto, together
// with the camera position the primary rays start from.
type Viewport struct {
	Camera           Point3d
	LeftBottomCorner Point3d
	LeftToRight      Vector3
	BottomToTop      Vector3
}

// NewViewport places the camera above the middle of the rectangle, on the
// side of leftToRight x bottomToTop, 1.5 widths away.
func NewViewport(leftBottomCorner Point3d, leftToRight, bottomToTop Vector3) Viewport {
	center := leftBottomCorner.Add(leftToRight.Mul(0.5)).Add(bottomToTop.Mul(0.5))
	offset := leftToRight.Cross(bottomToTop).NormalizeTo(1.5 * leftToRight.Len())
	return NewViewportWithCamera(center.Add(offset), leftBottomCorner, leftToRight, bottomToTop)
}

func NewViewportWithCamera(camera, leftBottomCorner Point3d, leftToRight, bottomToTop Vector3) Viewport {
	return Viewport{
		Camera:           camera,
		LeftBottomCorner: leftBottomCorner,
		LeftToRight:      leftToRight,
		BottomToTop:      bottomToTop,
	}
}

// NewViewportLookAt builds a viewport one unit in front of eye, looking at
// target. fovY is the vertical field of view in degrees and aspect is
// width / height.
func NewViewportLookAt(eye, target, up Vector3, fovY, aspect float64) Viewport {
	view := mgl64.LookAtV(eye.vec(), target.vec(), up.vec())

	// rows of the rotation part are the camera axes in world space
	right := Vector3(view.Row(0).Vec3())
	camUp := Vector3(view.Row(1).Vec3())
	forward := Vector3(view.Row(2).Vec3()).Mul(-1)

	halfHeight := math.Tan(mgl64.DegToRad(fovY) / 2)
	halfWidth := halfHeight * aspect

	center := eye.Add(forward)
	leftBottom := center.Sub(right.Mul(halfWidth)).Sub(camUp.Mul(halfHeight))

	return NewViewportWithCamera(eye, leftBottom, right.Mul(2*halfWidth), camUp.Mul(2*halfHeight))
}

// ScreenPoint maps u (left to right) and v (bottom to top), both in 0..1, to
// a point on the viewport.
func (vp Viewport) ScreenPoint(u, v float64) Point3d {
	return vp.LeftBottomCorner.Add(vp.BottomToTop.Mul(v)).Add(vp.LeftToRight.Mul(u))
}

// PrimaryRay returns the direction from the camera through the screen point.
func (vp Viewport) PrimaryRay(u, v float64) Vector3 {
	return vp.ScreenPoint(u, v).Sub(vp.Camera)
}
