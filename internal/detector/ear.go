package detector

import (
	"errors"
	"math"
)

// Eye Aspect Ratio computation from the six-point eye contour.
// Point roles per eye follow the usual p1..p6 convention:
// p1 outer corner, p2/p3 upper lid, p4 inner corner, p5/p6 lower lid.

const (
	PointsPerEye = 6
	EyePoints    = 2 * PointsPerEye
)

var (
	ErrInsufficientLandmarks = errors.New("detector: fewer than 12 eye landmarks supplied")
	ErrMetricUndefined       = errors.New("detector: eye aspect ratio undefined for degenerate landmarks")
)

// Point2D is a pixel-space landmark coordinate.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func euclideanDistance(a, b Point2D) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// eyeAspectRatio computes EAR = (||p2-p6|| + ||p3-p5||) / (2 * ||p1-p4||)
// for a single eye. The point order is fixed; a reordered slice still
// produces a number, just the wrong one, so callers must keep the
// contour order intact.
func eyeAspectRatio(eye []Point2D) (float64, error) {
	vertical1 := euclideanDistance(eye[1], eye[5])
	vertical2 := euclideanDistance(eye[2], eye[4])
	horizontal := euclideanDistance(eye[0], eye[3])

	if horizontal == 0 {
		return 0, ErrMetricUndefined
	}
	return (vertical1 + vertical2) / (2.0 * horizontal), nil
}

// ComputeEAR averages the per-eye aspect ratios over both eyes.
// points holds the left eye contour at [0:6] and the right at [6:12],
// in pixel coordinates. The result is finite and non-negative.
func ComputeEAR(points []Point2D) (float64, error) {
	if len(points) < EyePoints {
		return 0, ErrInsufficientLandmarks
	}

	leftEAR, err := eyeAspectRatio(points[:PointsPerEye])
	if err != nil {
		return 0, err
	}
	rightEAR, err := eyeAspectRatio(points[PointsPerEye:EyePoints])
	if err != nil {
		return 0, err
	}

	return (leftEAR + rightEAR) / 2.0, nil
}
