package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Awani-555/DrowsyDriver/internal/detector"
	pb "github.com/Awani-555/DrowsyDriver/pkg/pb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLandmarkSource replays a canned sidecar response.
type fakeLandmarkSource struct {
	result *pb.LandmarkResult
	err    error
}

func (f *fakeLandmarkSource) DetectLandmarks(ctx context.Context, frame *pb.VideoFrame) (*pb.LandmarkResult, error) {
	return f.result, f.err
}

// normalizedEye lays out six contour points of an eye of width w and
// height h at (x, y), in normalized coordinates. With a square frame
// the resulting EAR is h/w.
func normalizedEye(x, y, w, h float32) []*pb.NormalizedPoint {
	return []*pb.NormalizedPoint{
		{X: x, Y: y + h/2},
		{X: x + w/4, Y: y},
		{X: x + 3*w/4, Y: y},
		{X: x + w, Y: y + h/2},
		{X: x + 3*w/4, Y: y + h},
		{X: x + w/4, Y: y + h},
	}
}

func landmarksWithEAR(ratio float32) *pb.LandmarkResult {
	const w = 0.2
	left := normalizedEye(0.2, 0.3, w, ratio*w)
	right := normalizedEye(0.6, 0.3, w, ratio*w)
	return &pb.LandmarkResult{
		FaceFound:    true,
		EyeLandmarks: append(left, right...),
		FrameWidth:   100,
		FrameHeight:  100,
	}
}

func newTestPipeline(t *testing.T, src LandmarkSource) (*Pipeline, *detector.Detector) {
	t.Helper()

	det, err := detector.New(detector.Config{
		EARThreshold:      0.25,
		ConsecutiveFrames: 3,
		WindowSize:        10,
	})
	require.NoError(t, err)

	return NewPipeline(src, NewMetrics()), det
}

func TestProcessFrameOpenEyes(t *testing.T) {
	t.Parallel()

	p, det := newTestPipeline(t, &fakeLandmarkSource{result: landmarksWithEAR(0.4)})

	resp, err := p.ProcessFrame(context.Background(), det, []byte("frame"), 7)
	require.NoError(t, err)

	assert.Equal(t, string(detector.StatusAwake), resp.Status)
	require.NotNil(t, resp.EAR)
	assert.InDelta(t, 0.4, *resp.EAR, 1e-6)
	assert.False(t, resp.AlertTriggered)
	assert.Equal(t, int32(7), resp.SequenceNumber)
	assert.Equal(t, int64(1), resp.FrameCount)
}

func TestProcessFrameClosedRunTriggersAlert(t *testing.T) {
	t.Parallel()

	p, det := newTestPipeline(t, &fakeLandmarkSource{result: landmarksWithEAR(0.1)})

	for i := 0; i < 2; i++ {
		resp, err := p.ProcessFrame(context.Background(), det, []byte("frame"), int32(i))
		require.NoError(t, err)
		assert.Equal(t, string(detector.StatusAwake), resp.Status)
		assert.False(t, resp.AlertTriggered)
	}

	resp, err := p.ProcessFrame(context.Background(), det, []byte("frame"), 2)
	require.NoError(t, err)
	assert.Equal(t, string(detector.StatusDrowsy), resp.Status)
	assert.True(t, resp.AlertTriggered)
	assert.Equal(t, 3, resp.ClosedEyeFrames)
	assert.Equal(t, int64(1), resp.DrowsyFrames)
}

func TestProcessFrameNoFace(t *testing.T) {
	t.Parallel()

	p, det := newTestPipeline(t, &fakeLandmarkSource{result: &pb.LandmarkResult{FaceFound: false}})

	resp, err := p.ProcessFrame(context.Background(), det, []byte("frame"), 0)
	require.NoError(t, err)

	assert.Equal(t, string(detector.StatusNoFace), resp.Status)
	assert.Equal(t, "No face detected in frame", resp.Message)
	assert.Nil(t, resp.EAR)
	assert.Equal(t, int64(1), resp.FrameCount)
}

func TestProcessFrameTooFewLandmarks(t *testing.T) {
	t.Parallel()

	result := &pb.LandmarkResult{
		FaceFound:    true,
		EyeLandmarks: normalizedEye(0.2, 0.3, 0.2, 0.08),
		FrameWidth:   100,
		FrameHeight:  100,
	}
	p, det := newTestPipeline(t, &fakeLandmarkSource{result: result})

	resp, err := p.ProcessFrame(context.Background(), det, []byte("frame"), 0)
	require.NoError(t, err)

	assert.Equal(t, string(detector.StatusNoFace), resp.Status)
	assert.Nil(t, resp.EAR)
}

func TestProcessFrameDegenerateLandmarks(t *testing.T) {
	t.Parallel()

	// All twelve points collapse to one pixel, so the horizontal
	// distance is zero and the metric is undefined.
	points := make([]*pb.NormalizedPoint, detector.EyePoints)
	for i := range points {
		points[i] = &pb.NormalizedPoint{X: 0.5, Y: 0.5}
	}
	result := &pb.LandmarkResult{
		FaceFound:    true,
		EyeLandmarks: points,
		FrameWidth:   100,
		FrameHeight:  100,
	}
	p, det := newTestPipeline(t, &fakeLandmarkSource{result: result})

	resp, err := p.ProcessFrame(context.Background(), det, []byte("frame"), 0)
	require.NoError(t, err)

	assert.Equal(t, string(detector.StatusMetricError), resp.Status)
	assert.Equal(t, "Could not calculate EAR", resp.Message)
	assert.Nil(t, resp.EAR)
}

func TestProcessFrameSidecarError(t *testing.T) {
	t.Parallel()

	p, det := newTestPipeline(t, &fakeLandmarkSource{err: errors.New("connection refused")})

	_, err := p.ProcessFrame(context.Background(), det, []byte("frame"), 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "landmark detection failed")

	// Transport failures never advance the frame counter.
	assert.Equal(t, int64(0), det.Stats().TotalFrames)
}

func TestProcessFrameNoLandmarkService(t *testing.T) {
	t.Parallel()

	p, det := newTestPipeline(t, nil)

	_, err := p.ProcessFrame(context.Background(), det, []byte("frame"), 0)
	require.Error(t, err)
}

func TestProcessFrameUnreadableFreezesRun(t *testing.T) {
	t.Parallel()

	closed := &fakeLandmarkSource{result: landmarksWithEAR(0.1)}
	p, det := newTestPipeline(t, closed)

	for i := 0; i < 2; i++ {
		_, err := p.ProcessFrame(context.Background(), det, []byte("frame"), int32(i))
		require.NoError(t, err)
	}

	// A no-face gap must not reset the closed-eye run.
	p.landmarks = &fakeLandmarkSource{result: &pb.LandmarkResult{FaceFound: false}}
	resp, err := p.ProcessFrame(context.Background(), det, []byte("frame"), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.ClosedEyeFrames)

	p.landmarks = closed
	resp, err = p.ProcessFrame(context.Background(), det, []byte("frame"), 3)
	require.NoError(t, err)
	assert.Equal(t, string(detector.StatusDrowsy), resp.Status)
	assert.True(t, resp.AlertTriggered)
}
