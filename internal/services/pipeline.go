package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Awani-555/DrowsyDriver/internal/detector"
	"github.com/Awani-555/DrowsyDriver/internal/models"
	pb "github.com/Awani-555/DrowsyDriver/pkg/pb"
)

// Pipeline runs one frame through the full detection path: landmark
// sidecar call, normalized-to-pixel scaling, EAR computation, and a
// state-machine tick on the supplied detector. The detector is passed
// in per call so each session or connection can own its own instance.
type Pipeline struct {
	landmarks LandmarkSource
	metrics   *Metrics
}

func NewPipeline(landmarks LandmarkSource, metrics *Metrics) *Pipeline {
	return &Pipeline{
		landmarks: landmarks,
		metrics:   metrics,
	}
}

// ProcessFrame classifies one frame. Unreadable frames (no face,
// degenerate landmarks) advance the detector's frame counter but leave
// its run state untouched; only a transport or sidecar failure is
// returned as an error.
func (p *Pipeline) ProcessFrame(ctx context.Context, det *detector.Detector, frameData []byte, seq int32) (models.FrameResponse, error) {
	if p.landmarks == nil {
		return models.FrameResponse{}, fmt.Errorf("landmark service is not connected")
	}

	start := time.Now()

	result, err := p.landmarks.DetectLandmarks(ctx, &pb.VideoFrame{
		FrameData:      frameData,
		Timestamp:      time.Now().UnixMilli(),
		SequenceNumber: seq,
	})
	if err != nil {
		p.metrics.IncrementErrors()
		return models.FrameResponse{}, fmt.Errorf("landmark detection failed: %w", err)
	}

	p.metrics.IncrementFrames()
	p.metrics.RecordLatency(time.Since(start))

	if !result.GetFaceFound() || len(result.GetEyeLandmarks()) < detector.EyePoints {
		p.metrics.IncrementNoFaceFrames()
		res := det.TickUnreadable(detector.StatusNoFace)
		return frameResponse(res, "No face detected in frame", seq), nil
	}

	points := pixelPoints(result.GetEyeLandmarks(), result.GetFrameWidth(), result.GetFrameHeight())

	ear, err := detector.ComputeEAR(points)
	if err != nil {
		res := det.TickUnreadable(detector.StatusMetricError)
		return frameResponse(res, "Could not calculate EAR", seq), nil
	}

	res := det.Tick(ear)
	if res.AlertTriggered {
		p.metrics.IncrementDrowsyAlerts()
	}
	return frameResponse(res, "", seq), nil
}

// pixelPoints scales normalized landmark coordinates to pixel space.
// The landmark order from the sidecar is the contour order the EAR
// formula expects and must be preserved.
func pixelPoints(landmarks []*pb.NormalizedPoint, width, height int32) []detector.Point2D {
	points := make([]detector.Point2D, 0, len(landmarks))
	for _, lm := range landmarks {
		points = append(points, detector.Point2D{
			X: float64(lm.GetX()) * float64(width),
			Y: float64(lm.GetY()) * float64(height),
		})
	}
	return points
}

func frameResponse(res detector.FrameResult, message string, seq int32) models.FrameResponse {
	resp := models.FrameResponse{
		Status:          string(res.Status),
		Message:         message,
		AlertTriggered:  res.AlertTriggered,
		ClosedEyeFrames: res.ClosedFrames,
		FrameCount:      res.TotalFrames,
		DrowsyFrames:    res.DrowsyFrames,
		SequenceNumber:  seq,
	}
	if res.Status == detector.StatusAwake || res.Status == detector.StatusDrowsy {
		ear := res.EAR
		resp.EAR = &ear
	}
	return resp
}
