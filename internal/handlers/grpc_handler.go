package handlers

import (
	"context"
	"io"
	"log"
	"time"

	"github.com/Awani-555/DrowsyDriver/internal/config"
	"github.com/Awani-555/DrowsyDriver/internal/detector"
	"github.com/Awani-555/DrowsyDriver/internal/models"
	"github.com/Awani-555/DrowsyDriver/internal/services"
	pb "github.com/Awani-555/DrowsyDriver/pkg/pb"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// GRPCHandler serves the public DrowsinessDetection gRPC API. Unary
// calls share the server's default detector with the REST surface;
// each bidirectional stream owns a fresh one.
type GRPCHandler struct {
	pb.UnimplementedDrowsinessDetectionServer
	det        *detector.Detector
	pipeline   *services.Pipeline
	landmarks  *services.LandmarkClient
	metrics    *services.Metrics
	defaultCfg detector.Config
}

func NewGRPCHandler(det *detector.Detector, pipeline *services.Pipeline, landmarks *services.LandmarkClient, cfg *config.Config) *GRPCHandler {
	return &GRPCHandler{
		det:       det,
		pipeline:  pipeline,
		landmarks: landmarks,
		metrics:   services.GetMetrics(),
		defaultCfg: detector.Config{
			EARThreshold:      cfg.EARThreshold,
			ConsecutiveFrames: cfg.ConsecutiveFrames,
			WindowSize:        cfg.WindowSize,
		},
	}
}

func (h *GRPCHandler) DetectDrowsiness(ctx context.Context, req *pb.VideoFrame) (*pb.DetectionResult, error) {
	start := time.Now()

	if len(req.GetFrameData()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "frame_data is required")
	}

	resp, err := h.pipeline.ProcessFrame(ctx, h.det, req.GetFrameData(), req.GetSequenceNumber())
	if err != nil {
		log.Printf("Error: %v", err)
		return nil, status.Error(codes.Internal, "processing failed")
	}

	log.Printf("Frame #%d processed in %v, status: %s", req.GetSequenceNumber(), time.Since(start), resp.Status)
	return detectionResult(resp), nil
}

func (h *GRPCHandler) DetectDrowsinessStream(stream pb.DrowsinessDetection_DetectDrowsinessStreamServer) error {
	log.Println("Stream started")

	// One detector per stream: the run-length counter is order
	// sensitive, so every stream gets its own independent state.
	det, err := detector.New(h.defaultCfg)
	if err != nil {
		return status.Error(codes.Internal, "invalid detector config")
	}

	for {
		req, err := stream.Recv()
		if err == io.EOF {
			log.Println("Stream completed")
			return nil
		}
		if err != nil {
			log.Printf("Recv error: %v", err)
			return status.Error(codes.Internal, err.Error())
		}

		resp, err := h.pipeline.ProcessFrame(stream.Context(), det, req.GetFrameData(), req.GetSequenceNumber())
		if err != nil {
			log.Printf("Frame #%d failed: %v", req.GetSequenceNumber(), err)
			return status.Error(codes.Internal, "processing failed")
		}

		if err := stream.Send(detectionResult(resp)); err != nil {
			log.Printf("Send error: %v", err)
			return status.Error(codes.Internal, err.Error())
		}
	}
}

func (h *GRPCHandler) Health(ctx context.Context, _ *pb.Empty) (*pb.HealthStatus, error) {
	landmarkHealthy := false
	if h.landmarks != nil {
		landmarkHealthy = h.landmarks.HealthCheck()
	}

	log.Printf("Health: landmarks=%v, clients=%d", landmarkHealthy, h.metrics.GetActiveClients())

	return &pb.HealthStatus{
		Status:          "healthy",
		LandmarkService: landmarkHealthy,
		ActiveClients:   int32(h.metrics.GetActiveClients()),
	}, nil
}

func detectionResult(resp models.FrameResponse) *pb.DetectionResult {
	var ear float32
	if resp.EAR != nil {
		ear = float32(*resp.EAR)
	}
	return &pb.DetectionResult{
		Status:          resp.Status,
		Ear:             ear,
		AlertTriggered:  resp.AlertTriggered,
		ClosedEyeFrames: int32(resp.ClosedEyeFrames),
		FrameCount:      resp.FrameCount,
		DrowsyFrames:    resp.DrowsyFrames,
		Timestamp:       time.Now().UnixMilli(),
		SequenceNumber:  resp.SequenceNumber,
	}
}
