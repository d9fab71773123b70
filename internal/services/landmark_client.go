package services

import (
	"context"
	"fmt"
	"log"
	"time"

	pb "github.com/Awani-555/DrowsyDriver/pkg/pb"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"
)

// LandmarkSource is the capability the detection pipeline needs from a
// face-landmark detector. The production implementation is the Python
// MediaPipe sidecar behind gRPC; tests substitute synthetic fixtures.
type LandmarkSource interface {
	DetectLandmarks(ctx context.Context, frame *pb.VideoFrame) (*pb.LandmarkResult, error)
}

type LandmarkClient struct {
	conn   *grpc.ClientConn
	client pb.FaceLandmarksClient
	url    string
}

func NewLandmarkClient(url string) (*LandmarkClient, error) {
	log.Printf("Connecting to landmark service at %s", url)

	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(50*1024*1024),
			grpc.MaxCallSendMsgSize(50*1024*1024),
		),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                10 * time.Second,
			Timeout:             3 * time.Second,
			PermitWithoutStream: true,
		}),
	}

	conn, err := grpc.Dial(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("could not connect to landmark service at %s: %w", url, err)
	}

	client := pb.NewFaceLandmarksClient(conn)
	log.Printf("Connected to landmark service at %s", url)

	return &LandmarkClient{
		conn:   conn,
		client: client,
		url:    url,
	}, nil
}

func (lc *LandmarkClient) DetectLandmarks(ctx context.Context, frame *pb.VideoFrame) (*pb.LandmarkResult, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := lc.client.DetectLandmarks(ctx, frame)
	if err != nil {
		return nil, fmt.Errorf("could not detect landmarks: %w", err)
	}
	return result, nil
}

func (lc *LandmarkClient) HealthCheck() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := lc.client.Health(ctx, &pb.Empty{})
	return err == nil
}

func (lc *LandmarkClient) Close() error {
	if lc.conn != nil {
		return lc.conn.Close()
	}
	return nil
}
