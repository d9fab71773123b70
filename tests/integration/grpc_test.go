package integration

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/Awani-555/DrowsyDriver/pkg/pb"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// These tests expect a running server on localhost:50051.

func dial(t *testing.T) *grpc.ClientConn {
	t.Helper()

	conn, err := grpc.Dial("localhost:50051", grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("did not connect: %v", err)
	}
	return conn
}

func TestGRPCDetectDrowsiness(t *testing.T) {
	conn := dial(t)
	defer conn.Close()

	client := pb.NewDrowsinessDetectionClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req := &pb.VideoFrame{
		FrameData:      []byte("test frame data"),
		Timestamp:      time.Now().UnixMilli(),
		SequenceNumber: 1,
	}

	result, err := client.DetectDrowsiness(ctx, req)
	if err != nil {
		t.Fatalf("DetectDrowsiness failed: %v", err)
	}

	if result == nil {
		t.Fatalf("Result is nil")
	}

	t.Logf("Success! status=%s, ear=%.3f, alert=%v", result.Status, result.Ear, result.AlertTriggered)
}

func TestGRPCDetectDrowsinessStream(t *testing.T) {
	conn := dial(t)
	defer conn.Close()

	client := pb.NewDrowsinessDetectionClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stream, err := client.DetectDrowsinessStream(ctx)
	if err != nil {
		t.Fatalf("DetectDrowsinessStream failed: %v", err)
	}

	for i := int32(1); i <= 3; i++ {
		req := &pb.VideoFrame{
			FrameData:      []byte("test frame data"),
			Timestamp:      time.Now().UnixMilli(),
			SequenceNumber: i,
		}
		if err := stream.Send(req); err != nil {
			t.Fatalf("Send frame #%d failed: %v", i, err)
		}

		result, err := stream.Recv()
		if err == io.EOF {
			t.Fatalf("stream closed early on frame #%d", i)
		}
		if err != nil {
			t.Fatalf("Recv frame #%d failed: %v", i, err)
		}
		if result.SequenceNumber != i {
			t.Errorf("Expected sequence %d, got %d", i, result.SequenceNumber)
		}

		t.Logf("Frame #%d: status=%s", i, result.Status)
	}

	if err := stream.CloseSend(); err != nil {
		t.Fatalf("CloseSend failed: %v", err)
	}
}

func TestGRPCHealth(t *testing.T) {
	conn := dial(t)
	defer conn.Close()

	client := pb.NewDrowsinessDetectionClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	status, err := client.Health(ctx, &pb.Empty{})
	if err != nil {
		t.Fatalf("Health failed: %v", err)
	}

	if status.Status != "healthy" {
		t.Errorf("Expected healthy, got %s", status.Status)
	}

	t.Logf("Health: %+v", status)
}
