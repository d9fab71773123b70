package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Awani-555/DrowsyDriver/internal/detector"
	"github.com/Awani-555/DrowsyDriver/internal/models"
	"github.com/Awani-555/DrowsyDriver/internal/services"
	pb "github.com/Awani-555/DrowsyDriver/pkg/pb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLandmarkSource struct {
	result *pb.LandmarkResult
	err    error
}

func (f *fakeLandmarkSource) DetectLandmarks(ctx context.Context, frame *pb.VideoFrame) (*pb.LandmarkResult, error) {
	return f.result, f.err
}

// openEyesResult returns landmarks for two wide-open square eyes with
// an EAR of 0.4.
func openEyesResult() *pb.LandmarkResult {
	eye := func(x float32) []*pb.NormalizedPoint {
		const w, h = float32(0.2), float32(0.08)
		const y = float32(0.3)
		return []*pb.NormalizedPoint{
			{X: x, Y: y + h/2},
			{X: x + w/4, Y: y},
			{X: x + 3*w/4, Y: y},
			{X: x + w, Y: y + h/2},
			{X: x + 3*w/4, Y: y + h},
			{X: x + w/4, Y: y + h},
		}
	}
	return &pb.LandmarkResult{
		FaceFound:    true,
		EyeLandmarks: append(eye(0.2), eye(0.6)...),
		FrameWidth:   640,
		FrameHeight:  640,
	}
}

func newTestHandler(t *testing.T, src services.LandmarkSource) *DetectionHandler {
	t.Helper()

	det, err := detector.New(detector.DefaultConfig())
	require.NoError(t, err)

	pipeline := services.NewPipeline(src, services.NewMetrics())
	return NewDetectionHandler(det, pipeline, func() bool { return true })
}

func multipartFrame(t *testing.T, field string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, "frame.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("fake jpeg bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestProcessFrameHandler(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, &fakeLandmarkSource{result: openEyesResult()})

	body, contentType := multipartFrame(t, "file")
	req := httptest.NewRequest(http.MethodPost, "/api/process-frame", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.ProcessFrame(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.FrameResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "AWAKE", resp.Status)
	require.NotNil(t, resp.EAR)
	assert.InDelta(t, 0.4, *resp.EAR, 1e-6)
}

func TestProcessFrameHandlerNoFace(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, &fakeLandmarkSource{result: &pb.LandmarkResult{FaceFound: false}})

	body, contentType := multipartFrame(t, "file")
	req := httptest.NewRequest(http.MethodPost, "/api/process-frame", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.ProcessFrame(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.FrameResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "NO_FACE", resp.Status)
	assert.Nil(t, resp.EAR)
}

func TestProcessFrameHandlerMissingFile(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, &fakeLandmarkSource{result: openEyesResult()})

	body, contentType := multipartFrame(t, "image")
	req := httptest.NewRequest(http.MethodPost, "/api/process-frame", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.ProcessFrame(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProcessFrameHandlerMethodNotAllowed(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, &fakeLandmarkSource{result: openEyesResult()})

	req := httptest.NewRequest(http.MethodGet, "/api/process-frame", nil)
	rec := httptest.NewRecorder()

	h.ProcessFrame(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestConfigHandlerGet(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/config", nil)
	rec := httptest.NewRecorder()

	h.Config(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ConfigResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.InDelta(t, 0.25, resp.EARThreshold, 1e-9)
	assert.Equal(t, 20, resp.ConsecutiveFrames)
	assert.Equal(t, 10, resp.WindowSize)
}

func TestConfigHandlerUpdate(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/config",
		strings.NewReader(`{"ear_threshold": 0.3}`))
	rec := httptest.NewRecorder()

	h.Config(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ConfigResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.InDelta(t, 0.3, resp.EARThreshold, 1e-9)
	// Untouched fields keep their previous values.
	assert.Equal(t, 20, resp.ConsecutiveFrames)
}

func TestConfigHandlerRejectsOutOfRange(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/config",
		strings.NewReader(`{"ear_threshold": -1, "consecutive_frames": 5}`))
	rec := httptest.NewRecorder()

	h.Config(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp models.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
	assert.Equal(t, "CONFIG_OUT_OF_RANGE", errResp.Code)

	// A rejected update must not partially apply.
	assert.Equal(t, 20, h.det.Config().ConsecutiveFrames)
}

func TestStatsHandler(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, &fakeLandmarkSource{result: &pb.LandmarkResult{FaceFound: false}})

	body, contentType := multipartFrame(t, "file")
	req := httptest.NewRequest(http.MethodPost, "/api/process-frame", body)
	req.Header.Set("Content-Type", contentType)
	h.ProcessFrame(httptest.NewRecorder(), req)

	statsReq := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	rec := httptest.NewRecorder()

	h.Stats(rec, statsReq)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.StatsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, int64(1), resp.FramesProcessed)
	assert.Equal(t, int64(0), resp.DrowsyFrames)
	assert.Equal(t, 0.0, resp.DrowsyPercentage)
}

func TestResetHandler(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, &fakeLandmarkSource{result: &pb.LandmarkResult{FaceFound: false}})

	body, contentType := multipartFrame(t, "file")
	req := httptest.NewRequest(http.MethodPost, "/api/process-frame", body)
	req.Header.Set("Content-Type", contentType)
	h.ProcessFrame(httptest.NewRecorder(), req)

	rec := httptest.NewRecorder()
	h.Reset(rec, httptest.NewRequest(http.MethodPost, "/api/reset", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, int64(0), h.det.Stats().TotalFrames)
}

func TestHealthHandler(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()

	h.Health(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "healthy", resp["status"])
	assert.Equal(t, true, resp["landmark_service"])
}
