package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/Awani-555/DrowsyDriver/internal/detector"
	"github.com/Awani-555/DrowsyDriver/internal/models"
	"github.com/Awani-555/DrowsyDriver/internal/services"
)

// maxFrameBytes caps an uploaded frame at 10 MB.
const maxFrameBytes = 10 << 20

// DetectionHandler owns the REST detection surface. It holds the
// server's default detector; WebSocket and gRPC streams create their
// own per-connection instances.
type DetectionHandler struct {
	det      *detector.Detector
	pipeline *services.Pipeline
	metrics  *services.Metrics
	healthy  func() bool
}

// NewDetectionHandler wires the handler. healthy reports whether the
// landmark sidecar is reachable; it may be nil.
func NewDetectionHandler(det *detector.Detector, pipeline *services.Pipeline, healthy func() bool) *DetectionHandler {
	return &DetectionHandler{
		det:      det,
		pipeline: pipeline,
		metrics:  services.GetMetrics(),
		healthy:  healthy,
	}
}

// ProcessFrame handles POST /api/process-frame: a multipart "file"
// field with JPG/PNG bytes, optionally bound to a driving session via
// the session_id form value.
func (h *DetectionHandler) ProcessFrame(w http.ResponseWriter, r *http.Request) {
	enableCORS(w)
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseMultipartForm(maxFrameBytes); err != nil {
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Missing file field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	frameData, err := io.ReadAll(io.LimitReader(file, maxFrameBytes))
	if err != nil || len(frameData) == 0 {
		http.Error(w, "Invalid image file", http.StatusBadRequest)
		return
	}

	resp, err := h.pipeline.ProcessFrame(r.Context(), h.det, frameData, 0)
	if err != nil {
		log.Printf("Error processing frame: %v", err)
		writeError(w, http.StatusBadGateway, err.Error(), "PIPELINE_ERROR")
		return
	}

	if resp.AlertTriggered {
		log.Println("ALERT: drowsiness detected")
		if sessionID, err := strconv.Atoi(r.FormValue("session_id")); err == nil {
			ear := 0.0
			if resp.EAR != nil {
				ear = *resp.EAR
			}
			RecordAlertEvent(r.Context(), sessionID, ear, resp.ClosedEyeFrames)
		}
	}

	json.NewEncoder(w).Encode(resp)
}

// Config handles GET and POST /api/config.
func (h *DetectionHandler) Config(w http.ResponseWriter, r *http.Request) {
	enableCORS(w)

	switch r.Method {
	case http.MethodGet:
		writeConfig(w, h.det.Config())

	case http.MethodPost:
		var req models.UpdateConfigRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}

		cfg, err := h.det.UpdateConfig(detector.ConfigUpdate{
			EARThreshold:      req.EARThreshold,
			ConsecutiveFrames: req.ConsecutiveFrames,
			WindowSize:        req.WindowSize,
		})
		if errors.Is(err, detector.ErrConfigOutOfRange) {
			writeError(w, http.StatusBadRequest, err.Error(), "CONFIG_OUT_OF_RANGE")
			return
		} else if err != nil {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		log.Printf("Config updated: threshold=%.3f consecutive=%d window=%d",
			cfg.EARThreshold, cfg.ConsecutiveFrames, cfg.WindowSize)
		writeConfig(w, cfg)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Stats handles GET /api/stats.
func (h *DetectionHandler) Stats(w http.ResponseWriter, r *http.Request) {
	enableCORS(w)
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	stats := h.det.Stats()
	json.NewEncoder(w).Encode(models.StatsResponse{
		FramesProcessed:  stats.TotalFrames,
		DrowsyFrames:     stats.DrowsyFrames,
		DrowsyPercentage: stats.DrowsyPercentage,
	})
}

// Reset handles POST /api/reset: zeroes the default detector's
// counters and latch, leaving its config alone.
func (h *DetectionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	enableCORS(w)
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	h.det.Reset()
	log.Println("Detection state reset")
	json.NewEncoder(w).Encode(map[string]string{"status": "reset"})
}

// Health handles GET /api/health.
func (h *DetectionHandler) Health(w http.ResponseWriter, r *http.Request) {
	enableCORS(w)
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	landmarkOK := h.healthy != nil && h.healthy()

	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":           "healthy",
		"service":          "DrowsyDriver API",
		"version":          "1.0.0",
		"landmark_service": landmarkOK,
		"active_clients":   h.metrics.GetActiveClients(),
		"timestamp":        time.Now().Format(time.RFC3339),
	})
}

// Metrics handles GET /api/metrics with process-wide counters.
func (h *DetectionHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	enableCORS(w)
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"total_frames":      h.metrics.GetTotalFrames(),
		"no_face_frames":    h.metrics.GetNoFaceFrames(),
		"drowsy_detections": h.metrics.GetDrowsyAlerts(),
		"total_errors":      h.metrics.GetTotalErrors(),
		"avg_latency_ms":    h.metrics.GetAvgLatency(),
		"active_clients":    h.metrics.GetActiveClients(),
		"websocket":         h.metrics.GetWebSocketMetrics(),
		"system_uptime_sec": h.metrics.UptimeSeconds(),
		"timestamp":         time.Now().Format(time.RFC3339),
	})
}

func writeConfig(w http.ResponseWriter, cfg detector.Config) {
	json.NewEncoder(w).Encode(models.ConfigResponse{
		EARThreshold:      cfg.EARThreshold,
		ConsecutiveFrames: cfg.ConsecutiveFrames,
		WindowSize:        cfg.WindowSize,
	})
}

func writeError(w http.ResponseWriter, code int, msg, errCode string) {
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(models.ErrorResponse{
		Error:     msg,
		Timestamp: time.Now().Unix(),
		Code:      errCode,
	})
}
