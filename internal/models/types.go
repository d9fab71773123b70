package models

// VideoFrame is a frame submitted over WebSocket, base64-encoded.
type VideoFrame struct {
	Frame          string `json:"frame"`
	Timestamp      int64  `json:"timestamp"`
	SequenceNumber int32  `json:"sequence_number,omitempty"`
}

// FrameResponse is the per-frame detection payload returned by the
// REST process-frame endpoint and streamed over WebSocket. EAR is nil
// when the frame had no usable reading (NO_FACE / METRIC_ERROR).
type FrameResponse struct {
	EAR             *float64 `json:"ear"`
	Status          string   `json:"status"`
	Message         string   `json:"message,omitempty"`
	AlertTriggered  bool     `json:"alert_triggered"`
	ClosedEyeFrames int      `json:"closed_eyes_frames"`
	FrameCount      int64    `json:"frame_count"`
	DrowsyFrames    int64    `json:"drowsy_frames"`
	SequenceNumber  int32    `json:"sequence_number,omitempty"`
}

type StatsResponse struct {
	FramesProcessed  int64   `json:"frames_processed"`
	DrowsyFrames     int64   `json:"drowsy_frames"`
	DrowsyPercentage float64 `json:"drowsy_percentage"`
}

type ConfigResponse struct {
	EARThreshold      float64 `json:"ear_threshold"`
	ConsecutiveFrames int     `json:"consecutive_frames"`
	WindowSize        int     `json:"window_size"`
}

type UpdateConfigRequest struct {
	EARThreshold      *float64 `json:"ear_threshold,omitempty"`
	ConsecutiveFrames *int     `json:"consecutive_frames,omitempty"`
	WindowSize        *int     `json:"window_size,omitempty"`
}

type ErrorResponse struct {
	Error     string `json:"error"`
	Timestamp int64  `json:"timestamp"`
	Code      string `json:"code,omitempty"`
}
