package pb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
)

// The raw descriptor must parse into the schema the handlers rely on.
func TestFileDescriptor(t *testing.T) {
	t.Parallel()

	fd := File_proto_drowsy_proto
	require.NotNil(t, fd)

	assert.Equal(t, "proto/drowsy.proto", fd.Path())
	assert.EqualValues(t, "drowsy", fd.Package())
	assert.Equal(t, 6, fd.Messages().Len())

	require.Equal(t, 2, fd.Services().Len())
	landmarks := fd.Services().ByName("FaceLandmarks")
	require.NotNil(t, landmarks)
	assert.NotNil(t, landmarks.Methods().ByName("DetectLandmarks"))

	detection := fd.Services().ByName("DrowsinessDetection")
	require.NotNil(t, detection)
	streaming := detection.Methods().ByName("DetectDrowsinessStream")
	require.NotNil(t, streaming)
	assert.True(t, streaming.IsStreamingClient())
	assert.True(t, streaming.IsStreamingServer())

	eyeLandmarks := fd.Messages().ByName("LandmarkResult").Fields().ByName("eye_landmarks")
	require.NotNil(t, eyeLandmarks)
	assert.EqualValues(t, 2, eyeLandmarks.Number())
	assert.True(t, eyeLandmarks.IsList())
	assert.EqualValues(t, "drowsy.NormalizedPoint", eyeLandmarks.Message().FullName())
}

func TestDetectionResultRoundTrip(t *testing.T) {
	t.Parallel()

	in := &DetectionResult{
		Status:          "DROWSY",
		Ear:             0.18,
		AlertTriggered:  true,
		ClosedEyeFrames: 21,
		FrameCount:      100,
		DrowsyFrames:    2,
		SequenceNumber:  42,
	}

	data, err := proto.Marshal(in)
	require.NoError(t, err)

	out := &DetectionResult{}
	require.NoError(t, proto.Unmarshal(data, out))
	assert.True(t, proto.Equal(in, out))
}
