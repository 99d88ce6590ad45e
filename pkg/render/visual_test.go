package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/realtime-ai/voicecanvas/pkg/wave"
)

func testBuffer(n int) []float32 {
	buf := make([]float32, n)
	for i := range buf {
		buf[i] = float32(i%10) / 10
	}
	return buf
}

func TestDrawAt_OneClosedFilledPath(t *testing.T) {
	v := New(DefaultConfig())
	rc := NewRecordingCanvas(200, 200)

	err := v.DrawAt(rc, testBuffer(256), SpeakerAI, time.Unix(100, 0))
	require.NoError(t, err)

	assert.Equal(t, 1, rc.CountOp(OpClear))
	assert.Equal(t, 1, rc.CountOp(OpBeginPath))
	assert.Equal(t, 1, rc.CountOp(OpClosePath))
	assert.Equal(t, 1, rc.CountOp(OpFill))
	assert.Equal(t, 1, rc.CountOp(OpMoveTo))
	assert.Equal(t, DefaultConfig().Points, rc.CountOp(OpLineTo))

	// Clear precedes all path construction.
	require.NotEmpty(t, rc.Ops)
	assert.Equal(t, OpClear, rc.Ops[0])
	assert.Equal(t, OpFill, rc.Ops[len(rc.Ops)-1])
}

func TestDrawAt_TimeDependentAnimation(t *testing.T) {
	v := New(DefaultConfig())
	buf := testBuffer(256)

	first := NewRecordingCanvas(200, 200)
	require.NoError(t, v.DrawAt(first, buf, SpeakerAI, time.Unix(100, 0)))

	second := NewRecordingCanvas(200, 200)
	require.NoError(t, v.DrawAt(second, buf, SpeakerAI, time.Unix(100, 250_000_000)))

	require.Len(t, second.Vertices, len(first.Vertices))
	assert.NotEqual(t, first.Vertices, second.Vertices,
		"frames at different timestamps should differ")

	// Same timestamp reproduces the exact same boundary.
	third := NewRecordingCanvas(200, 200)
	require.NoError(t, v.DrawAt(third, buf, SpeakerAI, time.Unix(100, 0)))
	assert.Equal(t, first.Vertices, third.Vertices)
}

func TestDrawAt_LoudnessDrivesDeformation(t *testing.T) {
	v := New(DefaultConfig())
	at := time.Unix(42, 123_000_000)

	quiet := NewRecordingCanvas(200, 200)
	require.NoError(t, v.DrawAt(quiet, make([]float32, 256), SpeakerAI, at))

	loudBuf := make([]float32, 256)
	for i := range loudBuf {
		loudBuf[i] = 1.0
	}
	loud := NewRecordingCanvas(200, 200)
	require.NoError(t, v.DrawAt(loud, loudBuf, SpeakerAI, at))

	// Same timestamp, same angles: any difference comes from amplitude.
	assert.NotEqual(t, quiet.Vertices, loud.Vertices)

	maxOffset := func(rc *RecordingCanvas) float64 {
		max := 0.0
		for _, p := range rc.Vertices {
			dx, dy := p[0]-100, p[1]-100
			d := dx*dx + dy*dy
			base := DefaultConfig().BaseRadius * 200
			off := d - base*base
			if off < 0 {
				off = -off
			}
			if off > max {
				max = off
			}
		}
		return max
	}
	assert.Greater(t, maxOffset(loud), maxOffset(quiet),
		"full-scale audio should deform the blob more than silence")
}

func TestDrawAt_SpeakerColors(t *testing.T) {
	cfg := DefaultConfig()
	v := New(cfg)
	buf := testBuffer(64)
	at := time.Unix(7, 0)

	ai := NewRecordingCanvas(100, 100)
	require.NoError(t, v.DrawAt(ai, buf, SpeakerAI, at))
	user := NewRecordingCanvas(100, 100)
	require.NoError(t, v.DrawAt(user, buf, SpeakerUser, at))

	require.Len(t, ai.Fills, 1)
	require.Len(t, user.Fills, 1)
	assert.Equal(t, cfg.AIColor, ai.Fills[0])
	assert.Equal(t, cfg.UserColor, user.Fills[0])
	assert.NotEqual(t, ai.Fills[0], user.Fills[0])
}

func TestDrawAt_EmptyBuffer(t *testing.T) {
	v := New(DefaultConfig())
	rc := NewRecordingCanvas(100, 100)

	err := v.DrawAt(rc, nil, SpeakerUser, time.Unix(1, 0))
	assert.ErrorIs(t, err, wave.ErrInvalidArgument)
	assert.Empty(t, rc.Ops, "a failed draw must not touch the surface")
}

func TestDrawAt_ShortBufferUpsampled(t *testing.T) {
	// Fewer samples than boundary points exercises the upsampling path.
	v := New(DefaultConfig())
	rc := NewRecordingCanvas(120, 80)

	err := v.DrawAt(rc, []float32{0.2, -0.6, 0.4}, SpeakerUser, time.Unix(3, 0))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Points+1, len(rc.Vertices))
}

func TestNew_ZeroConfigDefaults(t *testing.T) {
	v := New(Config{})
	rc := NewRecordingCanvas(64, 64)

	require.NoError(t, v.Draw(rc, testBuffer(32), SpeakerAI))
	assert.Equal(t, DefaultConfig().Points+1, len(rc.Vertices))
	require.Len(t, rc.Fills, 1)
	assert.Equal(t, DefaultConfig().AIColor, rc.Fills[0])
}
