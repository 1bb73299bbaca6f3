package audio

import (
	"bytes"
	"context"
	"encoding/binary"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordrobe/internal/models"
)

func newTTSServer(t *testing.T, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Query().Get("q") == "fail" {
			http.Error(w, "nope", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("mp3:" + r.URL.Query().Get("q") + ":" + r.URL.Query().Get("ttsspeed")))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSpeakCachesFile(t *testing.T) {
	var hits atomic.Int32
	srv := newTTSServer(t, &hits)
	dir := t.TempDir()
	tts := NewTTSService(dir, srv.URL, true)

	name, err := tts.Speak(context.Background(), "Hello", NormalRate)
	require.NoError(t, err)
	assert.Equal(t, FileName("Hello", NormalRate), name)

	again, err := tts.Speak(context.Background(), "Hello", NormalRate)
	require.NoError(t, err)
	assert.Equal(t, name, again)
	assert.Equal(t, int32(1), hits.Load())

	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, "mp3:Hello:", string(data))
}

func TestSpeakSlowRate(t *testing.T) {
	var hits atomic.Int32
	srv := newTTSServer(t, &hits)
	dir := t.TempDir()
	tts := NewTTSService(dir, srv.URL, true)

	name, err := tts.Speak(context.Background(), "Hello", 0.7)
	require.NoError(t, err)
	assert.NotEqual(t, FileName("Hello", NormalRate), name)

	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, "mp3:Hello:0.70", string(data))
}

func TestSpeakErrors(t *testing.T) {
	var hits atomic.Int32
	srv := newTTSServer(t, &hits)

	disabled := NewTTSService(t.TempDir(), srv.URL, false)
	_, err := disabled.Speak(context.Background(), "Hello", NormalRate)
	assert.ErrorIs(t, err, models.ErrSpeechUnsupported)

	tts := NewTTSService(t.TempDir(), srv.URL, true)
	_, err = tts.Speak(context.Background(), "  ", NormalRate)
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	_, err = tts.Speak(context.Background(), "fail", NormalRate)
	assert.Error(t, err)
	_, statErr := os.Stat(filepath.Join(tts.AudioDir(), FileName("fail", NormalRate)))
	assert.True(t, os.IsNotExist(statErr))
}

func TestFileNameNormalizesWhitespace(t *testing.T) {
	assert.Equal(t, FileName("I am  happy", 1), FileName(" I am happy ", 1))
	assert.NotEqual(t, FileName("I am happy", 1), FileName("I am sad", 1))
}

func TestPregenerateAndCleanup(t *testing.T) {
	var hits atomic.Int32
	srv := newTTSServer(t, &hits)
	dir := t.TempDir()
	tts := NewTTSService(dir, srv.URL, true)

	files, err := tts.Pregenerate(context.Background(), []string{"one", "two", "fail", "three"}, 2)
	require.NoError(t, err)
	assert.Len(t, files, 3)

	orphan := FileName("orphan", NormalRate)
	require.NoError(t, os.WriteFile(filepath.Join(dir, orphan), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.txt"), []byte("x"), 0o644))

	removed, err := tts.CleanupOrphans(files)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = os.Stat(filepath.Join(dir, "keep.txt"))
	assert.NoError(t, err)
	for name := range files {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err)
	}
}

func TestCleanupMissingDir(t *testing.T) {
	tts := NewTTSService(filepath.Join(t.TempDir(), "missing"), "", true)
	removed, err := tts.CleanupOrphans(nil)
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestWriteWAVHeader(t *testing.T) {
	samples := effectTones[CueClick].Samples()
	require.Len(t, samples, 2205)

	var buf bytes.Buffer
	require.NoError(t, WriteWAV(&buf, samples))
	data := buf.Bytes()

	require.Len(t, data, wavHeaderSize+len(samples)*2)
	assert.Equal(t, "RIFF", string(data[0:4]))
	assert.Equal(t, "WAVE", string(data[8:12]))
	assert.Equal(t, "data", string(data[36:40]))
	assert.Equal(t, uint32(36+len(samples)*2), binary.LittleEndian.Uint32(data[4:8]))
	assert.Equal(t, uint32(sampleRate), binary.LittleEndian.Uint32(data[24:28]))
	assert.Equal(t, uint16(16), binary.LittleEndian.Uint16(data[34:36]))
	assert.Equal(t, uint32(len(samples)*2), binary.LittleEndian.Uint32(data[40:44]))
}

func TestToneEnvelope(t *testing.T) {
	samples := effectTones[CueSuccess].Samples()
	assert.Zero(t, samples[0])

	var peak int16
	for _, s := range samples {
		if s > peak {
			peak = s
		}
	}
	assert.InDelta(t, 0.6*maxSample, float64(peak), 50)
}

func TestMelodyLength(t *testing.T) {
	// 7 beats at 120 bpm, halved
	assert.Len(t, MelodySamples(), 5*11025+22050)
}

func TestSoundManager(t *testing.T) {
	dir := t.TempDir()
	m := NewSoundManager(dir, "/static/audio/effects")

	_, err := m.ToggleMute("p1")
	assert.ErrorIs(t, err, ErrNotInitialized)
	assert.Empty(t, m.URL("p1", CueClick))

	require.NoError(t, m.Init())
	require.NoError(t, m.Init())
	for _, cue := range []Cue{CueClick, CueSuccess, CueFail, CuePop, CueBGM} {
		_, err := os.Stat(filepath.Join(dir, string(cue)+".wav"))
		require.NoError(t, err, cue)
	}

	assert.Equal(t, "/static/audio/effects/success.wav", m.URL("p1", CueSuccess))

	muted, err := m.ToggleMute("p1")
	require.NoError(t, err)
	assert.True(t, muted)
	assert.Empty(t, m.URL("p1", CueSuccess))
	assert.NotEmpty(t, m.URL("p2", CueSuccess))

	muted, err = m.ToggleMute("p1")
	require.NoError(t, err)
	assert.False(t, muted)

	m.ToggleMute("p1")
	m.Dispose()
	assert.False(t, m.Muted("p1"))
	assert.Empty(t, m.URL("p2", CueSuccess))
}
