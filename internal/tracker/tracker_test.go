package tracker

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"testing/synctest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer is a bytes.Buffer safe for the tracker goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) lines(t *testing.T) []map[string]any {
	t.Helper()
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(b.buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		out = append(out, rec)
	}
	return out
}

func TestTrack_WritesStructuredRecord(t *testing.T) {
	var buf syncBuffer
	tr := New(slog.New(slog.NewJSONHandler(&buf, nil)), 0)

	assert.True(t, tr.Track(PDFInteraction, map[string]any{"pdf": "docs/guide.pdf", "action": "download"}))
	tr.Close()

	recs := buf.lines(t)
	require.Len(t, recs, 1)
	rec := recs[0]
	assert.Equal(t, "event tracked", rec["msg"])
	assert.Equal(t, PDFInteraction, rec["event"])
	assert.Equal(t, map[string]any{"pdf": "docs/guide.pdf", "action": "download"}, rec["data"])

	_, err := uuid.Parse(rec["event_id"].(string))
	assert.NoError(t, err)
}

func TestTrack_PreservesOrder(t *testing.T) {
	var buf syncBuffer
	tr := New(slog.New(slog.NewJSONHandler(&buf, nil)), 0)

	tr.Track(AudioPlay, map[string]any{"media": "podcast"})
	tr.Track(VideoPlay, map[string]any{"media": "main_video"})
	tr.Track(AudioPlay, nil)
	tr.Close()

	recs := buf.lines(t)
	require.Len(t, recs, 3)
	assert.Equal(t, AudioPlay, recs[0]["event"])
	assert.Equal(t, VideoPlay, recs[1]["event"])
	assert.NotContains(t, recs[2], "data")
	assert.NotEqual(t, recs[0]["event_id"], recs[2]["event_id"])
}

func TestTrack_CopiesData(t *testing.T) {
	var buf syncBuffer
	tr := New(slog.New(slog.NewJSONHandler(&buf, nil)), 0)

	data := map[string]any{"media": "podcast"}
	tr.Track(AudioPlay, data)
	data["media"] = "changed"
	tr.Close()

	assert.Equal(t, map[string]any{"media": "podcast"}, buf.lines(t)[0]["data"])
}

// blockingHandler holds every record until release is closed.
type blockingHandler struct {
	release chan struct{}
	mu      sync.Mutex
	count   int
}

func (h *blockingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *blockingHandler) Handle(context.Context, slog.Record) error {
	<-h.release
	h.mu.Lock()
	h.count++
	h.mu.Unlock()
	return nil
}

func (h *blockingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *blockingHandler) WithGroup(string) slog.Handler      { return h }

func TestTrack_DropsWhenQueueFull(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		h := &blockingHandler{release: make(chan struct{})}
		tr := New(slog.New(h), 1)

		assert.True(t, tr.Track(AudioPlay, nil))
		synctest.Wait() // first event is now held by the handler
		assert.True(t, tr.Track(AudioPlay, nil))
		assert.False(t, tr.Track(AudioPlay, nil))
		assert.Equal(t, int64(1), tr.Dropped())

		close(h.release)
		tr.Close()
		assert.Equal(t, 2, h.count)
	})
}

func TestTrack_AfterCloseIsDropped(t *testing.T) {
	tr := New(nil, 0)
	tr.Close()

	assert.False(t, tr.Track(AudioPlay, nil))
	assert.Equal(t, int64(1), tr.Dropped())

	tr.Close()
}
