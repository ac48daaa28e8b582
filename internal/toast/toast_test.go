package toast

import (
	"testing"
	"testing/synctest"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/showcase/internal/notify"
)

// runCmd executes cmd in the background, unpacking batches, and forwards
// every produced message to out.
func runCmd(cmd tea.Cmd, out chan<- tea.Msg) {
	if cmd == nil {
		return
	}
	go func() {
		msg := cmd()
		if batch, ok := msg.(tea.BatchMsg); ok {
			for _, c := range batch {
				runCmd(c, out)
			}
			return
		}
		if msg != nil {
			out <- msg
		}
	}()
}

type phaseChange struct {
	at    time.Duration
	phase Phase
}

func TestShow_Lifecycle(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		start := time.Now()
		s := NewStack(nil, nil)
		out := make(chan tea.Msg, 8)

		id, cmd := s.Show("Saved", Success)
		runCmd(cmd, out)

		got, ok := s.Get(id)
		require.True(t, ok)
		assert.Equal(t, Entering, got.Phase)

		var changes []phaseChange
		var removedAt time.Duration
		for s.Len() > 0 {
			msg := <-out
			next, handled := s.Update(msg)
			require.True(t, handled)
			runCmd(next, out)
			if tt, ok := s.Get(id); ok {
				changes = append(changes, phaseChange{time.Since(start), tt.Phase})
			} else {
				removedAt = time.Since(start)
			}
		}

		assert.Equal(t, []phaseChange{
			{100 * time.Millisecond, Visible},
			{3000 * time.Millisecond, Leaving},
		}, changes)
		assert.Equal(t, 3300*time.Millisecond, removedAt)
	})
}

func TestShow_RemovedAfter3400ms(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		s := NewStack(nil, nil)
		out := make(chan tea.Msg, 8)
		done := make(chan struct{})

		_, cmd := s.Show("Error loading audio. Please try again later.", Error)
		runCmd(cmd, out)

		go func() {
			defer close(done)
			for s.Len() > 0 {
				next, _ := s.Update(<-out)
				runCmd(next, out)
			}
		}()

		time.Sleep(3400 * time.Millisecond)
		synctest.Wait()
		<-done
		assert.Equal(t, 0, s.Len())
	})
}

func TestShow_StacksIndependently(t *testing.T) {
	s := NewStack(nil, nil)

	id1, _ := s.Show("same", Info)
	id2, _ := s.Show("same", Info)

	assert.NotEqual(t, id1, id2)
	assert.Equal(t, 2, s.Len())

	_, _ = s.Update(PhaseMsg{ID: id1, Phase: Leaving})
	_, _ = s.Update(RemoveMsg{ID: id1})

	toasts := s.Toasts()
	require.Len(t, toasts, 1)
	assert.Equal(t, id2, toasts[0].ID)
}

func TestUpdate_LeavingSchedulesRemoval(t *testing.T) {
	s := NewStack(nil, nil)
	id, _ := s.Show("bye", Info)

	cmd, handled := s.Update(PhaseMsg{ID: id, Phase: Leaving})

	assert.True(t, handled)
	assert.NotNil(t, cmd)
}

func TestUpdate_LateVisibleKeepsLeaving(t *testing.T) {
	s := NewStack(nil, nil)
	id, _ := s.Show("bye", Info)
	_, _ = s.Update(PhaseMsg{ID: id, Phase: Leaving})

	_, _ = s.Update(PhaseMsg{ID: id, Phase: Visible})

	got, _ := s.Get(id)
	assert.Equal(t, Leaving, got.Phase)
}

func TestUpdate_UnknownIDsIgnored(t *testing.T) {
	s := NewStack(nil, nil)

	cmd, handled := s.Update(PhaseMsg{ID: 42, Phase: Leaving})
	assert.True(t, handled)
	assert.Nil(t, cmd)

	_, handled = s.Update(RemoveMsg{ID: 42})
	assert.True(t, handled)

	_, handled = s.Update(tea.KeyMsg{})
	assert.False(t, handled)
}

func TestShow_ErrorsMirroredToDesktop(t *testing.T) {
	rec := &notify.Recorder{}
	s := NewStack(rec, nil)

	s.Show("Saved", Success)
	s.Show("Error loading video. Please try again later.", Error)

	sent := rec.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "Error loading video. Please try again later.", sent[0].Body)
	assert.Equal(t, notify.UrgencyCritical, sent[0].Urgency)
	assert.True(t, sent[0].Transient)
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 40, Offset(Toast{Phase: Entering}, 40))
	assert.Equal(t, 0, Offset(Toast{Phase: Visible}, 40))
	assert.Equal(t, 40, Offset(Toast{Phase: Leaving}, 40))
}
