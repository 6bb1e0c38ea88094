package session

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/penwyp/go-emotilog/internal/core/model"
	"github.com/penwyp/go-emotilog/internal/core/store"
	"github.com/penwyp/go-emotilog/internal/presentation/interaction"
	"github.com/penwyp/go-emotilog/internal/presentation/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingDisplay captures every render instead of drawing
type recordingDisplay struct {
	mu      sync.Mutex
	entered int
	exited  int
	states  []model.InteractionState
	views   []layout.View
}

func (d *recordingDisplay) EnterAlternateScreen() { d.entered++ }
func (d *recordingDisplay) ExitAlternateScreen()  { d.exited++ }

func (d *recordingDisplay) Render(view layout.View, state model.InteractionState, now time.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.views = append(d.views, view)
	d.states = append(d.states, state)
}

func (d *recordingDisplay) last() (layout.View, model.InteractionState) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.views[len(d.views)-1], d.states[len(d.states)-1]
}

// chanInput feeds scripted key events
type chanInput struct {
	events chan interaction.KeyEvent
	closed bool
}

func (c *chanInput) Events() <-chan interaction.KeyEvent { return c.events }
func (c *chanInput) Close() error {
	c.closed = true
	return nil
}

func newTestOrchestrator(t *testing.T, opts ...Option) (*Orchestrator, *store.Store, *recordingDisplay) {
	t.Helper()
	base := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	tick := 0
	s := store.New(
		store.WithLocation(time.UTC),
		store.WithClock(func() time.Time {
			tick++
			return base.Add(time.Duration(tick) * time.Second)
		}),
	)
	d := &recordingDisplay{}
	o, err := NewOrchestrator(&Config{Timezone: "UTC", Width: 60}, s, append([]Option{WithDisplay(d)}, opts...)...)
	require.NoError(t, err)
	return o, s, d
}

func TestHandleKeyLogsEmotions(t *testing.T) {
	o, s, _ := newTestOrchestrator(t)

	assert.False(t, o.HandleKey(interaction.Char('1')))
	assert.False(t, o.HandleKey(interaction.Char('2')))
	assert.False(t, o.HandleKey(interaction.Char('1')))

	logs := s.Logs()
	require.Len(t, logs, 3)
	assert.Equal(t, []string{"Happy", "Sad", "Happy"}, []string{logs[0].Emotion, logs[1].Emotion, logs[2].Emotion})
	assert.Equal(t, "Happy logged!", o.State().StatusMessage)
	assert.Equal(t, logs[2].RecordedAt, o.State().StatusAt)
	assert.Equal(t, model.ScreenMain, o.State().Screen)

	emotion, ok := s.MostFrequentEmotion()
	require.True(t, ok)
	assert.Equal(t, "Happy", emotion)
}

func TestHandleKeyEveryCatalogueKey(t *testing.T) {
	o, s, _ := newTestOrchestrator(t)
	for _, key := range "123456789" {
		o.HandleKey(interaction.Char(key))
	}

	want := []string{"Happy", "Sad", "Angry", "Excited", "Crying", "Dead", "Loved", "Tired", "Sick"}
	got := make([]string, 0, len(want))
	for _, e := range s.Logs() {
		got = append(got, e.Emotion)
	}
	assert.Equal(t, want, got)
}

func TestHandleKeyNavigation(t *testing.T) {
	o, s, _ := newTestOrchestrator(t)

	tests := []struct {
		name     string
		event    interaction.KeyEvent
		screen   model.Screen
		showHelp bool
	}{
		{"logs", interaction.Char('l'), model.ScreenLogs, false},
		{"help over logs", interaction.Char('h'), model.ScreenLogs, true},
		{"escape closes help", interaction.KeyEvent{Key: interaction.Escape, Type: interaction.KeyEscape}, model.ScreenLogs, false},
		{"summary", interaction.Char('S'), model.ScreenSummary, false},
		{"help", interaction.Char('h'), model.ScreenSummary, true},
		{"summary closes help", interaction.Char('s'), model.ScreenSummary, false},
		{"back", interaction.Char('b'), model.ScreenMain, false},
		{"escape on main stays", interaction.KeyEvent{Key: interaction.Escape, Type: interaction.KeyEscape}, model.ScreenMain, false},
		{"unknown key ignored", interaction.Char('z'), model.ScreenMain, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, o.HandleKey(tt.event))
			state := o.State()
			assert.Equal(t, tt.screen, state.Screen)
			assert.Equal(t, tt.showHelp, state.ShowHelp)
		})
	}
	assert.Zero(t, s.TotalLogCount())
}

func TestHandleKeyQuit(t *testing.T) {
	o, _, _ := newTestOrchestrator(t)
	assert.True(t, o.HandleKey(interaction.Char('q')))
	assert.True(t, o.HandleKey(interaction.Char('Q')))
	assert.True(t, o.HandleKey(interaction.Char(interaction.CtrlC)))
}

func TestViewReflectsStore(t *testing.T) {
	o, _, _ := newTestOrchestrator(t)
	o.HandleKey(interaction.Char('8'))
	o.HandleKey(interaction.Char('7'))

	view := o.View()
	require.Len(t, view.Logs, 2)
	assert.Equal(t, "Loved", view.Logs[0].Emotion)
	assert.Equal(t, 2, view.Report.Overall.Total)
	assert.Equal(t, 2, view.Report.Daily.Total)
	assert.Equal(t, time.UTC, view.Location)
	assert.Equal(t, 60, view.Width)
}

func TestRunUntilQuit(t *testing.T) {
	input := &chanInput{events: make(chan interaction.KeyEvent, 4)}
	o, s, d := newTestOrchestrator(t, WithInput(input))

	input.events <- interaction.Char('1')
	input.events <- interaction.Char('s')
	input.events <- interaction.Char('q')

	require.NoError(t, o.Run(context.Background()))

	assert.Equal(t, 1, s.TotalLogCount())
	assert.Equal(t, 1, d.entered)
	assert.Equal(t, 1, d.exited)
	assert.True(t, input.closed)

	// Initial draw plus one per non-quit key.
	require.Len(t, d.states, 3)
	_, state := d.last()
	assert.Equal(t, model.ScreenSummary, state.Screen)
}

func TestRunEndsWhenInputCloses(t *testing.T) {
	o, s, _ := newTestOrchestrator(t, WithInput(interaction.NewKeyboardReaderFrom(strings.NewReader("12l"))))

	require.NoError(t, o.Run(context.Background()))
	assert.Equal(t, 2, s.TotalLogCount())
	assert.Equal(t, model.ScreenLogs, o.State().Screen)
}

func TestRunStopsOnCancel(t *testing.T) {
	input := &chanInput{events: make(chan interaction.KeyEvent)}
	o, _, d := newTestOrchestrator(t, WithInput(input))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, o.Run(ctx))
	assert.Equal(t, 1, d.exited)
}
