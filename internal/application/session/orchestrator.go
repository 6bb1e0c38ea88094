package session

import (
	"context"
	"fmt"
	"os"
	"time"
	"unicode"

	"github.com/penwyp/go-emotilog/internal/core/constants"
	"github.com/penwyp/go-emotilog/internal/core/model"
	"github.com/penwyp/go-emotilog/internal/data/aggregator"
	"github.com/penwyp/go-emotilog/internal/presentation/display"
	"github.com/penwyp/go-emotilog/internal/presentation/interaction"
	"github.com/penwyp/go-emotilog/internal/presentation/layout"
	"github.com/penwyp/go-emotilog/internal/util"
)

// Orchestrator coordinates the store, keyboard and display for the interactive session
type Orchestrator struct {
	config *Config

	// Core components
	store        LogStore
	aggregator   *aggregator.Aggregator
	stateManager *StateManager

	// UI components
	display DisplayController
	input   InputHandler
}

// Option customizes an Orchestrator
type Option func(*Orchestrator)

// WithDisplay replaces the terminal display
func WithDisplay(d DisplayController) Option {
	return func(o *Orchestrator) {
		o.display = d
	}
}

// WithInput replaces the raw-mode stdin keyboard reader
func WithInput(input InputHandler) Option {
	return func(o *Orchestrator) {
		o.input = input
	}
}

// NewOrchestrator creates a new Orchestrator instance
func NewOrchestrator(config *Config, store LogStore, opts ...Option) (*Orchestrator, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	o := &Orchestrator{
		config:       config,
		store:        store,
		aggregator:   aggregator.NewWithRecent(store, config.RecentCount),
		stateManager: NewStateManager(),
	}
	for _, opt := range opts {
		opt(o)
	}

	if o.display == nil {
		o.display = display.NewTerminalDisplay(os.Stdout, &display.DisplayConfig{
			Width:     config.Width,
			MaxRows:   config.MaxRows,
			StatusTTL: config.StatusTTL,
		})
	}
	return o, nil
}

// State returns the current interaction state
func (o *Orchestrator) State() model.InteractionState {
	return o.stateManager.GetInteractionState()
}

// Run starts the orchestrator main loop. It returns when the user quits,
// the input ends or ctx is cancelled.
func (o *Orchestrator) Run(ctx context.Context) error {
	util.LogInfo("Starting emotilog session", util.F("timezone", o.store.Location().String()))

	if o.input == nil {
		keyboard, err := interaction.NewKeyboardReader()
		if err != nil {
			return fmt.Errorf("failed to initialize keyboard: %w", err)
		}
		o.input = keyboard
	}
	defer func() {
		if err := o.input.Close(); err != nil {
			util.LogWarnf("Failed to restore terminal: %v", err)
		}
	}()

	o.display.EnterAlternateScreen()
	defer o.display.ExitAlternateScreen()

	// The ticker only expires status messages; every key press redraws immediately.
	uiTicker := time.NewTicker(o.config.RefreshInterval)
	defer uiTicker.Stop()

	o.updateDisplay()

	for {
		select {
		case <-ctx.Done():
			util.LogInfo("Shutting down emotilog session...")
			return nil

		case <-uiTicker.C:
			if o.State().StatusMessage != "" {
				o.updateDisplay()
			}

		case keyEvent, ok := <-o.input.Events():
			if !ok {
				util.LogInfo("Input closed, ending session")
				return nil
			}
			if o.HandleKey(keyEvent) {
				util.LogInfo("Quit requested", util.F("logs", o.store.TotalLogCount()))
				return nil
			}
			o.updateDisplay()
		}
	}
}

// HandleKey applies one key press and reports whether the session should end
func (o *Orchestrator) HandleKey(event interaction.KeyEvent) bool {
	switch event.Type {
	case interaction.KeyEscape:
		o.back()
		return false
	case interaction.KeyChar:
	default:
		return false
	}

	if event.Key == interaction.CtrlC {
		return true
	}

	if emotion, ok := constants.LookupByKey(event.Key); ok {
		o.logEmotion(emotion.Label)
		return false
	}

	switch unicode.ToLower(event.Key) {
	case 'q':
		return true
	case 'l':
		o.stateManager.ShowScreen(model.ScreenLogs)
	case 's':
		o.stateManager.ShowScreen(model.ScreenSummary)
	case 'b':
		o.back()
	case 'h':
		o.stateManager.UpdateInteractionState(func(s *model.InteractionState) {
			s.ShowHelp = !s.ShowHelp
		})
	}
	return false
}

// back closes help if open, otherwise returns to the emotion grid
func (o *Orchestrator) back() {
	o.stateManager.UpdateInteractionState(func(s *model.InteractionState) {
		if s.ShowHelp {
			s.ShowHelp = false
			return
		}
		s.Screen = model.ScreenMain
	})
}

func (o *Orchestrator) logEmotion(label string) {
	entry := o.store.AddLog(label)
	o.stateManager.SetStatus(label+" logged!", entry.RecordedAt)
	util.LogDebug("Emotion logged from keyboard", util.F("emotion", label), util.F("id", entry.ID))
}

// View builds the data for the current screen
func (o *Orchestrator) View() layout.View {
	return layout.View{
		Width:    o.config.Width,
		MaxRows:  o.config.MaxRows,
		Location: o.store.Location(),
		Logs:     o.store.LogsSortedByTime(),
		Report:   o.aggregator.Today(),
	}
}

// updateDisplay updates the terminal display
func (o *Orchestrator) updateDisplay() {
	o.display.Render(o.View(), o.State(), o.store.Now())
}
