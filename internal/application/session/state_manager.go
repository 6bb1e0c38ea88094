package session

import (
	"sync"
	"time"

	"github.com/penwyp/go-emotilog/internal/core/model"
)

// StateManager manages interaction state in a thread-safe manner
type StateManager struct {
	mu sync.RWMutex

	interactionState model.InteractionState
}

// NewStateManager creates a StateManager showing the main screen
func NewStateManager() *StateManager {
	return &StateManager{
		interactionState: model.InteractionState{Screen: model.ScreenMain},
	}
}

// GetInteractionState returns current interaction state
func (sm *StateManager) GetInteractionState() model.InteractionState {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.interactionState
}

// UpdateInteractionState updates specific fields of interaction state
func (sm *StateManager) UpdateInteractionState(updateFunc func(*model.InteractionState)) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	updateFunc(&sm.interactionState)
}

// ShowScreen switches screens and closes the help overlay
func (sm *StateManager) ShowScreen(screen model.Screen) {
	sm.UpdateInteractionState(func(s *model.InteractionState) {
		s.Screen = screen
		s.ShowHelp = false
	})
}

// SetStatus sets the transient status message
func (sm *StateManager) SetStatus(message string, at time.Time) {
	sm.UpdateInteractionState(func(s *model.InteractionState) {
		s.StatusMessage = message
		s.StatusAt = at
	})
}
