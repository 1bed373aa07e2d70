package tui

import (
	"sync"

	"piano-tutor/tutor"
)

// ViewState is the TUI's implementation of the highlighter's view
// capability. The highlighter writes from the scheduler side, the bubbletea
// model reads on render, so every access goes through the mutex.
type ViewState struct {
	mu sync.Mutex

	lowMidi  int
	highMidi int

	activeMidi   int // -1 when no key is active
	activeFinger tutor.Finger

	leftFinger  tutor.Finger // FingerNone when inactive
	rightFinger tutor.Finger

	info    tutor.NoteInfo
	hasInfo bool
}

// NewViewState creates a view covering the keyboard range [low, high].
func NewViewState(low, high int) *ViewState {
	return &ViewState{lowMidi: low, highMidi: high, activeMidi: -1}
}

func (v *ViewState) SetActiveKey(midi int, finger tutor.Finger) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if midi < v.lowMidi || midi > v.highMidi {
		return // outside the rendered keyboard
	}
	v.activeMidi = midi
	v.activeFinger = finger
}

func (v *ViewState) ClearActiveKey() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.activeMidi = -1
	v.activeFinger = tutor.FingerNone
}

func (v *ViewState) SetActiveFinger(hand tutor.Hand, finger tutor.Finger) {
	v.mu.Lock()
	defer v.mu.Unlock()
	switch hand {
	case tutor.HandLeft:
		v.leftFinger = finger
	case tutor.HandRight:
		v.rightFinger = finger
	}
}

func (v *ViewState) ClearActiveFingers() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.leftFinger = tutor.FingerNone
	v.rightFinger = tutor.FingerNone
}

func (v *ViewState) SetInfo(info tutor.NoteInfo) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.info = info
	v.hasInfo = true
}

// snapshot copies the highlight state for rendering.
func (v *ViewState) snapshot() viewSnapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return viewSnapshot{
		lowMidi:      v.lowMidi,
		highMidi:     v.highMidi,
		activeMidi:   v.activeMidi,
		activeFinger: v.activeFinger,
		leftFinger:   v.leftFinger,
		rightFinger:  v.rightFinger,
		info:         v.info,
		hasInfo:      v.hasInfo,
	}
}

type viewSnapshot struct {
	lowMidi      int
	highMidi     int
	activeMidi   int
	activeFinger tutor.Finger
	leftFinger   tutor.Finger
	rightFinger  tutor.Finger
	info         tutor.NoteInfo
	hasInfo      bool
}
