package tutor

import "testing"

// recordingView records highlighter calls for assertions.
type recordingView struct {
	activeMidi   int
	activeFinger Finger
	leftFinger   Finger
	rightFinger  Finger
	info         NoteInfo
	hasInfo      bool

	clearKeyCalls    int
	clearFingerCalls int
}

func newRecordingView() *recordingView {
	return &recordingView{activeMidi: -1}
}

func (v *recordingView) SetActiveKey(midi int, finger Finger) {
	v.activeMidi = midi
	v.activeFinger = finger
}

func (v *recordingView) ClearActiveKey() {
	v.activeMidi = -1
	v.activeFinger = FingerNone
	v.clearKeyCalls++
}

func (v *recordingView) SetActiveFinger(hand Hand, finger Finger) {
	if hand == HandLeft {
		v.leftFinger = finger
	} else {
		v.rightFinger = finger
	}
}

func (v *recordingView) ClearActiveFingers() {
	v.leftFinger = FingerNone
	v.rightFinger = FingerNone
	v.clearFingerCalls++
}

func (v *recordingView) SetInfo(info NoteInfo) {
	v.info = info
	v.hasInfo = true
}

func (v *recordingView) activeSet() [3]Finger {
	return [3]Finger{v.activeFinger, v.leftFinger, v.rightFinger}
}

func TestRenderIdempotent(t *testing.T) {
	view := newRecordingView()
	h := NewHighlighter(view)
	note := NoteEvent{PitchName: "E4", MidiNumber: 64, Hand: HandRight, Finger: FingerMiddle}

	h.Render(note)
	first := view.activeSet()
	firstMidi := view.activeMidi

	h.Render(note)
	if view.activeSet() != first || view.activeMidi != firstMidi {
		t.Errorf("second render changed the active set: %v vs %v", view.activeSet(), first)
	}
	if view.clearKeyCalls != 2 || view.clearFingerCalls != 2 {
		t.Errorf("render must clear before setting: key=%d finger=%d", view.clearKeyCalls, view.clearFingerCalls)
	}
}

func TestRenderSwitchesHands(t *testing.T) {
	view := newRecordingView()
	h := NewHighlighter(view)

	h.Render(NoteEvent{MidiNumber: 64, Hand: HandRight, Finger: FingerMiddle})
	h.Render(NoteEvent{MidiNumber: 48, Hand: HandLeft, Finger: FingerPinky})

	if view.rightFinger != FingerNone {
		t.Error("right hand still active after a left-hand note")
	}
	if view.leftFinger != FingerPinky {
		t.Errorf("left finger = %s, want pinky", view.leftFinger)
	}
	if view.activeMidi != 48 {
		t.Errorf("active key = %d, want 48", view.activeMidi)
	}
}

func TestRenderUpdatesInfo(t *testing.T) {
	view := newRecordingView()
	h := NewHighlighter(view)

	h.Render(NoteEvent{PitchName: "G4", MidiNumber: 67, OffsetSeconds: 2.5, Hand: HandRight, Finger: FingerRing})

	if !view.hasInfo {
		t.Fatal("info readout not updated")
	}
	want := NoteInfo{Pitch: "G4", Finger: FingerRing, Hand: HandRight, OffsetSeconds: 2.5}
	if view.info != want {
		t.Errorf("info = %+v, want %+v", view.info, want)
	}
}

func TestClearAll(t *testing.T) {
	view := newRecordingView()
	h := NewHighlighter(view)

	h.Render(NoteEvent{MidiNumber: 60, Hand: HandRight, Finger: FingerThumb})
	h.ClearAll()

	if view.activeMidi != -1 {
		t.Error("key highlight survived ClearAll")
	}
	if view.leftFinger != FingerNone || view.rightFinger != FingerNone {
		t.Error("finger highlight survived ClearAll")
	}
	// ClearAll leaves the readout alone; reset keeps showing the last note's
	// text with no active highlights.
	if !view.hasInfo {
		t.Error("ClearAll must not touch the info readout")
	}
}
