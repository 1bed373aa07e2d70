package tutor

import (
	"fmt"
	"sync"
	"time"

	"piano-tutor/debug"
)

// PlayState is the scheduler's coarse state.
type PlayState int

const (
	StateIdle PlayState = iota
	StatePlaying
	StateCompleted
)

func (s PlayState) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateCompleted:
		return "completed"
	default:
		return "idle"
	}
}

// minAdvance floors every computed inter-note delay so playback stays
// perceptible at high speed and near-simultaneous (or malformed,
// out-of-order) offsets never schedule a negative or zero wait.
const minAdvance = 100 * time.Millisecond

// Speed multiplier bounds exposed by the UI.
const (
	MinSpeed = 0.1
	MaxSpeed = 2.0
)

// Player drives the cursor through a loaded sequence in real time. One
// mutex guards all state; at most one scheduled advance is armed at any
// moment, generation-stamped so a stale timer firing after pause/reset/load
// is a no-op instead of resurrecting a superseded session.
type Player struct {
	mu          sync.Mutex
	clock       Clock
	highlighter *Highlighter

	seq          *Sequence
	cursor       int
	playing      bool
	speed        float64
	visibleHands Hand

	timer Timer
	gen   uint64

	progress Progress
	status   string

	// UpdateChan notifies the UI that the snapshot changed.
	UpdateChan chan struct{}
}

// Snapshot is a consistent read of the player for rendering.
type Snapshot struct {
	State        PlayState
	Cursor       int
	Length       int
	Speed        float64
	VisibleHands Hand
	Progress     Progress
	Status       string
}

// NewPlayer creates a player with an empty sequence.
func NewPlayer(clock Clock, highlighter *Highlighter) *Player {
	return &Player{
		clock:        clock,
		highlighter:  highlighter,
		seq:          NewSequence(nil),
		speed:        1.0,
		visibleHands: HandBoth,
		UpdateChan:   make(chan struct{}, 1),
	}
}

// Load replaces the sequence, cancels any pending advance and rewinds.
func (p *Player) Load(notes []NoteEvent) {
	p.mu.Lock()
	p.invalidateLocked()
	p.playing = false
	p.seq = NewSequence(notes)
	p.cursor = 0
	p.progress = ComputeProgress(0, p.seq.Len())
	p.highlighter.ClearAll()
	p.status = fmt.Sprintf("loaded %d notes", p.seq.Len())
	debug.Log("player", "load: %d notes", p.seq.Len())
	p.mu.Unlock()
	p.notify()
}

// Play starts (or resumes) playback from the cursor. An empty sequence is
// rejected with a warning; a completed sequence is a no-op until Reset.
func (p *Player) Play() {
	p.mu.Lock()
	if p.seq.Len() == 0 {
		p.status = "nothing to play - load a piece first"
		debug.Log("player", "play rejected: empty sequence")
		p.mu.Unlock()
		p.notify()
		return
	}
	if p.playing || p.cursor >= p.seq.Len() {
		p.mu.Unlock()
		return
	}
	p.playing = true
	p.status = ""
	note, _ := p.seq.At(p.cursor)
	p.highlighter.Render(note)
	p.progress = ComputeProgress(p.cursor, p.seq.Len())
	p.armLocked(p.delayLocked(p.cursor))
	debug.Log("player", "play: cursor=%d len=%d speed=%.2f", p.cursor, p.seq.Len(), p.speed)
	p.mu.Unlock()
	p.notify()
}

// Pause stops playback and cancels the pending advance. Idempotent.
func (p *Player) Pause() {
	p.mu.Lock()
	if !p.playing {
		p.mu.Unlock()
		return
	}
	p.playing = false
	p.invalidateLocked()
	debug.Log("player", "pause: cursor=%d", p.cursor)
	p.mu.Unlock()
	p.notify()
}

// TogglePlay pauses when playing, plays otherwise.
func (p *Player) TogglePlay() {
	p.mu.Lock()
	playing := p.playing
	p.mu.Unlock()
	if playing {
		p.Pause()
	} else {
		p.Play()
	}
}

// Reset pauses, rewinds to the start and clears all highlights.
func (p *Player) Reset() {
	p.mu.Lock()
	p.playing = false
	p.invalidateLocked()
	p.cursor = 0
	p.progress = ComputeProgress(0, p.seq.Len())
	p.highlighter.ClearAll()
	p.status = ""
	debug.Log("player", "reset")
	p.mu.Unlock()
	p.notify()
}

// StepForward advances the cursor by one while paused and displays the note
// just passed. The cursor ends up one past the displayed note; this matches
// StepBack's opposite convention on purpose.
func (p *Player) StepForward() {
	p.mu.Lock()
	if p.playing || p.cursor >= p.seq.Len() {
		p.mu.Unlock()
		return
	}
	note, _ := p.seq.At(p.cursor)
	p.cursor++
	p.highlighter.Render(note)
	p.progress = ComputeProgress(p.cursor, p.seq.Len())
	p.mu.Unlock()
	p.notify()
}

// StepBack moves the cursor back by one while paused and displays the note
// stepped onto.
func (p *Player) StepBack() {
	p.mu.Lock()
	if p.playing || p.cursor <= 0 {
		p.mu.Unlock()
		return
	}
	p.cursor--
	note, _ := p.seq.At(p.cursor)
	p.highlighter.Render(note)
	p.progress = ComputeProgress(p.cursor, p.seq.Len())
	p.mu.Unlock()
	p.notify()
}

// SetSpeed updates the multiplier used by subsequent delay computations.
// An already-armed advance keeps its original wait.
func (p *Player) SetSpeed(multiplier float64) {
	p.mu.Lock()
	if multiplier < MinSpeed {
		multiplier = MinSpeed
	}
	if multiplier > MaxSpeed {
		multiplier = MaxSpeed
	}
	p.speed = multiplier
	p.mu.Unlock()
	p.notify()
}

// SetVisibleHands sets the rendering filter. Cursor logic is unaffected.
func (p *Player) SetVisibleHands(h Hand) {
	p.mu.Lock()
	p.visibleHands = h
	p.mu.Unlock()
	p.notify()
}

// Snapshot returns a consistent copy of the player state.
func (p *Player) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Snapshot{
		State:        p.stateLocked(),
		Cursor:       p.cursor,
		Length:       p.seq.Len(),
		Speed:        p.speed,
		VisibleHands: p.visibleHands,
		Progress:     p.progress,
		Status:       p.status,
	}
}

func (p *Player) stateLocked() PlayState {
	switch {
	case p.playing:
		return StatePlaying
	case p.seq.Len() > 0 && p.cursor >= p.seq.Len():
		return StateCompleted
	default:
		return StateIdle
	}
}

// tick is the scheduled advance. It runs once per arming; a mismatched
// generation means pause/reset/load invalidated this timer after it was
// armed but before it fired.
func (p *Player) tick(gen uint64) {
	p.mu.Lock()
	if gen != p.gen || !p.playing {
		p.mu.Unlock()
		return
	}
	p.timer = nil
	p.cursor++
	if p.cursor >= p.seq.Len() {
		p.playing = false
		p.progress = ComputeProgress(p.cursor, p.seq.Len())
		p.status = "piece complete"
		debug.Log("player", "completed: %d notes", p.seq.Len())
		p.mu.Unlock()
		p.notify()
		return
	}
	note, _ := p.seq.At(p.cursor)
	p.highlighter.Render(note)
	p.progress = ComputeProgress(p.cursor, p.seq.Len())
	p.armLocked(p.delayLocked(p.cursor))
	p.mu.Unlock()
	p.notify()
}

// delayLocked computes the wait after the note at index i: the gap to the
// next note, or the note's own hold time when it is the last. Scaled by the
// speed multiplier and floored at minAdvance.
func (p *Player) delayLocked(i int) time.Duration {
	cur, err := p.seq.At(i)
	if err != nil {
		return minAdvance
	}
	var secs float64
	if next, err := p.seq.At(i + 1); err == nil {
		secs = next.OffsetSeconds - cur.OffsetSeconds
	} else {
		secs = cur.DurationSeconds
	}
	d := time.Duration(secs / p.speed * float64(time.Second))
	if d < minAdvance {
		d = minAdvance
	}
	return d
}

// armLocked schedules the single outstanding advance. Callers must have
// invalidated or consumed any previous timer.
func (p *Player) armLocked(d time.Duration) {
	gen := p.gen
	p.timer = p.clock.AfterFunc(d, func() { p.tick(gen) })
}

// invalidateLocked cancels the pending advance and bumps the generation so
// an already-fired-but-unserviced callback detects staleness.
func (p *Player) invalidateLocked() {
	p.gen++
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
}

func (p *Player) notify() {
	select {
	case p.UpdateChan <- struct{}{}:
	default:
	}
}
