package compositor

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"shopshopapi/models"

	"github.com/google/uuid"
)

// SnapshotLayout is the serializable visual state a rasterizer needs. It is
// what gets persisted into a render job, the worker never touches the live
// session.
type SnapshotLayout struct {
	CanvasWidth  float64            `json:"canvas_width"`
	CanvasHeight float64            `json:"canvas_height"`
	Background   BackgroundTemplate `json:"background"`
	Elements     []TextElement      `json:"elements"`
}

// Session is one open-to-close lifecycle of the card editor. It owns the
// text element layout, the background selection including session-scoped
// custom uploads, and the drag state. Everything in it is discarded on
// close, there is no draft saving.
//
// The editor model is single-threaded and cooperative, the mutex only exists
// because HTTP handlers run on separate goroutines: each event still runs to
// completion before the next.
type Session struct {
	ID          string
	Language    models.Language
	Description string

	mu           sync.Mutex
	customs      []BackgroundTemplate
	current      BackgroundTemplate
	layout       *layout
	drag         *dragState
	lastCustomID int64
}

func newSession(description string, lang models.Language) *Session {
	s := &Session{
		ID:          uuid.NewString(),
		Language:    lang.Normalize(),
		Description: description,
		layout:      newLayout(),
		current:     builtinBackgrounds[0],
	}
	s.layout.seed(description, s.current.TextColor)
	return s
}

// Reset re-seeds the session for a new description: default background, one
// default element, no drag. Prior edits are intentionally lost.
func (s *Session) Reset(description string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Description = description
	s.current = builtinBackgrounds[0]
	s.layout.seed(description, s.current.TextColor)
	s.drag = nil
}

// Backgrounds lists built-ins in fixed order followed by customs in upload
// order.
func (s *Session) Backgrounds() []BackgroundTemplate {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := BuiltinBackgrounds()
	return append(all, s.customs...)
}

func (s *Session) SelectedBackground() BackgroundTemplate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *Session) findBackground(id string) (BackgroundTemplate, bool) {
	for _, t := range builtinBackgrounds {
		if t.ID == id {
			return t, true
		}
	}
	for _, t := range s.customs {
		if t.ID == id {
			return t, true
		}
	}
	return BackgroundTemplate{}, false
}

// SelectBackground switches the backdrop and cascades the template's
// recommended text color onto every element, dropping per-element overrides.
func (s *Session) SelectBackground(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	template, ok := s.findBackground(id)
	if !ok {
		return fmt.Errorf("unknown background template %q", id)
	}
	s.current = template
	s.layout.recolorAll(template.TextColor)
	return nil
}

// UploadBackground registers a custom background from raw image bytes and
// auto-selects it. Only image payloads are accepted.
func (s *Session) UploadBackground(imageData []byte) (BackgroundTemplate, error) {
	if len(imageData) == 0 {
		return BackgroundTemplate{}, fmt.Errorf("empty background upload")
	}
	mimeType := http.DetectContentType(imageData)
	if !strings.HasPrefix(mimeType, "image/") {
		return BackgroundTemplate{}, fmt.Errorf("unsupported background file type: %s", mimeType)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// time-based id, bumped so two uploads in the same millisecond stay unique
	id := time.Now().UnixMilli()
	if id <= s.lastCustomID {
		id = s.lastCustomID + 1
	}
	s.lastCustomID = id
	template := newCustomBackground(imageData, id)
	s.customs = append(s.customs, template)
	s.current = template
	s.layout.recolorAll(template.TextColor)
	return template, nil
}

// DeleteBackground removes a custom background. Deleting the selected one
// falls back to the first built-in, built-ins themselves cannot be deleted.
func (s *Session) DeleteBackground(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.customs[:0]
	removed := false
	for _, t := range s.customs {
		if t.ID == id {
			removed = true
			continue
		}
		kept = append(kept, t)
	}
	s.customs = kept
	if removed && s.current.ID == id {
		s.current = builtinBackgrounds[0]
		s.layout.recolorAll(s.current.TextColor)
	}
}

func (s *Session) AddElement() TextElement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.layout.add(s.Language, s.current.TextColor)
}

func (s *Session) RemoveElement(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.layout.remove(id)
	if s.drag != nil && s.drag.elementID == id && s.layout.get(id) == nil {
		s.drag = nil
	}
}

func (s *Session) UpdateElement(id string, patch TextElementPatch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.layout.update(id, patch)
}

func (s *Session) SelectElement(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.layout.selectElement(id)
}

func (s *Session) Elements() []TextElement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.layout.snapshot()
}

func (s *Session) SelectedElementID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.layout.selectedID
}

// PointerDown enters (or retargets) the Dragging state.
func (s *Session) PointerDown(elementID string, ev PointerEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if drag := s.layout.pointerDown(elementID, ev); drag != nil {
		s.drag = drag
	}
}

// PointerMove updates the dragged element position, clamped to the canvas.
// A move without a preceding down is ignored.
func (s *Session) PointerMove(ev PointerEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.layout.pointerMove(s.drag, ev)
}

// PointerUp ends the drag, the last computed position stands.
func (s *Session) PointerUp() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drag = nil
}

// PointerLeave behaves like PointerUp: leaving the canvas ends the drag.
func (s *Session) PointerLeave() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drag = nil
}

func (s *Session) Dragging() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drag != nil
}

// SnapshotLayout captures the current visual state for rasterization.
func (s *Session) SnapshotLayout() SnapshotLayout {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SnapshotLayout{
		CanvasWidth:  CanvasWidth,
		CanvasHeight: CanvasHeight,
		Background:   s.current,
		Elements:     s.layout.snapshot(),
	}
}

func (s *Session) SnapshotLayoutJSON() (string, error) {
	data, err := json.Marshal(s.SnapshotLayout())
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// SessionManager enforces the single-session policy: opening a new editor
// session discards the previous one with all its in-memory state.
type SessionManager struct {
	mu     sync.Mutex
	active *Session
}

func NewSessionManager() *SessionManager {
	return &SessionManager{}
}

// Open starts a fresh session seeded from the composed description. Any
// previously open session is closed.
func (m *SessionManager) Open(description string, lang models.Language) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.active = newSession(description, lang)
	return m.active
}

func (m *SessionManager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active == nil || m.active.ID != id {
		return nil, false
	}
	return m.active, true
}

// Close drops the session and everything in it. Closing an already closed or
// unknown session is a no-op.
func (m *SessionManager) Close(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active != nil && m.active.ID == id {
		m.active = nil
	}
}
