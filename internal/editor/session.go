// Package editor owns the live editing sessions: one session per opened
// template, holding the overlay model, drag controller, filter state and,
// for document categories, the structured document data. Sessions live in
// memory only and die with the process.
package editor

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"craftdeck/internal/document"
	"craftdeck/internal/geometry"
	"craftdeck/internal/imgfilter"
	"craftdeck/internal/overlay"
)

var (
	// ErrWrongVariant is returned when a document operation reaches an
	// image session or vice versa.
	ErrWrongVariant = errors.New("operation does not apply to this session's category")

	// ErrBusy is returned when an AI call or export is already in flight
	// for the session and the trigger is re-entered.
	ErrBusy = errors.New("operation already in progress")
)

// TemplateRef is the slice of catalog data a session needs: identity,
// category, the source image reference and its nominal output dimensions.
type TemplateRef struct {
	ID         uint     `json:"id"`
	Title      string   `json:"title"`
	Category   Category `json:"category"`
	ImageURL   string   `json:"image_url"`
	Dimensions string   `json:"dimensions"`
}

// Session is one live editor session. All state is owned exclusively by
// the session; a mutex serializes the cooperative event stream coming in
// over HTTP so drag updates apply in arrival order.
type Session struct {
	ID       string
	Template TemplateRef

	mu       sync.Mutex
	overlays *overlay.Model
	drag     *overlay.DragController
	filters  imgfilter.State

	resume *document.Resume
	card   *document.BusinessCard

	aiBusy     bool
	exportBusy bool
}

// NewSession opens a session against a template. Document categories get
// their default seed content; image categories start with no overlays and
// neutral filters.
func NewSession(tpl TemplateRef) *Session {
	s := &Session{
		ID:       uuid.NewString(),
		Template: tpl,
		overlays: overlay.NewModel(),
		filters:  imgfilter.Defaults(),
	}
	s.drag = overlay.NewDragController(s.overlays)

	switch tpl.Category {
	case CategoryResume:
		r := document.DefaultResume()
		s.resume = &r
	case CategoryBusinessCard:
		c := document.DefaultBusinessCard()
		s.card = &c
	case CategorySocialMedia, CategoryProfessionalPhoto:
		// image-only session, nothing extra to seed
	}
	return s
}

// --- overlay operations ---

// AddOverlay adds a default text layer and returns its id.
func (s *Session) AddOverlay() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.overlays.Add()
}

// RemoveOverlay removes the overlay; idempotent.
func (s *Session) RemoveOverlay(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overlays.Remove(id)
}

// UpdateOverlay merges a partial update into the overlay.
func (s *Session) UpdateOverlay(id string, p overlay.Patch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overlays.Update(id, p)
}

// SelectOverlay marks an overlay selected; empty id clears selection.
func (s *Session) SelectOverlay(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overlays.Select(id)
}

// Overlays returns a copy of the overlay list.
func (s *Session) Overlays() []overlay.TextOverlay {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.overlays.List()
}

// SelectedOverlayID returns the selected overlay id, or "".
func (s *Session) SelectedOverlayID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.overlays.SelectedID()
}

// --- drag operations ---

// BeginDrag starts a drag on an overlay; reports whether it started.
func (s *Session) BeginDrag(id string, pointer geometry.Point) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drag.Begin(id, pointer)
}

// MoveDrag applies a pointer move against the container's current bounds.
func (s *Session) MoveDrag(pointer geometry.Point, container geometry.Bounds) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drag.Move(pointer, container)
}

// EndDrag terminates any live drag; always safe.
func (s *Session) EndDrag() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drag.End()
}

// Dragging reports whether a drag session is live.
func (s *Session) Dragging() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drag.Dragging()
}

// --- filter operations ---

// SetFilters overwrites the filter state.
func (s *Session) SetFilters(f imgfilter.State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = f
}

// ResetFilters restores all four channels to defaults atomically.
func (s *Session) ResetFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.Reset()
}

// Filters returns the current filter state.
func (s *Session) Filters() imgfilter.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

// --- document operations ---

// WithResume runs fn against the session's resume data.
func (s *Session) WithResume(fn func(*document.Resume)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.resume == nil {
		return ErrWrongVariant
	}
	fn(s.resume)
	return nil
}

// WithCard runs fn against the session's business-card data.
func (s *Session) WithCard(fn func(*document.BusinessCard)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.card == nil {
		return ErrWrongVariant
	}
	fn(s.card)
	return nil
}

// ResumeData returns a copy of the resume data.
func (s *Session) ResumeData() (document.Resume, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.resume == nil {
		return document.Resume{}, ErrWrongVariant
	}
	r := *s.resume
	r.Skills = append([]string(nil), s.resume.Skills...)
	r.Experience = append([]document.Experience(nil), s.resume.Experience...)
	r.Education = append([]document.Education(nil), s.resume.Education...)
	return r, nil
}

// CardData returns a copy of the business-card data.
func (s *Session) CardData() (document.BusinessCard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.card == nil {
		return document.BusinessCard{}, ErrWrongVariant
	}
	return *s.card, nil
}

// --- in-flight guards ---

// BeginAI marks the AI collaborator call in flight; a second call while
// one is pending returns ErrBusy so the trigger stays disabled.
func (s *Session) BeginAI() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.aiBusy {
		return ErrBusy
	}
	s.aiBusy = true
	return nil
}

// EndAI clears the AI in-flight flag.
func (s *Session) EndAI() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.aiBusy = false
}

// BeginExport marks an export in flight; re-entrant invocation returns
// ErrBusy rather than racing two exports for the same artifact.
func (s *Session) BeginExport() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.exportBusy {
		return ErrBusy
	}
	s.exportBusy = true
	return nil
}

// EndExport clears the export in-flight flag.
func (s *Session) EndExport() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exportBusy = false
}

// ExportInFlight reports whether an export is pending.
func (s *Session) ExportInFlight() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.exportBusy
}
