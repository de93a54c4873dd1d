package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"craftdeck/internal/catalog"
	"craftdeck/internal/editor"
	"craftdeck/internal/geometry"
	"craftdeck/internal/imgfilter"
	"craftdeck/internal/overlay"
)

// SessionHandler owns editor session lifecycle and the interactive
// operations: overlays, selection, dragging and filters.
type SessionHandler struct {
	store   *editor.Store
	catalog *catalog.Provider
}

func NewSessionHandler(store *editor.Store, provider *catalog.Provider) *SessionHandler {
	return &SessionHandler{store: store, catalog: provider}
}

type openSessionRequest struct {
	TemplateID uint `json:"template_id" binding:"required"`
}

type pointerPayload struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type boundsPayload struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (b boundsPayload) bounds() geometry.Bounds {
	return geometry.Bounds{Width: b.Width, Height: b.Height}
}

func (p pointerPayload) point() geometry.Point {
	return geometry.Point{X: p.X, Y: p.Y}
}

// sessionState is the full session snapshot returned by mutating
// operations so clients can re-render without a follow-up read.
func sessionState(s *editor.Session) gin.H {
	filters := s.Filters()
	state := gin.H{
		"session_id":          s.ID,
		"template":            s.Template,
		"category":            s.Template.Category,
		"overlays":            s.Overlays(),
		"selected_overlay_id": s.SelectedOverlayID(),
		"filters":             filters,
		"filter_css":          filters.CSS(),
		"dragging":            s.Dragging(),
	}

	if resume, err := s.ResumeData(); err == nil {
		state["resume"] = resume
	}
	if card, err := s.CardData(); err == nil {
		state["business_card"] = card
	}
	return state
}

// OpenSession opens an editor session against a catalog template.
func (h *SessionHandler) OpenSession(c *gin.Context) {
	var req openSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	item, err := h.catalog.Get(c.Request.Context(), req.TemplateID)
	if err != nil {
		if errors.Is(err, catalog.ErrTemplateNotFound) {
			NotFound(c, "template not found")
			return
		}
		Internal(c, "failed to load template")
		return
	}

	ref, err := item.Ref()
	if err != nil {
		Internal(c, "template has an invalid category")
		return
	}

	session := h.store.Open(ref)
	c.JSON(http.StatusCreated, sessionState(session))
}

// GetSession returns the current session snapshot.
func (h *SessionHandler) GetSession(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, sessionState(session))
}

// CloseSession destroys the session and all of its state.
func (h *SessionHandler) CloseSession(c *gin.Context) {
	h.store.Close(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// AddOverlay adds a default text overlay and selects it.
func (h *SessionHandler) AddOverlay(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	id := session.AddOverlay()
	state := sessionState(session)
	state["overlay_id"] = id
	c.JSON(http.StatusCreated, state)
}

// UpdateOverlay merges a partial update into one overlay. Unknown ids
// are a no-op, mirroring the model semantics.
func (h *SessionHandler) UpdateOverlay(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var patch overlay.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		BadRequest(c, err.Error())
		return
	}

	session.UpdateOverlay(c.Param("overlayID"), patch)
	c.JSON(http.StatusOK, sessionState(session))
}

// RemoveOverlay deletes one overlay; idempotent.
func (h *SessionHandler) RemoveOverlay(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	session.RemoveOverlay(c.Param("overlayID"))
	c.JSON(http.StatusOK, sessionState(session))
}

type selectionRequest struct {
	OverlayID string `json:"overlay_id"`
}

// SetSelection marks an overlay selected; an empty id clears selection.
func (h *SessionHandler) SetSelection(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req selectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	session.SelectOverlay(req.OverlayID)
	c.JSON(http.StatusOK, sessionState(session))
}

type beginDragRequest struct {
	OverlayID string         `json:"overlay_id" binding:"required"`
	Pointer   pointerPayload `json:"pointer"`
}

// BeginDrag starts a drag on an overlay. A begin while another drag is
// live is ignored; the response reports which drag is actually running.
func (h *SessionHandler) BeginDrag(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req beginDragRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	started := session.BeginDrag(req.OverlayID, req.Pointer.point())
	state := sessionState(session)
	state["drag_started"] = started
	c.JSON(http.StatusOK, state)
}

type moveDragRequest struct {
	Pointer   pointerPayload `json:"pointer"`
	Container boundsPayload  `json:"container" binding:"required"`
}

// MoveDrag applies a pointer move against the container's current bounds.
func (h *SessionHandler) MoveDrag(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req moveDragRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	session.MoveDrag(req.Pointer.point(), req.Container.bounds())
	c.JSON(http.StatusOK, sessionState(session))
}

// EndDrag terminates any live drag; safe to call in any state.
func (h *SessionHandler) EndDrag(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	session.EndDrag()
	c.JSON(http.StatusOK, sessionState(session))
}

// SetFilters overwrites the filter state with the submitted values.
func (h *SessionHandler) SetFilters(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var state imgfilter.State
	if err := c.ShouldBindJSON(&state); err != nil {
		BadRequest(c, err.Error())
		return
	}

	session.SetFilters(state)
	c.JSON(http.StatusOK, sessionState(session))
}

// ResetFilters restores all filter channels to their defaults at once.
func (h *SessionHandler) ResetFilters(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	session.ResetFilters()
	c.JSON(http.StatusOK, sessionState(session))
}

func (h *SessionHandler) session(c *gin.Context) (*editor.Session, bool) {
	session, err := h.store.Get(c.Param("id"))
	if err != nil {
		NotFound(c, "session not found")
		return nil, false
	}
	return session, true
}
