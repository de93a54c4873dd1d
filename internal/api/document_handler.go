package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"craftdeck/internal/document"
	"craftdeck/internal/editor"
	"craftdeck/internal/pdf"
)

// DocumentHandler serves the structured-document operations for resume
// and business-card sessions.
type DocumentHandler struct {
	store *editor.Store
}

func NewDocumentHandler(store *editor.Store) *DocumentHandler {
	return &DocumentHandler{store: store}
}

type setFieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// SetField writes one top-level document field.
func (h *DocumentHandler) SetField(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req setFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	var err error
	switch session.Template.Category {
	case editor.CategoryResume:
		err = session.WithResume(func(r *document.Resume) {
			r.SetField(req.Field, req.Value)
		})
	case editor.CategoryBusinessCard:
		err = session.WithCard(func(card *document.BusinessCard) {
			card.SetField(req.Field, req.Value)
		})
	default:
		err = editor.ErrWrongVariant
	}
	if err != nil {
		Conflict(c, "session does not edit a document")
		return
	}

	c.JSON(http.StatusOK, sessionState(session))
}

// AddExperience appends a placeholder experience entry.
func (h *DocumentHandler) AddExperience(c *gin.Context) {
	h.addEntry(c, func(r *document.Resume) string { return r.AddExperience() })
}

// AddEducation appends a placeholder education entry.
func (h *DocumentHandler) AddEducation(c *gin.Context) {
	h.addEntry(c, func(r *document.Resume) string { return r.AddEducation() })
}

// RemoveExperience deletes an experience entry; unknown ids are a no-op.
func (h *DocumentHandler) RemoveExperience(c *gin.Context) {
	h.withResume(c, func(r *document.Resume) {
		r.RemoveExperience(c.Param("entryID"))
	})
}

// RemoveEducation deletes an education entry; unknown ids are a no-op.
func (h *DocumentHandler) RemoveEducation(c *gin.Context) {
	h.withResume(c, func(r *document.Resume) {
		r.RemoveEducation(c.Param("entryID"))
	})
}

// UpdateExperience writes one field of one experience entry.
func (h *DocumentHandler) UpdateExperience(c *gin.Context) {
	var req setFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	h.withResume(c, func(r *document.Resume) {
		r.UpdateExperience(c.Param("entryID"), req.Field, req.Value)
	})
}

// UpdateEducation writes one field of one education entry.
func (h *DocumentHandler) UpdateEducation(c *gin.Context) {
	var req setFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	h.withResume(c, func(r *document.Resume) {
		r.UpdateEducation(c.Param("entryID"), req.Field, req.Value)
	})
}

// PrintDocument returns the document's print HTML so clients can hand it
// straight to the browser's print dialog.
func (h *DocumentHandler) PrintDocument(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var (
		html string
		err  error
	)
	switch session.Template.Category {
	case editor.CategoryResume:
		var resume document.Resume
		if resume, err = session.ResumeData(); err == nil {
			html, err = pdf.ResumeHTML(&resume)
		}
	case editor.CategoryBusinessCard:
		var card document.BusinessCard
		if card, err = session.CardData(); err == nil {
			html, err = pdf.CardHTML(&card)
		}
	default:
		err = editor.ErrWrongVariant
	}
	if err != nil {
		if errors.Is(err, editor.ErrWrongVariant) {
			Conflict(c, "session does not edit a document")
			return
		}
		Internal(c, "failed to render print layout")
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (h *DocumentHandler) addEntry(c *gin.Context, add func(*document.Resume) string) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var entryID string
	if err := session.WithResume(func(r *document.Resume) {
		entryID = add(r)
	}); err != nil {
		Conflict(c, "session does not edit a resume")
		return
	}

	state := sessionState(session)
	state["entry_id"] = entryID
	c.JSON(http.StatusCreated, state)
}

func (h *DocumentHandler) withResume(c *gin.Context, fn func(*document.Resume)) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	if err := session.WithResume(fn); err != nil {
		Conflict(c, "session does not edit a resume")
		return
	}

	c.JSON(http.StatusOK, sessionState(session))
}

func (h *DocumentHandler) session(c *gin.Context) (*editor.Session, bool) {
	session, err := h.store.Get(c.Param("id"))
	if err != nil {
		NotFound(c, "session not found")
		return nil, false
	}
	return session, true
}
