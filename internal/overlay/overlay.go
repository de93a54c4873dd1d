// Package overlay holds the draggable text layers of an image editing
// session and the drag state machine that moves them.
package overlay

import (
	"github.com/google/uuid"

	"craftdeck/internal/geometry"
)

// Default attributes for a freshly added text layer.
const (
	DefaultText       = "Double click to edit"
	DefaultColor      = "#000000"
	DefaultFontSize   = 24
	DefaultFontFamily = "Inter"
)

// TextOverlay is one positioned, styled text layer drawn above the base
// image. Position is normalized percentages, each component in [0, 100].
type TextOverlay struct {
	ID         string  `json:"id"`
	Text       string  `json:"text"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Color      string  `json:"color"`
	FontSize   float64 `json:"font_size"`
	FontFamily string  `json:"font_family"`
}

// Position returns the overlay position as a normalized point.
func (o TextOverlay) Position() geometry.NormPoint {
	return geometry.NormPoint{X: o.X, Y: o.Y}
}

// Patch carries a partial overlay update. Nil fields are left untouched.
type Patch struct {
	Text       *string  `json:"text"`
	X          *float64 `json:"x"`
	Y          *float64 `json:"y"`
	Color      *string  `json:"color"`
	FontSize   *float64 `json:"font_size"`
	FontFamily *string  `json:"font_family"`
}

// Model is the ordered set of text overlays for one editor session, with
// at most one overlay selected at a time. It is not safe for concurrent
// use; the owning session serializes access.
type Model struct {
	overlays   []TextOverlay
	selectedID string
}

// NewModel returns an empty overlay model.
func NewModel() *Model {
	return &Model{}
}

// Add appends a new overlay with default content, position (50,50) and
// default style, selects it, and returns its id.
func (m *Model) Add() string {
	o := TextOverlay{
		ID:         uuid.NewString(),
		Text:       DefaultText,
		X:          50,
		Y:          50,
		Color:      DefaultColor,
		FontSize:   DefaultFontSize,
		FontFamily: DefaultFontFamily,
	}
	m.overlays = append(m.overlays, o)
	m.selectedID = o.ID
	return o.ID
}

// Remove deletes the overlay with the given id. Removing the selected
// overlay clears the selection. Unknown ids are ignored.
func (m *Model) Remove(id string) {
	kept := m.overlays[:0]
	for _, o := range m.overlays {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	m.overlays = kept
	if m.selectedID == id {
		m.selectedID = ""
	}
}

// Update merges the provided fields into the overlay with the given id.
// Position writes are clamped to [0, 100]. Updating an unknown id is a
// no-op, not an error.
func (m *Model) Update(id string, p Patch) {
	for i := range m.overlays {
		if m.overlays[i].ID != id {
			continue
		}
		o := &m.overlays[i]
		if p.Text != nil {
			o.Text = *p.Text
		}
		if p.X != nil || p.Y != nil {
			pos := o.Position()
			if p.X != nil {
				pos.X = *p.X
			}
			if p.Y != nil {
				pos.Y = *p.Y
			}
			pos = pos.Clamp()
			o.X, o.Y = pos.X, pos.Y
		}
		if p.Color != nil {
			o.Color = *p.Color
		}
		if p.FontSize != nil {
			o.FontSize = *p.FontSize
		}
		if p.FontFamily != nil {
			o.FontFamily = *p.FontFamily
		}
		return
	}
}

// Select marks the overlay with the given id as selected. An empty id or
// an unknown id clears the selection.
func (m *Model) Select(id string) {
	if id == "" {
		m.selectedID = ""
		return
	}
	if _, ok := m.Get(id); ok {
		m.selectedID = id
	} else {
		m.selectedID = ""
	}
}

// SelectedID returns the id of the selected overlay, or "".
func (m *Model) SelectedID() string {
	return m.selectedID
}

// Get returns the overlay with the given id.
func (m *Model) Get(id string) (TextOverlay, bool) {
	for _, o := range m.overlays {
		if o.ID == id {
			return o, true
		}
	}
	return TextOverlay{}, false
}

// List returns the overlays in insertion order. The slice is a copy;
// callers cannot mutate model state through it.
func (m *Model) List() []TextOverlay {
	out := make([]TextOverlay, len(m.overlays))
	copy(out, m.overlays)
	return out
}

// Len returns the number of overlays.
func (m *Model) Len() int {
	return len(m.overlays)
}

func (m *Model) setPosition(id string, pos geometry.NormPoint) {
	for i := range m.overlays {
		if m.overlays[i].ID == id {
			pos = pos.Clamp()
			m.overlays[i].X = pos.X
			m.overlays[i].Y = pos.Y
			return
		}
	}
}
