package overlay

import (
	"testing"
)

func TestAddUsesDefaultsAndSelects(t *testing.T) {
	m := NewModel()
	id := m.Add()

	o, ok := m.Get(id)
	if !ok {
		t.Fatalf("added overlay not found")
	}
	if o.Text != DefaultText {
		t.Errorf("text = %q, want %q", o.Text, DefaultText)
	}
	if o.X != 50 || o.Y != 50 {
		t.Errorf("position = (%v,%v), want (50,50)", o.X, o.Y)
	}
	if o.Color != DefaultColor || o.FontSize != DefaultFontSize || o.FontFamily != DefaultFontFamily {
		t.Errorf("unexpected default style: %+v", o)
	}
	if m.SelectedID() != id {
		t.Errorf("selected = %q, want %q", m.SelectedID(), id)
	}
}

func TestIDsAreUnique(t *testing.T) {
	m := NewModel()
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id := m.Add()
		if seen[id] {
			t.Fatalf("duplicate overlay id %q", id)
		}
		seen[id] = true
	}
}

func TestRemoveClearsSelection(t *testing.T) {
	m := NewModel()
	first := m.Add()
	second := m.Add()

	m.Remove(second)
	if m.SelectedID() != "" {
		t.Errorf("removing selected overlay should clear selection, got %q", m.SelectedID())
	}

	m.Select(first)
	m.Remove(first)
	if m.Len() != 0 {
		t.Errorf("len = %d, want 0", m.Len())
	}
	if m.SelectedID() != "" {
		t.Errorf("selection should be empty after removing selected overlay")
	}
}

func TestRemoveKeepsOtherSelection(t *testing.T) {
	m := NewModel()
	first := m.Add()
	second := m.Add()
	m.Select(second)

	m.Remove(first)
	if m.SelectedID() != second {
		t.Errorf("removing an unselected overlay must not disturb selection")
	}
}

func TestUpdateMergesOnlyProvidedFields(t *testing.T) {
	m := NewModel()
	id := m.Add()

	text := "Hello"
	size := 36.0
	m.Update(id, Patch{Text: &text, FontSize: &size})

	o, _ := m.Get(id)
	if o.Text != "Hello" || o.FontSize != 36 {
		t.Errorf("patched fields not applied: %+v", o)
	}
	if o.Color != DefaultColor || o.X != 50 || o.Y != 50 {
		t.Errorf("untouched fields changed: %+v", o)
	}
}

func TestUpdateClampsPosition(t *testing.T) {
	m := NewModel()
	id := m.Add()

	x, y := 150.0, -20.0
	m.Update(id, Patch{X: &x, Y: &y})

	o, _ := m.Get(id)
	if o.X != 100 || o.Y != 0 {
		t.Errorf("position = (%v,%v), want (100,0)", o.X, o.Y)
	}
}

func TestRemoveThenUpdateIsNoOp(t *testing.T) {
	m := NewModel()
	id := m.Add()
	m.Remove(id)

	text := "ghost"
	m.Update(id, Patch{Text: &text})

	if m.Len() != 0 {
		t.Fatalf("update after remove must not resurrect the overlay")
	}
	if _, ok := m.Get(id); ok {
		t.Fatalf("removed overlay should stay gone")
	}
}

func TestSelectUnknownClears(t *testing.T) {
	m := NewModel()
	m.Add()
	m.Select("nope")
	if m.SelectedID() != "" {
		t.Errorf("selecting an unknown id should clear selection")
	}
}

func TestListPreservesOrderAndIsACopy(t *testing.T) {
	m := NewModel()
	a := m.Add()
	b := m.Add()
	c := m.Add()

	list := m.List()
	if len(list) != 3 || list[0].ID != a || list[1].ID != b || list[2].ID != c {
		t.Fatalf("list order broken: %+v", list)
	}

	list[0].Text = "mutated"
	o, _ := m.Get(a)
	if o.Text == "mutated" {
		t.Fatalf("List must return a copy")
	}
}
