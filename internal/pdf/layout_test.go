package pdf

import (
	"strings"
	"testing"

	"craftdeck/internal/document"
)

func TestResumeHTMLIncludesDocumentContent(t *testing.T) {
	r := document.DefaultResume()
	r.SetField("full_name", "Taylor Reed")
	id := r.AddExperience()
	r.UpdateExperience(id, "role", "Platform Engineer")
	r.UpdateExperience(id, "company", "Northwind")

	html, err := ResumeHTML(&r)
	if err != nil {
		t.Fatalf("ResumeHTML: %v", err)
	}

	for _, want := range []string{"Taylor Reed", "Platform Engineer", "Northwind", "794px"} {
		if !strings.Contains(html, want) {
			t.Errorf("resume layout missing %q", want)
		}
	}
}

func TestResumeHTMLEscapesMarkup(t *testing.T) {
	r := document.DefaultResume()
	r.SetField("summary", `<script>alert("x")</script>`)

	html, err := ResumeHTML(&r)
	if err != nil {
		t.Fatalf("ResumeHTML: %v", err)
	}
	if strings.Contains(html, "<script>alert") {
		t.Fatal("summary markup was not escaped")
	}
}

func TestCardHTMLIncludesDocumentContent(t *testing.T) {
	c := document.DefaultBusinessCard()
	c.SetField("full_name", "Sam Ortiz")
	c.SetField("company", "Acme Studio")

	html, err := CardHTML(&c)
	if err != nil {
		t.Fatalf("CardHTML: %v", err)
	}

	for _, want := range []string{"Sam Ortiz", "Acme Studio", "336px", "192px"} {
		if !strings.Contains(html, want) {
			t.Errorf("card layout missing %q", want)
		}
	}
}
