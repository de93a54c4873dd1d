package document

import "testing"

func TestAddExperienceAssignsStableUniqueIDs(t *testing.T) {
	var r Resume
	first := r.AddExperience()
	second := r.AddExperience()

	if first == "" || second == "" || first == second {
		t.Fatalf("entry ids must be unique and non-empty: %q vs %q", first, second)
	}
	if len(r.Experience) != 2 {
		t.Fatalf("len = %d, want 2", len(r.Experience))
	}
	if r.Experience[0].ID != first || r.Experience[1].ID != second {
		t.Fatalf("entries out of order")
	}
}

func TestRemoveFirstKeepsSecondIntact(t *testing.T) {
	var r Resume
	first := r.AddExperience()
	second := r.AddExperience()
	r.UpdateExperience(second, "role", "Staff Engineer")
	r.UpdateExperience(second, "company", "Initech")

	r.RemoveExperience(first)

	if len(r.Experience) != 1 {
		t.Fatalf("len = %d, want 1", len(r.Experience))
	}
	got := r.Experience[0]
	if got.ID != second || got.Role != "Staff Engineer" || got.Company != "Initech" {
		t.Fatalf("surviving entry mutated: %+v", got)
	}
	if got.Duration != "Year – Year" || got.Description != "• Key achievement or responsibility" {
		t.Fatalf("untouched fields changed: %+v", got)
	}
}

func TestRemoveAbsentExperienceIsNoOp(t *testing.T) {
	var r Resume
	id := r.AddExperience()
	r.RemoveExperience("missing")
	if len(r.Experience) != 1 || r.Experience[0].ID != id {
		t.Fatalf("remove of absent id disturbed the list")
	}
}

func TestUpdateExperienceTouchesExactlyOneField(t *testing.T) {
	var r Resume
	a := r.AddExperience()
	b := r.AddExperience()

	r.UpdateExperience(a, "duration", "2020 – 2024")

	if r.Experience[0].Duration != "2020 – 2024" {
		t.Errorf("field not updated")
	}
	if r.Experience[0].Role != "Role Title" {
		t.Errorf("sibling field changed")
	}
	if r.Experience[1].Duration != "Year – Year" {
		t.Errorf("entry %s changed by update of %s", b, a)
	}
}

func TestUpdateExperienceUnknownIDIsNoOp(t *testing.T) {
	var r Resume
	r.AddExperience()
	before := r.Experience[0]

	r.UpdateExperience("missing", "role", "CEO")
	if r.Experience[0] != before {
		t.Fatalf("unknown id update mutated an entry")
	}
}

func TestEducationListOps(t *testing.T) {
	var r Resume
	first := r.AddEducation()
	second := r.AddEducation()

	r.UpdateEducation(first, "degree", "BSc Computer Science")
	r.UpdateEducation(first, "school", "MIT")
	r.RemoveEducation(second)

	if len(r.Education) != 1 {
		t.Fatalf("len = %d, want 1", len(r.Education))
	}
	if r.Education[0].Degree != "BSc Computer Science" || r.Education[0].School != "MIT" {
		t.Fatalf("unexpected entry: %+v", r.Education[0])
	}
}

func TestResumeSetField(t *testing.T) {
	r := DefaultResume()
	r.SetField("full_name", "GRACE HOPPER")
	r.SetField("email", "grace@navy.mil")
	r.SetField("unknown", "ignored")

	if r.FullName != "GRACE HOPPER" || r.Email != "grace@navy.mil" {
		t.Fatalf("fields not set: %+v", r)
	}
	if r.Location != "New York, USA" {
		t.Fatalf("unrelated field changed")
	}
}

func TestBusinessCardSetField(t *testing.T) {
	c := DefaultBusinessCard()
	c.SetField("company", "ACME CORP")
	c.SetField("website", "acme.example")

	if c.Company != "ACME CORP" || c.Website != "acme.example" {
		t.Fatalf("fields not set: %+v", c)
	}
	if c.FullName != "JANE DOE" {
		t.Fatalf("unrelated field changed")
	}
}

func TestDefaultResumeSeedsEntriesWithIDs(t *testing.T) {
	r := DefaultResume()
	if len(r.Experience) != 2 || len(r.Education) != 1 || len(r.Skills) != 5 {
		t.Fatalf("unexpected seed shape: %d experience, %d education, %d skills",
			len(r.Experience), len(r.Education), len(r.Skills))
	}
	if r.Experience[0].ID == "" || r.Experience[1].ID == "" || r.Experience[0].ID == r.Experience[1].ID {
		t.Fatalf("seed entries need unique ids")
	}
}
