// Package document holds the structured field data behind the two
// form-backed layouts: resumes and business cards. All setters are total
// over the current state; field contents are free-form text and never
// validated here.
package document

import "github.com/google/uuid"

// Experience is one work-history entry. The id is stable for the entry's
// lifetime so siblings can be added and removed independently.
type Experience struct {
	ID          string `json:"id"`
	Role        string `json:"role"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// Education is one education entry.
type Education struct {
	ID     string `json:"id"`
	Degree string `json:"degree"`
	School string `json:"school"`
	Year   string `json:"year"`
}

// Resume is the structured data behind the resume layout. Experience and
// Education order is significant and preserved on mutation.
type Resume struct {
	FullName   string       `json:"full_name"`
	Location   string       `json:"location"`
	Email      string       `json:"email"`
	Phone      string       `json:"phone"`
	LinkedIn   string       `json:"linkedin"`
	Website    string       `json:"website"`
	Summary    string       `json:"summary"`
	Skills     []string     `json:"skills"`
	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`
}

// BusinessCard is the flat contact/brand data behind the card layout.
type BusinessCard struct {
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	Company  string `json:"company"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Website  string `json:"website"`
	Location string `json:"location"`
}

// AddExperience appends a placeholder entry and returns its id.
func (r *Resume) AddExperience() string {
	e := Experience{
		ID:          uuid.NewString(),
		Role:        "Role Title",
		Company:     "Company Name",
		Duration:    "Year – Year",
		Description: "• Key achievement or responsibility",
	}
	r.Experience = append(r.Experience, e)
	return e.ID
}

// RemoveExperience filters the entry with the given id out of the list.
// Absent ids are ignored; sibling entries and their order are untouched.
func (r *Resume) RemoveExperience(id string) {
	kept := r.Experience[:0]
	for _, e := range r.Experience {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	r.Experience = kept
}

// UpdateExperience sets exactly one field of exactly one entry, identified
// by id. Unknown ids and unknown field names are no-ops.
func (r *Resume) UpdateExperience(id, field, value string) {
	for i := range r.Experience {
		if r.Experience[i].ID != id {
			continue
		}
		switch field {
		case "role":
			r.Experience[i].Role = value
		case "company":
			r.Experience[i].Company = value
		case "duration":
			r.Experience[i].Duration = value
		case "description":
			r.Experience[i].Description = value
		}
		return
	}
}

// AddEducation appends a placeholder entry and returns its id.
func (r *Resume) AddEducation() string {
	e := Education{
		ID:     uuid.NewString(),
		Degree: "Degree",
		School: "School Name",
		Year:   "Year – Year",
	}
	r.Education = append(r.Education, e)
	return e.ID
}

// RemoveEducation filters the entry with the given id out of the list.
func (r *Resume) RemoveEducation(id string) {
	kept := r.Education[:0]
	for _, e := range r.Education {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	r.Education = kept
}

// UpdateEducation sets exactly one field of exactly one entry.
func (r *Resume) UpdateEducation(id, field, value string) {
	for i := range r.Education {
		if r.Education[i].ID != id {
			continue
		}
		switch field {
		case "degree":
			r.Education[i].Degree = value
		case "school":
			r.Education[i].School = value
		case "year":
			r.Education[i].Year = value
		}
		return
	}
}

// SetField sets one scalar resume field by name. Unknown names are no-ops.
func (r *Resume) SetField(field, value string) {
	switch field {
	case "full_name":
		r.FullName = value
	case "location":
		r.Location = value
	case "email":
		r.Email = value
	case "phone":
		r.Phone = value
	case "linkedin":
		r.LinkedIn = value
	case "website":
		r.Website = value
	case "summary":
		r.Summary = value
	}
}

// SetField sets one card field by name. Unknown names are no-ops.
func (c *BusinessCard) SetField(field, value string) {
	switch field {
	case "full_name":
		c.FullName = value
	case "role":
		c.Role = value
	case "company":
		c.Company = value
	case "email":
		c.Email = value
	case "phone":
		c.Phone = value
	case "website":
		c.Website = value
	case "location":
		c.Location = value
	}
}
