// Package record defines the structured resume produced by the parser.
package record

// PlaceholderName is used when the input document has no name line.
const PlaceholderName = "Your Name"

// DefaultSkillCategory is the bucket used for skills that appear before
// any category header in the SKILLS section.
const DefaultSkillCategory = "General"

// Contact holds the contact details recovered from the top of the
// document. Empty fields were not found; they are omitted from JSON.
type Contact struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

// Job is a single position in the experience section.
type Job struct {
	Company     string   `json:"company"`
	Position    string   `json:"position"`
	Period      string   `json:"period"`
	Description []string `json:"description"`
}

// Education is a single entry in the education section. The current
// parser emits at most one entry holding the raw section text in Degree.
type Education struct {
	Institution string   `json:"institution"`
	Degree      string   `json:"degree"`
	Period      string   `json:"period"`
	Details     []string `json:"details"`
}

// Certification pairs a certification with the provider it was issued by.
type Certification struct {
	Provider      string `json:"provider"`
	Certification string `json:"certification"`
}

// Award pairs an award with the organization that granted it.
type Award struct {
	Organization string `json:"organization"`
	Award        string `json:"award"`
}

// Resume is the root aggregate assembled by a single parse pass. All
// child entities are owned exclusively by the record and are not
// modified after parsing completes.
type Resume struct {
	Name           string          `json:"name"`
	Contact        Contact         `json:"contact"`
	Summary        string          `json:"summary"`
	Experience     []Job           `json:"experience"`
	Education      []Education     `json:"education"`
	Skills         *Skills         `json:"skills"`
	Certifications []Certification `json:"certifications"`
	HonorsAwards   []Award         `json:"honors_awards"`
}

// New returns a Resume with every field at its documented default: a
// placeholder name, no contact details, and empty sections.
func New() *Resume {
	return &Resume{
		Name:           PlaceholderName,
		Experience:     []Job{},
		Education:      []Education{},
		Skills:         NewSkills(),
		Certifications: []Certification{},
		HonorsAwards:   []Award{},
	}
}
