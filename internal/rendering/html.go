package rendering

import (
	"embed"
	"fmt"
	"html/template"
	"os"
	"strings"

	"github.com/andrewarz/resumeforge/internal/record"
)

//go:embed templates/resume.html.tmpl
var defaultTemplate embed.FS

// defaultTemplateName is the embedded template path.
const defaultTemplateName = "templates/resume.html.tmpl"

// TemplateData is the view model handed to the HTML template. Escaping
// is owned entirely by html/template; record fields are passed through
// verbatim.
type TemplateData struct {
	Name            string
	Contact         record.Contact
	LinkedInURL     string
	Summary         string
	Experience      []record.Job
	CertGroups      []Group
	Education       []record.Education
	SkillCategories []SkillCategory
	AwardGroups     []Group
}

// Group is a titled list of items: certifications under a provider, or
// awards under an organization.
type Group struct {
	Title string
	Items []string
}

// SkillCategory is one named skill bucket in document order.
type SkillCategory struct {
	Name   string
	Skills []string
}

// RenderHTML renders the resume as a complete HTML document. With an
// empty templatePath the embedded default template is used; otherwise
// the template is loaded from disk.
func RenderHTML(r *record.Resume, templatePath string) (string, error) {
	tmpl, err := loadTemplate(templatePath)
	if err != nil {
		return "", err
	}

	data := buildTemplateData(r)

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return "", &RenderError{
			Message: "failed to execute template",
			Cause:   err,
		}
	}
	return result.String(), nil
}

// loadTemplate parses either the embedded default or a template file
// from disk.
func loadTemplate(templatePath string) (*template.Template, error) {
	if templatePath == "" {
		tmpl, err := template.ParseFS(defaultTemplate, defaultTemplateName)
		if err != nil {
			return nil, &TemplateError{
				Message: "failed to parse embedded template",
				Cause:   err,
			}
		}
		return tmpl, nil
	}

	content, err := os.ReadFile(templatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &TemplateError{
				Message: fmt.Sprintf("template file not found: %s", templatePath),
				Cause:   err,
			}
		}
		return nil, &TemplateError{
			Message: fmt.Sprintf("failed to read template file: %s", templatePath),
			Cause:   err,
		}
	}

	tmpl, err := template.New("resume").Parse(string(content))
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse template",
			Cause:   err,
		}
	}
	return tmpl, nil
}

// buildTemplateData maps the record into the view model, grouping
// certifications and awards and flattening skills in document order.
func buildTemplateData(r *record.Resume) *TemplateData {
	data := &TemplateData{
		Name:        r.Name,
		Contact:     r.Contact,
		LinkedInURL: linkedInURL(r.Contact.LinkedIn),
		Summary:     r.Summary,
		Experience:  r.Experience,
		Education:   r.Education,
	}

	data.CertGroups = groupCertifications(r.Certifications)
	data.AwardGroups = groupAwards(r.HonorsAwards)

	if r.Skills != nil {
		for _, category := range r.Skills.Categories() {
			skills := r.Skills.Get(category)
			if len(skills) == 0 {
				continue
			}
			data.SkillCategories = append(data.SkillCategories, SkillCategory{
				Name:   category,
				Skills: skills,
			})
		}
	}

	return data
}

// groupCertifications buckets certifications by provider, preserving
// first-seen provider order.
func groupCertifications(certs []record.Certification) []Group {
	var groups []Group
	index := make(map[string]int)
	for _, cert := range certs {
		i, ok := index[cert.Provider]
		if !ok {
			i = len(groups)
			index[cert.Provider] = i
			groups = append(groups, Group{Title: cert.Provider})
		}
		groups[i].Items = append(groups[i].Items, cert.Certification)
	}
	return groups
}

// groupAwards buckets awards by organization, preserving first-seen
// organization order.
func groupAwards(awards []record.Award) []Group {
	var groups []Group
	index := make(map[string]int)
	for _, award := range awards {
		i, ok := index[award.Organization]
		if !ok {
			i = len(groups)
			index[award.Organization] = i
			groups = append(groups, Group{Title: award.Organization})
		}
		groups[i].Items = append(groups[i].Items, award.Award)
	}
	return groups
}

// linkedInURL normalizes a linkedin value into a clickable URL.
func linkedInURL(value string) string {
	if value == "" {
		return ""
	}
	if strings.HasPrefix(value, "http") {
		return value
	}
	return "https://" + value
}
