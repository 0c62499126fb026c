package record

import (
	"bytes"
	"encoding/json"
)

// Skills maps category names to ordered skill lists while preserving the
// order in which categories first appeared in the document. A plain Go
// map would lose that order, and the renderer emits categories in
// document order.
type Skills struct {
	order   []string
	buckets map[string][]string
}

// NewSkills returns an empty skill set.
func NewSkills() *Skills {
	return &Skills{buckets: make(map[string][]string)}
}

// Ensure creates an empty bucket for category if one does not exist.
// Existing buckets are left untouched; a skill list is never cleared.
func (s *Skills) Ensure(category string) {
	if _, ok := s.buckets[category]; ok {
		return
	}
	s.order = append(s.order, category)
	s.buckets[category] = []string{}
}

// Append adds skills to the named category, creating it if needed.
func (s *Skills) Append(category string, skills ...string) {
	s.Ensure(category)
	s.buckets[category] = append(s.buckets[category], skills...)
}

// Categories returns category names in first-seen order.
func (s *Skills) Categories() []string {
	return s.order
}

// Get returns the skill list for a category, or nil if absent.
func (s *Skills) Get(category string) []string {
	return s.buckets[category]
}

// Len returns the number of categories.
func (s *Skills) Len() int {
	return len(s.order)
}

// Map returns a plain map view of the skill set.
func (s *Skills) Map() map[string][]string {
	m := make(map[string][]string, len(s.buckets))
	for k, v := range s.buckets {
		m[k] = v
	}
	return m
}

// MarshalJSON emits a JSON object with categories in first-seen order.
func (s *Skills) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, category := range s.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(category)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(s.buckets[category])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON rebuilds the skill set from a JSON object. Category
// order follows the order of keys in the input.
func (s *Skills) UnmarshalJSON(data []byte) error {
	s.order = nil
	s.buckets = make(map[string][]string)

	dec := json.NewDecoder(bytes.NewReader(data))
	// Opening brace
	if _, err := dec.Token(); err != nil {
		return err
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		category := tok.(string)
		var skills []string
		if err := dec.Decode(&skills); err != nil {
			return err
		}
		s.Ensure(category)
		s.buckets[category] = append(s.buckets[category], skills...)
	}
	// Closing brace
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
