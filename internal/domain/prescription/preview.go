package prescription

import "strings"

// Preview renders a human-readable, one-line-per-medication summary and
// returns it with the number of lines. Blank medication fields are skipped;
// per-line notes are appended after an em-style separator.
func Preview(meds []Medication) (string, int) {
	lines := make([]string, 0, len(meds))
	for _, m := range meds {
		name := strings.TrimSpace(m.Name)
		if name == "" {
			name = "Medicine"
		}
		parts := []string{name}
		for _, p := range []string{m.Dose, m.Route, m.Frequency, m.Duration} {
			if v := strings.TrimSpace(p); v != "" {
				parts = append(parts, v)
			}
		}
		line := strings.Join(parts, ", ")
		if notes := strings.TrimSpace(m.Notes); notes != "" {
			line += " — " + notes
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), len(lines)
}
