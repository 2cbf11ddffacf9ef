package emr

import (
	"errors"
	"regexp"
	"strings"
)

// ErrEmptyTranscript reports a transcript that is blank after trimming.
var ErrEmptyTranscript = errors.New("transcript is empty")

const summaryLimit = 500

// Note holds the sections extracted from a visit transcript. Sections that
// were not found are omitted from the JSON form; Summary is always present.
type Note struct {
	ChiefComplaint          string `json:"chief_complaint,omitempty"`
	HistoryOfPresentIllness string `json:"history_of_present_illness,omitempty"`
	ReviewOfSystems         string `json:"review_of_systems,omitempty"`
	PhysicalExam            string `json:"physical_exam,omitempty"`
	Assessment              string `json:"assessment,omitempty"`
	Plan                    string `json:"plan,omitempty"`
	Summary                 string `json:"summary"`
}

// labelRe recognizes a section label immediately followed by a colon or
// dash. "cc" is the accepted abbreviation for chief complaint.
var labelRe = regexp.MustCompile(`(?i)\b(chief complaint|cc|hpi|ros|exam|assessment|plan)[:-]\s*`)

// ExtractNote scans free transcript text for labeled clinical sections.
// Each section captures the text between its label and the next label (or
// end of text). This is deterministic pattern matching, not inference; the
// style hint is accepted for forward compatibility but not interpreted.
func ExtractNote(transcript, style string) (*Note, error) {
	_ = style

	text := strings.TrimSpace(transcript)
	if text == "" {
		return nil, ErrEmptyTranscript
	}

	note := &Note{Summary: truncateRunes(text, summaryLimit)}

	matches := labelRe.FindAllStringSubmatchIndex(text, -1)
	for i, m := range matches {
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		label := strings.ToLower(text[m[2]:m[3]])
		section := strings.TrimSpace(text[m[1]:end])
		if section == "" {
			continue
		}
		switch label {
		case "chief complaint", "cc":
			if note.ChiefComplaint == "" {
				note.ChiefComplaint = section
			}
		case "hpi":
			if note.HistoryOfPresentIllness == "" {
				note.HistoryOfPresentIllness = section
			}
		case "ros":
			if note.ReviewOfSystems == "" {
				note.ReviewOfSystems = section
			}
		case "exam":
			if note.PhysicalExam == "" {
				note.PhysicalExam = section
			}
		case "assessment":
			if note.Assessment == "" {
				note.Assessment = section
			}
		case "plan":
			if note.Plan == "" {
				note.Plan = section
			}
		}
	}

	return note, nil
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
