// File: services/voice/extractor.go
package voice

import (
	"regexp"
	"strings"

	"harithakarmabhoomi/models"
)

// ExtractedFields holds whatever booking details could be picked out of a
// spoken transcript. Empty fields were not mentioned.
type ExtractedFields struct {
	WasteType string `json:"wasteType"`
	Weight    string `json:"weight"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Location  string `json:"location"`
}

// Complete reports whether enough was extracted to book a pickup.
func (f ExtractedFields) Complete() bool {
	return f.WasteType != "" && f.Date != ""
}

var wasteKeywords = []models.WasteType{
	models.WastePlastic,
	models.WasteMetal,
	models.WasteGlass,
	models.WastePaper,
	models.WasteOrganic,
}

var (
	weightRe   = regexp.MustCompile(`(\d+)\s*(kg|kilos|kilogram)`)
	dateRe     = regexp.MustCompile(`(today|tomorrow|monday|tuesday|wednesday|thursday|friday|saturday|sunday)`)
	timeRe     = regexp.MustCompile(`(\d+)\s*(am|pm|morning|afternoon|evening)`)
	locationRe = regexp.MustCompile(`at\s+([a-zA-Z\s]+)`)
)

// Extract runs the keyword rules over a transcript. This is deliberately
// a best-effort matcher, not an NLP pipeline; partial matches are fine.
func Extract(transcript string) ExtractedFields {
	lower := strings.ToLower(transcript)
	var f ExtractedFields

	for _, wt := range wasteKeywords {
		if strings.Contains(lower, string(wt)) {
			f.WasteType = string(wt)
			break
		}
	}
	if m := weightRe.FindStringSubmatch(lower); m != nil {
		f.Weight = m[1] + " kg"
	}
	if m := dateRe.FindStringSubmatch(lower); m != nil {
		f.Date = m[1]
	}
	if m := timeRe.FindStringSubmatch(lower); m != nil {
		f.Time = m[1] + " " + m[2]
	}
	if m := locationRe.FindStringSubmatch(lower); m != nil {
		f.Location = strings.TrimSpace(m[1])
	}
	return f
}

// Merge overlays newly extracted fields onto previously gathered ones.
// The last final segment wins; silence keeps what was already heard.
func Merge(prev, next ExtractedFields) ExtractedFields {
	out := prev
	if next.WasteType != "" {
		out.WasteType = next.WasteType
	}
	if next.Weight != "" {
		out.Weight = next.Weight
	}
	if next.Date != "" {
		out.Date = next.Date
	}
	if next.Time != "" {
		out.Time = next.Time
	}
	if next.Location != "" {
		out.Location = next.Location
	}
	return out
}

// Greeting is the assistant prompt spoken by the client before listening.
const Greeting = "Hi! I'm Bhoomika, your voice assistant. Tell me about your waste collection needs - what type, how much weight, when, and where?"
