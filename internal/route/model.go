// README: Shared route domain types and the pipeline error taxonomy.
package route

import (
	"errors"
	"strings"
)

// Mode is the transport modality affecting route computation.
type Mode string

const (
	ModeDriving   Mode = "driving"
	ModeWalking   Mode = "walking"
	ModeBicycling Mode = "bicycling"
	ModeTransit   Mode = "transit"
)

// Pipeline error taxonomy. Handlers map each kind to one distinct,
// user-readable message; nothing re-wraps these in a way that loses the
// distinction between extraction and lookup failures.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrExtractionFailed   = errors.New("extraction failed")
	ErrRouteNotFound      = errors.New("route not found")
	ErrInvalidMode        = errors.New("invalid travel mode")
)

// modeKeywords maps recognized transport keywords onto the Mode enum.
// The table mirrors the query phrasings users actually type.
var modeKeywords = map[string]Mode{
	"car":     ModeDriving,
	"driving": ModeDriving,
	"drive":   ModeDriving,

	"walk":    ModeWalking,
	"walking": ModeWalking,
	"foot":    ModeWalking,

	"bicycle":   ModeBicycling,
	"bicycling": ModeBicycling,
	"bike":      ModeBicycling,
	"cycle":     ModeBicycling,
	"cycling":   ModeBicycling,

	"transit": ModeTransit,
	"bus":     ModeTransit,
	"train":   ModeTransit,
	"metro":   ModeTransit,
	"subway":  ModeTransit,
	"rail":    ModeTransit,
	"public":  ModeTransit,
}

// ParseMode maps free-form mode text onto the Mode enum. The mapping is
// total: anything without a recognizable keyword yields ModeDriving,
// never an error.
func ParseMode(s string) Mode {
	s = strings.ToLower(strings.TrimSpace(s))
	if m, ok := modeKeywords[s]; ok {
		return m
	}
	// Tolerate surrounding words, e.g. "public transport" or "by car".
	for _, word := range strings.Fields(s) {
		if m, ok := modeKeywords[strings.Trim(word, ".,!?")]; ok {
			return m
		}
	}
	return ModeDriving
}

// IsValid reports whether m is one of the four supported modes.
func (m Mode) IsValid() bool {
	switch m {
	case ModeDriving, ModeWalking, ModeBicycling, ModeTransit:
		return true
	}
	return false
}

// Request is the structured {origin, destination, mode} triple driving a
// directions lookup. It is created by the extractor, consumed once by the
// lookup, and never persisted.
type Request struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Mode        Mode   `json:"mode"`
}

// Validate enforces the request invariant: origin and destination non-empty.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Origin) == "" || strings.TrimSpace(r.Destination) == "" {
		return ErrInvalidInput
	}
	return nil
}

// Step is a single turn-by-turn instruction with its leg distance.
type Step struct {
	Instruction string `json:"instruction"`
	Distance    string `json:"distance"`
}

// Result holds the resolved route. Steps are in travel order, exactly as the
// directions backend returned them.
type Result struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Mode        Mode   `json:"mode"`
	Distance    string `json:"distance"`
	Duration    string `json:"duration"`
	Steps       []Step `json:"steps"`
}

// RawInput is the tagged union over the two input modalities. Exactly one of
// Image or Text is set. It is owned by the invocation that produced it and
// discarded after extraction.
type RawInput struct {
	Image       []byte
	ImageFormat string
	Text        string
}

// TextInput wraps a typed query as a RawInput.
func TextInput(query string) RawInput {
	return RawInput{Text: query}
}

// ImageInput wraps image bytes as a RawInput. format is the image subtype
// ("png", "jpeg") as expected by the AI service.
func ImageInput(data []byte, format string) RawInput {
	return RawInput{Image: data, ImageFormat: format}
}

// IsImage reports whether the input carries image bytes.
func (in RawInput) IsImage() bool {
	return len(in.Image) > 0
}

// Validate rejects inputs that carry neither image bytes nor text.
func (in RawInput) Validate() error {
	if len(in.Image) == 0 && strings.TrimSpace(in.Text) == "" {
		return ErrInvalidInput
	}
	return nil
}
