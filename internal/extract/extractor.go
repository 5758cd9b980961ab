// README: Route Extractor; turns raw image/text input into a route request.
package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"akshar/internal/ai"
	"akshar/internal/route"
)

// extractionPrompt instructs the model to emit a fixed-shape JSON payload.
// Any deviation from the schema is treated as an extraction failure rather
// than scraped best-effort.
const extractionPrompt = `Look at the provided travel request and extract route information.
Identify the origin (starting point), the destination (ending point), and the mode of transport.
Respond with a single JSON object of exactly this form:
{"origin": "<origin location>", "destination": "<destination location>", "mode": "<driving|walking|bicycling|transit>"}
Use "driving" when the mode of transport is not specified. Respond with JSON only, no prose.`

// OCRReader recovers printed text from an image locally. It backs the
// fallback path when the AI service cannot extract a route from an image.
type OCRReader interface {
	ExtractText(ctx context.Context, image []byte) (string, error)
	LooksLikeRouteRequest(text string) bool
}

// Extractor derives a route.Request from unstructured image or text input.
type Extractor struct {
	provider ai.Provider
	ocr      OCRReader // nil disables the OCR fallback
}

// New creates an Extractor. ocr may be nil.
func New(provider ai.Provider, ocr OCRReader) *Extractor {
	return &Extractor{provider: provider, ocr: ocr}
}

// Extract turns a RawInput into a validated route.Request.
//
// Text inputs that match a known query pattern are parsed locally with zero
// network calls; free-form text and images go to the AI service. Failure
// kinds: route.ErrInvalidInput for bad input shape, route.ErrServiceUnavailable
// for transport failures, route.ErrExtractionFailed when a response arrives
// but yields no origin and destination.
func (e *Extractor) Extract(ctx context.Context, in route.RawInput) (route.Request, error) {
	if err := in.Validate(); err != nil {
		return route.Request{}, err
	}

	if !in.IsImage() {
		if req, ok := ParseQuery(in.Text); ok {
			return req, nil
		}
		reply, err := e.provider.GenerateText(ctx, extractionPrompt+"\n\nRequest text:\n"+in.Text)
		if err != nil {
			return route.Request{}, fmt.Errorf("%w: %v", route.ErrServiceUnavailable, err)
		}
		return parseReply(reply)
	}

	format := in.ImageFormat
	if format == "" {
		format = "png"
	}
	reply, err := e.provider.GenerateFromImage(ctx, extractionPrompt, format, in.Image)
	if err != nil {
		return route.Request{}, fmt.Errorf("%w: %v", route.ErrServiceUnavailable, err)
	}

	req, err := parseReply(reply)
	if err == nil {
		return req, nil
	}
	if e.ocr != nil {
		if req, ok := e.extractViaOCR(ctx, in.Image); ok {
			return req, nil
		}
	}
	return route.Request{}, err
}

// extractViaOCR runs local text recognition on the image and re-applies the
// pattern parser to whatever it finds.
func (e *Extractor) extractViaOCR(ctx context.Context, image []byte) (route.Request, bool) {
	text, err := e.ocr.ExtractText(ctx, image)
	if err != nil || !e.ocr.LooksLikeRouteRequest(text) {
		return route.Request{}, false
	}
	return ParseQuery(text)
}

// replyPayload is the fixed response schema requested from the model.
type replyPayload struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Mode        string `json:"mode"`
}

// parseReply decodes the model's JSON reply into a route.Request. The origin
// and destination fields are required; the mode field is normalized through
// the tolerant keyword mapping and defaults to driving.
func parseReply(reply string) (route.Request, error) {
	var payload replyPayload
	if err := json.Unmarshal([]byte(ai.CleanResponse(reply)), &payload); err != nil {
		return route.Request{}, fmt.Errorf("%w: malformed response", route.ErrExtractionFailed)
	}

	req := route.Request{
		Origin:      strings.TrimSpace(payload.Origin),
		Destination: strings.TrimSpace(payload.Destination),
		Mode:        route.ParseMode(payload.Mode),
	}
	if req.Origin == "" || req.Destination == "" {
		return route.Request{}, fmt.Errorf("%w: no origin or destination in response", route.ErrExtractionFailed)
	}
	return req, nil
}
