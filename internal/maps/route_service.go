// README: Route Lookup against the Google Directions backend.
package maps

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"googlemaps.github.io/maps"

	"akshar/internal/route"
)

// directionsAPI is the slice of the Google Maps client the lookup needs.
// *maps.Client satisfies it; tests substitute a fake.
type directionsAPI interface {
	Directions(ctx context.Context, r *maps.DirectionsRequest) ([]maps.Route, []maps.GeocodedWaypoint, error)
}

// travelModes maps the domain mode enum onto the backend's transport parameter.
var travelModes = map[route.Mode]maps.Mode{
	route.ModeDriving:   maps.TravelModeDriving,
	route.ModeWalking:   maps.TravelModeWalking,
	route.ModeBicycling: maps.TravelModeBicycling,
	route.ModeTransit:   maps.TravelModeTransit,
}

// RouteService resolves route requests into concrete directions.
type RouteService struct {
	api directionsAPI
}

// NewRouteService creates a RouteService with the given API key.
func NewRouteService(apiKey string) (*RouteService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &RouteService{api: client}, nil
}

func newRouteService(api directionsAPI) *RouteService {
	return &RouteService{api: api}
}

// Lookup issues one directions request and returns distance, duration, and
// the ordered step instructions. Every call is a fresh round trip; results
// are never cached. Step order equals the backend's returned order.
func (s *RouteService) Lookup(ctx context.Context, req route.Request) (route.Result, error) {
	if err := req.Validate(); err != nil {
		return route.Result{}, err
	}
	mode, ok := travelModes[req.Mode]
	if !ok {
		return route.Result{}, fmt.Errorf("%w: %q", route.ErrInvalidMode, req.Mode)
	}

	r := &maps.DirectionsRequest{
		Origin:      req.Origin,
		Destination: req.Destination,
		Mode:        mode,
		Language:    "en",
		Units:       maps.UnitsMetric,
	}

	routes, _, err := s.api.Directions(ctx, r)
	if err != nil {
		if isNoRouteStatus(err) {
			return route.Result{}, fmt.Errorf("%w: %s to %s by %s", route.ErrRouteNotFound, req.Origin, req.Destination, req.Mode)
		}
		return route.Result{}, fmt.Errorf("%w: %v", route.ErrServiceUnavailable, err)
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return route.Result{}, fmt.Errorf("%w: %s to %s by %s", route.ErrRouteNotFound, req.Origin, req.Destination, req.Mode)
	}

	var (
		totalMeters   int
		totalDuration time.Duration
		steps         []route.Step
	)
	for _, leg := range routes[0].Legs {
		totalMeters += leg.Distance.Meters
		totalDuration += leg.Duration
		for _, step := range leg.Steps {
			steps = append(steps, route.Step{
				Instruction: stripHTML(step.HTMLInstructions),
				Distance:    formatMeters(step.Distance.Meters),
			})
		}
	}

	return route.Result{
		Origin:      req.Origin,
		Destination: req.Destination,
		Mode:        req.Mode,
		Distance:    formatKm(totalMeters),
		Duration:    formatDuration(totalDuration),
		Steps:       steps,
	}, nil
}

// Waypoints returns a handful of points sampled along the route's overview
// polyline: start, quarters, and end. POI search probes around these.
func (s *RouteService) Waypoints(ctx context.Context, req route.Request) ([]maps.LatLng, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	mode, ok := travelModes[req.Mode]
	if !ok {
		return nil, fmt.Errorf("%w: %q", route.ErrInvalidMode, req.Mode)
	}

	routes, _, err := s.api.Directions(ctx, &maps.DirectionsRequest{
		Origin:      req.Origin,
		Destination: req.Destination,
		Mode:        mode,
	})
	if err != nil {
		if isNoRouteStatus(err) {
			return nil, fmt.Errorf("%w: %s to %s", route.ErrRouteNotFound, req.Origin, req.Destination)
		}
		return nil, fmt.Errorf("%w: %v", route.ErrServiceUnavailable, err)
	}
	if len(routes) == 0 {
		return nil, fmt.Errorf("%w: %s to %s", route.ErrRouteNotFound, req.Origin, req.Destination)
	}

	points, err := routes[0].OverviewPolyline.Decode()
	if err != nil {
		return nil, fmt.Errorf("%w: polyline decode: %v", route.ErrServiceUnavailable, err)
	}
	return samplePoints(points), nil
}

// samplePoints picks up to five evenly spaced points: origin, quarters, and
// destination.
func samplePoints(points []maps.LatLng) []maps.LatLng {
	n := len(points)
	if n <= 5 {
		return points
	}
	return []maps.LatLng{
		points[0],
		points[n/4],
		points[n/2],
		points[3*n/4],
		points[n-1],
	}
}

// isNoRouteStatus recognizes backend statuses that mean "no route exists"
// rather than a service failure. Any zero-route condition is reported
// uniformly as route not found.
func isNoRouteStatus(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "ZERO_RESULTS") || strings.Contains(msg, "NOT_FOUND")
}

var htmlTags = regexp.MustCompile(`<[^>]+>`)

// stripHTML flattens the backend's html_instructions into plain text.
func stripHTML(s string) string {
	s = htmlTags.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, "&nbsp;", " ")
	return strings.Join(strings.Fields(s), " ")
}

func formatKm(meters int) string {
	return fmt.Sprintf("%.1f km", float64(meters)/1000)
}

func formatMeters(meters int) string {
	if meters < 1000 {
		return fmt.Sprintf("%d m", meters)
	}
	return formatKm(meters)
}

// formatDuration renders a duration the way people read it: "2 hours 5
// minutes", with seconds only shown under an hour.
func formatDuration(d time.Duration) string {
	total := int(d.Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	var parts []string
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", hours, plural("hour", hours)))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", minutes, plural("minute", minutes)))
	}
	if seconds > 0 && hours == 0 {
		parts = append(parts, fmt.Sprintf("%d %s", seconds, plural("second", seconds)))
	}
	if len(parts) == 0 {
		return "0 minutes"
	}
	return strings.Join(parts, " ")
}

func plural(unit string, n int) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
