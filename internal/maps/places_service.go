// README: POI search along a route via the Google Places backend.
package maps

import (
	"context"
	"fmt"
	"sort"

	"googlemaps.github.io/maps"

	"akshar/internal/route"
)

// placesAPI is the slice of the Google Maps client the POI search needs.
type placesAPI interface {
	NearbySearch(ctx context.Context, r *maps.NearbySearchRequest) (maps.PlacesSearchResponse, error)
	PlaceDetails(ctx context.Context, r *maps.PlaceDetailsRequest) (maps.PlaceDetailsResult, error)
}

// Category groups the place types searched for one POI category.
type Category struct {
	Name  string
	Types []string
}

// Categories lists the POI categories offered along a route.
var Categories = map[string]Category{
	"restaurants": {Name: "Restaurants", Types: []string{"restaurant", "food", "cafe", "bakery", "meal_takeaway"}},
	"hotels":      {Name: "Hotels", Types: []string{"lodging", "hotel", "motel", "guest_house"}},
	"fuel":        {Name: "Petrol Stations", Types: []string{"gas_station", "petrol_station", "fuel"}},
	"hospitals":   {Name: "Hospitals & Clinics", Types: []string{"hospital", "doctor", "health", "clinic", "pharmacy"}},
	"attractions": {Name: "Attractions", Types: []string{"tourist_attraction", "museum", "park", "amusement_park", "zoo"}},
	"shopping":    {Name: "Shopping", Types: []string{"shopping_mall", "store", "supermarket", "department_store"}},
}

const (
	searchRadiusMeters = 5000
	maxPOIResults      = 10
)

// Place is a simplified POI result.
type Place struct {
	Name             string      `json:"name"`
	PlaceID          string      `json:"place_id"`
	Address          string      `json:"address"`
	Rating           float32     `json:"rating"`
	UserRatingsTotal int         `json:"user_ratings_total"`
	Location         maps.LatLng `json:"location"`
	PhotoURL         string      `json:"photo_url,omitempty"`
}

// PlaceInfo holds the detail view of a single place.
type PlaceInfo struct {
	Name         string   `json:"name"`
	Address      string   `json:"address"`
	Phone        string   `json:"phone,omitempty"`
	Website      string   `json:"website,omitempty"`
	OpeningHours []string `json:"opening_hours,omitempty"`
	MapsURL      string   `json:"maps_url,omitempty"`
}

// PlacesService handles interactions with the Places backend.
type PlacesService struct {
	api    placesAPI
	apiKey string
}

// NewPlacesService creates a PlacesService with the given API key.
func NewPlacesService(apiKey string) (*PlacesService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &PlacesService{api: client, apiKey: apiKey}, nil
}

func newPlacesService(api placesAPI, apiKey string) *PlacesService {
	return &PlacesService{api: api, apiKey: apiKey}
}

// SearchAlongRoute runs a nearby search at each waypoint, dedupes by place
// ID, and returns the best-rated results. Waypoints that fail are skipped so
// one bad probe does not sink the whole search.
func (s *PlacesService) SearchAlongRoute(ctx context.Context, waypoints []maps.LatLng, categoryID string) ([]Place, error) {
	category, ok := Categories[categoryID]
	if !ok {
		return nil, fmt.Errorf("%w: unknown category %q", route.ErrInvalidInput, categoryID)
	}

	seen := make(map[string]bool)
	var all []Place

	for _, point := range waypoints {
		loc := point
		resp, err := s.api.NearbySearch(ctx, &maps.NearbySearchRequest{
			Location: &loc,
			Radius:   searchRadiusMeters,
			Type:     maps.PlaceType(category.Types[0]),
		})
		if err != nil {
			continue
		}
		for _, result := range resp.Results {
			if seen[result.PlaceID] {
				continue
			}
			seen[result.PlaceID] = true

			p := Place{
				Name:             result.Name,
				PlaceID:          result.PlaceID,
				Address:          result.Vicinity,
				Rating:           result.Rating,
				UserRatingsTotal: result.UserRatingsTotal,
				Location:         result.Geometry.Location,
			}
			if len(result.Photos) > 0 {
				p.PhotoURL = s.PhotoURL(result.Photos[0].PhotoReference, 400)
			}
			all = append(all, p)
		}
	}

	// Rank by rating weighted by review count, capping the count so a few
	// places with thousands of reviews don't drown out everything else.
	sort.SliceStable(all, func(i, j int) bool {
		return score(all[i]) > score(all[j])
	})

	if len(all) > maxPOIResults {
		all = all[:maxPOIResults]
	}
	return all, nil
}

func score(p Place) float64 {
	reviews := p.UserRatingsTotal
	if reviews > 100 {
		reviews = 100
	}
	return float64(p.Rating) * float64(reviews)
}

// Details fetches the detail view for one place.
func (s *PlacesService) Details(ctx context.Context, placeID string) (PlaceInfo, error) {
	result, err := s.api.PlaceDetails(ctx, &maps.PlaceDetailsRequest{
		PlaceID: placeID,
		Fields: []maps.PlaceDetailsFieldMask{
			maps.PlaceDetailsFieldMaskName,
			maps.PlaceDetailsFieldMaskFormattedAddress,
			maps.PlaceDetailsFieldMaskFormattedPhoneNumber,
			maps.PlaceDetailsFieldMaskWebsite,
			maps.PlaceDetailsFieldMaskOpeningHours,
			maps.PlaceDetailsFieldMaskURL,
		},
	})
	if err != nil {
		return PlaceInfo{}, fmt.Errorf("%w: %v", route.ErrServiceUnavailable, err)
	}

	info := PlaceInfo{
		Name:    result.Name,
		Address: result.FormattedAddress,
		Phone:   result.FormattedPhoneNumber,
		Website: result.Website,
		MapsURL: result.URL,
	}
	if result.OpeningHours != nil {
		info.OpeningHours = result.OpeningHours.WeekdayText
	}
	return info, nil
}

// PhotoURL builds the public URL for a place photo reference.
func (s *PlacesService) PhotoURL(photoReference string, maxWidth int) string {
	if photoReference == "" {
		return ""
	}
	return fmt.Sprintf("https://maps.googleapis.com/maps/api/place/photo?maxwidth=%d&photoreference=%s&key=%s",
		maxWidth, photoReference, s.apiKey)
}
