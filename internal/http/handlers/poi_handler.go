// README: POI handlers (places along a route, place details).
package handlers

import (
	"context"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	gmaps "googlemaps.github.io/maps"

	"akshar/internal/maps"
	"akshar/internal/route"
)

type WaypointSource interface {
	Waypoints(ctx context.Context, req route.Request) ([]gmaps.LatLng, error)
}

type PlaceSource interface {
	SearchAlongRoute(ctx context.Context, waypoints []gmaps.LatLng, categoryID string) ([]maps.Place, error)
	Details(ctx context.Context, placeID string) (maps.PlaceInfo, error)
}

type POIHandler struct {
	routes WaypointSource
	places PlaceSource
}

func NewPOIHandler(routes WaypointSource, places PlaceSource) *POIHandler {
	return &POIHandler{routes: routes, places: places}
}

type poiResponse struct {
	Category string       `json:"category"`
	Count    int          `json:"count"`
	Places   []maps.Place `json:"places"`
}

// Search handles GET /api/pois?origin=&destination=&mode=&category=.
func (h *POIHandler) Search(c *gin.Context) {
	req := route.Request{
		Origin:      strings.TrimSpace(c.Query("origin")),
		Destination: strings.TrimSpace(c.Query("destination")),
		Mode:        route.ParseMode(c.Query("mode")),
	}
	if err := req.Validate(); err != nil {
		writeError(c, http.StatusBadRequest, "missing origin or destination")
		return
	}

	category := strings.ToLower(strings.TrimSpace(c.Query("category")))
	if _, ok := maps.Categories[category]; !ok {
		writeError(c, http.StatusBadRequest, "unknown category")
		return
	}

	waypoints, err := h.routes.Waypoints(c.Request.Context(), req)
	if err != nil {
		writeRouteError(c, err)
		return
	}

	places, err := h.places.SearchAlongRoute(c.Request.Context(), waypoints, category)
	if err != nil {
		writeRouteError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, poiResponse{Category: category, Count: len(places), Places: places})
}

// Details handles GET /api/places/:id.
func (h *POIHandler) Details(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing place id")
		return
	}

	info, err := h.places.Details(c.Request.Context(), id)
	if err != nil {
		writeRouteError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, info)
}

// Categories handles GET /api/pois/categories.
func (h *POIHandler) Categories(c *gin.Context) {
	ids := make([]string, 0, len(maps.Categories))
	for id := range maps.Categories {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	writeJSON(c, http.StatusOK, gin.H{"categories": ids})
}
