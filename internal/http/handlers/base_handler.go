// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"akshar/internal/route"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writeRouteError maps pipeline error kinds to one user-readable message
// per kind. Unknown errors never leak their text to the client.
func writeRouteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, route.ErrInvalidInput):
		writeError(c, http.StatusBadRequest, "could not read the request; describe a journey like \"Pune to Mumbai by car\"")
	case errors.Is(err, route.ErrInvalidMode):
		writeError(c, http.StatusBadRequest, "that travel mode is not supported; use driving, walking, bicycling or transit")
	case errors.Is(err, route.ErrExtractionFailed):
		writeError(c, http.StatusUnprocessableEntity, "could not detect a route request; try a clearer image or description")
	case errors.Is(err, route.ErrRouteNotFound):
		writeError(c, http.StatusNotFound, "no route found between those locations for that travel mode")
	case errors.Is(err, route.ErrServiceUnavailable):
		writeError(c, http.StatusBadGateway, "a backing service is unavailable; please try again shortly")
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
