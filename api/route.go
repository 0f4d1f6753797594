package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/safestreets/safestreets-api/geo"
	"github.com/safestreets/safestreets-api/schema"
	"github.com/safestreets/safestreets-api/score"
	"github.com/safestreets/safestreets-api/store"
)

// getRoutesWithSafety fetches candidate routes between two points and
// rates each one. A directions outage is the one failure surfaced to
// the client.
func (s *Server) getRoutesWithSafety(c *gin.Context) {
	var params struct {
		StartPoint []float64 `json:"start_point"`
		EndPoint   []float64 `json:"end_point"`
		Preference string    `json:"preference"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest)
		return
	}

	if len(params.StartPoint) != 2 || len(params.EndPoint) != 2 {
		abortWithEncoding(c, http.StatusBadRequest, errorMissingEndpoints)
		return
	}

	if s.scorer == nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorDirectionsUnavailable)
		return
	}

	preference := params.Preference
	if preference == "" {
		preference = score.PreferenceFastest
	}

	origin := schema.Location{Latitude: params.StartPoint[0], Longitude: params.StartPoint[1]}
	destination := schema.Location{Latitude: params.EndPoint[0], Longitude: params.EndPoint[1]}

	routes, err := s.scorer.ScoreRoutes(c.Request.Context(), origin, destination, preference)
	if err != nil {
		log.WithError(err).Error(errorDirectionsFailed.Message)
		abortWithEncoding(c, http.StatusInternalServerError, errorDirectionsFailed, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Routes and safety scores generated.",
		"routes":  routes,
	})
}

// saveSelectedRoute persists the route a user picked on the map
func (s *Server) saveSelectedRoute(c *gin.Context) {
	var params struct {
		UserID         int64                   `json:"user_id"`
		SourceLat      *float64                `json:"source_lat"`
		SourceLng      *float64                `json:"source_lng"`
		DestinationLat *float64                `json:"destination_lat"`
		DestinationLng *float64                `json:"destination_lng"`
		SelectedRoute  schema.RouteDescription `json:"selected_route"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest)
		return
	}

	if params.UserID == 0 || params.SourceLat == nil || params.SourceLng == nil ||
		params.DestinationLat == nil || params.DestinationLng == nil ||
		params.SelectedRoute == nil {
		abortWithEncoding(c, http.StatusBadRequest, errorMissingRouteFields)
		return
	}

	source := schema.Location{Latitude: *params.SourceLat, Longitude: *params.SourceLng}
	destination := schema.Location{Latitude: *params.DestinationLat, Longitude: *params.DestinationLng}

	r, err := s.store.SaveRoute(params.UserID, source, destination, params.SelectedRoute)
	if err == store.ErrUnknownAccount {
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownUser)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":   "success",
		"message":  "Route saved successfully",
		"route_id": r.ID,
	})
}

// getRouteHistory returns a user's saved routes, most recent first,
// with coordinates resolved to addresses where possible
func (s *Server) getRouteHistory(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userID"), 10, 64)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	routes, err := s.store.ListRoutes(userID)
	if shouldInterupt(err, c) {
		return
	}

	ctx := c.Request.Context()
	history := make([]gin.H, 0, len(routes))
	for _, r := range routes {
		history = append(history, gin.H{
			"request_time":        r.RequestTime,
			"source_address":      geo.ResolveOrCoordinate(ctx, s.resolver, r.Source()),
			"destination_address": geo.ResolveOrCoordinate(ctx, s.resolver, r.Destination()),
			"selected_route":      r.SelectedRoute,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"history": history,
	})
}
