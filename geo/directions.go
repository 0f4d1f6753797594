package geo

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"

	"github.com/safestreets/safestreets-api/schema"
)

const (
	logPrefix      = "geo"
	defaultTimeout = 10 * time.Second
)

// MapsDirections queries the Google Maps Directions API for candidate
// routes, alternatives included.
type MapsDirections struct {
	client *maps.Client
}

func NewMapsDirections(client *maps.Client) *MapsDirections {
	return &MapsDirections{
		client: client,
	}
}

func (d *MapsDirections) Directions(ctx context.Context, origin, destination schema.Location) ([]maps.Route, error) {
	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"origin": latLng(origin),
		"dest":   latLng(destination),
	}).Info("query directions")

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	routes, _, err := d.client.Directions(ctx, &maps.DirectionsRequest{
		Origin:       latLng(origin),
		Destination:  latLng(destination),
		Mode:         maps.TravelModeDriving,
		Alternatives: true,
	})
	return routes, err
}

// latLng - a string representation of a Lat,Lng pair, e.g. 1.23,4.56
func latLng(loc schema.Location) string {
	return fmt.Sprintf("%f,%f", loc.Latitude, loc.Longitude)
}

// RoutePath reconstructs the full coordinate path of a route by
// decoding every step polyline and concatenating the segments in leg
// order. Steps whose polyline fails to decode are skipped.
func RoutePath(route maps.Route) []maps.LatLng {
	path := make([]maps.LatLng, 0)
	for _, leg := range route.Legs {
		for _, step := range leg.Steps {
			points, err := step.Polyline.Decode()
			if err != nil {
				log.WithFields(log.Fields{
					"prefix": logPrefix,
					"error":  err,
				}).Warn("skip undecodable step polyline")
				continue
			}
			path = append(path, points...)
		}
	}
	return path
}
