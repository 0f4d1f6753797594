package geo

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"

	"github.com/safestreets/safestreets-api/schema"
)

var ErrNoAddressFound = fmt.Errorf("no address found")

// AddressResolver - interface for resolving a coordinate into a
// human-readable address
type AddressResolver interface {
	Address(ctx context.Context, loc schema.Location) (string, error)
}

// GeocodingAddressResolver resolves addresses through the Google Maps
// reverse-geocoding API.
type GeocodingAddressResolver struct {
	client *maps.Client
}

func NewGeocodingAddressResolver(client *maps.Client) *GeocodingAddressResolver {
	return &GeocodingAddressResolver{
		client: client,
	}
}

func (g *GeocodingAddressResolver) Address(ctx context.Context, loc schema.Location) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	geos, err := g.client.ReverseGeocode(ctx, &maps.GeocodingRequest{
		LatLng: &maps.LatLng{
			Lat: loc.Latitude,
			Lng: loc.Longitude,
		},
		Language: "en",
	})
	if nil != err {
		return "", err
	}

	if len(geos) == 0 {
		return "", ErrNoAddressFound
	}

	return geos[0].FormattedAddress, nil
}

// FallbackAddress is the raw-coordinate stand-in shown when no
// address can be resolved.
func FallbackAddress(loc schema.Location) string {
	return fmt.Sprintf("Lat: %v, Lng: %v", loc.Latitude, loc.Longitude)
}

// ResolveOrCoordinate converts a coordinate into an address,
// degrading to the coordinate string when the resolver is missing or
// fails. This is the single boundary where geocoding errors are
// absorbed.
func ResolveOrCoordinate(ctx context.Context, r AddressResolver, loc schema.Location) string {
	if r == nil {
		return FallbackAddress(loc)
	}

	address, err := r.Address(ctx, loc)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"lat":    loc.Latitude,
			"lng":    loc.Longitude,
			"error":  err,
		}).Warn("reverse geocoding failed, falling back to coordinates")
		return FallbackAddress(loc)
	}

	return address
}
