package transit

import (
	"errors"
	"fmt"
)

// Route types as categorised by the MBTA API
const (
	RouteTypeLightRail = 0
	RouteTypeHeavyRail = 1
	RouteTypeCommuter  = 2
	RouteTypeBus       = 3
	RouteTypeFerry     = 4
)

var ErrMismatchedDirections = errors.New("direction names and destinations differ in length")

// DirectionCode indexes into a route's direction names and destinations
type DirectionCode int

type Route struct {
	LongName              string
	ID                    string
	DirectionNames        []string
	DirectionDestinations []string
}

type routeAttributes struct {
	LongName              string   `json:"long_name"`
	DirectionNames        []string `json:"direction_names"`
	DirectionDestinations []string `json:"direction_destinations"`
}

func NewRouteFromResource(resource Resource) (Route, error) {
	var attributes routeAttributes
	if err := resource.decodeAttributes(&attributes); err != nil {
		return Route{}, err
	}

	if len(attributes.DirectionNames) != len(attributes.DirectionDestinations) {
		return Route{}, fmt.Errorf("route %q: %w", resource.ID, ErrMismatchedDirections)
	}

	return Route{
		LongName:              attributes.LongName,
		ID:                    resource.ID,
		DirectionNames:        attributes.DirectionNames,
		DirectionDestinations: attributes.DirectionDestinations,
	}, nil
}

func (r Route) DirectionCount() int {
	return len(r.DirectionNames)
}

func (r Route) HasDirection(code DirectionCode) bool {
	return code >= 0 && int(code) < r.DirectionCount()
}

func (r Route) DirectionName(code DirectionCode) string {
	if !r.HasDirection(code) {
		return ""
	}
	return r.DirectionNames[code]
}

func (r Route) DirectionDestination(code DirectionCode) string {
	if !r.HasDirection(code) {
		return ""
	}
	return r.DirectionDestinations[code]
}

// DirectionDescription renders a direction as "<name> to <destination>"
func (r Route) DirectionDescription(code DirectionCode) string {
	return fmt.Sprintf("%s to %s", r.DirectionName(code), r.DirectionDestination(code))
}
