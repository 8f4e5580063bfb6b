// Package session holds what the rider has chosen so far. Each step can only
// be reached from the one before it: a route, then a stop on it, then a
// direction of travel. Fields are unexported so a later step cannot be built
// by hand around the checks in WithDirection.
package session

import (
	"fmt"

	"github.com/travigo/nexttrain/pkg/transit"
)

type RouteSelected struct {
	route transit.Route
}

type StopSelected struct {
	route transit.Route
	stop  transit.Stop
}

type DirectionSelected struct {
	route     transit.Route
	stop      transit.Stop
	direction transit.DirectionCode
}

func Start(route transit.Route) RouteSelected {
	return RouteSelected{route: route}
}

func (s RouteSelected) Route() transit.Route { return s.route }

func (s RouteSelected) WithStop(stop transit.Stop) StopSelected {
	return StopSelected{route: s.route, stop: stop}
}

func (s StopSelected) Route() transit.Route { return s.route }
func (s StopSelected) Stop() transit.Stop   { return s.stop }

func (s StopSelected) WithDirection(direction transit.DirectionCode) (DirectionSelected, error) {
	if !s.route.HasDirection(direction) {
		return DirectionSelected{}, fmt.Errorf("route %q has no direction %d", s.route.ID, direction)
	}

	return DirectionSelected{route: s.route, stop: s.stop, direction: direction}, nil
}

func (s DirectionSelected) Route() transit.Route             { return s.route }
func (s DirectionSelected) Stop() transit.Stop               { return s.stop }
func (s DirectionSelected) Direction() transit.DirectionCode { return s.direction }

func (s DirectionSelected) DirectionDescription() string {
	return s.route.DirectionDescription(s.direction)
}
