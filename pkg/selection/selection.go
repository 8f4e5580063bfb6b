package selection

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/travigo/nexttrain/pkg/transit"
)

func (p *Prompter) SelectRoute(resources []transit.Resource) (transit.Route, error) {
	routes := make([]transit.Route, 0, len(resources))
	labels := make([]string, 0, len(resources))

	for _, resource := range resources {
		route, err := transit.NewRouteFromResource(resource)
		if err != nil {
			log.Warn().Err(err).Str("id", resource.ID).Msg("Skipping route")
			continue
		}

		routes = append(routes, route)
		labels = append(labels, route.LongName)
	}

	choice, err := p.Choose("route", labels)
	if err != nil {
		return transit.Route{}, err
	}

	return routes[choice], nil
}

func (p *Prompter) SelectStop(resources []transit.Resource) (transit.Stop, error) {
	stops := make([]transit.Stop, 0, len(resources))
	labels := make([]string, 0, len(resources))

	for _, resource := range resources {
		stop, err := transit.NewStopFromResource(resource)
		if err != nil {
			log.Warn().Err(err).Str("id", resource.ID).Msg("Skipping stop")
			continue
		}

		stops = append(stops, stop)
		labels = append(labels, stop.Name)
	}

	choice, err := p.Choose("stop", labels)
	if err != nil {
		return transit.Stop{}, err
	}

	return stops[choice], nil
}

// SelectDirection keeps offering the route's directions until the rider
// picks one that does not end at the stop they are already at
func (p *Prompter) SelectDirection(route transit.Route, stop transit.Stop) (transit.DirectionCode, error) {
	if route.DirectionCount() == 0 {
		return 0, fmt.Errorf("direction: %w", ErrNoCandidates)
	}
	if !hasValidDirection(route, stop) {
		return 0, fmt.Errorf("direction: %w", ErrNoValidDirection)
	}

	for {
		p.printDirectionOptions(route)

		choice, ok, err := p.ask("direction", route.DirectionCount())
		if err != nil {
			return 0, err
		}
		if !ok {
			continue
		}

		direction := transit.DirectionCode(choice)
		if IsValidDestination(route.DirectionDestination(direction), stop.Name) {
			return direction, nil
		}

		fmt.Fprintln(p.out, "\nERROR: You are already at the end of the track.")
		fmt.Fprintln(p.out, "+ Please try again and select the OTHER direction")
	}
}

func hasValidDirection(route transit.Route, stop transit.Stop) bool {
	for code := 0; code < route.DirectionCount(); code++ {
		if IsValidDestination(route.DirectionDestination(transit.DirectionCode(code)), stop.Name) {
			return true
		}
	}
	return false
}

func (p *Prompter) printDirectionOptions(route transit.Route) {
	fmt.Fprintln(p.out, "\nThe following are your direction options:")
	for code := 0; code < route.DirectionCount(); code++ {
		fmt.Fprintf(p.out, "ID(%d) %s\n", code, route.DirectionDescription(transit.DirectionCode(code)))
	}
}

// IsValidDestination rejects a destination that already names the stop.
// Containment is case sensitive, so "Ashmont/Braintree" rules out Braintree.
// TODO: compare stop sequence positions once stop ordering is fetched per direction
func IsValidDestination(destination string, stopName string) bool {
	return !strings.Contains(destination, stopName)
}
