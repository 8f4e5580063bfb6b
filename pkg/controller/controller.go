package controller

import (
	"context"
	"time"

	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
	"github.com/travigo/nexttrain/pkg/dataaggregator"
	"github.com/travigo/nexttrain/pkg/dataaggregator/query"
	"github.com/travigo/nexttrain/pkg/departures"
	"github.com/travigo/nexttrain/pkg/selection"
	"github.com/travigo/nexttrain/pkg/session"
	"github.com/travigo/nexttrain/pkg/summary"
	"github.com/travigo/nexttrain/pkg/transit"
)

// Controller walks the rider from route choice to the departure summary
type Controller struct {
	Aggregator *dataaggregator.Aggregator
	Prompter   *selection.Prompter
	Reporter   summary.Reporter

	Location *time.Location
	Clock    func() time.Time
}

func (c *Controller) Run(ctx context.Context) error {
	routes := c.lookupResources(ctx, query.Routes{}, "routes")
	route, err := c.Prompter.SelectRoute(routes)
	if err != nil {
		return err
	}
	routeSelected := session.Start(route)

	stops := c.lookupResources(ctx, query.Stops{RouteID: routeSelected.Route().ID}, "stops")
	stop, err := c.Prompter.SelectStop(stops)
	if err != nil {
		return err
	}
	stopSelected := routeSelected.WithStop(stop)

	direction, err := c.Prompter.SelectDirection(stopSelected.Route(), stopSelected.Stop())
	if err != nil {
		return err
	}
	complete, err := stopSelected.WithDirection(direction)
	if err != nil {
		return err
	}

	log.Debug().Msgf("Selected trip %s", pretty.Sprint(complete))

	predictions, err := dataaggregator.Lookup[[]transit.Prediction](ctx, c.Aggregator, query.Predictions{
		StopID:  complete.Stop().ID,
		RouteID: complete.Route().ID,
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch predictions")
	}

	var next *time.Time
	if departure, ok := departures.SelectNext(complete.Direction(), predictions, c.now()); ok {
		next = &departure
	}

	c.Reporter.Print(complete, next)

	return nil
}

// lookupResources treats a failed fetch the same as an empty result
func (c *Controller) lookupResources(ctx context.Context, q any, name string) []transit.Resource {
	resources, err := dataaggregator.Lookup[[]transit.Resource](ctx, c.Aggregator, q)
	if err != nil {
		log.Error().Err(err).Str("lookup", name).Msg("Failed to fetch data")
		return nil
	}

	log.Debug().Int("count", len(resources)).Str("lookup", name).Msg("Fetched data")

	return resources
}

func (c *Controller) now() time.Time {
	now := time.Now()
	if c.Clock != nil {
		now = c.Clock()
	}

	if c.Location != nil {
		now = now.In(c.Location)
	}

	return now
}
