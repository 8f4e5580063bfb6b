package mbta

import (
	"context"
	"errors"
	"reflect"

	"github.com/rs/zerolog/log"
	"github.com/travigo/nexttrain/pkg/dataaggregator/query"
	"github.com/travigo/nexttrain/pkg/mbta"
	"github.com/travigo/nexttrain/pkg/transit"
)

var ErrUnsupportedQuery = errors.New("unsupported query for MBTA source")

type Source struct {
	Client *mbta.Client
}

func (s Source) GetName() string {
	return "MBTA v3 API"
}

func (s Source) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf([]transit.Resource{}),
		reflect.TypeOf([]transit.Prediction{}),
	}
}

func (s Source) Lookup(ctx context.Context, q any) (interface{}, error) {
	switch q := q.(type) {
	case query.Routes:
		return s.Client.RailRoutes(ctx)
	case query.Stops:
		return s.Client.StopsForRoute(ctx, q.RouteID)
	case query.Predictions:
		resources, err := s.Client.Predictions(ctx, q.StopID, q.RouteID)
		if err != nil {
			return nil, err
		}

		predictions := make([]transit.Prediction, 0, len(resources))
		for _, resource := range resources {
			prediction, err := transit.NewPredictionFromResource(resource)
			if err != nil {
				log.Debug().Err(err).Str("id", resource.ID).Msg("Skipping undecodable prediction")
				continue
			}

			predictions = append(predictions, prediction)
		}

		return predictions, nil
	}

	return nil, ErrUnsupportedQuery
}
