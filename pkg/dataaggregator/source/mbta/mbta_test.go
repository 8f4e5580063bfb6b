package mbta

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/nexttrain/pkg/dataaggregator"
	"github.com/travigo/nexttrain/pkg/dataaggregator/query"
	"github.com/travigo/nexttrain/pkg/mbta"
	"github.com/travigo/nexttrain/pkg/transit"
)

func newAggregator(t *testing.T) *dataaggregator.Aggregator {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/routes":
			fmt.Fprint(w, `{"data":[{"id":"Mattapan","attributes":{"long_name":"Mattapan Trolley","direction_names":["Outbound","Inbound"],"direction_destinations":["Mattapan","Ashmont"]}}]}`)
		case "/stops":
			fmt.Fprint(w, `{"data":[{"id":"place-miltt","attributes":{"name":"Milton"}}]}`)
		case "/predictions":
			fmt.Fprint(w, `{"data":[
				{"id":"p1","attributes":{"direction_id":1,"departure_time":"2024-03-05T14:20:00-05:00"}},
				{"id":"p2","attributes":"garbage"},
				{"id":"p3","attributes":{"direction_id":0,"departure_time":null}}
			]}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)

	client, err := mbta.NewClient(mbta.Config{BaseURL: server.URL})
	require.NoError(t, err)

	return dataaggregator.New(Source{Client: client})
}

func TestRoutesAndStops(t *testing.T) {
	aggregator := newAggregator(t)

	routes, err := dataaggregator.Lookup[[]transit.Resource](context.Background(), aggregator, query.Routes{})
	require.NoError(t, err)
	require.Len(t, routes, 1)
	assert.Equal(t, "Mattapan", routes[0].ID)

	stops, err := dataaggregator.Lookup[[]transit.Resource](context.Background(), aggregator, query.Stops{RouteID: "Mattapan"})
	require.NoError(t, err)
	require.Len(t, stops, 1)
	assert.Equal(t, "place-miltt", stops[0].ID)
}

func TestPredictionsSkipsUndecodable(t *testing.T) {
	aggregator := newAggregator(t)

	predictions, err := dataaggregator.Lookup[[]transit.Prediction](context.Background(), aggregator, query.Predictions{StopID: "place-miltt", RouteID: "Mattapan"})
	require.NoError(t, err)

	require.Len(t, predictions, 2)
	assert.Equal(t, "p1", predictions[0].ID)
	assert.Equal(t, "p3", predictions[1].ID)
	assert.Nil(t, predictions[1].DepartureTime)
}

func TestUnsupportedQuery(t *testing.T) {
	aggregator := newAggregator(t)

	_, err := dataaggregator.Lookup[[]transit.Resource](context.Background(), aggregator, "stops please")
	assert.ErrorIs(t, err, ErrUnsupportedQuery)
}
