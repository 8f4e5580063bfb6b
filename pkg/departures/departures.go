package departures

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/travigo/nexttrain/pkg/transit"
	"golang.org/x/exp/slices"
)

// SelectNext returns the departure time of the first prediction travelling
// in the given direction that leaves strictly after now. Predictions are
// assumed to already be in chronological order.
func SelectNext(direction transit.DirectionCode, predictions []transit.Prediction, now time.Time) (time.Time, bool) {
	var next time.Time

	index := slices.IndexFunc(predictions, func(prediction transit.Prediction) bool {
		if !prediction.TravelsIn(direction) || prediction.DepartureTime == nil {
			return false
		}

		departure, ok := prediction.ParsedDepartureTime()
		if !ok {
			log.Debug().Str("id", prediction.ID).Str("departure_time", *prediction.DepartureTime).Msg("Ignoring unparseable departure time")
			return false
		}

		if !departure.After(now) {
			return false
		}

		next = departure
		return true
	})

	return next, index >= 0
}
