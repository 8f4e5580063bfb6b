package transit

import "time"

// Prediction is a live departure estimate for a vehicle at a stop
type Prediction struct {
	ID            string
	DirectionID   *DirectionCode
	DepartureTime *string
}

type predictionAttributes struct {
	DirectionID   *DirectionCode `json:"direction_id"`
	DepartureTime *string        `json:"departure_time"`
}

func NewPredictionFromResource(resource Resource) (Prediction, error) {
	var attributes predictionAttributes
	if err := resource.decodeAttributes(&attributes); err != nil {
		return Prediction{}, err
	}

	return Prediction{
		ID:            resource.ID,
		DirectionID:   attributes.DirectionID,
		DepartureTime: attributes.DepartureTime,
	}, nil
}

// TravelsIn reports whether the prediction is for the given direction. A
// prediction without a direction never matches.
func (p Prediction) TravelsIn(direction DirectionCode) bool {
	return p.DirectionID != nil && *p.DirectionID == direction
}

// ParsedDepartureTime returns the departure timestamp if one is present and
// well formed
func (p Prediction) ParsedDepartureTime() (time.Time, bool) {
	if p.DepartureTime == nil || *p.DepartureTime == "" {
		return time.Time{}, false
	}

	departure, err := time.Parse(time.RFC3339, *p.DepartureTime)
	if err != nil {
		return time.Time{}, false
	}

	return departure, true
}
