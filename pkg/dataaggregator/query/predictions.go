package query

type Predictions struct {
	StopID  string
	RouteID string
}
