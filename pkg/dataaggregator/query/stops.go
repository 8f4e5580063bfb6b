package query

type Stops struct {
	RouteID string
}
