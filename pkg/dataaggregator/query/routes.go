package query

// Routes lists every route of the client's configured route types
type Routes struct{}
