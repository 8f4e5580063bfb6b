package dataaggregator

import (
	"context"
	"errors"
	"reflect"

	"github.com/rs/zerolog/log"
)

var ErrNoMatchingSource = errors.New("failed to find a matching data source for type")

type Aggregator struct {
	Sources []DataSource
}

func New(sources ...DataSource) *Aggregator {
	aggregator := &Aggregator{}

	for _, source := range sources {
		aggregator.RegisterSource(source)
	}

	return aggregator
}

func (a *Aggregator) RegisterSource(source DataSource) {
	a.Sources = append(a.Sources, source)

	log.Debug().Str("name", source.GetName()).Msg("Registering new Data Source")
}

// Lookup asks the first source that supports T to answer the query
func Lookup[T any](ctx context.Context, a *Aggregator, query any) (T, error) {
	var empty T

	lookupType := reflect.TypeOf(*new(T))
	if lookupType.Kind() == reflect.Pointer {
		lookupType = lookupType.Elem()
	}

	for _, source := range a.Sources {
		matches := false

		for _, supportedType := range source.Supports() {
			if lookupType == supportedType {
				matches = true
				break
			}
		}

		if !matches {
			continue
		}

		returnValue, returnError := source.Lookup(ctx, query)

		if returnValue == nil {
			return empty, returnError
		}

		typed, ok := returnValue.(T)
		if !ok {
			return empty, errors.New("data source returned an unexpected type")
		}

		return typed, returnError
	}

	return empty, ErrNoMatchingSource
}
