// Package selftest holds the checks run when the rider types "test" at the
// startup prompt. They exercise the direction heuristic offline and the API
// client against the configured endpoint.
package selftest

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/travigo/nexttrain/pkg/mbta"
	"github.com/travigo/nexttrain/pkg/selection"
)

var ErrChecksFailed = errors.New("self test checks failed")

type Check struct {
	Name string
	Run  func(ctx context.Context) error
}

type Result struct {
	Name string
	Err  error
}

func (r Result) Passed() bool {
	return r.Err == nil
}

func Checks(client *mbta.Client) []Check {
	return []Check{
		{"valid destination with different names", destinationCheck("Cleveland Circle", "Copley", true)},
		{"invalid destination with same names", destinationCheck("North Station", "North Station", false)},
		{"invalid destination with name within name", destinationCheck("Ashmont/Braintree", "Braintree", false)},
		{
			Name: "rail routes return data",
			Run: func(ctx context.Context) error {
				routes, err := client.RailRoutes(ctx)
				if err != nil {
					return err
				}
				if len(routes) == 0 {
					return errors.New("no routes returned")
				}
				return nil
			},
		},
		{
			Name: "invalid path returns no data",
			Run: func(ctx context.Context) error {
				data, err := client.FetchData(ctx, "this_is_invalid", map[string]string{"no_params": "fake_news"})
				if err != nil {
					return err
				}
				if data != nil {
					return errors.New("expected no data")
				}
				return nil
			},
		},
		{
			Name: "stops for Mattapan return data",
			Run: func(ctx context.Context) error {
				stops, err := client.StopsForRoute(ctx, "Mattapan")
				if err != nil {
					return err
				}
				if len(stops) == 0 {
					return errors.New("no stops returned")
				}
				return nil
			},
		},
	}
}

func destinationCheck(destination string, stop string, expected bool) func(context.Context) error {
	return func(context.Context) error {
		if got := selection.IsValidDestination(destination, stop); got != expected {
			return fmt.Errorf("IsValidDestination(%q, %q) = %t, want %t", destination, stop, got, expected)
		}
		return nil
	}
}

// Run executes every check, logging each outcome, and fails if any check did
func Run(ctx context.Context, checks []Check) ([]Result, error) {
	results := make([]Result, 0, len(checks))
	failed := 0

	for _, check := range checks {
		result := Result{Name: check.Name, Err: check.Run(ctx)}
		results = append(results, result)

		if result.Passed() {
			log.Info().Str("check", check.Name).Msg("PASS")
		} else {
			failed++
			log.Error().Err(result.Err).Str("check", check.Name).Msg("FAIL")
		}
	}

	log.Info().Int("passed", len(checks)-failed).Int("failed", failed).Msg("Self test finished")

	if failed > 0 {
		return results, fmt.Errorf("%w: %d of %d", ErrChecksFailed, failed, len(checks))
	}

	return results, nil
}
