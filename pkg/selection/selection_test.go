package selection

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/nexttrain/pkg/transit"
)

var mattapanRoute = transit.Route{
	LongName:              "Mattapan Trolley",
	ID:                    "Mattapan",
	DirectionNames:        []string{"Outbound", "Inbound"},
	DirectionDestinations: []string{"Mattapan", "Ashmont"},
}

func newPrompter(input string) (*Prompter, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return NewPrompter(strings.NewReader(input), out), out
}

func TestIsValidDestination(t *testing.T) {
	tests := []struct {
		name        string
		destination string
		stop        string
		valid       bool
	}{
		{"different names", "Cleveland Circle", "Copley", true},
		{"same names", "North Station", "North Station", false},
		{"name within name", "Ashmont/Braintree", "Braintree", false},
		{"case sensitive", "Ashmont/Braintree", "braintree", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidDestination(tt.destination, tt.stop))
		})
	}
}

func TestChooseValidInput(t *testing.T) {
	prompter, out := newPrompter("6\n")

	choice, err := prompter.Choose("route", []string{"a", "b", "c", "d", "e", "f", "g"})
	require.NoError(t, err)

	assert.Equal(t, 6, choice)
	assert.Contains(t, out.String(), "ID(6) g\n")
	assert.Contains(t, out.String(), "+ please select route by entering ID number:")
	assert.NotContains(t, out.String(), "ERROR")
}

func TestChooseRetriesUntilValid(t *testing.T) {
	prompter, out := newPrompter("hey this is not valid\n100\n-1\n3\n\n2\n")

	choice, err := prompter.Choose("stop", []string{"a", "b", "c"})
	require.NoError(t, err)

	assert.Equal(t, 2, choice)
	assert.Equal(t, 2, strings.Count(out.String(), "ERROR: your entered value must be a number"))
	assert.Equal(t, 3, strings.Count(out.String(), "ERROR: your entered value must be between [0, 2]"))
	assert.Equal(t, 1, strings.Count(out.String(), "ID(0) a"))
}

func TestChooseRejectsIndexEqualToCount(t *testing.T) {
	prompter, out := newPrompter("21\n20\n")

	choice, err := prompter.Choose("route", make([]string, 21))
	require.NoError(t, err)

	assert.Equal(t, 20, choice)
	assert.Contains(t, out.String(), "ERROR: your entered value must be between [0, 20]")
}

func TestChooseEmptyList(t *testing.T) {
	prompter, _ := newPrompter("0\n")

	_, err := prompter.Choose("route", nil)
	assert.ErrorIs(t, err, ErrNoCandidates)
}

func TestChooseInputClosed(t *testing.T) {
	prompter, _ := newPrompter("nope\n")

	_, err := prompter.Choose("route", []string{"a"})
	assert.ErrorIs(t, err, ErrInputClosed)
}

func TestSelectRoute(t *testing.T) {
	var resources []transit.Resource
	require.NoError(t, json.Unmarshal([]byte(`[
		{"id":"Red","attributes":{"long_name":"Red Line","direction_names":["South","North"],"direction_destinations":["Ashmont/Braintree","Alewife"]}},
		{"id":"Mattapan","attributes":{"long_name":"Mattapan Trolley","direction_names":["Outbound","Inbound"],"direction_destinations":["Mattapan","Ashmont"]}}
	]`), &resources))

	prompter, out := newPrompter("1\n")

	route, err := prompter.SelectRoute(resources)
	require.NoError(t, err)

	assert.Equal(t, mattapanRoute, route)
	assert.Contains(t, out.String(), "ID(0) Red Line\n-----------------------------\nID(1) Mattapan Trolley\n")
}

func TestSelectStop(t *testing.T) {
	var resources []transit.Resource
	require.NoError(t, json.Unmarshal([]byte(`[
		{"id":"place-matt","attributes":{"name":"Mattapan"}},
		{"id":"place-capst","attributes":{"name":"Capen Street"}},
		{"id":"place-valrd","attributes":{"name":"Valley Road"}},
		{"id":"place-miltt","attributes":{"name":"Milton"}}
	]`), &resources))

	prompter, _ := newPrompter("3\n")

	stop, err := prompter.SelectStop(resources)
	require.NoError(t, err)

	assert.Equal(t, transit.Stop{Name: "Milton", ID: "place-miltt"}, stop)
}

func TestSelectStopNoData(t *testing.T) {
	prompter, _ := newPrompter("0\n")

	_, err := prompter.SelectStop([]transit.Resource{})
	assert.ErrorIs(t, err, ErrNoCandidates)
}

func TestSelectDirection(t *testing.T) {
	prompter, out := newPrompter("1\n")

	direction, err := prompter.SelectDirection(mattapanRoute, transit.Stop{Name: "Milton", ID: "place-miltt"})
	require.NoError(t, err)

	assert.Equal(t, transit.DirectionCode(1), direction)
	assert.Contains(t, out.String(), "ID(0) Outbound to Mattapan\nID(1) Inbound to Ashmont\n")
}

func TestSelectDirectionRestartsAfterEndOfTrack(t *testing.T) {
	prompter, out := newPrompter("0\n5\n0\n1\n")

	direction, err := prompter.SelectDirection(mattapanRoute, transit.Stop{Name: "Mattapan", ID: "place-matt"})
	require.NoError(t, err)

	assert.Equal(t, transit.DirectionCode(1), direction)
	assert.Equal(t, 2, strings.Count(out.String(), "ERROR: You are already at the end of the track."))
	assert.Equal(t, 4, strings.Count(out.String(), "The following are your direction options:"))
}

func TestSelectDirectionInputClosed(t *testing.T) {
	prompter, _ := newPrompter("0\n")

	_, err := prompter.SelectDirection(mattapanRoute, transit.Stop{Name: "Mattapan"})
	assert.ErrorIs(t, err, ErrInputClosed)
}

func TestSelectDirectionNoValidDirection(t *testing.T) {
	loop := transit.Route{
		LongName:              "Park Street Shuttle",
		ID:                    "Shuttle-Park",
		DirectionNames:        []string{"Outbound", "Inbound"},
		DirectionDestinations: []string{"Park Street Loop", "Park Street"},
	}

	tests := []struct {
		name string
		stop transit.Stop
	}{
		{"both destinations contain the stop", transit.Stop{Name: "Park Street", ID: "place-pktrm"}},
		{"empty stop name", transit.Stop{Name: "", ID: "unnamed"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompter, out := newPrompter("0\n1\n")

			_, err := prompter.SelectDirection(loop, tt.stop)
			assert.ErrorIs(t, err, ErrNoValidDirection)
			assert.Empty(t, out.String())
		})
	}
}
