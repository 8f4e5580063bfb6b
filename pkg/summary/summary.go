package summary

import (
	"fmt"
	"io"
	"time"

	"github.com/travigo/nexttrain/pkg/session"
)

const (
	border          = "-------------------------------"
	departureLayout = "03:04:05PM on 2006/01/02"
)

type Reporter struct {
	Out      io.Writer
	Clock    func() time.Time
	Location *time.Location
}

// Print writes the trip summary. next is nil when no train is scheduled.
func (r Reporter) Print(state session.DirectionSelected, next *time.Time) {
	fmt.Fprintf(r.Out, "\n%s\n", border)
	fmt.Fprintf(r.Out, "The next %s train\n", state.Route().LongName)
	fmt.Fprintf(r.Out, "At stop: %s\n", state.Stop().Name)
	fmt.Fprintf(r.Out, "Going in the direction: %s\n", state.DirectionDescription())

	if next != nil {
		fmt.Fprintf(r.Out, "Will be departing at: %s\n", r.localise(*next).Format(departureLayout))
		fmt.Fprintln(r.Out, TimeToSpare(next.Sub(r.now())))
	} else {
		fmt.Fprintln(r.Out, "Does not exist.")
		fmt.Fprintln(r.Out, "There is no scheduled train for the trip listed above.")
	}

	fmt.Fprintln(r.Out, border)
}

// TimeToSpare renders the wait as whole minutes and leftover whole seconds
func TimeToSpare(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}

	totalSeconds := int(remaining / time.Second)
	minutes := totalSeconds / 60
	seconds := totalSeconds % 60

	return fmt.Sprintf("You have: %d %s and %d %s to spare",
		minutes, pluralize("minute", minutes),
		seconds, pluralize("second", seconds))
}

func (r Reporter) now() time.Time {
	if r.Clock == nil {
		return time.Now()
	}
	return r.Clock()
}

func (r Reporter) localise(t time.Time) time.Time {
	if r.Location == nil {
		return t
	}
	return t.In(r.Location)
}

func pluralize(word string, amount int) string {
	if amount == 1 {
		return word
	}
	return word + "s"
}
