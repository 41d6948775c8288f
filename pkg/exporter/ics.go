package exporter

import (
	"fmt"
	"io"
	"time"

	"kvvtracker/pkg/transit"

	ics "github.com/arran4/golang-ical"
)

// GenerateICS turns a departure board into a calendar and writes it to the
// provided writer. Each departure becomes one event starting at its
// projected departure time, so the board can be dropped into any calendar
// app for a quick visual timeline.
func GenerateICS(stopName string, deps []transit.Departure, w io.Writer) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	now := time.Now()

	for i, d := range deps {
		departsAt := now.Add(time.Duration(d.MinutesRemaining) * time.Minute)

		event := cal.AddEvent(fmt.Sprintf("%s-departure-%d", departsAt.Format("20060102T150405Z"), i))
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetModifiedAt(now)
		event.SetStartAt(departsAt)
		event.SetEndAt(departsAt.Add(5 * time.Minute))
		event.SetSummary(fmt.Sprintf("🚋 %s to %s", d.Line, d.Direction))
		event.SetLocation(fmt.Sprintf("%s, Platform %s", stopName, d.Platform))

		timing := "scheduled time"
		if d.IsRealtime {
			timing = "live-tracked time"
		}
		event.SetDescription(fmt.Sprintf("Line %s towards %s, departing in %d min (%s).",
			d.Line, d.Direction, d.MinutesRemaining, timing))
	}

	serialized := cal.Serialize()
	if _, err := io.WriteString(w, serialized); err != nil {
		return fmt.Errorf("could not write calendar: %w", err)
	}

	return nil
}
