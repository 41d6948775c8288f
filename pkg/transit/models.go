package transit

import (
	"encoding/json"
	"fmt"
)

// Stop is a single candidate returned by the stop search endpoint.
type Stop struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Departure represents a single vehicle leaving a stop.
type Departure struct {
	Line             string `json:"line"`
	Direction        string `json:"direction"`
	Platform         string `json:"platform"`
	MinutesRemaining int    `json:"minutes_remaining"`
	IsRealtime       bool   `json:"is_realtime"`
}

// UnmarshalJSON rejects records with missing fields. The API occasionally
// serves partial records, and a silently zeroed field would render as a
// plausible-looking departure on the board.
func (d *Departure) UnmarshalJSON(data []byte) error {
	var raw struct {
		Line             *string `json:"line"`
		Direction        *string `json:"direction"`
		Platform         *string `json:"platform"`
		MinutesRemaining *int    `json:"minutes_remaining"`
		IsRealtime       *bool   `json:"is_realtime"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch {
	case raw.Line == nil:
		return missingField("line")
	case raw.Direction == nil:
		return missingField("direction")
	case raw.Platform == nil:
		return missingField("platform")
	case raw.MinutesRemaining == nil:
		return missingField("minutes_remaining")
	case raw.IsRealtime == nil:
		return missingField("is_realtime")
	}

	d.Line = *raw.Line
	d.Direction = *raw.Direction
	d.Platform = *raw.Platform
	d.MinutesRemaining = *raw.MinutesRemaining
	d.IsRealtime = *raw.IsRealtime
	return nil
}

func missingField(name string) error {
	return fmt.Errorf("departure record is missing required field %q", name)
}
