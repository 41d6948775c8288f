package transit

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestDepartureUnmarshal(t *testing.T) {
	data := `{"line": "S2", "direction": "Karlsruhe", "platform": "1", "minutes_remaining": 0, "is_realtime": false}`

	var d Departure
	if err := json.Unmarshal([]byte(data), &d); err != nil {
		t.Fatalf("unexpected error decoding a complete record: %v", err)
	}

	if d.Line != "S2" || d.Direction != "Karlsruhe" || d.Platform != "1" {
		t.Errorf("record decoded incorrectly: %+v", d)
	}
	// Zero is a legitimate value, only absence is an error
	if d.MinutesRemaining != 0 || d.IsRealtime {
		t.Errorf("zero-valued fields decoded incorrectly: %+v", d)
	}
}

func TestDepartureUnmarshal_MissingFields(t *testing.T) {
	cases := map[string]string{
		`{"direction": "Karlsruhe", "platform": "1", "minutes_remaining": 2, "is_realtime": false}`: "line",
		`{"line": "S2", "direction": "Karlsruhe", "platform": "1", "minutes_remaining": 2}`:         "is_realtime",
	}

	for data, field := range cases {
		var d Departure
		err := json.Unmarshal([]byte(data), &d)
		if err == nil {
			t.Errorf("expected an error for record without %q, got nil", field)
			continue
		}
		if !strings.Contains(err.Error(), field) {
			t.Errorf("expected error to name %q, got %q", field, err.Error())
		}
	}
}
