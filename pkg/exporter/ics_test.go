package exporter

import (
	"bytes"
	"strings"
	"testing"

	"kvvtracker/pkg/transit"
)

func TestGenerateICS(t *testing.T) {
	deps := []transit.Departure{
		{
			Line:             "S1",
			Direction:        "Pforzheim",
			Platform:         "3",
			MinutesRemaining: 5,
			IsRealtime:       true,
		},
		{
			Line:             "S2",
			Direction:        "Karlsruhe",
			Platform:         "1",
			MinutesRemaining: 2,
			IsRealtime:       false,
		},
	}

	var buf bytes.Buffer
	err := GenerateICS("Karlsruhe Marktplatz", deps, &buf)
	if err != nil {
		t.Fatalf("GenerateICS failed: %v", err)
	}

	output := buf.String()

	if !strings.Contains(output, "BEGIN:VCALENDAR") {
		t.Errorf("Expected a calendar envelope, got: \n%s", output)
	}

	if !strings.Contains(output, "S1 to Pforzheim") {
		t.Errorf("Expected ICS to contain the S1 departure summary, got: \n%s", output)
	}

	if !strings.Contains(output, "Platform 1") {
		t.Errorf("Expected ICS to contain the platform location")
	}

	if strings.Count(output, "BEGIN:VEVENT") != 2 {
		t.Errorf("Expected exactly 2 events, got %d", strings.Count(output, "BEGIN:VEVENT"))
	}
}

func TestGenerateICS_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := GenerateICS("Karlsruhe Marktplatz", nil, &buf); err != nil {
		t.Fatalf("GenerateICS failed on empty board: %v", err)
	}

	if strings.Contains(buf.String(), "BEGIN:VEVENT") {
		t.Errorf("Expected no events for an empty board")
	}
}
