package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type Stop struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Departure struct {
	Line             string `json:"line"`
	Direction        string `json:"direction"`
	Platform         string `json:"platform"`
	MinutesRemaining int    `json:"minutes_remaining"`
	IsRealtime       bool   `json:"is_realtime"`
}

func main() {
	base := "https://kvvapi.fuadserver.uk/api"

	fmt.Println("Probing the KVV API...")

	resp, err := http.Get(base + "/stops/search?q=Marktplatz")
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	var stops []Stop
	if err := json.Unmarshal(body, &stops); err != nil {
		fmt.Println("Error decoding stops JSON:", err)
		return
	}
	if len(stops) == 0 {
		fmt.Println("No stops returned for Marktplatz")
		return
	}

	fmt.Printf("First match: %s (%s)\n", stops[0].Name, stops[0].ID)

	resp2, err := http.Get(base + "/stops/" + stops[0].ID)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	defer resp2.Body.Close()

	body2, _ := io.ReadAll(resp2.Body)

	var deps []Departure
	if err := json.Unmarshal(body2, &deps); err != nil {
		fmt.Println("Error decoding departures JSON:", err)
		return
	}

	fmt.Printf("\n--- 🚋 Departures: %s ---\n", stops[0].Name)
	for _, d := range deps {
		live := "scheduled"
		if d.IsRealtime {
			live = "live"
		}
		fmt.Printf("[Platform %s] %s -> %s in %dm (%s)\n",
			d.Platform, d.Line, d.Direction, d.MinutesRemaining, live)
	}
}
