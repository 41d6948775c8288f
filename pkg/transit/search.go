package transit

import "strings"

// SearchBoard runs one complete search: resolve the stop name to its best
// match, fetch that stop's departures and render the board. The returned
// text is the whole view for this search, message lines included, so the
// caller can replace its previous output wholesale.
func SearchBoard(c *Client, query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return "Please enter a stop name.\n"
	}

	stops, err := c.SearchStops(query)
	if err != nil {
		return "Error: " + err.Error() + "\n"
	}
	if len(stops) == 0 {
		return "No stop found.\n"
	}

	deps, err := c.FetchDepartures(stops[0].ID)
	if err != nil {
		return "Error: " + err.Error() + "\n"
	}

	lines := RenderBoard(deps)
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
