package espn

// Wire types for the ESPN scoreboard endpoint. Only the fields the
// service consumes are decoded; a missing "events" key decodes as an
// empty list, not an error.

type scoreboardResponse struct {
	Events []event `json:"events"`
}

type event struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Date         string        `json:"date"`
	Competitions []competition `json:"competitions"`
	Status       *eventStatus  `json:"status"`
}

type competition struct {
	Competitors []competitor `json:"competitors"`
	Venue       *venue       `json:"venue"`
}

type competitor struct {
	HomeAway string   `json:"homeAway"`
	Team     teamInfo `json:"team"`
	Score    string   `json:"score"`
}

type teamInfo struct {
	DisplayName  string `json:"displayName"`
	Abbreviation string `json:"abbreviation"`
	Logo         string `json:"logo"`
}

type venue struct {
	FullName string `json:"fullName"`
}

type eventStatus struct {
	Type         *statusType `json:"type"`
	Period       int         `json:"period"`
	DisplayClock string      `json:"displayClock"`
}

type statusType struct {
	Name        string `json:"name"`
	State       string `json:"state"` // "pre", "in", "post"
	Completed   bool   `json:"completed"`
	ShortDetail string `json:"shortDetail"` // e.g., "Q3 5:32", "Final", "7:30 PM EST"
}
