package responses

// ProfileData is the response for GET /api/profile/{character_id}
type ProfileData struct {
	Main           CharacterDetails       `json:"main"`
	Alts           []CharacterDetails     `json:"alts"`
	TotalFleetTime []ActivitySummaryEntry `json:"total_fleet_time"`
}

// CharacterDetails describes one character of the account group
type CharacterDetails struct {
	ID        int64                  `json:"id"`
	Name      string                 `json:"name"`
	Role      *string                `json:"role"`
	Badges    []string               `json:"badges"`
	FleetTime []ActivitySummaryEntry `json:"fleet_time"`
}

// ActivitySummaryEntry is the time spent in fleet flying one hull, in seconds
type ActivitySummaryEntry struct {
	Hull        Hull  `json:"hull"`
	TimeInFleet int64 `json:"time_in_fleet"`
}

type Hull struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
