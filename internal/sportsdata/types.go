// Package sportsdata provides a client for the sports scores provider.
//
// This package enables newsdesk to:
// - Fetch live game scores per sport
// - Fetch team standings per sport
// - Shape heterogeneous per-sport payloads into stable display records
package sportsdata

// LiveScore is a game in progress, shaped for display.
type LiveScore struct {
	ID            string `json:"id"`
	HomeTeam      string `json:"home_team"`
	AwayTeam      string `json:"away_team"`
	HomeScore     int    `json:"home_score"`
	AwayScore     int    `json:"away_score"`
	Period        string `json:"period"`
	TimeRemaining string `json:"time_remaining"`
	Sport         string `json:"sport"`
	StartTime     string `json:"start_time"`
	Status        string `json:"status"`
}

// Standing is one team's win/loss record, shaped for display. Percentage is
// always in the ".XXX" form.
type Standing struct {
	ID         string `json:"id"`
	Team       string `json:"team"`
	Wins       int    `json:"wins"`
	Losses     int    `json:"losses"`
	Percentage string `json:"percentage"`
	Sport      string `json:"sport"`
	Conference string `json:"conference"`
	Division   string `json:"division"`
}

// rawGame covers the field-name variants the provider uses across sports.
type rawGame struct {
	GameID               int64  `json:"GameID"`
	AltID                int64  `json:"ID"`
	HomeTeam             string `json:"HomeTeam"`
	Home                 string `json:"Home"`
	AwayTeam             string `json:"AwayTeam"`
	Away                 string `json:"Away"`
	HomeScore            int    `json:"HomeScore"`
	AwayScore            int    `json:"AwayScore"`
	Quarter              string `json:"Quarter"`
	Period               string `json:"Period"`
	TimeRemaining        string `json:"TimeRemaining"`
	TimeRemainingMinutes int    `json:"TimeRemainingMinutes"`
	TimeRemainingSeconds int    `json:"TimeRemainingSeconds"`
	Clock                string `json:"Clock"`
	DateTime             string `json:"DateTime"`
	StartTime            string `json:"StartTime"`
	Status               string `json:"Status"`
}

// rawTeam covers the field-name variants of standings records.
type rawTeam struct {
	TeamID            int64   `json:"TeamID"`
	AltID             int64   `json:"ID"`
	Name              string  `json:"Name"`
	Team              string  `json:"Team"`
	Wins              int     `json:"Wins"`
	Losses            int     `json:"Losses"`
	Percentage        float64 `json:"Percentage"`
	WinningPercentage float64 `json:"WinningPercentage"`
	Conference        string  `json:"Conference"`
	Group             string  `json:"Group"`
	Division          string  `json:"Division"`
}
