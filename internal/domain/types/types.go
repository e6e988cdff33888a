// Package types contains common types used across the application
package types

// RatingRow is one line of a ranked rating table.
type RatingRow struct {
	Rank   int     `json:"rank"`
	Player string  `json:"player"`
	Team   string  `json:"team"`
	Rating float64 `json:"rating"`
}

// EstimateRow is one line of a ranked probabilistic rating table.
type EstimateRow struct {
	Rank   int     `json:"rank"`
	Player string  `json:"player"`
	Team   string  `json:"team"`
	Mu     float64 `json:"mu"`
	Sigma  float64 `json:"sigma"`
}

// SynergyRow is one line of the ranked partnership synergy table.
type SynergyRow struct {
	Rank               int     `json:"rank"`
	Partnership        string  `json:"partnership"`
	Player1            string  `json:"player1"`
	Player2            string  `json:"player2"`
	Team               string  `json:"team"`
	SynergyScore       float64 `json:"synergy_score"`
	WinRate            float64 `json:"win_rate"`
	Games              int     `json:"games"`
	AvgScoreDiff       float64 `json:"avg_score_diff"`
	IndividualStrength float64 `json:"individual_strength"`
}

// Pool is one connected component of the competition graph: players
// who are comparable under a single ranking.
type Pool struct {
	Players []string `json:"players"` // sorted alphabetically
}

// Size returns the number of players in the pool.
func (p Pool) Size() int { return len(p.Players) }
