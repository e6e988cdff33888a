package main

import (
	"flag"
	"os"
	"time"

	"github.com/rebecca-draben/pickle-eyes/internal/gendata"
)

func main() {
	var (
		teams       = flag.Int("teams", 4, "Number of teams")
		players     = flag.Int("players", 4, "Players per team")
		matches     = flag.Int("matches", 20, "Number of matches (one per day)")
		games       = flag.Int("games", 3, "Games per match")
		start       = flag.String("start", "2024-09-01", "First match date (YYYY-MM-DD)")
		forfeitRate = flag.Float64("forfeit-rate", 0.05, "Probability a game is a forfeit")
		seed        = flag.Int64("seed", 42, "Random seed (fixed seed gives reproducible output)")
		output      = flag.String("output", "match_data.csv", "Output CSV file")
	)
	flag.Parse()

	startDate, err := time.Parse("2006-01-02", *start)
	if err != nil {
		os.Stderr.WriteString("invalid start date: " + err.Error() + "\n")
		os.Exit(2)
	}

	gen := gendata.New(gendata.Config{
		Teams:          *teams,
		PlayersPerTeam: *players,
		Matches:        *matches,
		GamesPerMatch:  *games,
		StartDate:      startDate,
		ForfeitRate:    *forfeitRate,
		Seed:           *seed,
	})

	f, err := os.Create(*output)
	if err != nil {
		os.Stderr.WriteString("failed to create output: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer f.Close()

	if err := gendata.WriteCSV(f, gen.Generate()); err != nil {
		os.Stderr.WriteString("failed to write match data: " + err.Error() + "\n")
		os.Exit(1)
	}
}
