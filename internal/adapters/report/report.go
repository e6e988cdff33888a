// Package report renders ranked analysis results as CSV tables and the
// textual pool report.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/rebecca-draben/pickle-eyes/internal/domain/pools"
	"github.com/rebecca-draben/pickle-eyes/internal/domain/types"
)

// WriteRatings writes the ranked rating table produced by the
// contextual engine.
func WriteRatings(w io.Writer, rows []types.RatingRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Rank", "Player", "Team", "Rating"}); err != nil {
		return fmt.Errorf("write ratings header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			strconv.Itoa(r.Rank),
			r.Player,
			r.Team,
			formatFloat(r.Rating),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write rating row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteEstimates writes the ranked table for a probabilistic strength
// source.
func WriteEstimates(w io.Writer, rows []types.EstimateRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Rank", "Player", "Team", "Mu", "Sigma"}); err != nil {
		return fmt.Errorf("write estimates header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			strconv.Itoa(r.Rank),
			r.Player,
			r.Team,
			formatFloat(r.Mu),
			formatFloat(r.Sigma),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write estimate row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteSynergies writes the ranked partnership synergy table.
func WriteSynergies(w io.Writer, rows []types.SynergyRow) error {
	cw := csv.NewWriter(w)
	header := []string{
		"Rank", "Partnership", "Player1", "Player2", "Team",
		"Synergy_Score", "Win_Rate", "Games", "Individual_Strength",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write synergy header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			strconv.Itoa(r.Rank),
			r.Partnership,
			r.Player1,
			r.Player2,
			r.Team,
			formatFloat(r.SynergyScore),
			formatFloat(r.WinRate),
			strconv.Itoa(r.Games),
			formatFloat(r.IndividualStrength),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write synergy row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WritePools writes the textual pool report.
func WritePools(w io.Writer, list []types.Pool) error {
	if _, err := io.WriteString(w, pools.Report(list)); err != nil {
		return fmt.Errorf("write pool report: %w", err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
