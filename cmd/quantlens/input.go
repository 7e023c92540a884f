package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/quantlens/quantlens/internal/models"
)

// flexFloat accepts both JSON numbers and numeric strings, which is how
// upstream feeds deliver prices and volumes.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*f = flexFloat(0)
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("numeric value expected, got %q", s)
	}
	*f = flexFloat(v)
	return nil
}

type inputPoint struct {
	Timestamp int64     `json:"timestamp"`
	Price     flexFloat `json:"price"`
	Volume    flexFloat `json:"volume"`
}

// inputDoc is the JSON document the CLI consumes: one instrument's daily
// series plus its normalized statement records and peer list.
type inputDoc struct {
	Symbol     string                       `json:"symbol"`
	Prices     []inputPoint                 `json:"prices"`
	Volumes    []inputPoint                 `json:"volumes"`
	Financials []models.FinancialYearRecord `json:"financials"`
	Peers      []models.PeerRecord          `json:"peers"`
}

func readInput(path string) (*inputDoc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	var doc inputDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse input: %w", err)
	}
	return &doc, nil
}

func (d *inputDoc) pricePoints() []models.PricePoint {
	out := make([]models.PricePoint, 0, len(d.Prices))
	for _, p := range d.Prices {
		out = append(out, models.PricePoint{Timestamp: p.Timestamp, Price: float64(p.Price)})
	}
	return out
}

func (d *inputDoc) volumePoints() []models.VolumePoint {
	out := make([]models.VolumePoint, 0, len(d.Volumes))
	for _, v := range d.Volumes {
		out = append(out, models.VolumePoint{Timestamp: v.Timestamp, Volume: float64(v.Volume)})
	}
	return out
}

// report is the combined output document
type report struct {
	Analysis   *models.Analysis        `json:"analysis"`
	Financials *models.FinancialReport `json:"financials"`
}

func writeReport(path string, a *models.Analysis, f *models.FinancialReport) error {
	data, err := json.MarshalIndent(report{Analysis: a, Financials: f}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if path == "" {
		_, err = os.Stdout.Write(append(data, '\n'))
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
