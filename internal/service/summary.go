package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shenikar/neo_risk_system/internal/catalog"
	"github.com/shenikar/neo_risk_system/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// HazardousEntry - оценка одного потенциально опасного объекта
type HazardousEntry struct {
	NeoID             string     `json:"neo_id"`
	Name              string     `json:"name"`
	DiameterM         float64    `json:"diameter_m"`
	EnergyMegatons    float64    `json:"energy_megatons"`
	ImpactProbability float64    `json:"impact_probability"`
	TorinoScale       int        `json:"torino_scale"`
	PalermoScale      float64    `json:"palermo_scale"`
	ThreatLevel       string     `json:"threat_level"`
	CloseApproachDate *time.Time `json:"close_approach_date,omitempty"`
}

// ImpactSummary - сводка по опасным объектам и данные для графика Plotly
type ImpactSummary struct {
	Success   bool             `json:"success"`
	Hazardous []HazardousEntry `json:"hazardous"`
	Plotly    PlotlyFigure     `json:"plotly"`
}

type PlotlyFigure struct {
	Data   []PlotlyTrace `json:"data"`
	Layout PlotlyLayout  `json:"layout"`
}

type PlotlyTrace struct {
	X      []float64    `json:"x"`
	Y      []float64    `json:"y"`
	Text   []string     `json:"text"`
	Mode   string       `json:"mode"`
	Type   string       `json:"type"`
	Name   string       `json:"name"`
	Marker PlotlyMarker `json:"marker"`
}

type PlotlyMarker struct {
	Size       []float64 `json:"size"`
	Color      []int     `json:"color"`
	Colorscale string    `json:"colorscale"`
	ShowScale  bool      `json:"showscale"`
}

type PlotlyLayout struct {
	Title     string     `json:"title"`
	XAxis     PlotlyAxis `json:"xaxis"`
	YAxis     PlotlyAxis `json:"yaxis"`
	HoverMode string     `json:"hovermode"`
}

type PlotlyAxis struct {
	Title string `json:"title"`
	Type  string `json:"type"`
}

// ImpactSummary оценивает опасные объекты локального каталога параллельно.
// Записи, которые движок отклоняет, пропускаются.
func (s *riskService) ImpactSummary(ctx context.Context) (*ImpactSummary, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "risk",
		"method":  "ImpactSummary",
	})

	asteroids, err := s.repo.ListHazardous(ctx, s.cfg.SummaryLimit)
	if err != nil {
		log.WithError(err).Error("Failed to list hazardous asteroids")
		return nil, fmt.Errorf("service: could not list hazardous asteroids: %w", err)
	}

	// Каждая горутина пишет только в свою ячейку
	entries := make([]*HazardousEntry, len(asteroids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(s.cfg.SummaryConcurrency, 1))
	for i, asteroid := range asteroids {
		i, asteroid := i, asteroid
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			entries[i] = s.summaryEntry(log, asteroid)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("service: impact summary interrupted: %w", err)
	}

	hazardous := make([]HazardousEntry, 0, len(entries))
	for _, entry := range entries {
		if entry != nil {
			hazardous = append(hazardous, *entry)
		}
	}
	sort.SliceStable(hazardous, func(i, j int) bool {
		return hazardous[i].EnergyMegatons > hazardous[j].EnergyMegatons
	})

	log.WithFields(logrus.Fields{
		"candidates": len(asteroids),
		"assessed":   len(hazardous),
	}).Info("Impact summary built")

	return &ImpactSummary{
		Success:   true,
		Hazardous: hazardous,
		Plotly:    buildPlotlyFigure(hazardous),
	}, nil
}

func (s *riskService) summaryEntry(log *logrus.Entry, asteroid *models.Asteroid) *HazardousEntry {
	obs, err := catalog.ToObservation(asteroid)
	if err != nil {
		log.WithField("neo_id", asteroid.NeoID).Debug("Skipping record without diameter")
		return nil
	}
	assessment, err := s.assess(obs)
	if err != nil {
		log.WithError(err).WithField("neo_id", asteroid.NeoID).Warn("Skipping record rejected by engine")
		return nil
	}
	return &HazardousEntry{
		NeoID:             asteroid.NeoID,
		Name:              asteroid.Name,
		DiameterM:         obs.DiameterM,
		EnergyMegatons:    assessment.ImpactEffects.EnergyMegatons,
		ImpactProbability: assessment.ImpactProbability,
		TorinoScale:       assessment.TorinoScale,
		PalermoScale:      assessment.PalermoScale,
		ThreatLevel:       assessment.ThreatLevel,
		CloseApproachDate: asteroid.CloseApproachDate,
	}
}

func buildPlotlyFigure(entries []HazardousEntry) PlotlyFigure {
	trace := PlotlyTrace{
		X:    make([]float64, 0, len(entries)),
		Y:    make([]float64, 0, len(entries)),
		Text: make([]string, 0, len(entries)),
		Mode: "markers",
		Type: "scatter",
		Name: "Potentially hazardous asteroids",
		Marker: PlotlyMarker{
			Size:       make([]float64, 0, len(entries)),
			Color:      make([]int, 0, len(entries)),
			Colorscale: "YlOrRd",
			ShowScale:  true,
		},
	}
	for _, e := range entries {
		trace.X = append(trace.X, e.DiameterM)
		trace.Y = append(trace.Y, e.EnergyMegatons)
		trace.Text = append(trace.Text, fmt.Sprintf("%s (Torino %d)", e.Name, e.TorinoScale))
		trace.Marker.Size = append(trace.Marker.Size, float64(8+3*e.TorinoScale))
		trace.Marker.Color = append(trace.Marker.Color, e.TorinoScale)
	}

	return PlotlyFigure{
		Data: []PlotlyTrace{trace},
		Layout: PlotlyLayout{
			Title:     "Potentially hazardous asteroids: impact energy vs diameter",
			XAxis:     PlotlyAxis{Title: "Estimated diameter (m)", Type: "log"},
			YAxis:     PlotlyAxis{Title: "Impact energy (Mt TNT)", Type: "log"},
			HoverMode: "closest",
		},
	}
}
