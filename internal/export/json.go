package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/binarylab/internal/orbit"
	"github.com/san-kum/binarylab/internal/session"
)

type ExportData struct {
	SemiMajorAxis float64               `json:"semi_major_axis"`
	Eccentricity  float64               `json:"eccentricity"`
	MassRatio     float64               `json:"mass_ratio"`
	Rate          float64               `json:"rate"`
	Frame         string                `json:"frame"`
	Dt            float64               `json:"dt"`
	Steps         int                   `json:"steps"`
	Theta         float64               `json:"theta"`
	Time          float64               `json:"time"`
	Positions     map[string][2]float64 `json:"positions"`
	Separations   []float64             `json:"separations"`
	Metrics       map[string]float64    `json:"metrics"`
}

// NewExportData flattens a run result for JSON output.
func NewExportData(res *session.Result, dt float64) ExportData {
	data := ExportData{
		SemiMajorAxis: res.Params.SemiMajorAxis,
		Eccentricity:  res.Params.Eccentricity,
		MassRatio:     res.Params.MassRatio,
		Rate:          res.Params.Rate,
		Frame:         res.Frame.String(),
		Dt:            dt,
		Steps:         res.StepsTaken,
		Theta:         res.State.Theta,
		Time:          res.State.Time,
		Positions:     make(map[string][2]float64),
		Separations:   res.Separations,
		Metrics:       res.Metrics,
	}
	for _, id := range orbit.AllBodies() {
		if p, ok := res.Final.Get(id); ok {
			data.Positions[id.String()] = [2]float64(p)
		}
	}
	return data
}

func WriteJSON(w io.Writer, res *session.Result, dt float64) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewExportData(res, dt))
}
