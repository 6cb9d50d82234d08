package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/binarylab/internal/dynamo"
	"github.com/san-kum/binarylab/internal/orbit"
	"github.com/san-kum/binarylab/internal/session"
	"github.com/san-kum/binarylab/internal/trail"
)

const (
	metadataFile   = "metadata.json"
	trailsFile     = "trails.csv"
	separationFile = "separation.csv"
	gridFile       = "grid.csv"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Kind      string             `json:"kind"`
	Timestamp time.Time          `json:"timestamp"`
	Params    map[string]float64 `json:"params"`
	Frame     string             `json:"frame,omitempty"`
	Dt        float64            `json:"dt,omitempty"`
	Steps     int                `json:"steps,omitempty"`
	Rows      int                `json:"rows,omitempty"`
	Cols      int                `json:"cols,omitempty"`
	Metrics   map[string]float64 `json:"metrics,omitempty"`
}

func (s *Store) newRun(kind string) (string, string, error) {
	runID := fmt.Sprintf("%s_%d", kind, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", "", err
	}
	return runID, runDir, nil
}

func writeMetadata(runDir string, meta RunMetadata) error {
	f, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	return w.Error()
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	return r.ReadAll()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// OrbitParams flattens orbit parameters for metadata.
func OrbitParams(p orbit.Params) map[string]float64 {
	return map[string]float64{
		"semi_major_axis": p.SemiMajorAxis,
		"eccentricity":    p.Eccentricity,
		"mass_ratio":      p.MassRatio,
		"rate":            p.Rate,
	}
}

// SaveOrbit stores a headless run: its metadata, the trails still held in
// trails, and the per-tick separation series.
func (s *Store) SaveOrbit(res *session.Result, dt float64, trails *trail.Set) (string, error) {
	runID, runDir, err := s.newRun("orbit")
	if err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Kind:      "orbit",
		Timestamp: time.Now(),
		Params:    OrbitParams(res.Params),
		Frame:     res.Frame.String(),
		Dt:        dt,
		Steps:     res.StepsTaken,
		Metrics:   res.Metrics,
	}
	if err := writeMetadata(runDir, meta); err != nil {
		return "", err
	}

	rows := make([][]string, 0)
	if trails != nil {
		for _, id := range orbit.AllBodies() {
			for _, p := range trails.Buffer(id).Points() {
				rows = append(rows, []string{id.String(), formatFloat(p[0]), formatFloat(p[1])})
			}
		}
	}
	if err := writeCSV(filepath.Join(runDir, trailsFile), []string{"body", "x", "y"}, rows); err != nil {
		return "", err
	}

	rows = make([][]string, len(res.Separations))
	for i, r := range res.Separations {
		rows[i] = []string{strconv.Itoa(i + 1), formatFloat(r)}
	}
	if err := writeCSV(filepath.Join(runDir, separationFile), []string{"step", "separation"}, rows); err != nil {
		return "", err
	}

	return runID, nil
}

// SaveGrid stores a scalar field. The CSV header holds the x axis; each
// following row starts with its y value.
func (s *Store) SaveGrid(kind string, params map[string]float64, g *dynamo.Grid) (string, error) {
	runID, runDir, err := s.newRun(kind)
	if err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Kind:      kind,
		Timestamp: time.Now(),
		Params:    params,
		Rows:      g.Rows(),
		Cols:      g.Cols(),
	}
	if err := writeMetadata(runDir, meta); err != nil {
		return "", err
	}

	if err := WriteGridCSV(filepath.Join(runDir, gridFile), g); err != nil {
		return "", err
	}
	return runID, nil
}

// WriteGridCSV writes g in the layout used by SaveGrid.
func WriteGridCSV(path string, g *dynamo.Grid) error {
	header := make([]string, 0, g.Cols()+1)
	header = append(header, "y\\x")
	for _, x := range g.X {
		header = append(header, formatFloat(x))
	}

	rows := make([][]string, g.Rows())
	for j, y := range g.Y {
		row := make([]string, 0, g.Cols()+1)
		row = append(row, formatFloat(y))
		for _, v := range g.Values[j] {
			row = append(row, formatFloat(v))
		}
		rows[j] = row
	}
	return writeCSV(path, header, rows)
}

// List returns every readable run, oldest first. Directories without valid
// metadata are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadTrails reads the stored trails keyed by body. Rows naming an unknown
// body or holding unparsable numbers are skipped.
func (s *Store) LoadTrails(runID string) (map[orbit.BodyID][]mgl64.Vec2, error) {
	records, err := readCSV(filepath.Join(s.baseDir, runID, trailsFile))
	if err != nil {
		return nil, err
	}

	byName := make(map[string]orbit.BodyID)
	for _, id := range orbit.AllBodies() {
		byName[id.String()] = id
	}

	trails := make(map[orbit.BodyID][]mgl64.Vec2)
	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 3 {
			continue
		}
		id, ok := byName[record[0]]
		if !ok {
			continue
		}
		x, errX := strconv.ParseFloat(record[1], 64)
		y, errY := strconv.ParseFloat(record[2], 64)
		if errX != nil || errY != nil {
			continue
		}
		trails[id] = append(trails[id], mgl64.Vec2{x, y})
	}

	return trails, nil
}

func (s *Store) LoadSeparations(runID string) ([]float64, error) {
	records, err := readCSV(filepath.Join(s.baseDir, runID, separationFile))
	if err != nil {
		return nil, err
	}

	seps := make([]float64, 0, len(records))
	for i := 1; i < len(records); i++ {
		if len(records[i]) < 2 {
			continue
		}
		r, err := strconv.ParseFloat(records[i][1], 64)
		if err != nil {
			continue
		}
		seps = append(seps, r)
	}
	return seps, nil
}

// LoadGrid reads a grid written by SaveGrid.
func (s *Store) LoadGrid(runID string) (*dynamo.Grid, error) {
	records, err := readCSV(filepath.Join(s.baseDir, runID, gridFile))
	if err != nil {
		return nil, err
	}
	if len(records) < 2 || len(records[0]) < 2 {
		return nil, fmt.Errorf("%w: %s has no cells", dynamo.ErrEmptyDomain, runID)
	}

	x, err := parseFloats(records[0][1:])
	if err != nil {
		return nil, fmt.Errorf("%s header: %w", runID, err)
	}

	y := make([]float64, 0, len(records)-1)
	values := make([][]float64, 0, len(records)-1)
	for i := 1; i < len(records); i++ {
		row, err := parseFloats(records[i])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", runID, i, err)
		}
		if len(row) != len(x)+1 {
			return nil, fmt.Errorf("%s row %d: expected %d cells, got %d", runID, i, len(x), len(row)-1)
		}
		y = append(y, row[0])
		values = append(values, row[1:])
	}

	g := dynamo.NewGrid(x, y)
	g.Values = values
	return g, nil
}

func parseFloats(fields []string) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
