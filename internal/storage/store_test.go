package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/binarylab/internal/dynamo"
	"github.com/san-kum/binarylab/internal/metrics"
	"github.com/san-kum/binarylab/internal/orbit"
	"github.com/san-kum/binarylab/internal/session"
)

func newSession(t *testing.T, frame orbit.Frame) *session.Session {
	t.Helper()
	s, err := session.New(orbit.Params{SemiMajorAxis: 5, Eccentricity: 0.3, MassRatio: 0.5, Rate: 1}, frame, 0)
	if err != nil {
		t.Fatal(err)
	}
	for _, m := range metrics.Standard() {
		s.AddMetric(m)
	}
	return s
}

func TestStoreSaveLoadOrbit(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	s := newSession(t, orbit.Observer)
	res, err := s.Run(context.Background(), 0.01, 50)
	if err != nil {
		t.Fatal(err)
	}

	runID, err := st.SaveOrbit(res, 0.01, s.Trails())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Error("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Kind != "orbit" || meta.Frame != "observer" {
		t.Errorf("unexpected metadata: %+v", meta)
	}
	if meta.Steps != 50 || meta.Params["mass_ratio"] != 0.5 {
		t.Errorf("unexpected metadata: %+v", meta)
	}
	if _, ok := meta.Metrics["com_drift"]; !ok {
		t.Error("metrics not stored")
	}

	trails, err := st.LoadTrails(runID)
	if err != nil {
		t.Fatalf("load trails failed: %v", err)
	}
	for _, id := range orbit.AllBodies() {
		want := s.Trails().Buffer(id).Points()
		got := trails[id]
		if len(got) != len(want) {
			t.Fatalf("%v: expected %d points, got %d", id, len(want), len(got))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("%v[%d] = %v, want %v", id, i, got[i], want[i])
			}
		}
	}

	seps, err := st.LoadSeparations(runID)
	if err != nil {
		t.Fatalf("load separations failed: %v", err)
	}
	if len(seps) != 50 || seps[49] != res.Separations[49] {
		t.Errorf("separation series not preserved: %d points", len(seps))
	}
}

func TestStoreSaveLoadGrid(t *testing.T) {
	st := New(t.TempDir())
	st.Init()

	g := dynamo.NewGrid([]float64{-1, 0, 1}, []float64{-2, 2})
	g.Values[0] = []float64{1, 2, 3}
	g.Values[1] = []float64{4, 5, 6.25e-9}

	runID, err := st.SaveGrid("roche", map[string]float64{"m1": 1, "m2": 0.5}, g)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatal(err)
	}
	if meta.Rows != 2 || meta.Cols != 3 || meta.Params["m2"] != 0.5 {
		t.Errorf("unexpected metadata: %+v", meta)
	}

	got, err := st.LoadGrid(runID)
	if err != nil {
		t.Fatalf("load grid failed: %v", err)
	}
	for j := 0; j < g.Rows(); j++ {
		if got.Y[j] != g.Y[j] {
			t.Errorf("y[%d] = %f, want %f", j, got.Y[j], g.Y[j])
		}
		for i := 0; i < g.Cols(); i++ {
			if got.At(j, i) != g.At(j, i) {
				t.Errorf("cell (%d,%d) = %g, want %g", j, i, got.At(j, i), g.At(j, i))
			}
		}
	}
}

func TestStoreList(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	g := dynamo.NewGrid([]float64{0, 1}, []float64{0, 1})
	first, _ := st.SaveGrid("disk", nil, g)
	second, _ := st.SaveGrid("roche", nil, g)

	// Stray directories without metadata are ignored.
	os.MkdirAll(filepath.Join(tmpDir, "junk"), 0755)

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != first || runs[1].ID != second {
		t.Errorf("runs not ordered by time: %s, %s", runs[0].ID, runs[1].ID)
	}
}

func TestStoreFileStructure(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	s := newSession(t, orbit.Inertial)
	res, _ := s.Run(context.Background(), 0.01, 5)

	runID, err := st.SaveOrbit(res, 0.01, s.Trails())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	for _, name := range []string{"metadata.json", "trails.csv", "separation.csv"} {
		if _, err := os.Stat(filepath.Join(tmpDir, runID, name)); os.IsNotExist(err) {
			t.Errorf("%s not created", name)
		}
	}
}

func TestLoadMissing(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("nope"); err == nil {
		t.Error("expected error for missing run")
	}
	if _, err := st.LoadGrid("nope"); err == nil {
		t.Error("expected error for missing grid")
	}
}
