// Package storage persists finished tour runs for later plotting and
// export. Each run is a directory holding metadata.json (instance and
// result) and steps.csv (the construction trace).
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

	"github.com/google/uuid"

	"github.com/san-kum/toursim/internal/geom"
	"github.com/san-kum/toursim/internal/tour"
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

// RunMetadata captures one saved run: the instance that produced the
// tour and the tour itself. The step trace lives in steps.csv.
type RunMetadata struct {
	ID            string       `json:"id"`
	Timestamp     time.Time    `json:"timestamp"`
	Seed          int64        `json:"seed"`
	Start         int          `json:"start"`
	Width         float64      `json:"width"`
	Height        float64      `json:"height"`
	Scale         float64      `json:"scale"`
	Cap           float64      `json:"cap"`
	MinSeparation float64      `json:"min_separation"`
	Points        geom.PointSet `json:"points"`
	Path          []int        `json:"path"`
	TotalCost     float64      `json:"total_cost"`
}

// StepRecord is one steps.csv row. Cumulative is the prefix sum through
// this step, written out so a plot needs no recomputation.
type StepRecord struct {
	Index      int
	From       int
	To         int
	Cost       float64
	Cumulative float64
}

func (s *Store) Save(meta RunMetadata, steps []tour.Step) (string, error) {
	runID := uuid.NewString()[:8]
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "steps.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"step", "from", "to", "cost", "cumulative"}); err != nil {
		return "", err
	}
	for i, st := range steps {
		row := []string{
			strconv.Itoa(i),
			strconv.Itoa(st.From),
			strconv.Itoa(st.To),
			strconv.FormatFloat(st.Cost, 'f', 6, 64),
			strconv.FormatFloat(tour.PrefixCost(steps, i), 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.Load(e.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, fmt.Errorf("storage: load %s: %w", runID, err)
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("storage: decode %s: %w", runID, err)
	}
	return &meta, nil
}

func (s *Store) LoadSteps(runID string) ([]StepRecord, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "steps.csv"))
	if err != nil {
		return nil, fmt.Errorf("storage: load steps %s: %w", runID, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("storage: %s: empty steps.csv", runID)
	}

	recs := make([]StepRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) != 5 {
			return nil, fmt.Errorf("storage: %s: malformed row %v", runID, row)
		}
		idx, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, err
		}
		from, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, err
		}
		to, err := strconv.Atoi(row[2])
		if err != nil {
			return nil, err
		}
		cost, err := strconv.ParseFloat(row[3], 64)
		if err != nil {
			return nil, err
		}
		cum, err := strconv.ParseFloat(row[4], 64)
		if err != nil {
			return nil, err
		}
		recs = append(recs, StepRecord{Index: idx, From: from, To: to, Cost: cost, Cumulative: cum})
	}
	return recs, nil
}
