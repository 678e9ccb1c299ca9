package manager

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"
)

// RunRecord is the persisted outcome of one run.
type RunRecord struct {
	ID             string    `json:"id"`
	Session        string    `json:"session"`
	Run            int       `json:"run"`
	FoodsCollected int       `json:"foodsCollected"`
	Moves          int       `json:"moves"`
	Ticks          int       `json:"ticks"`
	Reason         string    `json:"reason"`
	StartTime      time.Time `json:"startTime"`
	EndTime        time.Time `json:"endTime"`
}

// Summary aggregates recorded runs. Session is empty for the all-time
// summary.
type Summary struct {
	Session      string  `json:"session,omitempty"`
	Runs         int     `json:"runs"`
	Wins         int     `json:"wins"`
	BestFoods    int     `json:"bestFoods"`
	MeanFoods    float64 `json:"meanFoods"`
	MeanMoves    float64 `json:"meanMoves"`
	MedianMoves  float64 `json:"medianMoves"`
	MeanDuration float64 `json:"meanDuration"`
}

// StateManager keeps the run history and mirrors it to a JSON file. An
// empty filename keeps the history in memory only.
type StateManager struct {
	filename string
	history  []RunRecord
}

func NewStateManager(filename string) (*StateManager, error) {
	sm := &StateManager{
		filename: filename,
		history:  make([]RunRecord, 0),
	}
	if filename == "" {
		return sm, nil
	}
	if err := sm.LoadStats(); err != nil {
		return nil, err
	}
	return sm, nil
}

// NewRunID returns a fresh identifier for a run or session.
func NewRunID() string {
	return uuid.New().String()
}

func (sm *StateManager) LoadStats() error {
	data, err := os.ReadFile(sm.filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "read stats %s", sm.filename)
	}
	var history []RunRecord
	if err := json.Unmarshal(data, &history); err != nil {
		return errors.Wrapf(err, "decode stats %s", sm.filename)
	}
	sm.history = history
	return nil
}

func (sm *StateManager) SaveStats() error {
	if sm.filename == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(sm.filename), 0755); err != nil {
		return errors.Wrap(err, "create stats directory")
	}
	data, err := json.MarshalIndent(sm.history, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode stats")
	}
	if err := os.WriteFile(sm.filename, data, 0644); err != nil {
		return errors.Wrapf(err, "write stats %s", sm.filename)
	}
	return nil
}

// Record appends rec, filling in a missing ID, and saves the history.
func (sm *StateManager) Record(rec RunRecord) error {
	if rec.ID == "" {
		rec.ID = NewRunID()
	}
	sm.history = append(sm.history, rec)
	return sm.SaveStats()
}

// GetHistory returns a copy of the recorded runs.
func (sm *StateManager) GetHistory() []RunRecord {
	out := make([]RunRecord, len(sm.history))
	copy(out, sm.history)
	return out
}

// Summary computes aggregates over every recorded run, including runs
// loaded from earlier sessions. winReason is the Reason value that counts
// as a win.
func (sm *StateManager) Summary(winReason string) Summary {
	return summarize(sm.history, winReason)
}

// SessionSummary computes aggregates over the runs recorded for session.
func (sm *StateManager) SessionSummary(session, winReason string) Summary {
	var runs []RunRecord
	for _, r := range sm.history {
		if r.Session == session {
			runs = append(runs, r)
		}
	}
	s := summarize(runs, winReason)
	s.Session = session
	return s
}

func summarize(history []RunRecord, winReason string) Summary {
	s := Summary{Runs: len(history)}
	if s.Runs == 0 {
		return s
	}
	foods := make([]float64, 0, s.Runs)
	moves := make([]float64, 0, s.Runs)
	durations := make([]float64, 0, s.Runs)
	for _, r := range history {
		if r.Reason == winReason {
			s.Wins++
		}
		if r.FoodsCollected > s.BestFoods {
			s.BestFoods = r.FoodsCollected
		}
		foods = append(foods, float64(r.FoodsCollected))
		moves = append(moves, float64(r.Moves))
		durations = append(durations, r.EndTime.Sub(r.StartTime).Seconds())
	}
	s.MeanFoods = stat.Mean(foods, nil)
	s.MeanMoves = stat.Mean(moves, nil)
	s.MeanDuration = stat.Mean(durations, nil)
	sort.Float64s(moves)
	s.MedianMoves = stat.Quantile(0.5, stat.Empirical, moves, nil)
	return s
}
