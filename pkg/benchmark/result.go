package benchmark

import (
	"time"

	"github.com/google/uuid"

	"github.com/timed-go/timed/pkg/duration"
	"github.com/timed-go/timed/pkg/stats"
)

// Result holds the raw samples of a benchmark run.
type Result struct {
	RunID   string
	Title   string
	Info    string
	Started time.Time

	WallTimes []duration.Duration
	CPUTimes  []duration.Duration

	WallBaseline duration.Duration
	CPUBaseline  duration.Duration
}

// NewResult creates an empty result with a fresh run ID.
func NewResult(title, info string) *Result {
	return &Result{
		RunID:   uuid.NewString(),
		Title:   title,
		Info:    info,
		Started: time.Now(),
	}
}

// AddWallTime records a wall time sample.
func (r *Result) AddWallTime(d duration.Duration) {
	r.WallTimes = append(r.WallTimes, d)
}

// AddCPUTime records a CPU time sample.
func (r *Result) AddCPUTime(d duration.Duration) {
	r.CPUTimes = append(r.CPUTimes, d)
}

// AdjustedWallTimes returns the wall samples minus the wall baseline.
func (r *Result) AdjustedWallTimes() []duration.Duration {
	return adjust(r.WallTimes, r.WallBaseline)
}

// AdjustedCPUTimes returns the CPU samples minus the CPU baseline.
func (r *Result) AdjustedCPUTimes() []duration.Duration {
	return adjust(r.CPUTimes, r.CPUBaseline)
}

func adjust(ds []duration.Duration, baseline duration.Duration) []duration.Duration {
	out := make([]duration.Duration, len(ds))
	for i, d := range ds {
		out[i] = d.Sub(baseline)
	}
	return out
}

// Iterations returns the number of recorded iterations.
func (r *Result) Iterations() int {
	return len(r.WallTimes)
}

// Report holds the aggregates of a Result.
type Report struct {
	RunID      string    `json:"run_id" cbor:"1,keyasint"`
	Title      string    `json:"title" cbor:"2,keyasint"`
	Info       string    `json:"info,omitempty" cbor:"3,keyasint,omitempty"`
	Started    time.Time `json:"started" cbor:"4,keyasint"`
	Iterations int       `json:"iterations" cbor:"5,keyasint"`

	WallBaseline duration.Duration `json:"wall_baseline_ns" cbor:"6,keyasint"`
	CPUBaseline  duration.Duration `json:"cpu_baseline_ns" cbor:"7,keyasint"`

	Wall stats.Summary `json:"wall" cbor:"8,keyasint"`
	CPU  stats.Summary `json:"cpu" cbor:"9,keyasint"`
}

// Report summarizes the adjusted samples. It returns ErrNoSamples if no
// iteration was recorded.
func (r *Result) Report() (Report, error) {
	if len(r.WallTimes) == 0 || len(r.CPUTimes) == 0 {
		return Report{}, ErrNoSamples
	}
	wall, err := stats.Summarize(r.AdjustedWallTimes())
	if err != nil {
		return Report{}, err
	}
	cpu, err := stats.Summarize(r.AdjustedCPUTimes())
	if err != nil {
		return Report{}, err
	}
	return Report{
		RunID:        r.RunID,
		Title:        r.Title,
		Info:         r.Info,
		Started:      r.Started,
		Iterations:   r.Iterations(),
		WallBaseline: r.WallBaseline,
		CPUBaseline:  r.CPUBaseline,
		Wall:         wall,
		CPU:          cpu,
	}, nil
}
