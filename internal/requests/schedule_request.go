package requests

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is wrapped by every validation failure so callers can
// tell a rejected request apart from an internal error.
var ErrInvalidInput = errors.New("invalid input")

type Process struct {
	ProcessId   string `json:"id" yaml:"id"`
	ArrivalTime int    `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   int    `json:"burst_time" yaml:"burst_time"`
	Priority    int    `json:"priority" yaml:"priority"`
}

type ScheduleRequest struct {
	Processes []Process `json:"processes" yaml:"processes"`
	// Quantum is only read by round robin. Zero means "use the configured default".
	Quantum int `json:"quantum,omitempty" yaml:"quantum,omitempty"`
}

// Validate rejects requests that must never reach a scheduler.
func (r *ScheduleRequest) Validate() error {
	if r == nil || len(r.Processes) == 0 {
		return fmt.Errorf("%w: at least one process is required", ErrInvalidInput)
	}
	if r.Quantum < 0 {
		return fmt.Errorf("%w: quantum must be greater than 0", ErrInvalidInput)
	}

	seen := make(map[string]struct{}, len(r.Processes))
	maxArrival, burstSum := 0, 0
	for i, p := range r.Processes {
		if p.ProcessId == "" {
			return fmt.Errorf("%w: process %d: id is required", ErrInvalidInput, i)
		}
		if _, ok := seen[p.ProcessId]; ok {
			return fmt.Errorf("%w: duplicate process id %q", ErrInvalidInput, p.ProcessId)
		}
		seen[p.ProcessId] = struct{}{}

		if p.ArrivalTime < 0 {
			return fmt.Errorf("%w: process %s: arrival_time must not be negative", ErrInvalidInput, p.ProcessId)
		}
		if p.BurstTime < 1 {
			return fmt.Errorf("%w: process %s: burst_time must be at least 1", ErrInvalidInput, p.ProcessId)
		}

		// the clock never passes the latest arrival plus all of the work
		if burstSum > math.MaxInt-p.BurstTime {
			return fmt.Errorf("%w: total burst_time overflows the simulation clock", ErrInvalidInput)
		}
		burstSum += p.BurstTime
		if p.ArrivalTime > maxArrival {
			maxArrival = p.ArrivalTime
		}
	}
	if maxArrival > math.MaxInt-burstSum {
		return fmt.Errorf("%w: arrival_time %d plus total burst_time %d overflows the simulation clock", ErrInvalidInput, maxArrival, burstSum)
	}
	return nil
}
