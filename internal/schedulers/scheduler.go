package schedulers

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

// DefaultTimeQuantum is used by round robin when neither the request nor the
// configuration sets one.
const DefaultTimeQuantum = 4

var ErrUnknownAlgorithm = errors.New("unknown scheduling algorithm")

type Algorithm string

const (
	FCFS       Algorithm = "FCFS"
	SJF        Algorithm = "SJF"
	RoundRobin Algorithm = "RR"
	Priority   Algorithm = "Priority"
)

// Algorithms lists every supported policy in a fixed order.
var Algorithms = []Algorithm{FCFS, SJF, RoundRobin, Priority}

// Label is the human readable name stamped on results.
func (a Algorithm) Label() string {
	switch a {
	case FCFS:
		return "FCFS"
	case SJF:
		return "SJF"
	case RoundRobin:
		return "Round Robin"
	case Priority:
		return "Priority"
	}
	return string(a)
}

// ParseAlgorithm maps a user supplied name onto one of the supported policies.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fcfs", "first-come-first-serve", "first_come_first_serve":
		return FCFS, nil
	case "sjf", "shortest-job-first", "shortest_job_first":
		return SJF, nil
	case "rr", "round-robin", "round_robin", "roundrobin", "round robin":
		return RoundRobin, nil
	case "priority":
		return Priority, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// LookupAlgorithm accepts only the exact canonical names in Algorithms.
func LookupAlgorithm(name string) (Algorithm, bool) {
	for _, a := range Algorithms {
		if string(a) == name {
			return a, true
		}
	}
	return "", false
}

var verbose atomic.Bool

// SetVerbose toggles per-dispatch logging for every scheduler.
func SetVerbose(v bool) { verbose.Store(v) }

// Run dispatches the request to the named policy. defaultQuantum applies to
// round robin requests that do not carry their own quantum.
func Run(algorithm Algorithm, request *requests.ScheduleRequest, defaultQuantum int) (responses.ScheduleResponse, error) {
	switch algorithm {
	case FCFS:
		return ScheduleFirstComeFirstServe(request)
	case SJF:
		return ScheduleShortestJobFirst(request)
	case RoundRobin:
		return ScheduleRoundRobin(request, quantumFor(request, defaultQuantum))
	case Priority:
		return SchedulePriority(request)
	}
	return responses.ScheduleResponse{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(algorithm))
}

// RunAll runs every policy on the same input, in Algorithms order.
func RunAll(request *requests.ScheduleRequest, defaultQuantum int) ([]responses.ScheduleResponse, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}
	results := make([]responses.ScheduleResponse, 0, len(Algorithms))
	for _, algorithm := range Algorithms {
		response, err := Run(algorithm, request, defaultQuantum)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", algorithm.Label(), err)
		}
		results = append(results, response)
	}
	return results, nil
}

func quantumFor(request *requests.ScheduleRequest, defaultQuantum int) int {
	if request != nil && request.Quantum > 0 {
		return request.Quantum
	}
	if defaultQuantum > 0 {
		return defaultQuantum
	}
	return DefaultTimeQuantum
}
