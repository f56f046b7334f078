package core

import (
	"log"

	"cpu-scheduler/internal/requests"
)

// Proccess is a scheduler-private working copy of a requested process.
type Proccess struct {
	ID          string
	ArrivalTime int
	BurstTime   int
	Priority    int
	// Order is the index of the process in the caller's input, the last tie-breaker.
	Order int

	RemainingTime  int
	CompletionTime int
	TurnaroundTime int
	WaitingTime    int
	ResponseTime   int
	Dispatches     int

	started bool
	done    bool
}

// NewProccesses copies the requested processes so nothing the caller owns is
// touched by a run.
func NewProccesses(input []requests.Process) []*Proccess {
	procs := make([]*Proccess, 0, len(input))
	for i, p := range input {
		procs = append(procs, &Proccess{
			ID:            p.ProcessId,
			ArrivalTime:   p.ArrivalTime,
			BurstTime:     p.BurstTime,
			Priority:      p.Priority,
			Order:         i,
			RemainingTime: p.BurstTime,
		})
	}
	return procs
}

func (p *Proccess) Done() bool { return p.done }

// Finalize fills in the derived fields. Only the first call has any effect.
func (p *Proccess) Finalize(clock int) {
	if p.done {
		return
	}
	p.done = true
	p.RemainingTime = 0
	p.CompletionTime = clock
	p.TurnaroundTime = p.CompletionTime - p.ArrivalTime
	p.WaitingTime = p.TurnaroundTime - p.BurstTime
}

type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// Cpu is the simulated processor: a clock, the timeline it produced and the
// busy/idle accounting.
type Cpu struct {
	Clock    int
	Timeline *Timeline
	Metric   CpuMetric
	verbose  bool
}

func NewCpu(verbose bool) *Cpu {
	return &Cpu{Timeline: NewTimeline(), verbose: verbose}
}

// IdleUntil jumps the clock to t when nothing is ready. It never moves the
// clock backwards.
func (c *Cpu) IdleUntil(t int) {
	if t <= c.Clock {
		return
	}
	if c.verbose {
		log.Println("cpu idle from", c.Clock, "to", t)
	}
	c.Metric.IdleTime += t - c.Clock
	c.Clock = t
	c.Metric.TotalTime = c.Clock
}

// Execute runs p for at most slice time units and returns how long it ran.
// A slice <= 0 runs the process to completion.
func (c *Cpu) Execute(p *Proccess, slice int) int {
	run := p.RemainingTime
	if slice > 0 && slice < run {
		run = slice
	}

	if !p.started {
		p.started = true
		p.ResponseTime = c.Clock - p.ArrivalTime
	}
	p.Dispatches++

	start := c.Clock
	c.Timeline.Append(p.ID, start, start+run)
	c.Clock += run
	c.Metric.UtilizationTime += run
	c.Metric.TotalTime = c.Clock
	p.RemainingTime -= run

	if c.verbose {
		log.Println("pid:", p.ID, "executed from", start, "to", c.Clock, "remaining", p.RemainingTime)
	}

	if p.RemainingTime == 0 {
		p.Finalize(c.Clock)
		if c.verbose {
			log.Println("pid:", p.ID, "proccess completed at", p.CompletionTime)
		}
	}
	return run
}
