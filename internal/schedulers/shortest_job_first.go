package schedulers

import (
	"log"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

func ScheduleShortestJobFirst(request *requests.ScheduleRequest) (responses.ScheduleResponse, error) {
	if err := request.Validate(); err != nil {
		return responses.ScheduleResponse{}, err
	}
	log.Println("running sjf algorithm with", len(request.Processes), "processes")

	cpu := core.NewCpu(verbose.Load())
	completed := scheduleNonPreemptive(core.NewProccesses(request.Processes), cpu, shorterJob)
	return generateResponse(SJF, 0, completed, cpu), nil
}

// shorterJob orders by burst time, then arrival, then input order.
func shorterJob(a, b *core.Proccess) bool {
	if a.BurstTime != b.BurstTime {
		return a.BurstTime < b.BurstTime
	}
	return earlierArrival(a, b)
}

func earlierArrival(a, b *core.Proccess) bool {
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return a.Order < b.Order
}

// scheduleNonPreemptive repeatedly picks the best arrived process according
// to better and runs it to completion. When nothing has arrived the clock
// jumps straight to the next arrival.
func scheduleNonPreemptive(jobs []*core.Proccess, cpu *core.Cpu, better func(a, b *core.Proccess) bool) []*core.Proccess {
	completed := make([]*core.Proccess, 0, len(jobs))

	for len(completed) < len(jobs) {
		var next *core.Proccess
		nextArrival := -1
		for _, job := range jobs {
			if job.Done() {
				continue
			}
			if job.ArrivalTime > cpu.Clock {
				if nextArrival == -1 || job.ArrivalTime < nextArrival {
					nextArrival = job.ArrivalTime
				}
				continue
			}
			if next == nil || better(job, next) {
				next = job
			}
		}

		if next == nil {
			cpu.IdleUntil(nextArrival)
			continue
		}

		cpu.Execute(next, 0)
		completed = append(completed, next)
	}
	return completed
}
