package schedulers

import (
	"fmt"
	"log"
	"sort"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

func ScheduleRoundRobin(request *requests.ScheduleRequest, timeQuantum int) (responses.ScheduleResponse, error) {
	if err := request.Validate(); err != nil {
		return responses.ScheduleResponse{}, err
	}
	if timeQuantum < 1 {
		return responses.ScheduleResponse{}, fmt.Errorf("%w: time quantum must be greater than 0", requests.ErrInvalidInput)
	}
	log.Println("running roundRobin algorithm with timeQuantum = ", timeQuantum)

	pending := core.NewProccesses(request.Processes)
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].ArrivalTime < pending[j].ArrivalTime
	})

	cpu := core.NewCpu(verbose.Load())
	readyQueue := make([]*core.Proccess, 0, len(pending))
	completed := make([]*core.Proccess, 0, len(pending))
	next := 0

	admit := func() {
		for next < len(pending) && pending[next].ArrivalTime <= cpu.Clock {
			readyQueue = append(readyQueue, pending[next])
			next++
		}
	}

	for len(completed) < len(pending) {
		admit()
		if len(readyQueue) == 0 {
			cpu.IdleUntil(pending[next].ArrivalTime)
			continue
		}

		proccess := readyQueue[0]
		readyQueue = readyQueue[1:]
		cpu.Execute(proccess, timeQuantum)

		// arrivals during the slice go ahead of the preempted process
		admit()

		if proccess.Done() {
			completed = append(completed, proccess)
		} else {
			if verbose.Load() {
				log.Println("pid:", proccess.ID, "context switch detected. send proccess to roundRobin queue")
			}
			readyQueue = append(readyQueue, proccess)
		}
	}

	return generateResponse(RoundRobin, timeQuantum, completed, cpu), nil
}
