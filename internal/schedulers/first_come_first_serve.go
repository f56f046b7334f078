package schedulers

import (
	"log"
	"sort"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

func ScheduleFirstComeFirstServe(request *requests.ScheduleRequest) (responses.ScheduleResponse, error) {
	if err := request.Validate(); err != nil {
		return responses.ScheduleResponse{}, err
	}
	log.Println("running fcfs algorithm with", len(request.Processes), "processes")

	// sort jobs by arrival time, equal arrivals keep input order
	jobs := core.NewProccesses(request.Processes)
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].ArrivalTime < jobs[j].ArrivalTime
	})

	cpu := core.NewCpu(verbose.Load())
	for _, job := range jobs {
		cpu.IdleUntil(job.ArrivalTime)
		cpu.Execute(job, 0)
	}

	return generateResponse(FCFS, 0, jobs, cpu), nil
}
