package schedulers

import (
	"log"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

// SchedulePriority is non-preemptive: the highest priority value among the
// arrived processes wins. There is no aging, so a low priority process can
// starve behind a steady stream of higher priority arrivals.
func SchedulePriority(request *requests.ScheduleRequest) (responses.ScheduleResponse, error) {
	if err := request.Validate(); err != nil {
		return responses.ScheduleResponse{}, err
	}
	log.Println("running priority algorithm with", len(request.Processes), "processes")

	cpu := core.NewCpu(verbose.Load())
	completed := scheduleNonPreemptive(core.NewProccesses(request.Processes), cpu, higherPriority)
	return generateResponse(Priority, 0, completed, cpu), nil
}

func higherPriority(a, b *core.Proccess) bool {
	if a.Priority != b.Priority {
		return a.Priority > b.Priority
	}
	return earlierArrival(a, b)
}
