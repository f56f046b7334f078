package schedulers

import (
	"log"

	"github.com/google/uuid"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/util"
)

// generateResponse turns a finished run into the result envelope. completed
// must hold every process in completion order, with derived fields set.
func generateResponse(algorithm Algorithm, quantum int, completed []*core.Proccess, cpu *core.Cpu) responses.ScheduleResponse {
	proccessDetails := make([]responses.ProcessResponse, 0, len(completed))
	for _, process := range completed {
		proccessDetails = append(proccessDetails, generateProcessDetails(process))
	}

	averages := util.CalculateAverages(proccessDetails)

	// the cpu stops at the last completion, so its total time is the makespan
	metric := cpu.Metric
	var utilization, throughput float64
	if metric.TotalTime > 0 {
		utilization = float64(metric.UtilizationTime) / float64(metric.TotalTime) * 100
		throughput = float64(len(completed)) / float64(metric.TotalTime)
	}

	intervals := cpu.Timeline.Intervals()
	timeline := make([]responses.IntervalResponse, 0, len(intervals))
	for _, i := range intervals {
		timeline = append(timeline, responses.IntervalResponse{ProcessId: i.ProcessID, Start: i.Start, End: i.End})
	}

	var response = responses.ScheduleResponse{
		RunId:           uuid.NewString(),
		Algorithm:       algorithm.Label(),
		Quantum:         quantum,
		TotalTime:       metric.TotalTime,
		IdleTime:        metric.IdleTime,
		ContextSwitches: cpu.Timeline.ContextSwitches(),
		Metrics: responses.MetricsResponse{
			AverageWaitingTime:    averages.WaitingTime,
			AverageTurnAroundTime: averages.TurnAroundTime,
			AverageResponseTime:   averages.ResponseTime,
			CpuUtilization:        utilization,
			CpuThroughput:         throughput,
		},
		Timeline: timeline,
		Details:  proccessDetails,
	}
	if verbose.Load() {
		log.Printf("response is: %+v", response)
	}
	return response
}

func generateProcessDetails(process *core.Proccess) responses.ProcessResponse {
	return responses.ProcessResponse{
		ProcessId:      process.ID,
		ArrivalTime:    process.ArrivalTime,
		BurstTime:      process.BurstTime,
		Priority:       process.Priority,
		CompletionTime: process.CompletionTime,
		TurnAroundTime: process.TurnaroundTime,
		WaitingTime:    process.WaitingTime,
		ResponseTime:   process.ResponseTime,
		Dispatches:     process.Dispatches,
	}
}
