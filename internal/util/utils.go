package util

import "cpu-scheduler/internal/responses"

type Averages struct {
	WaitingTime    float64
	TurnAroundTime float64
	ResponseTime   float64
}

// CalculateAverages returns the mean per-process times. It is zero for an
// empty run.
func CalculateAverages(proccessDetails []responses.ProcessResponse) Averages {
	var averages Averages
	if len(proccessDetails) == 0 {
		return averages
	}

	var waiting, turnAround, response int
	for _, proccess := range proccessDetails {
		waiting += proccess.WaitingTime
		turnAround += proccess.TurnAroundTime
		response += proccess.ResponseTime
	}

	count := float64(len(proccessDetails))
	averages.WaitingTime = float64(waiting) / count
	averages.TurnAroundTime = float64(turnAround) / count
	averages.ResponseTime = float64(response) / count
	return averages
}
