package responses

type ProcessResponse struct {
	ProcessId      string `json:"id"`
	ArrivalTime    int    `json:"arrival_time"`
	BurstTime      int    `json:"burst_time"`
	Priority       int    `json:"priority"`
	CompletionTime int    `json:"completion_time"`
	TurnAroundTime int    `json:"turn_around_time"`
	WaitingTime    int    `json:"waiting_time"`
	ResponseTime   int    `json:"response_time"`
	Dispatches     int    `json:"dispatches"`
}

type IntervalResponse struct {
	ProcessId string `json:"process_id"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
}

type MetricsResponse struct {
	AverageWaitingTime    float64 `json:"average_waiting_time"`
	AverageTurnAroundTime float64 `json:"average_turn_around_time"`
	AverageResponseTime   float64 `json:"average_response_time"`
	CpuUtilization        float64 `json:"cpu_utilization"`
	CpuThroughput         float64 `json:"cpu_throughput"`
}

type ScheduleResponse struct {
	RunId           string             `json:"run_id"`
	Algorithm       string             `json:"algorithm"`
	Quantum         int                `json:"quantum,omitempty"`
	TotalTime       int                `json:"total_time"`
	IdleTime        int                `json:"idle_time"`
	ContextSwitches int                `json:"context_switches"`
	Metrics         MetricsResponse    `json:"metrics"`
	Timeline        []IntervalResponse `json:"timeline"`
	Details         []ProcessResponse  `json:"details"`
}

type RecommendResponse struct {
	Algorithm string `json:"algorithm"`
	Reason    string `json:"reason"`
	Fallback  bool   `json:"fallback"`
}

type SimulateResponse struct {
	Result         ScheduleResponse   `json:"result"`
	Recommendation *RecommendResponse `json:"recommendation,omitempty"`
}
