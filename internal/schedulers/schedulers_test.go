package schedulers

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

func textbookRequest() *requests.ScheduleRequest {
	return &requests.ScheduleRequest{
		Processes: []requests.Process{
			{ProcessId: "P1", ArrivalTime: 0, BurstTime: 8, Priority: 3},
			{ProcessId: "P2", ArrivalTime: 1, BurstTime: 4, Priority: 1},
			{ProcessId: "P3", ArrivalTime: 2, BurstTime: 9, Priority: 4},
			{ProcessId: "P4", ArrivalTime: 3, BurstTime: 5, Priority: 2},
			{ProcessId: "P5", ArrivalTime: 4, BurstTime: 2, Priority: 5},
		},
	}
}

// sparseRequest has idle gaps, equal arrivals and equal bursts.
func sparseRequest() *requests.ScheduleRequest {
	return &requests.ScheduleRequest{
		Processes: []requests.Process{
			{ProcessId: "a", ArrivalTime: 3, BurstTime: 6, Priority: 1},
			{ProcessId: "b", ArrivalTime: 3, BurstTime: 2, Priority: 1},
			{ProcessId: "c", ArrivalTime: 40, BurstTime: 9, Priority: 7},
			{ProcessId: "d", ArrivalTime: 41, BurstTime: 2, Priority: 7},
			{ProcessId: "e", ArrivalTime: 1000000, BurstTime: 1, Priority: 0},
			{ProcessId: "f", ArrivalTime: 5, BurstTime: 13, Priority: 2},
		},
	}
}

type slot struct {
	id         string
	start, end int
}

func assertTimeline(t *testing.T, got []responses.IntervalResponse, want []slot) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d intervals, got %d: %+v", len(want), len(got), got)
	}
	for i, w := range want {
		g := got[i]
		if g.ProcessId != w.id || g.Start != w.start || g.End != w.end {
			t.Errorf("interval %d: expected %s[%d-%d], got %s[%d-%d]", i, w.id, w.start, w.end, g.ProcessId, g.Start, g.End)
		}
	}
}

func detailsByID(res responses.ScheduleResponse) map[string]responses.ProcessResponse {
	out := make(map[string]responses.ProcessResponse, len(res.Details))
	for _, d := range res.Details {
		out[d.ProcessId] = d
	}
	return out
}

func assertClose(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("%s: expected %v, got %v", name, want, got)
	}
}

// assertInvariants checks the properties every policy must hold for any input.
func assertInvariants(t *testing.T, req *requests.ScheduleRequest, res responses.ScheduleResponse, quantum int) {
	t.Helper()

	if len(res.Details) != len(req.Processes) {
		t.Fatalf("expected %d completed processes, got %d", len(req.Processes), len(res.Details))
	}
	seen := make(map[string]int)
	for _, d := range res.Details {
		seen[d.ProcessId]++
	}
	burstSum := 0
	arrival := make(map[string]int)
	for _, p := range req.Processes {
		if seen[p.ProcessId] != 1 {
			t.Errorf("process %s completed %d times", p.ProcessId, seen[p.ProcessId])
		}
		burstSum += p.BurstTime
		arrival[p.ProcessId] = p.ArrivalTime
	}

	runSum := 0
	for i, iv := range res.Timeline {
		if iv.End <= iv.Start {
			t.Errorf("interval %d is empty: %+v", i, iv)
		}
		if iv.Start < arrival[iv.ProcessId] {
			t.Errorf("interval %d starts before %s arrives", i, iv.ProcessId)
		}
		if i > 0 && iv.Start < res.Timeline[i-1].End {
			t.Errorf("interval %d overlaps the previous one: %+v %+v", i, res.Timeline[i-1], iv)
		}
		if quantum > 0 && iv.End-iv.Start > quantum {
			t.Errorf("interval %d exceeds quantum %d: %+v", i, quantum, iv)
		}
		runSum += iv.End - iv.Start
	}
	if runSum != burstSum {
		t.Errorf("expected %d units of work on the timeline, got %d", burstSum, runSum)
	}

	for _, d := range res.Details {
		if d.TurnAroundTime != d.CompletionTime-d.ArrivalTime {
			t.Errorf("%s: turnaround %d != completion %d - arrival %d", d.ProcessId, d.TurnAroundTime, d.CompletionTime, d.ArrivalTime)
		}
		if d.WaitingTime != d.TurnAroundTime-d.BurstTime {
			t.Errorf("%s: waiting %d != turnaround %d - burst %d", d.ProcessId, d.WaitingTime, d.TurnAroundTime, d.BurstTime)
		}
		if d.WaitingTime < 0 || d.ResponseTime < 0 || d.ResponseTime > d.WaitingTime {
			t.Errorf("%s: bad waiting/response %d/%d", d.ProcessId, d.WaitingTime, d.ResponseTime)
		}
	}

	dispatches := 0
	for _, d := range res.Details {
		dispatches += d.Dispatches
	}
	if dispatches != len(res.Timeline) {
		t.Errorf("expected one dispatch per interval, got %d dispatches for %d intervals", dispatches, len(res.Timeline))
	}

	if res.TotalTime != res.Timeline[len(res.Timeline)-1].End {
		t.Errorf("total time %d does not match end of timeline", res.TotalTime)
	}
	if res.IdleTime != res.TotalTime-burstSum {
		t.Errorf("idle time %d != %d - %d", res.IdleTime, res.TotalTime, burstSum)
	}
}

func TestFirstComeFirstServe_Textbook(t *testing.T) {
	res, err := ScheduleFirstComeFirstServe(textbookRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertTimeline(t, res.Timeline, []slot{
		{"P1", 0, 8}, {"P2", 8, 12}, {"P3", 12, 21}, {"P4", 21, 26}, {"P5", 26, 28},
	})
	if res.TotalTime != 28 {
		t.Errorf("expected makespan 28, got %d", res.TotalTime)
	}
	if res.Algorithm != "FCFS" {
		t.Errorf("expected label FCFS, got %q", res.Algorithm)
	}
	assertClose(t, "average waiting", res.Metrics.AverageWaitingTime, 11.4)
	assertClose(t, "average turnaround", res.Metrics.AverageTurnAroundTime, 17)
	assertClose(t, "average response", res.Metrics.AverageResponseTime, 11.4)
	assertClose(t, "utilization", res.Metrics.CpuUtilization, 100)
	assertClose(t, "throughput", res.Metrics.CpuThroughput, 5.0/28.0)

	for _, d := range res.Details {
		if d.Dispatches != 1 {
			t.Errorf("%s: fcfs runs every process once, got %d dispatches", d.ProcessId, d.Dispatches)
		}
		if d.ResponseTime != d.WaitingTime {
			t.Errorf("%s: fcfs response %d should equal waiting %d", d.ProcessId, d.ResponseTime, d.WaitingTime)
		}
	}
}

func TestFirstComeFirstServe_StableOnEqualArrival(t *testing.T) {
	req := &requests.ScheduleRequest{Processes: []requests.Process{
		{ProcessId: "late", ArrivalTime: 5, BurstTime: 1},
		{ProcessId: "x", ArrivalTime: 2, BurstTime: 3},
		{ProcessId: "y", ArrivalTime: 2, BurstTime: 1},
		{ProcessId: "z", ArrivalTime: 2, BurstTime: 2},
	}}
	res, err := ScheduleFirstComeFirstServe(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertTimeline(t, res.Timeline, []slot{
		{"x", 2, 5}, {"y", 5, 6}, {"z", 6, 8}, {"late", 8, 9},
	})
	assertInvariants(t, req, res, 0)
}

func TestFirstComeFirstServe_JumpsIdleGap(t *testing.T) {
	req := &requests.ScheduleRequest{Processes: []requests.Process{
		{ProcessId: "a", ArrivalTime: 2, BurstTime: 3},
		{ProcessId: "b", ArrivalTime: 10, BurstTime: 2},
	}}
	res, err := ScheduleFirstComeFirstServe(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertTimeline(t, res.Timeline, []slot{{"a", 2, 5}, {"b", 10, 12}})
	// idle time comes from the cpu's clock jumps and must match makespan - total burst
	if res.IdleTime != 7 || res.TotalTime != 12 {
		t.Errorf("expected 7 idle units over 12, got %d/%d", res.IdleTime, res.TotalTime)
	}
	assertClose(t, "utilization", res.Metrics.CpuUtilization, 5.0/12.0*100)
	assertClose(t, "throughput", res.Metrics.CpuThroughput, 2.0/12.0)
}

func TestShortestJobFirst_Textbook(t *testing.T) {
	res, err := ScheduleShortestJobFirst(textbookRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertTimeline(t, res.Timeline, []slot{
		{"P1", 0, 8}, {"P5", 8, 10}, {"P2", 10, 14}, {"P4", 14, 19}, {"P3", 19, 28},
	})
	assertClose(t, "average waiting", res.Metrics.AverageWaitingTime, 8.2)
	if res.Algorithm != "SJF" {
		t.Errorf("expected label SJF, got %q", res.Algorithm)
	}
}

func TestShortestJobFirst_TieBreaks(t *testing.T) {
	req := &requests.ScheduleRequest{Processes: []requests.Process{
		{ProcessId: "first", ArrivalTime: 0, BurstTime: 5},
		{ProcessId: "later", ArrivalTime: 3, BurstTime: 2},
		{ProcessId: "earlier", ArrivalTime: 1, BurstTime: 2},
		{ProcessId: "same-a", ArrivalTime: 4, BurstTime: 1},
		{ProcessId: "same-b", ArrivalTime: 4, BurstTime: 1},
	}}
	res, err := ScheduleShortestJobFirst(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertTimeline(t, res.Timeline, []slot{
		{"first", 0, 5}, {"same-a", 5, 6}, {"same-b", 6, 7}, {"earlier", 7, 9}, {"later", 9, 11},
	})
}

func TestShortestJobFirst_NeverPicksUnarrived(t *testing.T) {
	req := &requests.ScheduleRequest{Processes: []requests.Process{
		{ProcessId: "long", ArrivalTime: 0, BurstTime: 10},
		{ProcessId: "tiny", ArrivalTime: 11, BurstTime: 1},
		{ProcessId: "mid", ArrivalTime: 10, BurstTime: 5},
	}}
	res, err := ScheduleShortestJobFirst(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// at t=10 only "mid" has arrived, so it runs even though "tiny" is shorter
	assertTimeline(t, res.Timeline, []slot{{"long", 0, 10}, {"mid", 10, 15}, {"tiny", 15, 16}})
}

func TestRoundRobin_Textbook(t *testing.T) {
	res, err := ScheduleRoundRobin(textbookRequest(), 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertTimeline(t, res.Timeline, []slot{
		{"P1", 0, 4}, {"P2", 4, 8}, {"P3", 8, 12}, {"P4", 12, 16}, {"P5", 16, 18},
		{"P1", 18, 22}, {"P3", 22, 26}, {"P4", 26, 27}, {"P3", 27, 28},
	})
	if res.Algorithm != "Round Robin" || res.Quantum != 4 {
		t.Errorf("expected Round Robin with quantum 4, got %q/%d", res.Algorithm, res.Quantum)
	}

	details := detailsByID(res)
	if details["P1"].ResponseTime != 0 || details["P3"].ResponseTime != 6 || details["P5"].ResponseTime != 12 {
		t.Errorf("response time must come from the first dispatch: %+v", details)
	}
	if details["P1"].Dispatches != 2 || details["P3"].Dispatches != 3 || details["P5"].Dispatches != 1 {
		t.Errorf("unexpected dispatch counts: %+v", details)
	}
	if details["P1"].CompletionTime != 22 || details["P3"].CompletionTime != 28 {
		t.Errorf("unexpected completion times: %+v", details)
	}
	assertClose(t, "average waiting", res.Metrics.AverageWaitingTime, 13)
	assertClose(t, "average response", res.Metrics.AverageResponseTime, 6)

	// completion order, not input order
	order := []string{"P2", "P5", "P1", "P4", "P3"}
	for i, id := range order {
		if res.Details[i].ProcessId != id {
			t.Errorf("completed[%d]: expected %s, got %s", i, id, res.Details[i].ProcessId)
		}
	}
}

func TestRoundRobin_ArrivalAtSliceEndGoesFirst(t *testing.T) {
	req := &requests.ScheduleRequest{Processes: []requests.Process{
		{ProcessId: "a", ArrivalTime: 0, BurstTime: 6},
		{ProcessId: "b", ArrivalTime: 2, BurstTime: 2},
	}}
	res, err := ScheduleRoundRobin(req, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertTimeline(t, res.Timeline, []slot{{"a", 0, 2}, {"b", 2, 4}, {"a", 4, 6}, {"a", 6, 8}})
	if res.ContextSwitches != 2 {
		t.Errorf("expected 2 context switches, got %d", res.ContextSwitches)
	}
}

func TestRoundRobin_DispatchBound(t *testing.T) {
	req := sparseRequest()
	for _, q := range []int{1, 2, 3, 4, 7} {
		res, err := ScheduleRoundRobin(req, q)
		if err != nil {
			t.Fatalf("quantum %d: unexpected error: %v", q, err)
		}
		assertInvariants(t, req, res, q)

		for _, d := range res.Details {
			bound := (d.BurstTime + q - 1) / q
			if d.Dispatches < 1 || d.Dispatches > bound {
				t.Errorf("quantum %d: %s dispatched %d times, bound %d", q, d.ProcessId, d.Dispatches, bound)
			}
		}
	}
}

func TestRoundRobin_RejectsBadQuantum(t *testing.T) {
	_, err := ScheduleRoundRobin(textbookRequest(), 0)
	if !errors.Is(err, requests.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPriority_Textbook(t *testing.T) {
	res, err := SchedulePriority(textbookRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertTimeline(t, res.Timeline, []slot{
		{"P1", 0, 8}, {"P5", 8, 10}, {"P3", 10, 19}, {"P4", 19, 24}, {"P2", 24, 28},
	})
	assertClose(t, "average waiting", res.Metrics.AverageWaitingTime, 10.2)
}

func TestPriority_TieBreaks(t *testing.T) {
	req := &requests.ScheduleRequest{Processes: []requests.Process{
		{ProcessId: "hold", ArrivalTime: 0, BurstTime: 4, Priority: 1},
		{ProcessId: "b", ArrivalTime: 2, BurstTime: 1, Priority: 5},
		{ProcessId: "a", ArrivalTime: 1, BurstTime: 1, Priority: 5},
		{ProcessId: "c", ArrivalTime: 1, BurstTime: 1, Priority: 5},
	}}
	res, err := SchedulePriority(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertTimeline(t, res.Timeline, []slot{{"hold", 0, 4}, {"a", 4, 5}, {"c", 5, 6}, {"b", 6, 7}})
}

func TestPriority_StarvesLowPriority(t *testing.T) {
	const competitors = 50
	const burst = 5

	req := &requests.ScheduleRequest{Processes: []requests.Process{
		{ProcessId: "low", ArrivalTime: 0, BurstTime: 1, Priority: 0},
	}}
	// a higher priority process is always waiting at every decision point
	for i := 0; i < competitors; i++ {
		req.Processes = append(req.Processes, requests.Process{
			ProcessId:   fmt.Sprintf("high-%d", i),
			ArrivalTime: i * burst,
			BurstTime:   burst,
			Priority:    10,
		})
	}
	horizon := competitors * burst

	res, err := SchedulePriority(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertInvariants(t, req, res, 0)

	low := detailsByID(res)["low"]
	if low.CompletionTime <= horizon {
		t.Errorf("expected low priority process to starve past t=%d, completed at %d", horizon, low.CompletionTime)
	}
	if last := res.Timeline[len(res.Timeline)-1]; last.ProcessId != "low" {
		t.Errorf("expected low priority process to run last, got %s", last.ProcessId)
	}

	// round robin on the same input lets it through quickly
	rr, err := ScheduleRoundRobin(req, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c := detailsByID(rr)["low"].CompletionTime; c >= horizon {
		t.Errorf("round robin should not starve the low priority process, completed at %d", c)
	}
}

func TestAllAlgorithms_Invariants(t *testing.T) {
	for _, req := range []*requests.ScheduleRequest{textbookRequest(), sparseRequest()} {
		for _, algorithm := range Algorithms {
			res, err := Run(algorithm, req, DefaultTimeQuantum)
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", algorithm, err)
			}
			quantum := 0
			if algorithm == RoundRobin {
				quantum = DefaultTimeQuantum
			}
			assertInvariants(t, req, res, quantum)
		}
	}
}

func TestRun_DoesNotMutateInput(t *testing.T) {
	req := textbookRequest()
	before := append([]requests.Process(nil), req.Processes...)
	for _, algorithm := range Algorithms {
		if _, err := Run(algorithm, req, 0); err != nil {
			t.Fatalf("%s: unexpected error: %v", algorithm, err)
		}
	}
	for i := range before {
		if before[i] != req.Processes[i] {
			t.Errorf("process %d changed: %+v -> %+v", i, before[i], req.Processes[i])
		}
	}
}

func TestRun_Deterministic(t *testing.T) {
	for _, algorithm := range Algorithms {
		a, err := Run(algorithm, sparseRequest(), 3)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", algorithm, err)
		}
		b, _ := Run(algorithm, sparseRequest(), 3)
		if fmt.Sprint(a.Timeline) != fmt.Sprint(b.Timeline) || fmt.Sprint(a.Details) != fmt.Sprint(b.Details) {
			t.Errorf("%s: two runs on the same input differ", algorithm)
		}
		if a.RunId == b.RunId {
			t.Errorf("%s: expected distinct run ids", algorithm)
		}
	}
}

func TestRun_QuantumFromRequest(t *testing.T) {
	req := textbookRequest()
	req.Quantum = 2
	res, err := Run(RoundRobin, req, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Quantum != 2 {
		t.Errorf("expected request quantum 2 to win, got %d", res.Quantum)
	}
	assertInvariants(t, req, res, 2)
}

func TestRun_UnknownAlgorithm(t *testing.T) {
	_, err := Run(Algorithm("lottery"), textbookRequest(), 4)
	if !errors.Is(err, ErrUnknownAlgorithm) {
		t.Fatalf("expected ErrUnknownAlgorithm, got %v", err)
	}
}

func TestRun_InvalidInput(t *testing.T) {
	cases := map[string]*requests.ScheduleRequest{
		"empty": {},
		"nil":   nil,
		"duplicate": {Processes: []requests.Process{
			{ProcessId: "a", BurstTime: 1}, {ProcessId: "a", BurstTime: 2},
		}},
		"zero burst":       {Processes: []requests.Process{{ProcessId: "a", BurstTime: 0}}},
		"negative arrival": {Processes: []requests.Process{{ProcessId: "a", ArrivalTime: -1, BurstTime: 1}}},
		"clock overflow":   {Processes: []requests.Process{{ProcessId: "a", ArrivalTime: math.MaxInt - 1, BurstTime: 5}}},
	}
	for name, req := range cases {
		for _, algorithm := range Algorithms {
			if _, err := Run(algorithm, req, 4); !errors.Is(err, requests.ErrInvalidInput) {
				t.Errorf("%s/%s: expected ErrInvalidInput, got %v", name, algorithm, err)
			}
		}
	}
}

func TestRunAll(t *testing.T) {
	results, err := RunAll(textbookRequest(), 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != len(Algorithms) {
		t.Fatalf("expected %d results, got %d", len(Algorithms), len(results))
	}
	for i, algorithm := range Algorithms {
		if results[i].Algorithm != algorithm.Label() {
			t.Errorf("result %d: expected %s, got %s", i, algorithm.Label(), results[i].Algorithm)
		}
	}
}

func TestParseAlgorithm(t *testing.T) {
	cases := map[string]Algorithm{
		"FCFS":        FCFS,
		"fcfs":        FCFS,
		" sjf ":       SJF,
		"RR":          RoundRobin,
		"round-robin": RoundRobin,
		"Round Robin": RoundRobin,
		"Priority":    Priority,
	}
	for in, want := range cases {
		got, err := ParseAlgorithm(in)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("%q: expected %s, got %s", in, want, got)
		}
	}

	for _, in := range []string{"", "AI", "srtf", "mlfq"} {
		if _, err := ParseAlgorithm(in); !errors.Is(err, ErrUnknownAlgorithm) {
			t.Errorf("%q: expected ErrUnknownAlgorithm, got %v", in, err)
		}
	}
}
