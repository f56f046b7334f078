// Package advisor asks a language model which scheduling policy suits a
// process list. Its answer is advisory only: anything that goes wrong falls
// back to SJF and is never reported as an error.
package advisor

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
)

// FallbackAlgorithm is recommended whenever the model cannot be used.
const FallbackAlgorithm = schedulers.SJF

const DefaultTimeout = 10 * time.Second

type Recommendation struct {
	Algorithm schedulers.Algorithm
	Reason    string
	// Fallback is set when Algorithm did not come from the model.
	Fallback bool
}

func (r Recommendation) ToResponse() responses.RecommendResponse {
	return responses.RecommendResponse{
		Algorithm: string(r.Algorithm),
		Reason:    r.Reason,
		Fallback:  r.Fallback,
	}
}

type Advisor struct {
	completer Completer
	timeout   time.Duration
}

// New returns an Advisor. A nil completer is allowed and always yields the
// fallback recommendation.
func New(completer Completer, timeout time.Duration) *Advisor {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Advisor{completer: completer, timeout: timeout}
}

const systemPrompt = `You are an expert CPU scheduling algorithm advisor. Analyze the given process data and recommend the BEST scheduling algorithm.

Available algorithms:
- FCFS (First Come First Serve): non-preemptive, simple, can cause a convoy effect
- SJF (Shortest Job First): non-preemptive, minimizes average waiting time when burst times vary
- RR (Round Robin): preemptive time sharing with a fixed quantum, prevents starvation
- Priority: non-preemptive, higher value runs first, may starve low priority processes

Consider the spread of arrival times, the variance of burst times, the priority distribution and the number of processes.

Respond with ONLY a JSON object in this exact format:
{"algorithm": "FCFS|SJF|RR|Priority", "reason": "<brief explanation, at most 100 words>"}`

func buildPrompt(processes []requests.Process) string {
	var sb strings.Builder
	sb.WriteString("Analyze these processes and recommend the best algorithm:\n\n")
	for _, p := range processes {
		sb.WriteString(fmt.Sprintf("Process %s: Arrival=%d, Burst=%d, Priority=%d\n", p.ProcessId, p.ArrivalTime, p.BurstTime, p.Priority))
	}
	sb.WriteString("\nProvide your recommendation in JSON format.")
	return sb.String()
}

// Recommend never fails; see Recommendation.Fallback.
func (a *Advisor) Recommend(ctx context.Context, processes []requests.Process) Recommendation {
	if a == nil || a.completer == nil {
		return fallback("advisor is not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	text, err := a.completer.Complete(ctx, systemPrompt, buildPrompt(processes))
	if err != nil {
		log.Println("advisor: request failed:", err)
		if errors.Is(err, context.DeadlineExceeded) {
			return fallback("advisor timed out")
		}
		return fallback("advisor request failed")
	}

	rec, err := parseRecommendation(text)
	if err != nil {
		log.Println("advisor: unusable response:", err)
		return fallback(err.Error())
	}
	return rec
}

func fallback(why string) Recommendation {
	return Recommendation{
		Algorithm: FallbackAlgorithm,
		Reason:    fmt.Sprintf("%s. Using %s as a safe default that minimizes average waiting time.", why, FallbackAlgorithm),
		Fallback:  true,
	}
}

// parseRecommendation decodes the model reply. Only the four canonical
// algorithm names are accepted.
func parseRecommendation(text string) (Recommendation, error) {
	obj, ok := extractJSONObject(stripJSONFences(text))
	if !ok || !gjson.Valid(obj) {
		return Recommendation{}, errors.New("no JSON object in advisor response")
	}

	name := gjson.Get(obj, "algorithm")
	if name.Type != gjson.String {
		return Recommendation{}, errors.New("advisor response has no algorithm")
	}
	algorithm, ok := schedulers.LookupAlgorithm(name.String())
	if !ok {
		return Recommendation{}, fmt.Errorf("advisor suggested unsupported algorithm %q", name.String())
	}

	return Recommendation{
		Algorithm: algorithm,
		Reason:    strings.TrimSpace(gjson.Get(obj, "reason").String()),
	}, nil
}

// stripJSONFences removes markdown code fences models sometimes add.
func stripJSONFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx >= 0 {
			s = s[idx+1:]
		}
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}
	return s
}

// extractJSONObject returns the text from the first '{' to the last '}'.
func extractJSONObject(s string) (string, bool) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end < start {
		return "", false
	}
	return s[start : end+1], true
}
