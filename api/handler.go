package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/advisor"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Recommend(ctx *fiber.Ctx) error
	Simulate(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config  *config.SchedulerConfig
	advisor *advisor.Advisor
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, advisor *advisor.Advisor) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config, advisor: advisor}
}

// RegisterRoutes mounts every scheduler endpoint on router.
func RegisterRoutes(router fiber.Router, h SchedulerHandler) {
	router.Post("/fcfs", h.FirstComeFirstServe)
	router.Post("/sjf", h.ShortestJobFirst)
	router.Post("/rr", h.RoundRobin)
	router.Post("/priority", h.Priority)
	router.Post("/all", h.AllAlgorithms)
	router.Post("/recommend", h.Recommend)
	router.Post("/simulate", h.Simulate)
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.run(ctx, schedulers.FCFS)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.run(ctx, schedulers.RoundRobin)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.run(ctx, schedulers.SJF)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.run(ctx, schedulers.Priority)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return err
	}
	response, err := schedulers.RunAll(request, s.config.RoundRobinTimeQuantum)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) Recommend(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return err
	}
	if err := request.Validate(); err != nil {
		return errorResponse(ctx, err)
	}
	rec := s.advisor.Recommend(ctx.UserContext(), request.Processes)
	return ctx.JSON(rec.ToResponse())
}

// Simulate runs the policy named by the algorithm query parameter. The value
// "auto" lets the advisor choose.
func (s *SchedulerHandlerImpl) Simulate(ctx *fiber.Ctx) error {
	name := ctx.Query("algorithm", "auto")

	var algorithm schedulers.Algorithm
	var recommendation *responses.RecommendResponse
	if !strings.EqualFold(name, "auto") {
		a, err := schedulers.ParseAlgorithm(name)
		if err != nil {
			return errorResponse(ctx, err)
		}
		algorithm = a
	}

	request, err := parseRequest(ctx)
	if err != nil {
		return err
	}
	if err := request.Validate(); err != nil {
		return errorResponse(ctx, err)
	}

	if algorithm == "" {
		rec := s.advisor.Recommend(ctx.UserContext(), request.Processes).ToResponse()
		recommendation = &rec
		algorithm = schedulers.Algorithm(rec.Algorithm)
	}

	result, err := schedulers.Run(algorithm, request, s.config.RoundRobinTimeQuantum)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(responses.SimulateResponse{Result: result, Recommendation: recommendation})
}

func (s *SchedulerHandlerImpl) run(ctx *fiber.Ctx, algorithm schedulers.Algorithm) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return err
	}
	response, err := schedulers.Run(algorithm, request, s.config.RoundRobinTimeQuantum)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(response)
}

func parseRequest(ctx *fiber.Ctx) (*requests.ScheduleRequest, error) {
	request := new(requests.ScheduleRequest)
	if err := ctx.BodyParser(request); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid request format")
	}
	return request, nil
}

func errorResponse(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	if errors.Is(err, requests.ErrInvalidInput) || errors.Is(err, schedulers.ErrUnknownAlgorithm) {
		status = fiber.StatusBadRequest
	}
	return ctx.Status(status).JSON(fiber.Map{"error": err.Error()})
}
