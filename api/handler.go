package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Coding-with-Akrash/Operating-System-consepts-Visualization/config"
	"github.com/Coding-with-Akrash/Operating-System-consepts-Visualization/internal/core"
	"github.com/Coding-with-Akrash/Operating-System-consepts-Visualization/internal/requests"
	"github.com/Coding-with-Akrash/Operating-System-consepts-Visualization/internal/responses"
	"github.com/Coding-with-Akrash/Operating-System-consepts-Visualization/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

// NewApp builds the fiber application with all scheduling routes registered.
func NewApp(cfg *config.SchedulerConfig) *fiber.App {
	app := fiber.New()
	var handler SchedulerHandler = NewSchedulerHandlerImpl(cfg)

	v1 := app.Group("/api").Group("/v1")
	v1.Post("/schedule/fcfs", handler.FirstComeFirstServe)
	v1.Post("/schedule/sjf", handler.ShortestJobFirst)
	v1.Post("/schedule/priority", handler.Priority)
	v1.Post("/schedule/rr", handler.RoundRobin)
	v1.Post("/schedule/all", handler.AllAlgorithms)
	return app
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, core.PolicyConfig{Policy: core.FirstComeFirstServe})
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, core.PolicyConfig{Policy: core.ShortestJobFirst})
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, core.PolicyConfig{Policy: core.PriorityScheduling})
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return badRequest(ctx, "invalid request format")
	}
	policy := core.PolicyConfig{Policy: core.RoundRobin, Quantum: s.quantum(&request)}
	return s.run(ctx, &request, policy)
}

// AllAlgorithms runs every policy over the same job set so the caller can
// compare them side by side.
func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return badRequest(ctx, "invalid request format")
	}

	policies := []core.PolicyConfig{
		{Policy: core.FirstComeFirstServe},
		{Policy: core.ShortestJobFirst},
		{Policy: core.PriorityScheduling},
		{Policy: core.RoundRobin, Quantum: s.quantum(&request)},
	}

	specs := request.Specs()
	all := make([]responses.ScheduleResponse, 0, len(policies))
	for _, policy := range policies {
		timeline, results, aggregate, err := schedulers.Simulate(specs, policy)
		if err != nil {
			return scheduleError(ctx, err)
		}
		all = append(all, responses.FromSimulation(policy.Policy.String(), timeline, results, aggregate))
	}
	return ctx.JSON(all)
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, policy core.PolicyConfig) error {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return badRequest(ctx, "invalid request format")
	}
	return s.run(ctx, &request, policy)
}

func (s *SchedulerHandlerImpl) run(ctx *fiber.Ctx, request *requests.ScheduleRequest, policy core.PolicyConfig) error {
	timeline, results, aggregate, err := schedulers.Simulate(request.Specs(), policy)
	if err != nil {
		return scheduleError(ctx, err)
	}
	return ctx.JSON(responses.FromSimulation(policy.Policy.String(), timeline, results, aggregate))
}

// quantum resolves the effective Round-Robin quantum: request value when
// supplied, configured default otherwise.
func (s *SchedulerHandlerImpl) quantum(request *requests.ScheduleRequest) int {
	if request.TimeQuantum != 0 {
		return request.TimeQuantum
	}
	return s.config.RoundRobinTimeQuantum
}

func badRequest(ctx *fiber.Ctx, message string) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}

func scheduleError(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	if errors.Is(err, core.ErrInvalidSpec) || errors.Is(err, core.ErrEmptyInput) || errors.Is(err, core.ErrInvalidPolicy) {
		status = fiber.StatusBadRequest
	}
	return ctx.Status(status).JSON(fiber.Map{"error": err.Error()})
}
