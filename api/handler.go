package api

import (
	"github.com/gofiber/fiber/v2"

	"scheduler-project/config"
	"scheduler-project/internal/requests"
	"scheduler-project/internal/responses"
	"scheduler-project/internal/schedulers"
)

type SchedulerHandler interface {
	RoundRobin(ctx *fiber.Ctx) error
	AgingFCFS(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

func (s *SchedulerHandlerImpl) options(request *requests.ScheduleRequest) schedulers.Options {
	timeQuantum := request.TimeQuantum
	if timeQuantum <= 0 {
		timeQuantum = s.config.RoundRobinTimeQuantum
	}
	return schedulers.Options{
		TimeQuantum: timeQuantum,
		Weights: schedulers.AgingWeights{
			Aging:     s.config.AgingWeight,
			Burst:     s.config.BurstWeight,
			Priority:  s.config.PriorityWeight,
			Tolerance: s.config.AgingTolerance,
		},
	}
}

func (s *SchedulerHandlerImpl) parse(ctx *fiber.Ctx) (*requests.ScheduleRequest, error) {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return nil, ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}
	if err := request.Validate(); err != nil {
		return nil, ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return &request, nil
}

func (s *SchedulerHandlerImpl) run(ctx *fiber.Ctx, algorithm schedulers.Algorithm) error {
	request, err := s.parse(ctx)
	if request == nil {
		return err
	}
	result, err := schedulers.Run(algorithm, s.options(request), request.Processes())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "can not process request",
		})
	}
	return ctx.JSON(schedulers.GenerateResponse(result))
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.run(ctx, schedulers.RoundRobin)
}

func (s *SchedulerHandlerImpl) AgingFCFS(ctx *fiber.Ctx) error {
	return s.run(ctx, schedulers.AgingFCFS)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.run(ctx, schedulers.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := s.parse(ctx)
	if request == nil {
		return err
	}
	results, err := schedulers.RunAll(s.options(request), request.Processes())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "can not process request",
		})
	}
	response := responses.AllAlgorithmsResponse{}
	for _, result := range results {
		response.Results = append(response.Results, schedulers.GenerateResponse(result))
	}
	return ctx.JSON(response)
}
