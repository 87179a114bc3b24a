package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/teambition/rrule-go"

	"planilla-api/models"
	"planilla-api/pkg/logger"
	"planilla-api/pkg/params"
	"planilla-api/pkg/pgcode"
	"planilla-api/repository"
)

type FortnightHandler struct {
	fortnightRepo repository.FortnightRepository
}

func NewFortnightHandler(fortnightRepo repository.FortnightRepository) *FortnightHandler {
	return &FortnightHandler{
		fortnightRepo: fortnightRepo,
	}
}

// InsertFortnight godoc
// @Summary Insert a fortnight
// @Description Creates a single biweekly pay period at the given timestamp
// @Tags Fortnights
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param fortnight body models.FortnightPayload true "Fortnight timestamp"
// @Success 201 {object} object{message=string} "Fortnight inserted"
// @Failure 400 {object} object{message=string} "Invalid timestamp or routine rejection"
// @Failure 500 {object} object{message=string} "Server error"
// @Router /fortnight [post]
func (h *FortnightHandler) InsertFortnight(c *fiber.Ctx) error {
	var payload models.FortnightPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	timestamp, err := params.Timestamp(payload.Timestamp)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid timestamp"})
	}

	if err := h.fortnightRepo.InsertFortnight(c.Context(), timestamp); err != nil {
		return h.fortnightError(c, err, "Error inserting fortnight")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Fortnight inserted successfully"})
}

// InsertNFortnights godoc
// @Summary Insert n fortnights
// @Description Creates n consecutive biweekly pay periods starting at the given timestamp
// @Tags Fortnights
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param fortnights body models.FortnightBatchPayload true "Start timestamp and count"
// @Success 201 {object} object{message=string} "Fortnights inserted"
// @Failure 400 {object} object{message=string} "Invalid timestamp, invalid count or routine rejection"
// @Failure 500 {object} object{message=string} "Server error"
// @Router /fortnight [put]
func (h *FortnightHandler) InsertNFortnights(c *fiber.Ctx) error {
	var payload models.FortnightBatchPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	timestamp, err := params.Timestamp(payload.Timestamp)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid start timestamp"})
	}

	if payload.N == nil || *payload.N <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "n must be a positive integer"})
	}

	if err := h.fortnightRepo.InsertNFortnights(c.Context(), *payload.N, timestamp); err != nil {
		return h.fortnightError(c, err, "Error inserting fortnights")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Fortnights inserted successfully"})
}

// fortnightError maps routine failures for the fortnight inserts. The
// routines use raised errors for business rules (duplicate or
// out-of-order periods), surfaced to the caller as 400 with the
// routine's own message.
func (h *FortnightHandler) fortnightError(c *fiber.Ctx, err error, fallback string) error {
	if msg := pgcode.Message(err); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": msg})
	}
	logger.Error(c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": fallback})
}

// Schedule godoc
// @Summary Preview upcoming fortnight dates
// @Description Computes the next n biweekly dates from a start timestamp without touching the database
// @Tags Fortnights
// @Produce json
// @Security BearerAuth
// @Param timestamp query string true "Start timestamp"
// @Param n query int false "Number of dates (default 6)"
// @Success 200 {object} object{dates=array} "Upcoming fortnight dates"
// @Failure 400 {object} object{message=string} "Invalid timestamp or count"
// @Router /fortnight/schedule [get]
func (h *FortnightHandler) Schedule(c *fiber.Ctx) error {
	timestamp, err := params.Timestamp(c.Query("timestamp"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid timestamp"})
	}

	n, err := params.IntOrDefault(c.Query("n"), 6)
	if err != nil || n <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "n must be a positive integer"})
	}

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:     rrule.WEEKLY,
		Interval: 2,
		Count:    n,
		Dtstart:  timestamp,
	})
	if err != nil {
		logger.Error(c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error computing schedule"})
	}

	occurrences := rule.All()
	dates := make([]string, 0, len(occurrences))
	for _, occ := range occurrences {
		dates = append(dates, occ.Format(time.RFC3339))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"dates": dates})
}

// CalculateTax godoc
// @Summary Calculate the tax for a salary
// @Tags Fortnights
// @Produce json
// @Security BearerAuth
// @Param salary query number false "Salary amount"
// @Success 200 {array} models.Row "Tax rows"
// @Failure 400 {object} object{message=string} "Invalid salary"
// @Failure 500 {object} object{message=string} "Server error"
// @Router /fortnight/calculate [get]
func (h *FortnightHandler) CalculateTax(c *fiber.Ctx) error {
	salary, err := params.NullableFloat(c.Query("salary"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "salary must be a number"})
	}

	rows, err := h.fortnightRepo.CalculateTax(c.Context(), salary)
	if err != nil {
		logger.Error(c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error calculating tax"})
	}

	return c.Status(fiber.StatusOK).JSON(rows)
}
