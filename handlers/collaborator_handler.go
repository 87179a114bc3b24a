package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	qrcode "github.com/skip2/go-qrcode"

	"planilla-api/pkg/logger"
	"planilla-api/pkg/params"
	"planilla-api/repository"
)

type CollaboratorHandler struct {
	collabRepo repository.CollaboratorRepository
}

func NewCollaboratorHandler(collabRepo repository.CollaboratorRepository) *CollaboratorHandler {
	return &CollaboratorHandler{
		collabRepo: collabRepo,
	}
}

// GetCollaboratorName godoc
// @Summary Get a collaborator's name by card ID
// @Tags Collaborators
// @Produce json
// @Param cardID query int true "Collaborator card ID (cédula)"
// @Success 200 {object} models.Row "Collaborator row"
// @Failure 400 {object} object{message=string} "Missing card ID or unknown collaborator"
// @Router /collaborator [get]
func (h *CollaboratorHandler) GetCollaboratorName(c *fiber.Ctx) error {
	cardID, err := params.NullableInt(c.Query("cardID"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "cardID must be a number"})
	}
	if cardID == nil || *cardID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "A card ID must be provided"})
	}

	row, err := h.collabRepo.GetCollaboratorName(c.Context(), *cardID)
	if err != nil {
		logger.Error(c.Path(), err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "The employee does not exist"})
	}
	if row == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "The employee does not exist"})
	}

	return c.Status(fiber.StatusOK).JSON(row)
}

// GetCollaboratorBadge godoc
// @Summary Get a collaborator's badge QR code
// @Description Returns a PNG QR code encoding the collaborator's card ID, for badge printing
// @Tags Collaborators
// @Produce png
// @Param cardID query int true "Collaborator card ID (cédula)"
// @Success 200 {file} file "Badge PNG"
// @Failure 400 {object} object{message=string} "Missing card ID or unknown collaborator"
// @Failure 500 {object} object{message=string} "Server error"
// @Router /collaborator/badge [get]
func (h *CollaboratorHandler) GetCollaboratorBadge(c *fiber.Ctx) error {
	cardID, err := params.NullableInt(c.Query("cardID"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "cardID must be a number"})
	}
	if cardID == nil || *cardID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "A card ID must be provided"})
	}

	row, err := h.collabRepo.GetCollaboratorName(c.Context(), *cardID)
	if err != nil || row == nil {
		if err != nil {
			logger.Error(c.Path(), err)
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "The employee does not exist"})
	}

	png, err := qrcode.Encode(strconv.Itoa(*cardID), qrcode.Medium, 256)
	if err != nil {
		logger.Error(c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error generating badge"})
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Status(fiber.StatusOK).Send(png)
}
