package handlers

import (
	"github.com/gofiber/fiber/v2"

	"planilla-api/models"
	"planilla-api/pkg/logger"
	"planilla-api/pkg/password"
	"planilla-api/pkg/pgcode"
	"planilla-api/pkg/token"
	"planilla-api/pkg/utils"
	"planilla-api/repository"
)

type AuthHandler struct {
	userRepo repository.UserRepository
	maker    *token.Maker
}

func NewAuthHandler(userRepo repository.UserRepository, maker *token.Maker) *AuthHandler {
	return &AuthHandler{
		userRepo: userRepo,
		maker:    maker,
	}
}

// Register godoc
// @Summary Register a new user
// @Description Creates a user credential and returns a bearer token valid for one hour
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body models.UserRegisterPayload true "Registration data"
// @Success 200 {object} object{token=string} "Token issued"
// @Failure 400 {object} object{errors=array} "Validation error"
// @Failure 409 {object} object{message=string} "Email already registered"
// @Failure 500 {object} object{message=string} "Server error"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var payload models.UserRegisterPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	hashedPassword, err := password.HashPassword(payload.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}

	userID, err := h.userRepo.RegisterUser(c.Context(), payload.Username, payload.Email, hashedPassword)
	if err != nil {
		switch pgcode.Of(err) {
		case pgcode.RaisedException, pgcode.UniqueViolation:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "Email already registered"})
		default:
			logger.Error(c.Path(), err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
		}
	}

	tokenString, err := h.maker.GenerateToken(userID)
	if err != nil {
		logger.Error(c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"token": tokenString})
}

// Login godoc
// @Summary Log in
// @Description Verifies the credentials and returns a bearer token valid for one hour
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body models.UserLoginPayload true "Login credentials"
// @Success 200 {object} object{token=string} "Token issued"
// @Failure 400 {object} object{message=string} "Invalid credentials"
// @Failure 500 {object} object{message=string} "Server error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var payload models.UserLoginPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	cred, err := h.userRepo.AuthenticateUser(c.Context(), payload.Email)
	if err != nil {
		logger.Error(c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}

	// Unknown email and wrong password answer identically so the
	// endpoint cannot be used to enumerate accounts.
	if cred == nil || !password.CheckPasswordHash(payload.Password, cred.PasswordHash) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid credentials"})
	}

	tokenString, err := h.maker.GenerateToken(cred.UserID)
	if err != nil {
		logger.Error(c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"token": tokenString})
}
