package user

import (
	"errors"

	"github.com/c2ccalc/c2ccalc/pkg/config"
	"github.com/c2ccalc/c2ccalc/pkg/domain"
	"github.com/c2ccalc/c2ccalc/pkg/middleware"
	usersvc "github.com/c2ccalc/c2ccalc/pkg/service/user"
	"github.com/c2ccalc/c2ccalc/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func Routes(app *fiber.App, userSvc *usersvc.Service, jwtCfg *config.Jwt) {
	app.Post("/user", CreateUser(userSvc))
	app.Get("/user/:id", middleware.Protected(jwtCfg), GetUser(userSvc))
}

// CreateUser registers a new user account.
// @Summary Register user
// @Description Create a new user with unique username and email
// @Tags user
// @Accept json
// @Produce json
// @Param request body NewUser true "Registration data"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Router /user [post]
func CreateUser(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[NewUser](c)
		if input == nil {
			return err
		}
		if len(input.Password) > 72 {
			return common.ProblemDetailsJSON(c, "Invalid password", nil,
				"Password must be at most 72 bytes", fiber.StatusBadRequest)
		}
		user, err := userSvc.CreateUser(c.Context(), input.Username, input.Email, input.Password)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrUserExists):
				return common.ProblemDetailsJSON(c, "User already exists", err)
			case errors.Is(err, domain.ErrInvalidUsername),
				errors.Is(err, domain.ErrInvalidEmail),
				errors.Is(err, domain.ErrInvalidPassword):
				return common.ProblemDetailsJSON(c, "Invalid user data", nil,
					err.Error(), fiber.StatusBadRequest)
			default:
				return common.ProblemDetailsJSON(c, "Failed to create user", err)
			}
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "User created", fiber.Map{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		})
	}
}

// GetUser returns a user by ID.
// @Summary Get user
// @Description Retrieve a user by ID
// @Tags user
// @Produce json
// @Param id path string true "User ID"
// @Security Bearer
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /user/{id} [get]
func GetUser(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid user ID", nil,
				err.Error(), fiber.StatusBadRequest)
		}
		user, err := userSvc.GetUser(c.Context(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to get user", err)
		}
		if user == nil {
			return common.ProblemDetailsJSON(c, "User not found", nil,
				"No user with the given ID", fiber.StatusNotFound)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Success", user)
	}
}
