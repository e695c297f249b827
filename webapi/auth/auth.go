package auth

import (
	"errors"

	"github.com/c2ccalc/c2ccalc/pkg/domain"
	authsvc "github.com/c2ccalc/c2ccalc/pkg/service/auth"
	"github.com/c2ccalc/c2ccalc/webapi/common"
	"github.com/gofiber/fiber/v2"
)

func Routes(app *fiber.App, authSvc *authsvc.Service) {
	app.Post("/auth/login", Login(authSvc))
}

// Login handles user authentication and returns a JWT token.
// @Summary User login
// @Description Authenticate user with identity (username or email) and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginInput true "Login credentials"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /auth/login [post]
func Login(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[LoginInput](c)
		if input == nil {
			return err
		}
		user, err := authSvc.Login(c.Context(), input.Identity, input.Password)
		if errors.Is(err, domain.ErrUserUnauthorized) || (err == nil && user == nil) {
			return common.ProblemDetailsJSON(c, "Invalid identity or password", nil,
				"Identity or password is incorrect", fiber.StatusUnauthorized)
		}
		if err != nil {
			return common.ProblemDetailsJSON(c, "Login failed", err)
		}
		token, err := authSvc.GenerateToken(user)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Success login", fiber.Map{
			"token": token,
			"user":  fiber.Map{"id": user.ID, "username": user.Username},
		})
	}
}
