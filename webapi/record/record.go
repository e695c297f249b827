package record

import (
	"github.com/c2ccalc/c2ccalc/pkg/config"
	"github.com/c2ccalc/c2ccalc/pkg/middleware"
	authsvc "github.com/c2ccalc/c2ccalc/pkg/service/auth"
	recordsvc "github.com/c2ccalc/c2ccalc/pkg/service/record"
	"github.com/c2ccalc/c2ccalc/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Routes registers the record endpoints. All of them require a valid JWT.
func Routes(app *fiber.App, recordSvc *recordsvc.Service, authSvc *authsvc.Service, jwtCfg *config.Jwt) {
	group := app.Group("/records", middleware.Protected(jwtCfg))
	group.Post("/", CreateRecord(recordSvc, authSvc))
	group.Get("/", ListRecords(recordSvc, authSvc))
	group.Patch("/:id/favorite", ToggleFavorite(recordSvc, authSvc))
	group.Patch("/:id", RenameRecord(recordSvc, authSvc))
	group.Delete("/:id", DeleteRecord(recordSvc, authSvc))
	group.Delete("/", ClearRecords(recordSvc, authSvc))
}

// CreateRecord saves a new calculation for the authenticated user.
// @Summary Create record
// @Description Save a calculation record; the total is computed server-side
// @Tags records
// @Accept json
// @Produce json
// @Param request body NewRecordInput true "Record data"
// @Security Bearer
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Router /records [post]
func CreateRecord(recordSvc *recordsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := currentUserID(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		input, err := common.BindAndValidate[NewRecordInput](c)
		if input == nil {
			return err
		}
		record, err := recordSvc.CreateRecord(c.Context(), userID, input.Name, input.Amount, input.Price)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to create record", nil,
				err.Error(), fiber.StatusBadRequest)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Record created", record)
	}
}

// ListRecords returns the authenticated user's records, newest first.
// @Summary List records
// @Description List the user's records, optionally only favorites
// @Tags records
// @Produce json
// @Param favorites query bool false "Only favorite records"
// @Security Bearer
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Router /records [get]
func ListRecords(recordSvc *recordsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := currentUserID(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		favoritesOnly := c.QueryBool("favorites", false)
		records, err := recordSvc.ListRecords(c.Context(), userID, favoritesOnly)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list records", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Success", records)
	}
}

// ToggleFavorite flips the favorite flag on the user's record.
// @Summary Toggle favorite
// @Description Flip the favorite flag of a record
// @Tags records
// @Produce json
// @Param id path string true "Record ID"
// @Security Bearer
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /records/{id}/favorite [patch]
func ToggleFavorite(recordSvc *recordsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := currentUserID(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		recordID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid record ID", nil,
				err.Error(), fiber.StatusBadRequest)
		}
		record, err := recordSvc.ToggleFavorite(c.Context(), userID, recordID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to toggle favorite", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Favorite toggled", record)
	}
}

// RenameRecord changes a record's name.
// @Summary Rename record
// @Description Change a record's name
// @Tags records
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Param request body RenameInput true "New name"
// @Security Bearer
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /records/{id} [patch]
func RenameRecord(recordSvc *recordsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := currentUserID(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		recordID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid record ID", nil,
				err.Error(), fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[RenameInput](c)
		if input == nil {
			return err
		}
		record, err := recordSvc.RenameRecord(c.Context(), userID, recordID, input.Name)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to rename record", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Record renamed", record)
	}
}

// DeleteRecord soft-deletes the user's record.
// @Summary Delete record
// @Description Soft-delete a record
// @Tags records
// @Produce json
// @Param id path string true "Record ID"
// @Security Bearer
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /records/{id} [delete]
func DeleteRecord(recordSvc *recordsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := currentUserID(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		recordID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid record ID", nil,
				err.Error(), fiber.StatusBadRequest)
		}
		if err := recordSvc.DeleteRecord(c.Context(), userID, recordID); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to delete record", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Record deleted", nil)
	}
}

// ClearRecords soft-deletes all of the user's records.
// @Summary Clear records
// @Description Soft-delete all of the user's records
// @Tags records
// @Produce json
// @Security Bearer
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Router /records [delete]
func ClearRecords(recordSvc *recordsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := currentUserID(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		if err := recordSvc.ClearRecords(c.Context(), userID); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to clear records", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Records cleared", nil)
	}
}

func currentUserID(c *fiber.Ctx, authSvc *authsvc.Service) (uuid.UUID, error) {
	token, _ := c.Locals("user").(*jwt.Token)
	return authSvc.GetCurrentUserId(token)
}
