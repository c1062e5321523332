package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lehuy/speaktrack/internal/dto"
	"github.com/lehuy/speaktrack/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminUserController struct {
	userService service.UserService
}

func NewAdminUserController(userService service.UserService) *AdminUserController {
	return &AdminUserController{userService: userService}
}

// CreateUser godoc
// @Summary (Admin) Register a practice account
// @Tags Admin - Users
// @Accept json
// @Produce json
// @Param user body dto.UserCreateDTO true "User data"
// @Success 201 {object} dto.UserResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/users [post]
func (c *AdminUserController) CreateUser(ctx *gin.Context) {
	var req dto.UserCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateUser: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.userService.CreateUser(req)
	if err != nil {
		log.Error().Err(err).Msg("Admin CreateUser: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to create user", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetAllUsers godoc
// @Summary (Admin) List practice accounts
// @Tags Admin - Users
// @Produce json
// @Success 200 {array} dto.UserResponseDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/users [get]
func (c *AdminUserController) GetAllUsers(ctx *gin.Context) {
	users, err := c.userService.GetAllUsers()
	if err != nil {
		log.Error().Err(err).Msg("Admin GetAllUsers: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve users", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, users)
}
