package controllers

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/karthik/printdesk/internal/app/models/dto"
	"github.com/karthik/printdesk/internal/app/services"
	"github.com/karthik/printdesk/internal/middleware"
	"github.com/karthik/printdesk/internal/pkg/apperrors"
	"github.com/karthik/printdesk/internal/pkg/auth"
	"github.com/karthik/printdesk/internal/pkg/logger"
)

// AuthController handles registration and login endpoints
type AuthController struct {
	studentService services.StudentService
	jwtService     *auth.JWTService
	adminUsername  string
	adminPassword  string
}

// NewAuthController creates a new AuthController
func NewAuthController(studentService services.StudentService, jwtService *auth.JWTService, adminUsername, adminPassword string) *AuthController {
	return &AuthController{
		studentService: studentService,
		jwtService:     jwtService,
		adminUsername:  adminUsername,
		adminPassword:  adminPassword,
	}
}

// RegisterStudent handles new student registration
// @Summary Register a student
// @Description Creates a student account; the email must not already be registered
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterStudentRequest true "Registration data"
// @Success 200 {object} dto.APIResponse{data=dto.RegisterStudentResponse}
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Router /auth/register [post]
func (c *AuthController) RegisterStudent(ctx *gin.Context) {
	var req dto.RegisterStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid registration data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	id, err := c.studentService.Register(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.RegisterStudentResponse{
		Message:   "Student registered successfully",
		StudentID: id,
	}))
}

// StudentLogin authenticates a student and issues a token
// @Summary Student login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.StudentLoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse}
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (c *AuthController) StudentLogin(ctx *gin.Context) {
	var req dto.StudentLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid login data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	student, err := c.studentService.Login(ctx, req.Email, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	token, expiresIn, err := c.jwtService.GenerateToken(student.ID, student.Name, auth.RoleStudent)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.LoginResponse{
		Token:     token,
		ExpiresIn: expiresIn,
		StudentID: student.ID,
		Name:      student.Name,
	}))
}

// AdminLogin authenticates the shop operator and issues an admin token
// @Summary Admin login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.AdminLoginRequest true "Admin credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse}
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /auth/admin/login [post]
func (c *AuthController) AdminLogin(ctx *gin.Context) {
	var req dto.AdminLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid login data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(c.adminUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(c.adminPassword)) == 1
	if !userOK || !passOK {
		logger.Warn().Str("username", req.Username).Msg("Failed admin login attempt")
		middleware.HandleAPIError(ctx, apperrors.ErrInvalidCredentials)
		return
	}

	token, expiresIn, err := c.jwtService.GenerateToken(0, req.Username, auth.RoleAdmin)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.LoginResponse{
		Token:     token,
		ExpiresIn: expiresIn,
	}))
}
