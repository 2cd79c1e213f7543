package v1

import (
	"net/http"
	"strings"

	"jobboard-backend/internal/delivery/http/response"
	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
	"jobboard-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	authUC domain.AuthUsecase
}

// NewUserHandler registers account routes. credentialLimit throttles register
// and login; requireAuth guards /users/me.
func NewUserHandler(api *gin.RouterGroup, authUC domain.AuthUsecase, requireAuth, credentialLimit gin.HandlerFunc) {
	handler := &UserHandler{authUC: authUC}

	users := api.Group("/users")
	{
		users.POST("/register", credentialLimit, handler.Register)
		users.POST("/login", credentialLimit, handler.Login)
		users.GET("/me", requireAuth, handler.Me)
		users.DELETE("/me", requireAuth, handler.DeleteMe)
	}
}

type RegisterRequest struct {
	Email    string      `json:"email" binding:"required,email"`
	Password string      `json:"password" binding:"required,min=6,max=72"`
	Role     domain.Role `json:"role" binding:"required"`
}

// LoginRequest accepts either a JSON body or an OAuth2 password-grant form.
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password" binding:"required"`
}

// Register godoc
// @Summary      Register a user
// @Description  Create an account with role "Job Seeker" or "Recruiter"
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      RegisterRequest  true  "Credentials"
// @Success      201   {object}  response.Response{data=domain.User}
// @Failure      400   {object}  response.Response
// @Router       /users/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.authUC.Register(c.Request.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "User registered successfully", user)
}

// Login godoc
// @Summary      Log in
// @Description  Exchange credentials for a bearer token
// @Tags         users
// @Accept       json
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        body  body      LoginRequest  true  "Credentials"
// @Success      200   {object}  domain.AccessToken
// @Failure      401   {object}  response.Response
// @Router       /users/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Error(apperror.BadRequest(validation.Message(err)))
		return
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		email = strings.TrimSpace(req.Username)
	}
	if email == "" {
		c.Error(apperror.BadRequest("Email is required"))
		return
	}

	token, err := h.authUC.Login(c.Request.Context(), email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	// OAuth2 clients read access_token from the top level
	c.JSON(http.StatusOK, token)
}

// Me godoc
// @Summary      Current user
// @Description  The authenticated user with its job seeker or recruiter profile
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.UserWithProfile}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /users/me [get]
// @Security     BearerAuth
func (h *UserHandler) Me(c *gin.Context) {
	me, err := h.authUC.GetCurrentUser(c.Request.Context(), callerEmail(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User details", me)
}

// DeleteMe godoc
// @Summary      Delete account
// @Description  Delete the authenticated user and, by cascade, its profile, listings and applications
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /users/me [delete]
// @Security     BearerAuth
func (h *UserHandler) DeleteMe(c *gin.Context) {
	if err := h.authUC.DeleteAccount(c.Request.Context(), callerEmail(c)); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Account deleted", nil)
}
