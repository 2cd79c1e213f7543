package v1

import (
	"net/http"

	"jobboard-backend/internal/delivery/http/response"
	"jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type RecruiterHandler struct {
	recruiterUC domain.RecruiterUsecase
}

func NewRecruiterHandler(api *gin.RouterGroup, recruiterUC domain.RecruiterUsecase) {
	handler := &RecruiterHandler{recruiterUC: recruiterUC}

	recruiters := api.Group("/recruiters")
	{
		recruiters.GET("", handler.List)
		recruiters.GET("/:id", handler.Get)
		recruiters.POST("", handler.Create)
		recruiters.PATCH("/:id", handler.Update)
		recruiters.DELETE("/:id", handler.Delete)
	}
}

type RecruiterRequest struct {
	CompanyID   int64  `json:"company_id" binding:"required"`
	FirstName   string `json:"first_name" binding:"required,valid_name"`
	LastName    string `json:"last_name" binding:"required,valid_name"`
	PhoneNumber string `json:"phone_number" binding:"required,valid_phone"`
	Position    string `json:"position" binding:"required"`
}

type UpdateRecruiterRequest struct {
	CompanyID   *int64  `json:"company_id"`
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	PhoneNumber *string `json:"phone_number"`
	Position    *string `json:"position"`
}

// List godoc
// @Summary      List recruiters
// @Tags         recruiters
// @Produce      json
// @Param        skip   query     int  false  "Rows to skip"
// @Param        limit  query     int  false  "Page size"
// @Success      200    {object}  response.Response{data=[]domain.Recruiter}
// @Router       /recruiters [get]
func (h *RecruiterHandler) List(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}
	recruiters, err := h.recruiterUC.List(c.Request.Context(), page)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Recruiters retrieved", recruiters)
}

// Get godoc
// @Summary      Get a recruiter
// @Tags         recruiters
// @Produce      json
// @Param        id   path      int  true  "Recruiter ID"
// @Success      200  {object}  response.Response{data=domain.Recruiter}
// @Failure      404  {object}  response.Response
// @Router       /recruiters/{id} [get]
func (h *RecruiterHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	rec, err := h.recruiterUC.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Recruiter retrieved", rec)
}

// Create godoc
// @Summary      Create the caller's recruiter profile
// @Tags         recruiters
// @Accept       json
// @Produce      json
// @Param        body  body      RecruiterRequest  true  "Profile"
// @Success      201   {object}  response.Response{data=domain.Recruiter}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /recruiters [post]
// @Security     BearerAuth
func (h *RecruiterHandler) Create(c *gin.Context) {
	var req RecruiterRequest
	if !bindJSON(c, &req) {
		return
	}

	rec := &domain.Recruiter{
		CompanyID:   req.CompanyID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Position:    req.Position,
	}
	if err := h.recruiterUC.Create(c.Request.Context(), callerEmail(c), rec); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Recruiter profile created", rec)
}

// Update godoc
// @Summary      Update own recruiter profile
// @Tags         recruiters
// @Accept       json
// @Produce      json
// @Param        id    path      int                     true  "Recruiter ID"
// @Param        body  body      UpdateRecruiterRequest  true  "Fields to change"
// @Success      200   {object}  response.Response{data=domain.Recruiter}
// @Failure      403   {object}  response.Response
// @Router       /recruiters/{id} [patch]
// @Security     BearerAuth
func (h *RecruiterHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req UpdateRecruiterRequest
	if !bindJSON(c, &req) {
		return
	}

	rec, err := h.recruiterUC.Update(c.Request.Context(), callerEmail(c), id, domain.RecruiterPatch{
		CompanyID:   req.CompanyID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Position:    req.Position,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Recruiter profile updated", rec)
}

// Delete godoc
// @Summary      Delete own recruiter profile
// @Tags         recruiters
// @Produce      json
// @Param        id   path      int  true  "Recruiter ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /recruiters/{id} [delete]
// @Security     BearerAuth
func (h *RecruiterHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.recruiterUC.Delete(c.Request.Context(), callerEmail(c), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Recruiter profile deleted", nil)
}
