package v1

import (
	"net/http"

	"jobboard-backend/internal/delivery/http/response"
	"jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	companyUC domain.CompanyUsecase
}

func NewCompanyHandler(api *gin.RouterGroup, companyUC domain.CompanyUsecase) {
	handler := &CompanyHandler{companyUC: companyUC}

	companies := api.Group("/companies")
	{
		companies.GET("", handler.List)
		companies.GET("/:id", handler.Get)
		companies.POST("", handler.Create)
		companies.PATCH("/:id", handler.Update)
		companies.DELETE("/:id", handler.Delete)
	}
}

type CompanyRequest struct {
	Email       string          `json:"email" binding:"required"`
	Name        string          `json:"name" binding:"required,no_emoji"`
	Industry    domain.Industry `json:"industry" binding:"required,enum"`
	Location    string          `json:"location" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Website     string          `json:"website" binding:"required"`
}

type UpdateCompanyRequest struct {
	Email       *string          `json:"email"`
	Name        *string          `json:"name"`
	Industry    *domain.Industry `json:"industry"`
	Location    *string          `json:"location"`
	Description *string          `json:"description"`
	Website     *string          `json:"website"`
}

// List godoc
// @Summary      List companies
// @Tags         companies
// @Produce      json
// @Param        skip   query     int  false  "Rows to skip"  minimum(0)
// @Param        limit  query     int  false  "Page size"     minimum(1) maximum(50)
// @Success      200    {object}  response.Response{data=[]domain.Company}
// @Router       /companies [get]
func (h *CompanyHandler) List(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}
	companies, err := h.companyUC.List(c.Request.Context(), page)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Companies retrieved", companies)
}

// Get godoc
// @Summary      Get a company
// @Tags         companies
// @Produce      json
// @Param        id   path      int  true  "Company ID"
// @Success      200  {object}  response.Response{data=domain.Company}
// @Failure      404  {object}  response.Response
// @Router       /companies/{id} [get]
func (h *CompanyHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	company, err := h.companyUC.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company retrieved", company)
}

// Create godoc
// @Summary      Create a company
// @Description  Recruiters only
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body      CompanyRequest  true  "Company"
// @Success      201   {object}  response.Response{data=domain.Company}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Router       /companies [post]
// @Security     BearerAuth
func (h *CompanyHandler) Create(c *gin.Context) {
	var req CompanyRequest
	if !bindJSON(c, &req) {
		return
	}

	company := &domain.Company{
		Email:       req.Email,
		Name:        req.Name,
		Industry:    req.Industry,
		Location:    req.Location,
		Description: req.Description,
		Website:     req.Website,
	}
	if err := h.companyUC.Create(c.Request.Context(), callerEmail(c), company); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Company created", company)
}

// Update godoc
// @Summary      Update a company
// @Description  Recruiters only; omitted fields are left unchanged
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        id    path      int                   true  "Company ID"
// @Param        body  body      UpdateCompanyRequest  true  "Fields to change"
// @Success      200   {object}  response.Response{data=domain.Company}
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /companies/{id} [patch]
// @Security     BearerAuth
func (h *CompanyHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req UpdateCompanyRequest
	if !bindJSON(c, &req) {
		return
	}

	company, err := h.companyUC.Update(c.Request.Context(), callerEmail(c), id, domain.CompanyPatch{
		Email:       req.Email,
		Name:        req.Name,
		Industry:    req.Industry,
		Location:    req.Location,
		Description: req.Description,
		Website:     req.Website,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company updated", company)
}

// Delete godoc
// @Summary      Delete a company
// @Tags         companies
// @Produce      json
// @Param        id   path      int  true  "Company ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /companies/{id} [delete]
// @Security     BearerAuth
func (h *CompanyHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.companyUC.Delete(c.Request.Context(), callerEmail(c), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company deleted", nil)
}
