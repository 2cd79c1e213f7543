package v1

import (
	"net/http"

	"jobboard-backend/internal/delivery/http/response"
	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
	"jobboard-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type ListingHandler struct {
	listingUC domain.ListingUsecase
}

func NewListingHandler(api *gin.RouterGroup, listingUC domain.ListingUsecase) {
	handler := &ListingHandler{listingUC: listingUC}

	listings := api.Group("/listings")
	{
		listings.GET("", handler.List)
		listings.GET("/search", handler.Search)
		listings.GET("/:id", handler.Get)
		listings.POST("", handler.Create)
		listings.PATCH("/:id", handler.Update)
		listings.DELETE("/:id", handler.Delete)
	}
}

type ListingRequest struct {
	CompanyID           int64                 `json:"company_id" binding:"required"`
	Title               string                `json:"title" binding:"required,no_emoji"`
	Description         string                `json:"description" binding:"required"`
	Location            domain.WorkMode       `json:"location" binding:"required,enum"`
	SalaryRange         domain.SalaryRange    `json:"salary_range" binding:"required,enum"`
	Employment          domain.EmploymentType `json:"employment" binding:"required,enum"`
	PostedDate          domain.Date           `json:"posted_date" swaggertype:"string" format:"date"`
	ApplicationDeadline domain.Date           `json:"application_deadline" swaggertype:"string" format:"date"`
	IsActive            domain.ListingStatus  `json:"is_active" binding:"omitempty,enum"`
}

type UpdateListingRequest struct {
	ApplicationDeadline *domain.Date          `json:"application_deadline" swaggertype:"string" format:"date"`
	IsActive            *domain.ListingStatus `json:"is_active"`
	Title               *string               `json:"title"`
	Description         *string               `json:"description"`
}

// List godoc
// @Summary      List listings
// @Tags         listings
// @Produce      json
// @Param        skip   query     int  false  "Rows to skip"
// @Param        limit  query     int  false  "Page size"
// @Success      200    {object}  response.Response{data=[]domain.Listing}
// @Router       /listings [get]
func (h *ListingHandler) List(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}
	listings, err := h.listingUC.List(c.Request.Context(), page)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Listings retrieved", listings)
}

// Search godoc
// @Summary      Search listings
// @Description  Case-insensitive title and location match, exact employment type. Empty filters match everything.
// @Tags         listings
// @Produce      json
// @Param        title            query     string  false  "Title contains"
// @Param        employment_type  query     string  false  "Employment type"
// @Param        location         query     string  false  "Work mode contains"
// @Success      200              {object}  response.Response{data=[]domain.Listing}
// @Router       /listings/search [get]
// @Security     BearerAuth
func (h *ListingHandler) Search(c *gin.Context) {
	var filter domain.ListingFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(apperror.BadRequest(validation.Message(err)))
		return
	}
	listings, err := h.listingUC.Search(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Listings retrieved", listings)
}

// Get godoc
// @Summary      Get a listing
// @Tags         listings
// @Produce      json
// @Param        id   path      int  true  "Listing ID"
// @Success      200  {object}  response.Response{data=domain.Listing}
// @Failure      404  {object}  response.Response
// @Router       /listings/{id} [get]
func (h *ListingHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	listing, err := h.listingUC.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Listing retrieved", listing)
}

// Create godoc
// @Summary      Post a listing
// @Description  Recruiters with a profile only. is_active defaults to "Still accepting", posted_date to today.
// @Tags         listings
// @Accept       json
// @Produce      json
// @Param        body  body      ListingRequest  true  "Listing"
// @Success      201   {object}  response.Response{data=domain.Listing}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /listings [post]
// @Security     BearerAuth
func (h *ListingHandler) Create(c *gin.Context) {
	var req ListingRequest
	if !bindJSON(c, &req) {
		return
	}

	listing := &domain.Listing{
		CompanyID:           req.CompanyID,
		Title:               req.Title,
		Description:         req.Description,
		Location:            req.Location,
		SalaryRange:         req.SalaryRange,
		Employment:          req.Employment,
		PostedDate:          req.PostedDate,
		ApplicationDeadline: req.ApplicationDeadline,
		IsActive:            req.IsActive,
	}
	if err := h.listingUC.Create(c.Request.Context(), callerEmail(c), listing); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Listing created", listing)
}

// Update godoc
// @Summary      Update a listing
// @Description  Only the posting recruiter
// @Tags         listings
// @Accept       json
// @Produce      json
// @Param        id    path      int                   true  "Listing ID"
// @Param        body  body      UpdateListingRequest  true  "Fields to change"
// @Success      200   {object}  response.Response{data=domain.Listing}
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /listings/{id} [patch]
// @Security     BearerAuth
func (h *ListingHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req UpdateListingRequest
	if !bindJSON(c, &req) {
		return
	}

	listing, err := h.listingUC.Update(c.Request.Context(), callerEmail(c), id, domain.ListingPatch{
		ApplicationDeadline: req.ApplicationDeadline,
		IsActive:            req.IsActive,
		Title:               req.Title,
		Description:         req.Description,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Listing updated", listing)
}

// Delete godoc
// @Summary      Delete a listing
// @Tags         listings
// @Produce      json
// @Param        id   path      int  true  "Listing ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /listings/{id} [delete]
// @Security     BearerAuth
func (h *ListingHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.listingUC.Delete(c.Request.Context(), callerEmail(c), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Listing deleted", nil)
}
