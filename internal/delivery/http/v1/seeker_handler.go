package v1

import (
	"net/http"

	"jobboard-backend/internal/delivery/http/response"
	"jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type SeekerHandler struct {
	seekerUC domain.JobSeekerUsecase
}

func NewSeekerHandler(api *gin.RouterGroup, seekerUC domain.JobSeekerUsecase) {
	handler := &SeekerHandler{seekerUC: seekerUC}

	seekers := api.Group("/seekers")
	{
		seekers.GET("", handler.List)
		seekers.GET("/:id", handler.Get)
		seekers.GET("/:id/completion", handler.Completion)
		seekers.POST("", handler.Create)
		seekers.PATCH("/:id", handler.Update)
		seekers.DELETE("/:id", handler.Delete)
	}
}

type SeekerRequest struct {
	FirstName       string  `json:"first_name" binding:"required,valid_name"`
	LastName        string  `json:"last_name" binding:"required,valid_name"`
	DesiredJobTitle string  `json:"desired_job_title" binding:"required"`
	PhoneNumber     string  `json:"phone_number" binding:"required,valid_phone"`
	CurrentSalary   int64   `json:"current_salary" binding:"gte=0"`
	Location        string  `json:"location" binding:"required"`
	PastExperience  *string `json:"past_experience"`
	SkillSet        *string `json:"skill_set"`
}

type UpdateSeekerRequest struct {
	FirstName       *string `json:"first_name"`
	LastName        *string `json:"last_name"`
	DesiredJobTitle *string `json:"desired_job_title"`
	PhoneNumber     *string `json:"phone_number"`
	CurrentSalary   *int64  `json:"current_salary"`
	Location        *string `json:"location"`
	PastExperience  *string `json:"past_experience"`
	SkillSet        *string `json:"skill_set"`
}

// List godoc
// @Summary      List job seekers
// @Tags         seekers
// @Produce      json
// @Param        skip   query     int  false  "Rows to skip"
// @Param        limit  query     int  false  "Page size"
// @Success      200    {object}  response.Response{data=[]domain.JobSeeker}
// @Router       /seekers [get]
func (h *SeekerHandler) List(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}
	seekers, err := h.seekerUC.List(c.Request.Context(), page)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job seekers retrieved", seekers)
}

// Get godoc
// @Summary      Get a job seeker
// @Tags         seekers
// @Produce      json
// @Param        id   path      int  true  "Job Seeker ID"
// @Success      200  {object}  response.Response{data=domain.JobSeeker}
// @Failure      404  {object}  response.Response
// @Router       /seekers/{id} [get]
func (h *SeekerHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	seeker, err := h.seekerUC.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job seeker retrieved", seeker)
}

// Completion godoc
// @Summary      Profile completion
// @Description  Weighted completion: bio 50, experience 30, skills 20. Groups score all or nothing.
// @Tags         seekers
// @Produce      json
// @Param        id   path      int  true  "Job Seeker ID"
// @Success      200  {object}  response.Response{data=domain.ProfileCompletion}
// @Failure      404  {object}  response.Response
// @Router       /seekers/{id}/completion [get]
// @Security     BearerAuth
func (h *SeekerHandler) Completion(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	completion, err := h.seekerUC.Completion(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile completion", completion)
}

// Create godoc
// @Summary      Create the caller's job seeker profile
// @Tags         seekers
// @Accept       json
// @Produce      json
// @Param        body  body      SeekerRequest  true  "Profile"
// @Success      201   {object}  response.Response{data=domain.JobSeeker}
// @Failure      400   {object}  response.Response
// @Router       /seekers [post]
// @Security     BearerAuth
func (h *SeekerHandler) Create(c *gin.Context) {
	var req SeekerRequest
	if !bindJSON(c, &req) {
		return
	}

	seeker := &domain.JobSeeker{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		DesiredJobTitle: req.DesiredJobTitle,
		PhoneNumber:     req.PhoneNumber,
		CurrentSalary:   req.CurrentSalary,
		Location:        req.Location,
		PastExperience:  req.PastExperience,
		SkillSet:        req.SkillSet,
	}
	if err := h.seekerUC.Create(c.Request.Context(), callerEmail(c), seeker); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Job seeker profile created", seeker)
}

// Update godoc
// @Summary      Update own job seeker profile
// @Tags         seekers
// @Accept       json
// @Produce      json
// @Param        id    path      int                  true  "Job Seeker ID"
// @Param        body  body      UpdateSeekerRequest  true  "Fields to change"
// @Success      200   {object}  response.Response{data=domain.JobSeeker}
// @Failure      403   {object}  response.Response
// @Router       /seekers/{id} [patch]
// @Security     BearerAuth
func (h *SeekerHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req UpdateSeekerRequest
	if !bindJSON(c, &req) {
		return
	}

	seeker, err := h.seekerUC.Update(c.Request.Context(), callerEmail(c), id, domain.JobSeekerPatch{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		DesiredJobTitle: req.DesiredJobTitle,
		PhoneNumber:     req.PhoneNumber,
		CurrentSalary:   req.CurrentSalary,
		Location:        req.Location,
		PastExperience:  req.PastExperience,
		SkillSet:        req.SkillSet,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job seeker profile updated", seeker)
}

// Delete godoc
// @Summary      Delete own job seeker profile
// @Tags         seekers
// @Produce      json
// @Param        id   path      int  true  "Job Seeker ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /seekers/{id} [delete]
// @Security     BearerAuth
func (h *SeekerHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.seekerUC.Delete(c.Request.Context(), callerEmail(c), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job seeker profile deleted", nil)
}
