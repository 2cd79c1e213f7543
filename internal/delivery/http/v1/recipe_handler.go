package v1

import (
	"net/http"

	"jobboard-backend/internal/delivery/http/response"
	"jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type RecipeHandler struct {
	recipeUC domain.RecipeUsecase
}

func NewRecipeHandler(api *gin.RouterGroup, recipeUC domain.RecipeUsecase) {
	handler := &RecipeHandler{recipeUC: recipeUC}

	recipes := api.Group("/recipes")
	{
		recipes.GET("", handler.List)
		recipes.GET("/:id", handler.Get)
		recipes.POST("", handler.Create)
		recipes.PATCH("/:id", handler.Update)
		recipes.DELETE("/:id", handler.Delete)
	}
}

type RecipeRequest struct {
	Name          string                `json:"recipe_name" binding:"required"`
	Category      domain.RecipeCategory `json:"recipe_choice" binding:"required,enum"`
	Method        string                `json:"recipe_method" binding:"required"`
	PrepTimeInMin int                   `json:"prep_time_in_min" binding:"required,gt=0"`
}

type UpdateRecipeRequest struct {
	Name          *string                `json:"recipe_name"`
	Category      *domain.RecipeCategory `json:"recipe_choice"`
	Method        *string                `json:"recipe_method"`
	PrepTimeInMin *int                   `json:"prep_time_in_min"`
}

// List godoc
// @Summary      List recipes
// @Tags         recipes
// @Produce      json
// @Param        skip   query     int  false  "Rows to skip"
// @Param        limit  query     int  false  "Page size"
// @Success      200    {object}  response.Response{data=[]domain.Recipe}
// @Router       /recipes [get]
func (h *RecipeHandler) List(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}
	recipes, err := h.recipeUC.List(c.Request.Context(), page)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Recipes retrieved", recipes)
}

// Get godoc
// @Summary      Get a recipe
// @Tags         recipes
// @Produce      json
// @Param        id   path      int  true  "Recipe ID"
// @Success      200  {object}  response.Response{data=domain.Recipe}
// @Failure      404  {object}  response.Response
// @Router       /recipes/{id} [get]
func (h *RecipeHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	recipe, err := h.recipeUC.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Recipe retrieved", recipe)
}

// Create godoc
// @Summary      Create a recipe
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Param        body  body      RecipeRequest  true  "Recipe"
// @Success      201   {object}  response.Response{data=domain.Recipe}
// @Failure      400   {object}  response.Response
// @Router       /recipes [post]
// @Security     BearerAuth
func (h *RecipeHandler) Create(c *gin.Context) {
	var req RecipeRequest
	if !bindJSON(c, &req) {
		return
	}
	recipe := &domain.Recipe{
		Name:          req.Name,
		Category:      req.Category,
		Method:        req.Method,
		PrepTimeInMin: req.PrepTimeInMin,
	}
	if err := h.recipeUC.Create(c.Request.Context(), callerEmail(c), recipe); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Recipe created", recipe)
}

// Update godoc
// @Summary      Update a recipe
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Param        id    path      int                  true  "Recipe ID"
// @Param        body  body      UpdateRecipeRequest  true  "Fields to change"
// @Success      200   {object}  response.Response{data=domain.Recipe}
// @Failure      404   {object}  response.Response
// @Router       /recipes/{id} [patch]
// @Security     BearerAuth
func (h *RecipeHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req UpdateRecipeRequest
	if !bindJSON(c, &req) {
		return
	}
	recipe, err := h.recipeUC.Update(c.Request.Context(), callerEmail(c), id, domain.RecipePatch{
		Name:          req.Name,
		Category:      req.Category,
		Method:        req.Method,
		PrepTimeInMin: req.PrepTimeInMin,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Recipe updated", recipe)
}

// Delete godoc
// @Summary      Delete a recipe
// @Tags         recipes
// @Produce      json
// @Param        id   path      int  true  "Recipe ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /recipes/{id} [delete]
// @Security     BearerAuth
func (h *RecipeHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.recipeUC.Delete(c.Request.Context(), callerEmail(c), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Recipe deleted", nil)
}
