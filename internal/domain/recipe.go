package domain

import (
	"context"
	"time"
)

type RecipeCategory string

const (
	RecipeBreakfast RecipeCategory = "breakfast"
	RecipeLunch     RecipeCategory = "lunch"
	RecipeDinner    RecipeCategory = "dinner"
	RecipeDessert   RecipeCategory = "dessert"
)

func (c RecipeCategory) Valid() bool {
	switch c {
	case RecipeBreakfast, RecipeLunch, RecipeDinner, RecipeDessert:
		return true
	}
	return false
}

type Recipe struct {
	ID            int64          `json:"id"`
	Name          string         `json:"recipe_name" validate:"required,max=200"`
	Category      RecipeCategory `json:"recipe_choice" validate:"required,enum"`
	Method        string         `json:"recipe_method" validate:"required"`
	PrepTimeInMin int            `json:"prep_time_in_min" validate:"required,gt=0"`
	CreatedBy     *int64         `json:"created_by,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

type RecipePatch struct {
	Name          *string
	Category      *RecipeCategory
	Method        *string
	PrepTimeInMin *int
}

func (p RecipePatch) Apply(r *Recipe) {
	if p.Name != nil {
		r.Name = *p.Name
	}
	if p.Category != nil {
		r.Category = *p.Category
	}
	if p.Method != nil {
		r.Method = *p.Method
	}
	if p.PrepTimeInMin != nil {
		r.PrepTimeInMin = *p.PrepTimeInMin
	}
}

type RecipeRepository interface {
	Create(ctx context.Context, recipe *Recipe) error
	GetByID(ctx context.Context, id int64) (*Recipe, error)
	Fetch(ctx context.Context, limit, offset int) ([]Recipe, error)
	Update(ctx context.Context, recipe *Recipe) error
	Delete(ctx context.Context, id int64) error
}

type RecipeUsecase interface {
	List(ctx context.Context, page Pagination) ([]Recipe, error)
	Get(ctx context.Context, id int64) (*Recipe, error)
	Create(ctx context.Context, email string, recipe *Recipe) error
	Update(ctx context.Context, email string, id int64, patch RecipePatch) (*Recipe, error)
	Delete(ctx context.Context, email string, id int64) error
}
