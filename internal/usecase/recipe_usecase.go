package usecase

import (
	"context"
	"time"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type recipeUsecase struct {
	principals
	recipeRepo domain.RecipeRepository
	validate   *validator.Validate
}

func NewRecipeUsecase(userRepo domain.UserRepository, recipeRepo domain.RecipeRepository, validate *validator.Validate) domain.RecipeUsecase {
	return &recipeUsecase{
		principals: principals{users: userRepo},
		recipeRepo: recipeRepo,
		validate:   validate,
	}
}

func (u *recipeUsecase) List(ctx context.Context, page domain.Pagination) ([]domain.Recipe, error) {
	page = page.Normalize()
	recipes, err := u.recipeRepo.Fetch(ctx, page.Limit, page.Skip)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return recipes, nil
}

func (u *recipeUsecase) Get(ctx context.Context, id int64) (*domain.Recipe, error) {
	recipe, err := u.recipeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Recipe not found")
	}
	return recipe, nil
}

func (u *recipeUsecase) Create(ctx context.Context, email string, recipe *domain.Recipe) error {
	user, err := u.resolve(ctx, email)
	if err != nil {
		return err
	}
	if err := validateStruct(u.validate, recipe); err != nil {
		return err
	}

	recipe.CreatedBy = &user.ID
	recipe.CreatedAt = time.Now()
	recipe.UpdatedAt = recipe.CreatedAt
	if err := u.recipeRepo.Create(ctx, recipe); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *recipeUsecase) Update(ctx context.Context, email string, id int64, patch domain.RecipePatch) (*domain.Recipe, error) {
	if _, err := u.resolve(ctx, email); err != nil {
		return nil, err
	}
	recipe, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(recipe)
	if err := validateStruct(u.validate, recipe); err != nil {
		return nil, err
	}
	recipe.UpdatedAt = time.Now()

	if err := u.recipeRepo.Update(ctx, recipe); err != nil {
		return nil, notFoundOr(err, "Recipe not found")
	}
	return recipe, nil
}

func (u *recipeUsecase) Delete(ctx context.Context, email string, id int64) error {
	if _, err := u.resolve(ctx, email); err != nil {
		return err
	}
	if err := u.recipeRepo.Delete(ctx, id); err != nil {
		return notFoundOr(err, "Recipe not found")
	}
	return nil
}
