package service

import (
	"context"
	"fmt"
	"strings"

	"blog-cms/internal/domain"
	"blog-cms/internal/eventbus"
	"blog-cms/internal/identity"
	"blog-cms/internal/lifecycle"
	"blog-cms/internal/repository"
)

// CategoryService runs the category commands and queries.
type CategoryService struct {
	categoryRepo repository.CategoryRepository
	bus          eventbus.EventBus
	ids          identity.IDGenerator

	creator *lifecycle.CategoryCreator
	updater *lifecycle.CategoryUpdater
	deleter *lifecycle.CategoryDeleter
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(
	categoryRepo repository.CategoryRepository,
	bus eventbus.EventBus,
	ids identity.IDGenerator,
	slugger identity.SlugGenerator,
	clock lifecycle.Clock,
) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		bus:          bus,
		ids:          ids,
		creator:      lifecycle.NewCategoryCreator(categoryRepo, slugger, clock),
		updater:      lifecycle.NewCategoryUpdater(categoryRepo, slugger, clock),
		deleter:      lifecycle.NewCategoryDeleter(categoryRepo, clock),
	}
}

// CreateCategory adds a category under an optional parent.
func (s *CategoryService) CreateCategory(ctx context.Context, cmd CreateCategoryCommand) (domain.Category, error) {
	rawID := cmd.CategoryID
	if rawID == "" {
		rawID = s.ids.NextIdentity()
	}
	id, err := domain.NewCategoryID(rawID)
	if err != nil {
		return domain.Category{}, err
	}
	in, err := categoryInput(cmd.Name, cmd.Slug, cmd.Description, cmd.ParentID, cmd.Order)
	if err != nil {
		return domain.Category{}, err
	}

	category, events, err := s.creator.Create(ctx, id, in)
	if err != nil {
		return domain.Category{}, err
	}
	if err := s.categoryRepo.Add(ctx, category); err != nil {
		return domain.Category{}, fmt.Errorf("add category: %w", err)
	}
	publishRecorded(ctx, s.bus, record(events))
	return category, nil
}

// UpdateCategory replaces a category, refusing parent cycles.
func (s *CategoryService) UpdateCategory(ctx context.Context, cmd UpdateCategoryCommand) (domain.Category, error) {
	in, err := categoryInput(cmd.Name, cmd.Slug, cmd.Description, cmd.ParentID, cmd.Order)
	if err != nil {
		return domain.Category{}, err
	}
	current, err := s.load(ctx, cmd.CategoryID)
	if err != nil {
		return domain.Category{}, err
	}

	next, events, err := s.updater.Update(ctx, current, in)
	if err != nil {
		return domain.Category{}, err
	}
	if err := s.categoryRepo.Update(ctx, next); err != nil {
		return domain.Category{}, fmt.Errorf("update category: %w", err)
	}
	publishRecorded(ctx, s.bus, record(events))
	return next, nil
}

// DeleteCategory removes a category without children.
func (s *CategoryService) DeleteCategory(ctx context.Context, cmd DeleteCategoryCommand) error {
	current, err := s.load(ctx, cmd.CategoryID)
	if err != nil {
		return err
	}
	events, err := s.deleter.Delete(ctx, current)
	if err != nil {
		return err
	}
	if err := s.categoryRepo.Remove(ctx, current.ID); err != nil {
		return fmt.Errorf("remove category: %w", err)
	}
	publishRecorded(ctx, s.bus, record(events))
	return nil
}

// GetCategory loads one category.
func (s *CategoryService) GetCategory(ctx context.Context, q GetCategoryQuery) (domain.Category, error) {
	return s.load(ctx, q.CategoryID)
}

// ListCategoryTree returns the category forest cut at MaxDepth levels.
func (s *CategoryService) ListCategoryTree(ctx context.Context, q ListCategoryTreeQuery) ([]domain.CategoryNode, error) {
	depth := q.MaxDepth
	if depth == 0 {
		depth = domain.DefaultCategoryTreeDepth
	}
	if depth < 1 || depth > domain.MaxCategoryTreeDepth {
		err := domain.NewError(domain.CodeValidationFailed, "max depth must be between 1 and %d, got %d", domain.MaxCategoryTreeDepth, q.MaxDepth)
		err.Fields = map[string]string{"max_depth": "max_depth_out_of_range"}
		return nil, err
	}

	all, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return domain.BuildCategoryTree(all, depth), nil
}

func (s *CategoryService) load(ctx context.Context, rawID string) (domain.Category, error) {
	id, err := domain.NewCategoryID(rawID)
	if err != nil {
		return domain.Category{}, err
	}
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return domain.Category{}, fmt.Errorf("find category: %w", err)
	}
	if category == nil {
		return domain.Category{}, domain.ErrCategoryNotFound(id)
	}
	return *category, nil
}

func categoryInput(name, slug, description, parentID string, order int) (lifecycle.CategoryInput, error) {
	var in lifecycle.CategoryInput
	var err error

	if in.Name, err = domain.NewCategoryName(name); err != nil {
		return in, err
	}
	if in.Description, err = domain.NewCategoryDescription(description); err != nil {
		return in, err
	}
	if in.Order, err = domain.NewCategoryOrder(order); err != nil {
		return in, err
	}
	if strings.TrimSpace(slug) != "" {
		s, err := domain.NewSlug(slug)
		if err != nil {
			return in, err
		}
		in.Slug = &s
	}
	if parentID != "" {
		p, err := domain.NewCategoryID(parentID)
		if err != nil {
			return in, err
		}
		in.ParentID = &p
	}
	return in, nil
}
