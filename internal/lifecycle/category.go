package lifecycle

import (
	"context"
	"fmt"

	"blog-cms/internal/domain"
	"blog-cms/internal/identity"
)

// maxAncestorWalk bounds the parent chain walk during cycle detection.
const maxAncestorWalk = 1000

// CategoryInput holds the validated editable fields of a category. A nil
// Slug asks for one derived from Name.
type CategoryInput struct {
	Name        domain.CategoryName
	Slug        *domain.Slug
	Description domain.CategoryDescription
	ParentID    *domain.CategoryID
	Order       domain.CategoryOrder
}

// CategoryCreator adds categories.
type CategoryCreator struct {
	categories CategoryLookup
	slugger    identity.SlugGenerator
	now        Clock
}

// NewCategoryCreator creates a CategoryCreator.
func NewCategoryCreator(categories CategoryLookup, slugger identity.SlugGenerator, now Clock) *CategoryCreator {
	return &CategoryCreator{categories: categories, slugger: slugger, now: orSystem(now)}
}

// Create validates parent existence and slug uniqueness.
func (c *CategoryCreator) Create(ctx context.Context, id domain.CategoryID, in CategoryInput) (domain.Category, []domain.Event, error) {
	if in.ParentID != nil {
		if err := requireParent(ctx, c.categories, *in.ParentID); err != nil {
			return domain.Category{}, nil, err
		}
	}

	slug, err := resolveCategorySlug(ctx, c.categories, c.slugger, in, "")
	if err != nil {
		return domain.Category{}, nil, err
	}

	category := domain.Category{
		ID:          id,
		Name:        in.Name,
		Slug:        slug,
		Description: in.Description,
		ParentID:    in.ParentID,
		Order:       in.Order,
		Timestamps:  domain.CreatedNow(c.now()),
	}
	return category, []domain.Event{domain.CategoryCreated{
		CategoryID: category.ID,
		Name:       category.Name,
		Slug:       category.Slug,
		ParentID:   category.ParentID,
		CreatedAt:  category.Timestamps.CreatedAt,
	}}, nil
}

// CategoryUpdater edits categories and prevents parent cycles.
type CategoryUpdater struct {
	categories CategoryLookup
	slugger    identity.SlugGenerator
	now        Clock
}

// NewCategoryUpdater creates a CategoryUpdater.
func NewCategoryUpdater(categories CategoryLookup, slugger identity.SlugGenerator, now Clock) *CategoryUpdater {
	return &CategoryUpdater{categories: categories, slugger: slugger, now: orSystem(now)}
}

// Update fails with CATEGORY_CYCLE when the new parent is the category
// itself or one of its descendants.
func (u *CategoryUpdater) Update(ctx context.Context, current domain.Category, in CategoryInput) (domain.Category, []domain.Event, error) {
	if in.ParentID != nil && !sameParent(current.ParentID, in.ParentID) {
		if err := u.checkNoCycle(ctx, current.ID, *in.ParentID); err != nil {
			return domain.Category{}, nil, err
		}
	}

	slug := current.Slug
	if in.Slug != nil || in.Name != current.Name {
		resolved, err := resolveCategorySlug(ctx, u.categories, u.slugger, in, current.Slug)
		if err != nil {
			return domain.Category{}, nil, err
		}
		slug = resolved
	}

	next := current
	next.Name = in.Name
	next.Slug = slug
	next.Description = in.Description
	next.ParentID = in.ParentID
	next.Order = in.Order
	next.Timestamps = current.Timestamps.Touch(u.now())

	return next, []domain.Event{domain.CategoryUpdated{
		CategoryID: next.ID,
		Name:       next.Name,
		Slug:       next.Slug,
		ParentID:   next.ParentID,
		UpdatedAt:  next.Timestamps.UpdatedAt,
	}}, nil
}

func (u *CategoryUpdater) checkNoCycle(ctx context.Context, self, parentID domain.CategoryID) error {
	cursor := parentID
	for step := 0; step < maxAncestorWalk; step++ {
		if cursor == self {
			return domain.NewError(domain.CodeCategoryCycle, "category %s cannot be placed under itself or one of its descendants", self)
		}
		ancestor, err := u.categories.FindByID(ctx, cursor)
		if err != nil {
			return fmt.Errorf("find category %s: %w", cursor, err)
		}
		if ancestor == nil {
			if step == 0 {
				return domain.NewError(domain.CodeParentCategoryNotFound, "parent category %s not found", parentID)
			}
			return nil
		}
		if ancestor.ParentID == nil {
			return nil
		}
		cursor = *ancestor.ParentID
	}
	return domain.NewError(domain.CodeCategoryCycle, "category ancestry of %s exceeds %d levels", parentID, maxAncestorWalk)
}

// CategoryDeleter guards category removal.
type CategoryDeleter struct {
	children CategoryChildCounter
	now      Clock
}

// NewCategoryDeleter creates a CategoryDeleter.
func NewCategoryDeleter(children CategoryChildCounter, now Clock) *CategoryDeleter {
	return &CategoryDeleter{children: children, now: orSystem(now)}
}

// Delete fails with CATEGORY_HAS_CHILDREN while sub-categories exist.
func (d *CategoryDeleter) Delete(ctx context.Context, current domain.Category) ([]domain.Event, error) {
	n, err := d.children.CountChildren(ctx, current.ID)
	if err != nil {
		return nil, fmt.Errorf("count child categories: %w", err)
	}
	if n > 0 {
		return nil, domain.NewError(domain.CodeCategoryHasChildren, "category %s has %d child categories", current.ID, n)
	}
	return []domain.Event{domain.CategoryDeleted{
		CategoryID: current.ID,
		Slug:       current.Slug,
		DeletedAt:  d.now(),
	}}, nil
}

func requireParent(ctx context.Context, categories CategoryLookup, id domain.CategoryID) error {
	parent, err := categories.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find parent category: %w", err)
	}
	if parent == nil {
		return domain.NewError(domain.CodeParentCategoryNotFound, "parent category %s not found", id)
	}
	return nil
}

// resolveCategorySlug returns the explicit slug after a uniqueness check, or
// derives a unique one from the name. keep is the category's own slug, which
// never counts as a conflict.
func resolveCategorySlug(ctx context.Context, categories CategoryLookup, slugger identity.SlugGenerator, in CategoryInput, keep domain.Slug) (domain.Slug, error) {
	if in.Slug != nil {
		if *in.Slug == keep {
			return keep, nil
		}
		taken, err := categories.ExistsWithSlug(ctx, *in.Slug)
		if err != nil {
			return "", fmt.Errorf("check category slug: %w", err)
		}
		if taken {
			return "", domain.NewError(domain.CodeCategoryAlreadyExists, "a category with slug %q already exists", *in.Slug)
		}
		return *in.Slug, nil
	}

	return slugger.GenerateUnique(ctx, string(in.Name), func(ctx context.Context, s domain.Slug) (bool, error) {
		if s == keep {
			return false, nil
		}
		return categories.ExistsWithSlug(ctx, s)
	})
}

func sameParent(a, b *domain.CategoryID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
