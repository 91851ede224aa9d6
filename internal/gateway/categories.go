package gateway

import (
	"context"

	"blog-cms/internal/domain"
	"blog-cms/internal/security"
	"blog-cms/internal/service"
)

// CategoryGateways exposes the category use cases.
type CategoryGateways struct {
	Create *Gateway[CategoryRequest, CategoryResponse]
	Update *Gateway[CategoryRequest, CategoryResponse]
	Delete *Gateway[CategoryIDRequest, DeletedResponse]
	Get    *Gateway[CategoryIDRequest, CategoryResponse]
	Tree   *Gateway[CategoryTreeRequest, CategoryTreeResponse]
}

// NewCategoryGateways wires every category use case behind the standard chain.
func NewCategoryGateways(categories service.CategoryServiceInterface, sanitizer security.ContentSanitizer, translator Translator) *CategoryGateways {
	p := &categoryProcessor{categories: categories, sanitizer: sanitizer}
	return &CategoryGateways{
		Create: NewUseCase("CreateCategory", translator, p.create),
		Update: NewUseCase("UpdateCategory", translator, p.update),
		Delete: NewUseCase("DeleteCategory", translator, p.delete),
		Get:    NewUseCase("GetCategory", translator, p.get),
		Tree:   NewUseCase("ListCategoryTree", translator, p.tree),
	}
}

type categoryProcessor struct {
	categories service.CategoryServiceInterface
	sanitizer  security.ContentSanitizer
}

func (p *categoryProcessor) create(ctx context.Context, req CategoryRequest) (CategoryResponse, error) {
	category, err := p.categories.CreateCategory(ctx, service.CreateCategoryCommand{
		Name:        p.sanitizer.StripTags(req.Name),
		Slug:        req.Slug,
		Description: p.sanitizer.StripTags(req.Description),
		ParentID:    req.ParentID,
		Order:       req.Order,
	})
	if err != nil {
		return CategoryResponse{}, err
	}
	return ToCategoryResponse(category), nil
}

func (p *categoryProcessor) update(ctx context.Context, req CategoryRequest) (CategoryResponse, error) {
	category, err := p.categories.UpdateCategory(ctx, service.UpdateCategoryCommand{
		CategoryID:  req.CategoryID,
		Name:        p.sanitizer.StripTags(req.Name),
		Slug:        req.Slug,
		Description: p.sanitizer.StripTags(req.Description),
		ParentID:    req.ParentID,
		Order:       req.Order,
	})
	if err != nil {
		return CategoryResponse{}, err
	}
	return ToCategoryResponse(category), nil
}

func (p *categoryProcessor) delete(ctx context.Context, req CategoryIDRequest) (DeletedResponse, error) {
	if err := p.categories.DeleteCategory(ctx, service.DeleteCategoryCommand{CategoryID: req.CategoryID}); err != nil {
		return DeletedResponse{}, err
	}
	return DeletedResponse{ID: req.CategoryID, Deleted: true}, nil
}

func (p *categoryProcessor) get(ctx context.Context, req CategoryIDRequest) (CategoryResponse, error) {
	category, err := p.categories.GetCategory(ctx, service.GetCategoryQuery{CategoryID: req.CategoryID})
	if err != nil {
		return CategoryResponse{}, err
	}
	return ToCategoryResponse(category), nil
}

func (p *categoryProcessor) tree(ctx context.Context, req CategoryTreeRequest) (CategoryTreeResponse, error) {
	nodes, err := p.categories.ListCategoryTree(ctx, service.ListCategoryTreeQuery{MaxDepth: req.MaxDepth})
	if err != nil {
		return CategoryTreeResponse{}, err
	}

	depth := req.MaxDepth
	if depth == 0 {
		depth = domain.DefaultCategoryTreeDepth
	}
	return CategoryTreeResponse{Categories: ToCategoryTreeResponse(nodes), MaxDepth: depth}, nil
}
