package gateway

import (
	"context"

	"blog-cms/internal/security"
	"blog-cms/internal/service"
)

// AuthorGateways exposes the author use cases.
type AuthorGateways struct {
	Create *Gateway[CreateAuthorRequest, AuthorResponse]
	Update *Gateway[UpdateAuthorRequest, AuthorResponse]
	Delete *Gateway[AuthorIDRequest, DeletedResponse]
	Get    *Gateway[AuthorIDRequest, AuthorResponse]
	List   *Gateway[ListAuthorsRequest, PageResponse[AuthorResponse]]
}

// NewAuthorGateways wires every author use case behind the standard chain.
func NewAuthorGateways(authors service.AuthorServiceInterface, sanitizer security.ContentSanitizer, translator Translator) *AuthorGateways {
	p := &authorProcessor{authors: authors, sanitizer: sanitizer}
	return &AuthorGateways{
		Create: NewUseCase("CreateAuthor", translator, p.create),
		Update: NewUseCase("UpdateAuthor", translator, p.update),
		Delete: NewUseCase("DeleteAuthor", translator, p.delete),
		Get:    NewUseCase("GetAuthor", translator, p.get),
		List:   NewUseCase("ListAuthors", translator, p.list),
	}
}

type authorProcessor struct {
	authors   service.AuthorServiceInterface
	sanitizer security.ContentSanitizer
}

func (p *authorProcessor) create(ctx context.Context, req CreateAuthorRequest) (AuthorResponse, error) {
	author, err := p.authors.CreateAuthor(ctx, service.CreateAuthorCommand{
		Name:  p.sanitizer.StripTags(req.Name),
		Email: req.Email,
		Bio:   p.sanitizer.StripTags(req.Bio),
	})
	if err != nil {
		return AuthorResponse{}, err
	}
	return ToAuthorResponse(author), nil
}

func (p *authorProcessor) update(ctx context.Context, req UpdateAuthorRequest) (AuthorResponse, error) {
	author, err := p.authors.UpdateAuthor(ctx, service.UpdateAuthorCommand{
		AuthorID: req.AuthorID,
		Name:     p.sanitizer.StripTags(req.Name),
		Email:    req.Email,
		Bio:      p.sanitizer.StripTags(req.Bio),
	})
	if err != nil {
		return AuthorResponse{}, err
	}
	return ToAuthorResponse(author), nil
}

func (p *authorProcessor) delete(ctx context.Context, req AuthorIDRequest) (DeletedResponse, error) {
	if err := p.authors.DeleteAuthor(ctx, service.DeleteAuthorCommand{AuthorID: req.AuthorID}); err != nil {
		return DeletedResponse{}, err
	}
	return DeletedResponse{ID: req.AuthorID, Deleted: true}, nil
}

func (p *authorProcessor) get(ctx context.Context, req AuthorIDRequest) (AuthorResponse, error) {
	author, err := p.authors.GetAuthor(ctx, service.GetAuthorQuery{AuthorID: req.AuthorID})
	if err != nil {
		return AuthorResponse{}, err
	}
	return ToAuthorResponse(author), nil
}

func (p *authorProcessor) list(ctx context.Context, req ListAuthorsRequest) (PageResponse[AuthorResponse], error) {
	page, err := p.authors.ListAuthors(ctx, service.ListAuthorsQuery{
		Page:  firstPage(req.Page),
		Limit: req.Limit,
	})
	if err != nil {
		return PageResponse[AuthorResponse]{}, err
	}
	return toPageResponse(page, ToAuthorResponse), nil
}
