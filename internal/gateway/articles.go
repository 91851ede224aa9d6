package gateway

import (
	"context"
	"time"

	"blog-cms/internal/security"
	"blog-cms/internal/service"
)

// ArticleGateways exposes the article use cases.
type ArticleGateways struct {
	Create   *Gateway[CreateArticleRequest, ArticleResponse]
	Update   *Gateway[UpdateArticleRequest, ArticleResponse]
	AutoSave *Gateway[AutoSaveArticleRequest, ArticleResponse]
	Submit   *Gateway[ArticleIDRequest, ArticleResponse]
	Review   *Gateway[ReviewArticleRequest, ArticleResponse]
	Publish  *Gateway[PublishArticleRequest, ArticleResponse]
	Delete   *Gateway[ArticleIDRequest, DeletedResponse]
	Get      *Gateway[ArticleIDRequest, ArticleResponse]
	List     *Gateway[ListArticlesRequest, PageResponse[ArticleResponse]]
}

// NewArticleGateways wires every article use case behind the standard chain.
func NewArticleGateways(articles service.ArticleServiceInterface, sanitizer security.ContentSanitizer, translator Translator) *ArticleGateways {
	p := &articleProcessor{articles: articles, sanitizer: sanitizer}
	return &ArticleGateways{
		Create:   NewUseCase("CreateArticle", translator, p.create),
		Update:   NewUseCase("UpdateArticle", translator, p.update),
		AutoSave: NewUseCase("AutoSaveArticle", translator, p.autoSave),
		Submit:   NewUseCase("SubmitArticleForReview", translator, p.submit),
		Review:   NewUseCase("ReviewArticle", translator, p.review),
		Publish:  NewUseCase("PublishArticle", translator, p.publish),
		Delete:   NewUseCase("DeleteArticle", translator, p.delete),
		Get:      NewUseCase("GetArticle", translator, p.get),
		List:     NewUseCase("ListArticles", translator, p.list),
	}
}

type articleProcessor struct {
	articles  service.ArticleServiceInterface
	sanitizer security.ContentSanitizer
}

func (p *articleProcessor) create(ctx context.Context, req CreateArticleRequest) (ArticleResponse, error) {
	article, err := p.articles.CreateArticle(ctx, service.CreateArticleCommand{
		Title:    p.sanitizer.StripTags(req.Title),
		Content:  p.sanitizer.Sanitize(req.Content),
		Slug:     req.Slug,
		AuthorID: req.AuthorID,
	})
	if err != nil {
		return ArticleResponse{}, err
	}
	return ToArticleResponse(article), nil
}

func (p *articleProcessor) update(ctx context.Context, req UpdateArticleRequest) (ArticleResponse, error) {
	article, err := p.articles.UpdateArticle(ctx, service.UpdateArticleCommand{
		ArticleID: req.ArticleID,
		Title:     p.sanitizer.StripTags(req.Title),
		Content:   p.sanitizer.Sanitize(req.Content),
	})
	if err != nil {
		return ArticleResponse{}, err
	}
	return ToArticleResponse(article), nil
}

func (p *articleProcessor) autoSave(ctx context.Context, req AutoSaveArticleRequest) (ArticleResponse, error) {
	cmd := service.AutoSaveArticleCommand{ArticleID: req.ArticleID}
	if req.Title != nil {
		title := p.sanitizer.StripTags(*req.Title)
		cmd.Title = &title
	}
	if req.Content != nil {
		content := p.sanitizer.Sanitize(*req.Content)
		cmd.Content = &content
	}

	article, err := p.articles.AutoSaveArticle(ctx, cmd)
	if err != nil {
		return ArticleResponse{}, err
	}
	return ToArticleResponse(article), nil
}

func (p *articleProcessor) submit(ctx context.Context, req ArticleIDRequest) (ArticleResponse, error) {
	article, err := p.articles.SubmitArticleForReview(ctx, service.SubmitArticleCommand{ArticleID: req.ArticleID})
	if err != nil {
		return ArticleResponse{}, err
	}
	return ToArticleResponse(article), nil
}

func (p *articleProcessor) review(ctx context.Context, req ReviewArticleRequest) (ArticleResponse, error) {
	article, err := p.articles.ReviewArticle(ctx, service.ReviewArticleCommand{
		ArticleID:  req.ArticleID,
		ReviewerID: req.ReviewerID,
		Decision:   req.Decision,
		Reason:     p.sanitizer.StripTags(req.Reason),
	})
	if err != nil {
		return ArticleResponse{}, err
	}
	return ToArticleResponse(article), nil
}

func (p *articleProcessor) publish(ctx context.Context, req PublishArticleRequest) (ArticleResponse, error) {
	cmd := service.PublishArticleCommand{ArticleID: req.ArticleID}
	if req.PublishAt != "" {
		// Validation already checked the format.
		at, err := time.Parse(time.RFC3339, req.PublishAt)
		if err != nil {
			return ArticleResponse{}, err
		}
		cmd.PublishAt = &at
	}

	article, err := p.articles.PublishArticle(ctx, cmd)
	if err != nil {
		return ArticleResponse{}, err
	}
	return ToArticleResponse(article), nil
}

func (p *articleProcessor) delete(ctx context.Context, req ArticleIDRequest) (DeletedResponse, error) {
	if err := p.articles.DeleteArticle(ctx, service.DeleteArticleCommand{ArticleID: req.ArticleID}); err != nil {
		return DeletedResponse{}, err
	}
	return DeletedResponse{ID: req.ArticleID, Deleted: true}, nil
}

func (p *articleProcessor) get(ctx context.Context, req ArticleIDRequest) (ArticleResponse, error) {
	article, err := p.articles.GetArticle(ctx, service.GetArticleQuery{ArticleID: req.ArticleID})
	if err != nil {
		return ArticleResponse{}, err
	}
	return ToArticleResponse(article), nil
}

func (p *articleProcessor) list(ctx context.Context, req ListArticlesRequest) (PageResponse[ArticleResponse], error) {
	page, err := p.articles.ListArticles(ctx, service.ListArticlesQuery{
		Page:     firstPage(req.Page),
		Limit:    req.Limit,
		Status:   req.Status,
		AuthorID: req.AuthorID,
	})
	if err != nil {
		return PageResponse[ArticleResponse]{}, err
	}
	return toPageResponse(page, ToArticleResponse), nil
}

// firstPage maps an omitted page to 1.
func firstPage(page int) int {
	if page == 0 {
		return 1
	}
	return page
}
