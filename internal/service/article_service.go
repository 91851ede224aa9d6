package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"blog-cms/internal/domain"
	"blog-cms/internal/eventbus"
	"blog-cms/internal/identity"
	"blog-cms/internal/lifecycle"
	"blog-cms/internal/logger"
	"blog-cms/internal/repository"
)

// ArticleService runs the article commands and queries.
type ArticleService struct {
	articleRepo repository.ArticleRepository
	authorRepo  repository.AuthorRepository
	bus         eventbus.EventBus
	ids         identity.IDGenerator
	slugger     identity.SlugGenerator

	creator   *lifecycle.ArticleCreator
	submitter *lifecycle.ArticleSubmitter
	reviewer  *lifecycle.ArticleReviewer
	publisher *lifecycle.ArticlePublisher
	updater   *lifecycle.ArticleUpdater
	deleter   *lifecycle.ArticleDeleter
}

// NewArticleService creates a new ArticleService. A nil clock uses
// lifecycle.SystemClock.
func NewArticleService(
	articleRepo repository.ArticleRepository,
	authorRepo repository.AuthorRepository,
	bus eventbus.EventBus,
	ids identity.IDGenerator,
	slugger identity.SlugGenerator,
	clock lifecycle.Clock,
) *ArticleService {
	return &ArticleService{
		articleRepo: articleRepo,
		authorRepo:  authorRepo,
		bus:         bus,
		ids:         ids,
		slugger:     slugger,
		creator:     lifecycle.NewArticleCreator(articleRepo, clock),
		submitter:   lifecycle.NewArticleSubmitter(clock),
		reviewer:    lifecycle.NewArticleReviewer(clock),
		publisher:   lifecycle.NewArticlePublisher(clock),
		updater:     lifecycle.NewArticleUpdater(articleRepo, slugger, clock),
		deleter:     lifecycle.NewArticleDeleter(clock),
	}
}

// CreateArticle creates a draft for an existing author.
func (s *ArticleService) CreateArticle(ctx context.Context, cmd CreateArticleCommand) (domain.Article, error) {
	rawID := cmd.ArticleID
	if rawID == "" {
		rawID = s.ids.NextIdentity()
	}
	id, err := domain.NewArticleID(rawID)
	if err != nil {
		return domain.Article{}, err
	}
	title, err := domain.NewTitle(cmd.Title)
	if err != nil {
		return domain.Article{}, err
	}
	content, err := domain.NewContent(cmd.Content)
	if err != nil {
		return domain.Article{}, err
	}
	authorID, err := domain.NewAuthorID(cmd.AuthorID)
	if err != nil {
		return domain.Article{}, err
	}

	var slug domain.Slug
	if strings.TrimSpace(cmd.Slug) != "" {
		slug, err = domain.NewSlug(cmd.Slug)
	} else {
		slug, err = s.slugger.Slugify(string(title))
	}
	if err != nil {
		return domain.Article{}, err
	}

	if cmd.ArticleID != "" {
		existing, err := s.articleRepo.FindByID(ctx, id)
		if err != nil {
			return domain.Article{}, fmt.Errorf("find article: %w", err)
		}
		if existing != nil {
			return domain.Article{}, domain.NewError(domain.CodeArticleAlreadyExists, "article %s already exists", id)
		}
	}

	author, err := s.authorRepo.FindByID(ctx, authorID)
	if err != nil {
		return domain.Article{}, fmt.Errorf("find author: %w", err)
	}
	if author == nil {
		return domain.Article{}, domain.ErrAuthorNotFound(authorID)
	}

	article, events, err := s.creator.Create(ctx, lifecycle.NewArticle{
		ID:       id,
		Title:    title,
		Content:  content,
		Slug:     slug,
		AuthorID: authorID,
	})
	if err != nil {
		return domain.Article{}, err
	}

	if err := s.articleRepo.Add(ctx, article); err != nil {
		return domain.Article{}, fmt.Errorf("add article: %w", err)
	}
	publishRecorded(ctx, s.bus, record(events))

	logger.WithArticleID(string(article.ID)).InfoContext(ctx, "article created",
		slog.String("slug", string(article.Slug)),
		slog.String("author_id", string(article.AuthorID)),
	)
	return article, nil
}

// UpdateArticle replaces title and content.
func (s *ArticleService) UpdateArticle(ctx context.Context, cmd UpdateArticleCommand) (domain.Article, error) {
	title, err := domain.NewTitle(cmd.Title)
	if err != nil {
		return domain.Article{}, err
	}
	content, err := domain.NewContent(cmd.Content)
	if err != nil {
		return domain.Article{}, err
	}
	current, err := s.load(ctx, cmd.ArticleID)
	if err != nil {
		return domain.Article{}, err
	}
	return s.update(ctx, current, title, content)
}

// AutoSaveArticle stores a partial edit. Missing or blank fields keep their
// current value, so an empty autosave is a no-op.
func (s *ArticleService) AutoSaveArticle(ctx context.Context, cmd AutoSaveArticleCommand) (domain.Article, error) {
	current, err := s.load(ctx, cmd.ArticleID)
	if err != nil {
		return domain.Article{}, err
	}

	title := current.Title
	if cmd.Title != nil && strings.TrimSpace(*cmd.Title) != "" {
		if title, err = domain.NewTitle(*cmd.Title); err != nil {
			return domain.Article{}, err
		}
	}
	content := current.Content
	if cmd.Content != nil && strings.TrimSpace(*cmd.Content) != "" {
		if content, err = domain.NewContent(*cmd.Content); err != nil {
			return domain.Article{}, err
		}
	}
	return s.update(ctx, current, title, content)
}

func (s *ArticleService) update(ctx context.Context, current domain.Article, title domain.Title, content domain.Content) (domain.Article, error) {
	next, events, err := s.updater.Update(ctx, current, title, content)
	if err != nil {
		return domain.Article{}, err
	}
	if len(events) == 0 {
		return current, nil
	}
	return s.persist(ctx, next, events)
}

// SubmitArticleForReview moves a draft or rejected article to review.
func (s *ArticleService) SubmitArticleForReview(ctx context.Context, cmd SubmitArticleCommand) (domain.Article, error) {
	current, err := s.load(ctx, cmd.ArticleID)
	if err != nil {
		return domain.Article{}, err
	}
	next, events, err := s.submitter.Submit(current)
	if err != nil {
		return domain.Article{}, err
	}
	return s.persist(ctx, next, events)
}

// ReviewArticle approves or rejects an article under review.
func (s *ArticleService) ReviewArticle(ctx context.Context, cmd ReviewArticleCommand) (domain.Article, error) {
	decision, err := domain.NewReviewDecision(cmd.Decision, cmd.Reason)
	if err != nil {
		return domain.Article{}, err
	}
	current, err := s.load(ctx, cmd.ArticleID)
	if err != nil {
		return domain.Article{}, err
	}
	next, events, err := s.reviewer.Review(current, cmd.ReviewerID, decision)
	if err != nil {
		return domain.Article{}, err
	}
	return s.persist(ctx, next, events)
}

// PublishArticle publishes an approved article.
func (s *ArticleService) PublishArticle(ctx context.Context, cmd PublishArticleCommand) (domain.Article, error) {
	current, err := s.load(ctx, cmd.ArticleID)
	if err != nil {
		return domain.Article{}, err
	}
	next, events, err := s.publisher.Publish(current, cmd.PublishAt)
	if err != nil {
		return domain.Article{}, err
	}
	return s.persist(ctx, next, events)
}

// DeleteArticle removes an article in any status.
func (s *ArticleService) DeleteArticle(ctx context.Context, cmd DeleteArticleCommand) error {
	current, err := s.load(ctx, cmd.ArticleID)
	if err != nil {
		return err
	}
	events := s.deleter.Delete(current)
	if err := s.articleRepo.Remove(ctx, current.ID); err != nil {
		return fmt.Errorf("remove article: %w", err)
	}
	publishRecorded(ctx, s.bus, record(events))
	return nil
}

// GetArticle loads one article.
func (s *ArticleService) GetArticle(ctx context.Context, q GetArticleQuery) (domain.Article, error) {
	return s.load(ctx, q.ArticleID)
}

// ListArticles returns one page of articles, newest first.
func (s *ArticleService) ListArticles(ctx context.Context, q ListArticlesQuery) (domain.Page[domain.Article], error) {
	page, limit, err := domain.NormalizePage(q.Page, q.Limit)
	if err != nil {
		return domain.Page[domain.Article]{}, err
	}

	var filter domain.ArticleFilter
	if q.Status != "" {
		status, err := domain.ParseArticleStatus(q.Status)
		if err != nil {
			return domain.Page[domain.Article]{}, err
		}
		filter.Status = &status
	}
	if q.AuthorID != "" {
		authorID, err := domain.NewAuthorID(q.AuthorID)
		if err != nil {
			return domain.Page[domain.Article]{}, err
		}
		filter.AuthorID = &authorID
	}

	result, err := s.articleRepo.FindAllPaginated(ctx, page, limit, filter)
	if err != nil {
		return domain.Page[domain.Article]{}, fmt.Errorf("list articles: %w", err)
	}
	return result, nil
}

func (s *ArticleService) load(ctx context.Context, rawID string) (domain.Article, error) {
	id, err := domain.NewArticleID(rawID)
	if err != nil {
		return domain.Article{}, err
	}
	article, err := s.articleRepo.FindByID(ctx, id)
	if err != nil {
		return domain.Article{}, fmt.Errorf("find article: %w", err)
	}
	if article == nil {
		return domain.Article{}, domain.ErrArticleNotFound(id)
	}
	return *article, nil
}

func (s *ArticleService) persist(ctx context.Context, next domain.Article, events []domain.Event) (domain.Article, error) {
	if err := s.articleRepo.Save(ctx, next); err != nil {
		return domain.Article{}, fmt.Errorf("save article: %w", err)
	}
	publishRecorded(ctx, s.bus, record(events))
	return next, nil
}
