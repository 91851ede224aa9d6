package service

import (
	"context"
	"fmt"

	"blog-cms/internal/domain"
	"blog-cms/internal/eventbus"
	"blog-cms/internal/identity"
	"blog-cms/internal/lifecycle"
	"blog-cms/internal/repository"
)

// AuthorService runs the author commands and queries.
type AuthorService struct {
	authorRepo repository.AuthorRepository
	bus        eventbus.EventBus
	ids        identity.IDGenerator

	creator *lifecycle.AuthorCreator
	updater *lifecycle.AuthorUpdater
	deleter *lifecycle.AuthorDeleter
}

// NewAuthorService creates a new AuthorService.
func NewAuthorService(
	authorRepo repository.AuthorRepository,
	bus eventbus.EventBus,
	ids identity.IDGenerator,
	clock lifecycle.Clock,
) *AuthorService {
	return &AuthorService{
		authorRepo: authorRepo,
		bus:        bus,
		ids:        ids,
		creator:    lifecycle.NewAuthorCreator(authorRepo, clock),
		updater:    lifecycle.NewAuthorUpdater(authorRepo, clock),
		deleter:    lifecycle.NewAuthorDeleter(authorRepo, clock),
	}
}

// CreateAuthor registers an author with a unique email.
func (s *AuthorService) CreateAuthor(ctx context.Context, cmd CreateAuthorCommand) (domain.Author, error) {
	rawID := cmd.AuthorID
	if rawID == "" {
		rawID = s.ids.NextIdentity()
	}
	id, err := domain.NewAuthorID(rawID)
	if err != nil {
		return domain.Author{}, err
	}
	profile, err := authorProfile(cmd.Name, cmd.Email, cmd.Bio)
	if err != nil {
		return domain.Author{}, err
	}

	author, events, err := s.creator.Create(ctx, id, profile)
	if err != nil {
		return domain.Author{}, err
	}
	if err := s.authorRepo.Add(ctx, author); err != nil {
		return domain.Author{}, fmt.Errorf("add author: %w", err)
	}
	publishRecorded(ctx, s.bus, record(events))
	return author, nil
}

// UpdateAuthor replaces the author profile.
func (s *AuthorService) UpdateAuthor(ctx context.Context, cmd UpdateAuthorCommand) (domain.Author, error) {
	profile, err := authorProfile(cmd.Name, cmd.Email, cmd.Bio)
	if err != nil {
		return domain.Author{}, err
	}
	current, err := s.load(ctx, cmd.AuthorID)
	if err != nil {
		return domain.Author{}, err
	}

	next, events, err := s.updater.Update(ctx, current, profile)
	if err != nil {
		return domain.Author{}, err
	}
	if len(events) == 0 {
		return current, nil
	}
	if err := s.authorRepo.Update(ctx, next); err != nil {
		return domain.Author{}, fmt.Errorf("update author: %w", err)
	}
	publishRecorded(ctx, s.bus, record(events))
	return next, nil
}

// DeleteAuthor removes an author that has no articles.
func (s *AuthorService) DeleteAuthor(ctx context.Context, cmd DeleteAuthorCommand) error {
	current, err := s.load(ctx, cmd.AuthorID)
	if err != nil {
		return err
	}
	events, err := s.deleter.Delete(ctx, current)
	if err != nil {
		return err
	}
	if err := s.authorRepo.Remove(ctx, current.ID); err != nil {
		return fmt.Errorf("remove author: %w", err)
	}
	publishRecorded(ctx, s.bus, record(events))
	return nil
}

// GetAuthor loads one author.
func (s *AuthorService) GetAuthor(ctx context.Context, q GetAuthorQuery) (domain.Author, error) {
	return s.load(ctx, q.AuthorID)
}

// ListAuthors returns one page of authors ordered by name.
func (s *AuthorService) ListAuthors(ctx context.Context, q ListAuthorsQuery) (domain.Page[domain.Author], error) {
	page, limit, err := domain.NormalizePage(q.Page, q.Limit)
	if err != nil {
		return domain.Page[domain.Author]{}, err
	}
	result, err := s.authorRepo.FindAllPaginated(ctx, page, limit)
	if err != nil {
		return domain.Page[domain.Author]{}, fmt.Errorf("list authors: %w", err)
	}
	return result, nil
}

func (s *AuthorService) load(ctx context.Context, rawID string) (domain.Author, error) {
	id, err := domain.NewAuthorID(rawID)
	if err != nil {
		return domain.Author{}, err
	}
	author, err := s.authorRepo.FindByID(ctx, id)
	if err != nil {
		return domain.Author{}, fmt.Errorf("find author: %w", err)
	}
	if author == nil {
		return domain.Author{}, domain.ErrAuthorNotFound(id)
	}
	return *author, nil
}

func authorProfile(name, email, bio string) (lifecycle.AuthorProfile, error) {
	n, err := domain.NewAuthorName(name)
	if err != nil {
		return lifecycle.AuthorProfile{}, err
	}
	e, err := domain.NewEmail(email)
	if err != nil {
		return lifecycle.AuthorProfile{}, err
	}
	b, err := domain.NewBio(bio)
	if err != nil {
		return lifecycle.AuthorProfile{}, err
	}
	return lifecycle.AuthorProfile{Name: n, Email: e, Bio: b}, nil
}
