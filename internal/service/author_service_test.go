package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blog-cms/internal/domain"
	"blog-cms/internal/mocks"
	"blog-cms/internal/service"
)

func storedAuthor() *domain.Author {
	return &domain.Author{
		ID:         authorID,
		Name:       "Ada Lovelace",
		Email:      "ada@example.com",
		Bio:        "Analyst",
		Timestamps: domain.CreatedNow(t0),
	}
}

func newAuthorService(authors *mocks.MockAuthorRepository, bus *mocks.MockEventBus) *service.AuthorService {
	return service.NewAuthorService(authors, bus, newSequenceIDs(authorID), tickingClock())
}

func TestAuthorService_CreateAuthor(t *testing.T) {
	ctx := context.Background()

	t.Run("creates with normalized email", func(t *testing.T) {
		authors := mocks.NewMockAuthorRepository(t)
		log := newEventLog(t)
		svc := newAuthorService(authors, log.bus)

		authors.EXPECT().FindByEmail(mock.Anything, domain.Email("ada@example.com")).Return(nil, nil)
		authors.EXPECT().Add(mock.Anything, mock.AnythingOfType("domain.Author")).Return(nil)

		author, err := svc.CreateAuthor(ctx, service.CreateAuthorCommand{Name: "Ada", Email: "ADA@example.com"})
		require.NoError(t, err)
		assert.Equal(t, domain.AuthorID(authorID), author.ID)
		assert.Equal(t, domain.Email("ada@example.com"), author.Email)
		assert.Equal(t, []string{domain.EventAuthorCreated}, log.names())
	})

	t.Run("duplicate email", func(t *testing.T) {
		authors := mocks.NewMockAuthorRepository(t)
		svc := newAuthorService(authors, mocks.NewMockEventBus(t))

		authors.EXPECT().FindByEmail(mock.Anything, domain.Email("ada@example.com")).Return(storedAuthor(), nil)

		_, err := svc.CreateAuthor(ctx, service.CreateAuthorCommand{Name: "Ada", Email: "ada@example.com"})
		assert.True(t, domain.IsCode(err, domain.CodeAuthorAlreadyExists))
	})

	t.Run("invalid email", func(t *testing.T) {
		svc := newAuthorService(mocks.NewMockAuthorRepository(t), mocks.NewMockEventBus(t))

		_, err := svc.CreateAuthor(ctx, service.CreateAuthorCommand{Name: "Ada", Email: "not-an-email"})
		assert.True(t, domain.IsCode(err, domain.CodeInvalidEmail))
	})
}

func TestAuthorService_UpdateAuthor(t *testing.T) {
	ctx := context.Background()

	t.Run("updates bio", func(t *testing.T) {
		authors := mocks.NewMockAuthorRepository(t)
		log := newEventLog(t)
		svc := newAuthorService(authors, log.bus)

		authors.EXPECT().FindByID(mock.Anything, domain.AuthorID(authorID)).Return(storedAuthor(), nil)
		authors.EXPECT().Update(mock.Anything, mock.MatchedBy(func(a domain.Author) bool { return a.Bio == "Mathematician" })).Return(nil)

		author, err := svc.UpdateAuthor(ctx, service.UpdateAuthorCommand{AuthorID: authorID, Name: "Ada Lovelace", Email: "ada@example.com", Bio: "Mathematician"})
		require.NoError(t, err)
		assert.Equal(t, domain.Bio("Mathematician"), author.Bio)
		assert.Equal(t, []string{domain.EventAuthorUpdated}, log.names())
	})

	t.Run("unchanged profile writes nothing", func(t *testing.T) {
		authors := mocks.NewMockAuthorRepository(t)
		svc := newAuthorService(authors, mocks.NewMockEventBus(t))

		authors.EXPECT().FindByID(mock.Anything, domain.AuthorID(authorID)).Return(storedAuthor(), nil)

		_, err := svc.UpdateAuthor(ctx, service.UpdateAuthorCommand{AuthorID: authorID, Name: "Ada Lovelace", Email: "ada@example.com", Bio: "Analyst"})
		require.NoError(t, err)
	})

	t.Run("missing author", func(t *testing.T) {
		authors := mocks.NewMockAuthorRepository(t)
		svc := newAuthorService(authors, mocks.NewMockEventBus(t))

		authors.EXPECT().FindByID(mock.Anything, domain.AuthorID(authorID)).Return(nil, nil)

		_, err := svc.UpdateAuthor(ctx, service.UpdateAuthorCommand{AuthorID: authorID, Name: "Ada", Email: "ada@example.com"})
		assert.True(t, domain.IsCode(err, domain.CodeAuthorNotFound))
	})
}

func TestAuthorService_DeleteAuthor(t *testing.T) {
	ctx := context.Background()

	t.Run("blocked by articles", func(t *testing.T) {
		authors := mocks.NewMockAuthorRepository(t)
		svc := newAuthorService(authors, mocks.NewMockEventBus(t))

		authors.EXPECT().FindByID(mock.Anything, domain.AuthorID(authorID)).Return(storedAuthor(), nil)
		authors.EXPECT().CountArticlesByAuthorID(mock.Anything, domain.AuthorID(authorID)).Return(3, nil)

		err := svc.DeleteAuthor(ctx, service.DeleteAuthorCommand{AuthorID: authorID})
		assert.True(t, domain.IsCode(err, domain.CodeAuthorHasArticles))
	})

	t.Run("removes author without articles", func(t *testing.T) {
		authors := mocks.NewMockAuthorRepository(t)
		log := newEventLog(t)
		svc := newAuthorService(authors, log.bus)

		authors.EXPECT().FindByID(mock.Anything, domain.AuthorID(authorID)).Return(storedAuthor(), nil)
		authors.EXPECT().CountArticlesByAuthorID(mock.Anything, domain.AuthorID(authorID)).Return(0, nil)
		authors.EXPECT().Remove(mock.Anything, domain.AuthorID(authorID)).Return(nil)

		require.NoError(t, svc.DeleteAuthor(ctx, service.DeleteAuthorCommand{AuthorID: authorID}))
		assert.Equal(t, []string{domain.EventAuthorDeleted}, log.names())
	})
}

func TestAuthorService_ListAuthors(t *testing.T) {
	authors := mocks.NewMockAuthorRepository(t)
	svc := newAuthorService(authors, mocks.NewMockEventBus(t))

	authors.EXPECT().FindAllPaginated(mock.Anything, 1, 5).
		Return(domain.Page[domain.Author]{Items: []domain.Author{*storedAuthor()}, Page: 1, Limit: 5, Total: 1}, nil)

	page, err := svc.ListAuthors(context.Background(), service.ListAuthorsQuery{Page: 1, Limit: 5})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)

	_, err = svc.ListAuthors(context.Background(), service.ListAuthorsQuery{Page: 1, Limit: 500})
	assert.True(t, domain.IsCode(err, domain.CodeInvalidPagination))
}
