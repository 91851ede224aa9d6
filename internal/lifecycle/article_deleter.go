package lifecycle

import "blog-cms/internal/domain"

// ArticleDeleter produces the tombstone for an article about to be removed.
type ArticleDeleter struct {
	now Clock
}

// NewArticleDeleter creates an ArticleDeleter.
func NewArticleDeleter(now Clock) *ArticleDeleter {
	return &ArticleDeleter{now: orSystem(now)}
}

// Delete accepts an article in any state and returns its ArticleDeleted event.
func (d *ArticleDeleter) Delete(current domain.Article) []domain.Event {
	return []domain.Event{domain.ArticleDeleted{
		ArticleID: current.ID,
		Slug:      current.Slug,
		DeletedAt: d.now(),
	}}
}
