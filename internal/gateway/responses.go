package gateway

import (
	"time"

	"blog-cms/internal/domain"
)

// TimeFormat is the format of every timestamp in a response.
const TimeFormat = time.RFC3339Nano

func formatTime(t time.Time) string {
	return t.UTC().Format(TimeFormat)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

// ReviewResponse is the last review decision of an article.
type ReviewResponse struct {
	ReviewerID string `json:"reviewer_id"`
	Decision   string `json:"decision"`
	Reason     string `json:"reason,omitempty"`
	ReviewedAt string `json:"reviewed_at"`
}

// ArticleResponse represents an article in responses.
type ArticleResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Content     string          `json:"content"`
	Slug        string          `json:"slug"`
	Status      string          `json:"status"`
	AuthorID    string          `json:"author_id"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
	PublishedAt *string         `json:"published_at,omitempty"`
	LastReview  *ReviewResponse `json:"last_review,omitempty"`
}

// ToArticleResponse converts a domain.Article to an ArticleResponse.
func ToArticleResponse(a domain.Article) ArticleResponse {
	resp := ArticleResponse{
		ID:          string(a.ID),
		Title:       string(a.Title),
		Content:     string(a.Content),
		Slug:        string(a.Slug),
		Status:      string(a.Status),
		AuthorID:    string(a.AuthorID),
		CreatedAt:   formatTime(a.Timestamps.CreatedAt),
		UpdatedAt:   formatTime(a.Timestamps.UpdatedAt),
		PublishedAt: formatTimePtr(a.PublishedAt),
	}
	if r := a.LastReview; r != nil {
		resp.LastReview = &ReviewResponse{
			ReviewerID: r.ReviewerID,
			Decision:   string(r.Outcome),
			Reason:     r.Reason,
			ReviewedAt: formatTime(r.ReviewedAt),
		}
	}
	return resp
}

// AuthorResponse represents an author in responses.
type AuthorResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Bio       string `json:"bio"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ToAuthorResponse converts a domain.Author to an AuthorResponse.
func ToAuthorResponse(a domain.Author) AuthorResponse {
	return AuthorResponse{
		ID:        string(a.ID),
		Name:      string(a.Name),
		Email:     string(a.Email),
		Bio:       string(a.Bio),
		CreatedAt: formatTime(a.Timestamps.CreatedAt),
		UpdatedAt: formatTime(a.Timestamps.UpdatedAt),
	}
}

// CategoryResponse represents a category in responses.
type CategoryResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description string  `json:"description"`
	ParentID    *string `json:"parent_id"`
	Order       int     `json:"order"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// ToCategoryResponse converts a domain.Category to a CategoryResponse.
func ToCategoryResponse(c domain.Category) CategoryResponse {
	resp := CategoryResponse{
		ID:          string(c.ID),
		Name:        string(c.Name),
		Slug:        string(c.Slug),
		Description: string(c.Description),
		Order:       int(c.Order),
		CreatedAt:   formatTime(c.Timestamps.CreatedAt),
		UpdatedAt:   formatTime(c.Timestamps.UpdatedAt),
	}
	if c.ParentID != nil {
		parent := string(*c.ParentID)
		resp.ParentID = &parent
	}
	return resp
}

// CategoryNodeResponse is one node of the category tree.
type CategoryNodeResponse struct {
	CategoryResponse
	Depth    int                    `json:"depth"`
	Children []CategoryNodeResponse `json:"children"`
}

// ToCategoryTreeResponse converts tree nodes recursively. Leaves get an
// empty children list, never null.
func ToCategoryTreeResponse(nodes []domain.CategoryNode) []CategoryNodeResponse {
	out := make([]CategoryNodeResponse, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, CategoryNodeResponse{
			CategoryResponse: ToCategoryResponse(n.Category),
			Depth:            n.Depth,
			Children:         ToCategoryTreeResponse(n.Children),
		})
	}
	return out
}

// CategoryTreeResponse wraps the root nodes.
type CategoryTreeResponse struct {
	Categories []CategoryNodeResponse `json:"categories"`
	MaxDepth   int                    `json:"max_depth"`
}

// PageResponse is a paginated listing.
type PageResponse[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

func toPageResponse[S, T any](p domain.Page[S], convert func(S) T) PageResponse[T] {
	items := make([]T, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, convert(item))
	}
	return PageResponse[T]{
		Items:      items,
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      p.Total,
		TotalPages: p.TotalPages(),
	}
}

// DeletedResponse acknowledges a deletion.
type DeletedResponse struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}
