package gateway_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-cms/internal/domain"
	"blog-cms/internal/gateway"
)

const (
	articleID  = "3f1c8e2a-6b1d-4c55-9a0e-1f2b3c4d5e6f"
	authorID   = "9b2d7c41-2f6e-4a8b-8c3d-5e6f7a8b9c0d"
	reviewerID = "c7e5a913-8d4f-4b2a-9e1c-0a1b2c3d4e5f"
	rootID     = "0d4e5f60-7a8b-4c9d-8e0f-1a2b3c4d5e6f"
	childID    = "1e5f6071-8b9c-4dae-9f10-2b3c4d5e6f70"
)

var t0 = time.Date(2024, 6, 1, 8, 0, 0, 123456789, time.FixedZone("CEST", 2*60*60))

func publishedArticle() domain.Article {
	published := t0.Add(2 * time.Hour)
	return domain.Article{
		ID:          articleID,
		Title:       "Release notes",
		Content:     "<p>Go 1.23 is out.</p>",
		Slug:        "release-notes",
		Status:      domain.StatusPublished,
		AuthorID:    authorID,
		Timestamps:  domain.Timestamps{CreatedAt: t0, UpdatedAt: t0.Add(time.Hour)},
		PublishedAt: &published,
		LastReview: &domain.Review{
			ReviewerID: reviewerID,
			Outcome:    domain.OutcomeApprove,
			ReviewedAt: t0.Add(30 * time.Minute),
		},
	}
}

func TestToArticleResponse(t *testing.T) {
	resp := gateway.ToArticleResponse(publishedArticle())

	assert.Equal(t, articleID, resp.ID)
	assert.Equal(t, "published", resp.Status)
	assert.Equal(t, "2024-06-01T06:00:00.123456789Z", resp.CreatedAt)
	assert.Equal(t, "2024-06-01T07:00:00.123456789Z", resp.UpdatedAt)
	require.NotNil(t, resp.PublishedAt)
	assert.Equal(t, "2024-06-01T08:00:00.123456789Z", *resp.PublishedAt)
	require.NotNil(t, resp.LastReview)
	assert.Equal(t, "approve", resp.LastReview.Decision)
}

func TestToArticleResponse_Draft(t *testing.T) {
	a := publishedArticle()
	a.Status = domain.StatusDraft
	a.PublishedAt = nil
	a.LastReview = nil

	data, err := json.Marshal(gateway.ToArticleResponse(a))
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.NotContains(t, raw, "published_at")
	assert.NotContains(t, raw, "last_review")
	assert.Equal(t, "draft", raw["status"])
	assert.Equal(t, authorID, raw["author_id"])
}

func TestArticleResponse_JSONRoundTrip(t *testing.T) {
	resp := gateway.ToArticleResponse(publishedArticle())

	data, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded gateway.ArticleResponse
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, resp.ID, decoded.ID)
	assert.Equal(t, resp.Slug, decoded.Slug)
	assert.Equal(t, resp.Status, decoded.Status)
	assert.Equal(t, resp.CreatedAt, decoded.CreatedAt)
	assert.Equal(t, resp.UpdatedAt, decoded.UpdatedAt)
	assert.Equal(t, *resp.PublishedAt, *decoded.PublishedAt)

	parsed, err := time.Parse(gateway.TimeFormat, decoded.CreatedAt)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(t0), "timestamp keeps nanosecond precision")
}

func TestCategoryTreeResponse(t *testing.T) {
	parent := domain.CategoryID(rootID)
	root := domain.Category{ID: rootID, Name: "Go", Slug: "go", Timestamps: domain.CreatedNow(t0)}
	child := domain.Category{ID: childID, Name: "Releases", Slug: "go-releases", ParentID: &parent, Order: 1, Timestamps: domain.CreatedNow(t0)}

	nodes := []domain.CategoryNode{{
		Category: root,
		Depth:    1,
		Children: []domain.CategoryNode{{Category: child, Depth: 2}},
	}}

	tree := gateway.ToCategoryTreeResponse(nodes)
	require.Len(t, tree, 1)
	assert.Nil(t, tree[0].ParentID)
	require.Len(t, tree[0].Children, 1)
	assert.Equal(t, rootID, *tree[0].Children[0].ParentID)

	data, err := json.Marshal(tree)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"children":[]`, "leaves encode an empty list")
	assert.Contains(t, string(data), `"parent_id":null`)
	assert.Contains(t, string(data), `"slug":"go-releases"`)
}

func TestErrorJSON(t *testing.T) {
	data, err := json.Marshal(&gateway.Error{Category: gateway.CategoryNotFound, Code: "ARTICLE_NOT_FOUND", Message: "missing"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"category":"not_found","code":"ARTICLE_NOT_FOUND","message":"missing"}`, string(data))
}
