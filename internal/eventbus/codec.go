package eventbus

import (
	"encoding/json"
	"fmt"

	"blog-cms/internal/domain"
)

type decodeFunc func(payload []byte) (domain.Event, error)

func decodeAs[T domain.Event](payload []byte) (domain.Event, error) {
	var event T
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, err
	}
	return event, nil
}

var decoders = map[string]decodeFunc{
	domain.EventArticleCreated:            decodeAs[domain.ArticleCreated],
	domain.EventArticleSubmittedForReview: decodeAs[domain.ArticleSubmittedForReview],
	domain.EventArticleApproved:           decodeAs[domain.ArticleApproved],
	domain.EventArticleRejected:           decodeAs[domain.ArticleRejected],
	domain.EventArticlePublished:          decodeAs[domain.ArticlePublished],
	domain.EventArticleUpdated:            decodeAs[domain.ArticleUpdated],
	domain.EventArticleDeleted:            decodeAs[domain.ArticleDeleted],
	domain.EventAuthorCreated:             decodeAs[domain.AuthorCreated],
	domain.EventAuthorUpdated:             decodeAs[domain.AuthorUpdated],
	domain.EventAuthorDeleted:             decodeAs[domain.AuthorDeleted],
	domain.EventCategoryCreated:           decodeAs[domain.CategoryCreated],
	domain.EventCategoryUpdated:           decodeAs[domain.CategoryUpdated],
	domain.EventCategoryDeleted:           decodeAs[domain.CategoryDeleted],
}

// Encode serializes an event payload.
func Encode(event domain.Event) ([]byte, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", event.EventName(), err)
	}
	return payload, nil
}

// Decode rebuilds an event from its name and payload.
func Decode(name string, payload []byte) (domain.Event, error) {
	decode, ok := decoders[name]
	if !ok {
		return nil, fmt.Errorf("unknown event %q", name)
	}
	event, err := decode(payload)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return event, nil
}
