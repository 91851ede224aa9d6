package validator

import (
	"errors"
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"blog-cms/internal/domain"
)

type articleInput struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Slug    string `json:"slug"`
}

func (in articleInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.ID, ID("id")...),
		validation.Field(&in.Title, Title()...),
		validation.Field(&in.Content, Content()...),
		validation.Field(&in.Slug, Slug()...),
	)
}

func TestRules_Article(t *testing.T) {
	valid := articleInput{
		ID:      "123e4567-e89b-12d3-a456-426614174000",
		Title:   "Hello",
		Content: "Body",
	}

	tests := []struct {
		name      string
		mutate    func(in *articleInput)
		wantField string
		wantMsg   string
	}{
		{name: "valid", mutate: func(*articleInput) {}},
		{name: "valid with slug", mutate: func(in *articleInput) { in.Slug = "hello-world" }},
		{name: "missing id", mutate: func(in *articleInput) { in.ID = "" }, wantField: "id", wantMsg: "id_required"},
		{name: "bad id", mutate: func(in *articleInput) { in.ID = "42" }, wantField: "id", wantMsg: "invalid_id"},
		{name: "missing title", mutate: func(in *articleInput) { in.Title = "" }, wantField: "title", wantMsg: "title_required"},
		{name: "blank title", mutate: func(in *articleInput) { in.Title = "   " }, wantField: "title", wantMsg: "title_required"},
		{name: "long title", mutate: func(in *articleInput) { in.Title = strings.Repeat("x", domain.MaxTitleLength+1) }, wantField: "title", wantMsg: "title_too_long"},
		{name: "blank content", mutate: func(in *articleInput) { in.Content = "\n\t" }, wantField: "content", wantMsg: "content_required"},
		{name: "bad slug", mutate: func(in *articleInput) { in.Slug = "Hello World" }, wantField: "slug", wantMsg: "invalid_slug_format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)

			err := in.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			fields := FieldErrors(err)
			if got := fields[tt.wantField]; got != tt.wantMsg {
				t.Errorf("field %s = %q, want %q (all: %v)", tt.wantField, got, tt.wantMsg, fields)
			}
		})
	}
}

type reviewInput struct {
	Decision string `json:"decision"`
	Reason   string `json:"reason"`
}

func (in reviewInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Decision, Decision()...),
		validation.Field(&in.Reason, Reason(in.Decision)...),
	)
}

func TestRules_Review(t *testing.T) {
	tests := []struct {
		name  string
		in    reviewInput
		field string
	}{
		{name: "approve without reason", in: reviewInput{Decision: "approve"}},
		{name: "reject with reason", in: reviewInput{Decision: "reject", Reason: "needs work"}},
		{name: "reject without reason", in: reviewInput{Decision: "reject"}, field: "reason"},
		{name: "reject with blank reason", in: reviewInput{Decision: "reject", Reason: "  "}, field: "reason"},
		{name: "unknown decision", in: reviewInput{Decision: "maybe"}, field: "decision"},
		{name: "missing decision", in: reviewInput{}, field: "decision"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if tt.field == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if _, ok := FieldErrors(err)[tt.field]; !ok {
				t.Errorf("expected error on %s, got %v", tt.field, err)
			}
		})
	}
}

func TestRules_Timestamp(t *testing.T) {
	tests := []struct {
		value string
		valid bool
	}{
		{value: "", valid: true},
		{value: "2024-07-01T09:30:00Z", valid: true},
		{value: "2024-07-01T09:30:00.5+02:00", valid: true},
		{value: "2024-07-01", valid: false},
		{value: "tomorrow", valid: false},
	}

	for _, tt := range tests {
		err := validation.Validate(tt.value, Timestamp("publish_at")...)
		if tt.valid && err != nil {
			t.Errorf("%q: unexpected error %v", tt.value, err)
		}
		if !tt.valid && (err == nil || err.Error() != "invalid_publish_at") {
			t.Errorf("%q: error = %v, want invalid_publish_at", tt.value, err)
		}
	}
}

type listInput struct {
	Page     int    `json:"page"`
	Limit    int    `json:"limit"`
	Status   string `json:"status"`
	MaxDepth int    `json:"max_depth"`
}

func (in listInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Page, Page()...),
		validation.Field(&in.Limit, Limit()...),
		validation.Field(&in.Status, Status()...),
		validation.Field(&in.MaxDepth, TreeDepth()...),
	)
}

func TestRules_Listing(t *testing.T) {
	tests := []struct {
		name  string
		in    listInput
		field string
	}{
		{name: "defaults", in: listInput{}},
		{name: "explicit", in: listInput{Page: 3, Limit: 100, Status: "pending_review", MaxDepth: 10}},
		{name: "negative page", in: listInput{Page: -1}, field: "page"},
		{name: "limit too large", in: listInput{Limit: domain.MaxPageLimit + 1}, field: "limit"},
		{name: "unknown status", in: listInput{Status: "trashed"}, field: "status"},
		{name: "depth too large", in: listInput{MaxDepth: 11}, field: "max_depth"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if tt.field == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if _, ok := FieldErrors(err)[tt.field]; !ok {
				t.Errorf("expected error on %s, got %v", tt.field, err)
			}
		})
	}
}

func TestToDomainError(t *testing.T) {
	if ToDomainError(nil) != nil {
		t.Fatal("nil error should stay nil")
	}

	err := ToDomainError(validation.Errors{
		"email": validation.NewError("x", "invalid_email_format"),
		"profile": validation.Errors{
			"bio": validation.NewError("x", "bio_too_long"),
		},
	})
	de, ok := domain.AsError(err)
	if !ok {
		t.Fatalf("expected domain error, got %T", err)
	}
	if de.Code != domain.CodeValidationFailed {
		t.Errorf("code = %s, want %s", de.Code, domain.CodeValidationFailed)
	}
	if de.Fields["email"] != "invalid_email_format" {
		t.Errorf("email field = %q", de.Fields["email"])
	}
	if de.Fields["profile.bio"] != "bio_too_long" {
		t.Errorf("nested field = %q", de.Fields["profile.bio"])
	}

	internal := validation.NewInternalError(errors.New("rule crashed"))
	if got := ToDomainError(internal); got != internal {
		t.Errorf("internal errors must pass through, got %v", got)
	}

	plain := ToDomainError(errors.New("not a struct"))
	if de, _ := domain.AsError(plain); de == nil || de.Fields["request"] == "" {
		t.Errorf("plain errors should be reported under request, got %v", plain)
	}
}
