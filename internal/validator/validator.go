// Package validator holds the ozzo-validation rule sets shared by gateway
// requests and converts their failures into domain errors.
package validator

import (
	"errors"
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"blog-cms/internal/domain"
)

var (
	slugRegex      = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	validStatus    = statusValues()
	validDecisions = []interface{}{string(domain.OutcomeApprove), string(domain.OutcomeReject)}
)

func statusValues() []interface{} {
	values := make([]interface{}, 0, len(domain.ValidStatuses))
	for _, s := range domain.ValidStatuses {
		values = append(values, string(s))
	}
	return values
}

// ID requires a UUID in the field called name.
func ID(name string) []validation.Rule {
	return []validation.Rule{
		validation.Required.Error(name + "_required"),
		is.UUID.Error("invalid_" + name),
	}
}

// OptionalID accepts an empty value or a UUID.
func OptionalID(name string) []validation.Rule {
	return []validation.Rule{is.UUID.Error("invalid_" + name)}
}

// Title rules.
func Title() []validation.Rule {
	return []validation.Rule{
		validation.Required.Error("title_required"),
		validation.By(notBlank("title_required")),
		validation.RuneLength(0, domain.MaxTitleLength).Error("title_too_long"),
	}
}

// OptionalTitle validates a title only when one is given.
func OptionalTitle() []validation.Rule {
	return []validation.Rule{
		validation.RuneLength(0, domain.MaxTitleLength).Error("title_too_long"),
	}
}

// Content rules.
func Content() []validation.Rule {
	return []validation.Rule{
		validation.Required.Error("content_required"),
		validation.By(notBlank("content_required")),
	}
}

// Slug accepts an empty value or a well-formed slug.
func Slug() []validation.Rule {
	return []validation.Rule{
		validation.Match(slugRegex).Error("invalid_slug_format"),
		validation.Length(0, domain.MaxSlugLength).Error("slug_too_long"),
	}
}

// AuthorName rules.
func AuthorName() []validation.Rule {
	return []validation.Rule{
		validation.Required.Error("name_required"),
		validation.By(notBlank("name_required")),
		validation.RuneLength(0, domain.MaxAuthorNameLength).Error("name_too_long"),
	}
}

// Email rules.
func Email() []validation.Rule {
	return []validation.Rule{
		validation.Required.Error("email_required"),
		is.EmailFormat.Error("invalid_email_format"),
	}
}

// Bio rules.
func Bio() []validation.Rule {
	return []validation.Rule{
		validation.RuneLength(0, domain.MaxBioLength).Error("bio_too_long"),
	}
}

// CategoryName rules.
func CategoryName() []validation.Rule {
	return []validation.Rule{
		validation.Required.Error("name_required"),
		validation.By(notBlank("name_required")),
		validation.RuneLength(0, domain.MaxCategoryNameLength).Error("name_too_long"),
	}
}

// Description rules.
func Description() []validation.Rule {
	return []validation.Rule{
		validation.RuneLength(0, domain.MaxDescriptionLength).Error("description_too_long"),
	}
}

// Order rules.
func Order() []validation.Rule {
	return []validation.Rule{
		validation.Min(0).Error("order_must_not_be_negative"),
	}
}

// Status accepts an empty value or a known article status.
func Status() []validation.Rule {
	return []validation.Rule{validation.In(validStatus...).Error("invalid_status")}
}

// Decision rules.
func Decision() []validation.Rule {
	return []validation.Rule{
		validation.Required.Error("decision_required"),
		validation.In(validDecisions...).Error("invalid_decision"),
	}
}

// Reason is required when the decision is a rejection.
func Reason(decision string) []validation.Rule {
	return []validation.Rule{
		validation.When(decision == string(domain.OutcomeReject),
			validation.Required.Error("reason_required"),
			validation.By(notBlank("reason_required")),
		),
	}
}

// Timestamp accepts an empty value or an RFC 3339 time.
func Timestamp(name string) []validation.Rule {
	return []validation.Rule{validation.Date(time.RFC3339).Error("invalid_" + name)}
}

// Page accepts zero, meaning the first page, or a positive number.
func Page() []validation.Rule {
	return []validation.Rule{validation.Min(0).Error("page_must_be_positive")}
}

// Limit accepts zero, meaning the default, or 1..domain.MaxPageLimit.
func Limit() []validation.Rule {
	return []validation.Rule{
		validation.Min(0).Error("limit_out_of_range"),
		validation.Max(domain.MaxPageLimit).Error("limit_out_of_range"),
	}
}

// TreeDepth accepts zero, meaning the default depth, or
// 1..domain.MaxCategoryTreeDepth.
func TreeDepth() []validation.Rule {
	return []validation.Rule{
		validation.Min(0).Error("max_depth_out_of_range"),
		validation.Max(domain.MaxCategoryTreeDepth).Error("max_depth_out_of_range"),
	}
}

// notBlank rejects whitespace-only strings, which Required lets through.
func notBlank(message string) validation.RuleFunc {
	return func(value interface{}) error {
		s, ok := value.(string)
		if !ok {
			if p, isPtr := value.(*string); isPtr && p != nil {
				s, ok = *p, true
			}
		}
		if ok && s != "" && strings.TrimSpace(s) == "" {
			return validation.NewError("validation_blank", message)
		}
		return nil
	}
}

// FieldErrors flattens ozzo errors into field -> message key. Nested keys
// are joined with dots. Non-field errors are reported under "request".
func FieldErrors(err error) map[string]string {
	fields := make(map[string]string)
	var ve validation.Errors
	if !errors.As(err, &ve) {
		fields["request"] = err.Error()
		return fields
	}
	flatten("", ve, fields)
	return fields
}

func flatten(prefix string, ve validation.Errors, out map[string]string) {
	for k, fieldErr := range ve {
		name := k
		if prefix != "" {
			name = prefix + "." + k
		}
		var nested validation.Errors
		if errors.As(fieldErr, &nested) {
			flatten(name, nested, out)
			continue
		}
		out[name] = fieldErr.Error()
	}
}

// ToDomainError converts an ozzo validation failure into a VALIDATION_FAILED
// domain error carrying per-field details. Internal rule errors are
// returned unchanged.
func ToDomainError(err error) error {
	if err == nil {
		return nil
	}
	var internal validation.InternalError
	if errors.As(err, &internal) {
		return err
	}
	de := domain.NewError(domain.CodeValidationFailed, "request validation failed")
	de.Fields = FieldErrors(err)
	return de
}
