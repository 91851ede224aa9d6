package domain

import (
	"errors"
	"fmt"
)

// ErrorKind is the closed set of failure categories raised by the core.
type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindNotFound
	KindConflict
	KindInvalidTransition
	KindCorruption
)

// Kinds returns every ErrorKind.
func Kinds() []ErrorKind {
	return []ErrorKind{KindValidation, KindNotFound, KindConflict, KindInvalidTransition, KindCorruption}
}

// String returns the kind name used in logs and metrics labels.
func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindInvalidTransition:
		return "invalid_transition"
	case KindCorruption:
		return "corruption"
	default:
		return "unknown"
	}
}

// ErrorCode identifies a specific failure. Codes are grouped per operation
// below; every code maps to exactly one ErrorKind via codeKinds.
type ErrorCode string

// Input validation.
const (
	CodeValidationFailed     ErrorCode = "VALIDATION_FAILED"
	CodeInvalidID            ErrorCode = "INVALID_ID"
	CodeInvalidTitle         ErrorCode = "INVALID_TITLE"
	CodeInvalidContent       ErrorCode = "INVALID_CONTENT"
	CodeInvalidSlug          ErrorCode = "INVALID_SLUG"
	CodeInvalidStatus        ErrorCode = "INVALID_ARTICLE_STATUS"
	CodeInvalidAuthorName    ErrorCode = "INVALID_AUTHOR_NAME"
	CodeInvalidEmail         ErrorCode = "INVALID_EMAIL"
	CodeInvalidBio           ErrorCode = "INVALID_BIO"
	CodeInvalidCategoryName  ErrorCode = "INVALID_CATEGORY_NAME"
	CodeInvalidDescription   ErrorCode = "INVALID_CATEGORY_DESCRIPTION"
	CodeInvalidOrder         ErrorCode = "INVALID_CATEGORY_ORDER"
	CodeInvalidTimestamps    ErrorCode = "INVALID_TIMESTAMPS"
	CodeInvalidDecision      ErrorCode = "INVALID_REVIEW_DECISION"
	CodeRejectReasonRequired ErrorCode = "REJECTION_REASON_REQUIRED"
	CodeInvalidPublishTime   ErrorCode = "INVALID_PUBLISH_TIME"
	CodeInvalidPagination    ErrorCode = "INVALID_PAGINATION"
)

// Lookups.
const (
	CodeArticleNotFound        ErrorCode = "ARTICLE_NOT_FOUND"
	CodeAuthorNotFound         ErrorCode = "AUTHOR_NOT_FOUND"
	CodeCategoryNotFound       ErrorCode = "CATEGORY_NOT_FOUND"
	CodeParentCategoryNotFound ErrorCode = "PARENT_CATEGORY_NOT_FOUND"
)

// Uniqueness and referential conflicts.
const (
	CodeArticleAlreadyExists  ErrorCode = "ARTICLE_ALREADY_EXISTS"
	CodeSlugAlreadyExists     ErrorCode = "SLUG_ALREADY_EXISTS"
	CodeAuthorAlreadyExists   ErrorCode = "AUTHOR_ALREADY_EXISTS"
	CodeAuthorHasArticles     ErrorCode = "AUTHOR_HAS_ARTICLES"
	CodeCategoryAlreadyExists ErrorCode = "CATEGORY_ALREADY_EXISTS"
	CodeCategoryHasChildren   ErrorCode = "CATEGORY_HAS_CHILDREN"
	CodeCategoryCycle         ErrorCode = "CATEGORY_CYCLE"
)

// SubmitForReview transitions.
const (
	CodeAlreadyPendingReview  ErrorCode = "ALREADY_PENDING_REVIEW"
	CodeAlreadyApproved       ErrorCode = "ALREADY_APPROVED"
	CodeCannotSubmitPublished ErrorCode = "CANNOT_SUBMIT_PUBLISHED"
	CodeCannotSubmitArchived  ErrorCode = "CANNOT_SUBMIT_ARCHIVED"
)

// Approve/Reject transitions. CodeAlreadyApproved is shared with submission.
const (
	CodeInvalidReviewStatus   ErrorCode = "INVALID_STATUS"
	CodeCannotReviewPublished ErrorCode = "CANNOT_REVIEW_PUBLISHED"
	CodeCannotReviewArchived  ErrorCode = "CANNOT_REVIEW_ARCHIVED"
)

// Publish and update transitions.
const (
	CodeArticleAlreadyPublished          ErrorCode = "ARTICLE_ALREADY_PUBLISHED"
	CodeArticleNotApproved               ErrorCode = "ARTICLE_NOT_APPROVED"
	CodePublishedArticleRequiresApproval ErrorCode = "PUBLISHED_ARTICLE_REQUIRES_APPROVAL"
)

// Persistence reconstruction.
const (
	CodeDataCorruption ErrorCode = "DATA_CORRUPTION"
)

var codeKinds = map[ErrorCode]ErrorKind{
	CodeValidationFailed:     KindValidation,
	CodeInvalidID:            KindValidation,
	CodeInvalidTitle:         KindValidation,
	CodeInvalidContent:       KindValidation,
	CodeInvalidSlug:          KindValidation,
	CodeInvalidStatus:        KindValidation,
	CodeInvalidAuthorName:    KindValidation,
	CodeInvalidEmail:         KindValidation,
	CodeInvalidBio:           KindValidation,
	CodeInvalidCategoryName:  KindValidation,
	CodeInvalidDescription:   KindValidation,
	CodeInvalidOrder:         KindValidation,
	CodeInvalidTimestamps:    KindValidation,
	CodeInvalidDecision:      KindValidation,
	CodeRejectReasonRequired: KindValidation,
	CodeInvalidPublishTime:   KindValidation,
	CodeInvalidPagination:    KindValidation,

	CodeArticleNotFound:        KindNotFound,
	CodeAuthorNotFound:         KindNotFound,
	CodeCategoryNotFound:       KindNotFound,
	CodeParentCategoryNotFound: KindNotFound,

	CodeArticleAlreadyExists:  KindConflict,
	CodeSlugAlreadyExists:     KindConflict,
	CodeAuthorAlreadyExists:   KindConflict,
	CodeAuthorHasArticles:     KindConflict,
	CodeCategoryAlreadyExists: KindConflict,
	CodeCategoryHasChildren:   KindConflict,

	CodeCategoryCycle:                    KindInvalidTransition,
	CodeAlreadyPendingReview:             KindInvalidTransition,
	CodeAlreadyApproved:                  KindInvalidTransition,
	CodeCannotSubmitPublished:            KindInvalidTransition,
	CodeCannotSubmitArchived:             KindInvalidTransition,
	CodeInvalidReviewStatus:              KindInvalidTransition,
	CodeCannotReviewPublished:            KindInvalidTransition,
	CodeCannotReviewArchived:             KindInvalidTransition,
	CodeArticleAlreadyPublished:          KindInvalidTransition,
	CodeArticleNotApproved:               KindInvalidTransition,
	CodePublishedArticleRequiresApproval: KindInvalidTransition,

	CodeDataCorruption: KindCorruption,
}

// KindOf returns the kind registered for code. Unregistered codes report
// KindCorruption so they surface as internal failures.
func KindOf(code ErrorCode) ErrorKind {
	if k, ok := codeKinds[code]; ok {
		return k
	}
	return KindCorruption
}

// Codes returns every registered error code.
func Codes() []ErrorCode {
	codes := make([]ErrorCode, 0, len(codeKinds))
	for c := range codeKinds {
		codes = append(codes, c)
	}
	return codes
}

// Error is the single error type raised by value objects, lifecycle
// operations and handlers.
type Error struct {
	Code    ErrorCode
	Message string
	// Fields holds per-field messages for VALIDATION_FAILED.
	Fields map[string]string
}

// Kind returns the category of the error.
func (e *Error) Kind() ErrorKind {
	return KindOf(e.Code)
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// NewError creates an Error with a formatted message.
func NewError(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// AsError extracts a *Error from err's chain.
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code ErrorCode) bool {
	de, ok := AsError(err)
	return ok && de.Code == code
}

// IsKind reports whether err carries a code of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	de, ok := AsError(err)
	return ok && de.Kind() == kind
}

// ErrArticleNotFound builds the not-found error for an article id.
func ErrArticleNotFound(id ArticleID) *Error {
	return NewError(CodeArticleNotFound, "article %s not found", id)
}

// ErrAuthorNotFound builds the not-found error for an author id.
func ErrAuthorNotFound(id AuthorID) *Error {
	return NewError(CodeAuthorNotFound, "author %s not found", id)
}

// ErrCategoryNotFound builds the not-found error for a category id.
func ErrCategoryNotFound(id CategoryID) *Error {
	return NewError(CodeCategoryNotFound, "category %s not found", id)
}

// ErrCorrupted wraps a reconstruction failure of stored data.
func ErrCorrupted(entity, id string, cause error) *Error {
	return NewError(CodeDataCorruption, "stored %s %s is invalid: %v", entity, id, cause)
}
