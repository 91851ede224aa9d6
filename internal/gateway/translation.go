package gateway

import "blog-cms/internal/domain"

// Translator looks up user-facing text for an error code or a field
// message key.
type Translator interface {
	Translate(key string) (string, bool)
}

// Catalog is a static Translator.
type Catalog map[string]string

// Translate implements Translator.
func (c Catalog) Translate(key string) (string, bool) {
	text, ok := c[key]
	return text, ok
}

// EnglishCatalog returns the default messages, keyed by error code and by
// validation message key.
func EnglishCatalog() Catalog {
	return Catalog{
		string(domain.CodeValidationFailed):     "The request is invalid.",
		string(domain.CodeInvalidID):            "The identifier is not a valid UUID.",
		string(domain.CodeInvalidTitle):         "The title must be between 1 and 255 characters.",
		string(domain.CodeInvalidContent):       "The content must not be empty.",
		string(domain.CodeInvalidSlug):          "The slug may only contain lowercase letters, digits and single hyphens.",
		string(domain.CodeInvalidStatus):        "The article status is unknown.",
		string(domain.CodeInvalidAuthorName):    "The author name must be between 1 and 100 characters.",
		string(domain.CodeInvalidEmail):         "The email address is not valid.",
		string(domain.CodeInvalidBio):           "The bio must be at most 1000 characters.",
		string(domain.CodeInvalidCategoryName):  "The category name must be between 1 and 100 characters.",
		string(domain.CodeInvalidDescription):   "The category description must be at most 1000 characters.",
		string(domain.CodeInvalidOrder):         "The category order must not be negative.",
		string(domain.CodeInvalidTimestamps):    "The timestamps are inconsistent.",
		string(domain.CodeInvalidDecision):      "The review decision must be approve or reject.",
		string(domain.CodeRejectReasonRequired): "A reason is required to reject an article.",
		string(domain.CodeInvalidPublishTime):   "The publish time cannot be earlier than the article creation.",
		string(domain.CodeInvalidPagination):    "The page or limit is out of range.",

		string(domain.CodeArticleNotFound):        "The article does not exist.",
		string(domain.CodeAuthorNotFound):         "The author does not exist.",
		string(domain.CodeCategoryNotFound):       "The category does not exist.",
		string(domain.CodeParentCategoryNotFound): "The parent category does not exist.",

		string(domain.CodeArticleAlreadyExists):  "An article with this slug already exists.",
		string(domain.CodeSlugAlreadyExists):     "The slug is already used by another article.",
		string(domain.CodeAuthorAlreadyExists):   "An author with this email already exists.",
		string(domain.CodeAuthorHasArticles):     "The author still has articles.",
		string(domain.CodeCategoryAlreadyExists): "A category with this slug already exists.",
		string(domain.CodeCategoryHasChildren):   "The category still has sub-categories.",
		string(domain.CodeCategoryCycle):         "A category cannot be moved below itself or one of its descendants.",

		string(domain.CodeAlreadyPendingReview):             "The article is already waiting for review.",
		string(domain.CodeAlreadyApproved):                  "The article is already approved.",
		string(domain.CodeCannotSubmitPublished):            "A published article cannot be submitted for review.",
		string(domain.CodeCannotSubmitArchived):             "An archived article cannot be submitted for review.",
		string(domain.CodeInvalidReviewStatus):              "Only articles waiting for review can be reviewed.",
		string(domain.CodeCannotReviewPublished):            "A published article cannot be reviewed.",
		string(domain.CodeCannotReviewArchived):             "An archived article cannot be reviewed.",
		string(domain.CodeArticleAlreadyPublished):          "The article is already published.",
		string(domain.CodeArticleNotApproved):               "Only approved articles can be published.",
		string(domain.CodePublishedArticleRequiresApproval): "A published article cannot be edited without a new approval.",

		string(domain.CodeDataCorruption): "Stored data is inconsistent.",

		"id_required":                "This field is required.",
		"invalid_id":                 "Must be a valid UUID.",
		"article_id_required":        "This field is required.",
		"invalid_article_id":         "Must be a valid UUID.",
		"author_id_required":         "This field is required.",
		"invalid_author_id":          "Must be a valid UUID.",
		"category_id_required":       "This field is required.",
		"invalid_category_id":        "Must be a valid UUID.",
		"invalid_parent_id":          "Must be a valid UUID.",
		"reviewer_id_required":       "This field is required.",
		"title_required":             "This field is required.",
		"title_too_long":             "Must be at most 255 characters.",
		"content_required":           "This field is required.",
		"invalid_slug_format":        "May only contain lowercase letters, digits and single hyphens.",
		"slug_too_long":              "Must be at most 250 characters.",
		"name_required":              "This field is required.",
		"name_too_long":              "Must be at most 100 characters.",
		"email_required":             "This field is required.",
		"invalid_email_format":       "Must be a valid email address.",
		"bio_too_long":               "Must be at most 1000 characters.",
		"description_too_long":       "Must be at most 1000 characters.",
		"order_must_not_be_negative": "Must not be negative.",
		"invalid_status":             "Must be a known article status.",
		"decision_required":          "This field is required.",
		"invalid_decision":           "Must be approve or reject.",
		"reason_required":            "A reason is required when rejecting.",
		"invalid_publish_at":         "Must be an RFC 3339 timestamp.",
		"page_must_be_positive":      "Must be a positive number.",
		"limit_out_of_range":         "Must be between 1 and 100.",
		"max_depth_out_of_range":     "Must be between 1 and 10.",
	}
}
