package domain

import "strings"

// ReviewOutcome is the result of an editorial review.
type ReviewOutcome string

const (
	OutcomeApprove ReviewOutcome = "approve"
	OutcomeReject  ReviewOutcome = "reject"
)

// ParseReviewOutcome converts the wire form into a ReviewOutcome.
func ParseReviewOutcome(raw string) (ReviewOutcome, error) {
	switch ReviewOutcome(raw) {
	case OutcomeApprove, OutcomeReject:
		return ReviewOutcome(raw), nil
	}
	return "", NewError(CodeInvalidDecision, "review decision must be %q or %q, got %q", OutcomeApprove, OutcomeReject, raw)
}

// ReviewDecision is a validated review outcome with its reason. The reason
// is mandatory for rejections and optional for approvals.
type ReviewDecision struct {
	outcome ReviewOutcome
	reason  string
}

// NewReviewDecision validates the outcome and the reason requirement. The
// reason is kept as given; a whitespace-only reason counts as missing.
func NewReviewDecision(outcome, reason string) (ReviewDecision, error) {
	o, err := ParseReviewOutcome(outcome)
	if err != nil {
		return ReviewDecision{}, err
	}
	if o == OutcomeReject && strings.TrimSpace(reason) == "" {
		return ReviewDecision{}, NewError(CodeRejectReasonRequired, "a reason is required when rejecting an article")
	}
	return ReviewDecision{outcome: o, reason: reason}, nil
}

// Approve builds an approval with an optional reason.
func Approve(reason string) ReviewDecision {
	return ReviewDecision{outcome: OutcomeApprove, reason: reason}
}

// Reject builds a rejection. It fails when reason is blank.
func Reject(reason string) (ReviewDecision, error) {
	return NewReviewDecision(string(OutcomeReject), reason)
}

// Outcome returns the decision outcome.
func (d ReviewDecision) Outcome() ReviewOutcome { return d.outcome }

// Reason returns the reason as given, possibly empty for approvals.
func (d ReviewDecision) Reason() string { return d.reason }

// IsApproval reports whether the decision approves the article.
func (d ReviewDecision) IsApproval() bool { return d.outcome == OutcomeApprove }
