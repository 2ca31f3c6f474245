package service

import "errors"

// Caller-facing errors. Controllers map these onto HTTP statuses; anything
// else coming out of a service is an infrastructure failure.
var (
	ErrTestNotFound            = errors.New("test not found")
	ErrAttemptNotFound         = errors.New("attempt not found")
	ErrDuplicateActiveAttempt  = errors.New("an active attempt already exists for this student and test")
	ErrAttemptAlreadyCompleted = errors.New("attempt is already completed")
	ErrInvalidTransition       = errors.New("attempt status does not permit this operation")
	ErrUnknownQuestion         = errors.New("question does not belong to this test")
	ErrAnswerNotReviewable     = errors.New("answer does not require manual review")
)
