package models

import "errors"

var (
	ErrNoContentAvailable  = errors.New("no content available for level")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrSpeechUnsupported   = errors.New("speech is not supported")
	ErrRecognitionFailed   = errors.New("speech recognition failed")
	ErrNotFound            = errors.New("resource not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrAlreadyOwned        = errors.New("item already owned")
	ErrNotOwned            = errors.New("item not owned")
	ErrNoActiveSession     = errors.New("no active session")
	ErrItemSolved          = errors.New("item already solved")
	ErrHintUnavailable     = errors.New("hint unavailable")
)
