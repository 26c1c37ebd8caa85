package util

import (
	"errors"
	"net/http"
)

// ErrorKind classifies a business error so controllers can map it to an HTTP
// status without inspecting message text.
type ErrorKind int

const (
	KindValidation ErrorKind = iota // malformed or missing input
	KindInvalid                     // state-machine precondition violated
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindInternal
)

// AppError is returned by services for rule violations. Fields carries
// per-field validation messages for 422 responses.
type AppError struct {
	Kind    ErrorKind
	Message string
	Fields  map[string]string
}

func (e *AppError) Error() string {
	return e.Message
}

// HTTPStatus maps the error kind to a response status code.
func (e *AppError) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindInvalid:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func NewValidationError(message string, fields map[string]string) *AppError {
	return &AppError{Kind: KindValidation, Message: message, Fields: fields}
}

func NewInvalidError(message string) *AppError {
	return &AppError{Kind: KindInvalid, Message: message}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{Kind: KindForbidden, Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func NewConflictError(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message}
}

// AsAppError unwraps err into an *AppError if it is one.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

var (
	ErrUserNotFound        = NewNotFoundError("user not found")
	ErrEmailRegistered     = NewConflictError("email already registered")
	ErrUsernameTaken       = NewConflictError("username already taken")
	ErrSelfRequest         = NewInvalidError("cannot send a friend request to yourself")
	ErrAlreadyFriends      = NewInvalidError("users are already friends")
	ErrDuplicatePending    = NewInvalidError("a pending request already exists between these users")
	ErrRequestNotFound     = NewNotFoundError("friend request not found")
	ErrGroupNotFound       = NewNotFoundError("group not found")
	ErrNotGroupManager     = NewForbiddenError("requires group owner or admin role")
	ErrAlreadyMember       = NewConflictError("user is already a member of this group")
	ErrNotMember           = NewNotFoundError("user is not a member of this group")
	ErrPrivateGroup        = NewForbiddenError("group is private, members are added by invitation")
	ErrConversationAccess  = NewForbiddenError("not a participant of this conversation")
	ErrPostingNotFound     = NewNotFoundError("job posting not found")
	ErrPostingClosed       = NewInvalidError("job posting is closed")
	ErrAlreadyApplied      = NewConflictError("already applied to this posting")
	ErrApplicationNotFound = NewNotFoundError("application not found")
	ErrAccountSuspended    = NewForbiddenError("account is suspended")
)
