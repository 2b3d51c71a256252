package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given Param is not valid")
	// ErrForbidden will throw if the caller is not allowed to act on the item
	ErrForbidden = errors.New("you are not allowed to perform this action")
	// ErrUnauthorized will throw if the caller presents no usable token
	ErrUnauthorized = errors.New("user not authenticated")
	// ErrCacheMiss will throw if the cache has no entry for the key
	ErrCacheMiss = errors.New("cache miss")

	ErrParentBlogMismatch = fmt.Errorf("%w: parent comment does not belong to this post", ErrBadParamInput)
	ErrInvalidContent     = fmt.Errorf("%w: comment content must be 1-%d characters", ErrBadParamInput, MaxCommentLength)
)
