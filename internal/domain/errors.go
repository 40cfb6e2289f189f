package domain

import (
	"errors"
	"fmt"
)

// Resource names used in lookup errors.
const (
	ResourcePublication = "Publication"
	ResourceComment     = "Comment"
)

// NotFoundError is returned when a resource looked up by a field does not exist.
type NotFoundError struct {
	Resource string
	Field    string
	Value    int64
}

// NewNotFoundError creates a NotFoundError for a lookup by id.
func NewNotFoundError(resource string, id int64) *NotFoundError {
	return &NotFoundError{Resource: resource, Field: "id", Value: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with %s : '%d'", e.Resource, e.Field, e.Value)
}

// BadRequestError is returned when a request is well-formed but inconsistent
// with stored state.
type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string {
	return e.Message
}

// ErrCommentNotInPublication is returned when a comment is addressed through a
// publication it is not attached to.
var ErrCommentNotInPublication = &BadRequestError{Message: "Comment does not belong to the post"}

// IsNotFound reports whether err is a NotFoundError for the given resource.
// An empty resource matches any NotFoundError.
func IsNotFound(err error, resource string) bool {
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		return false
	}
	return resource == "" || nf.Resource == resource
}
