package domain

import "errors"

var (
	ErrInvalidCapacity    = errors.New("invalid capacity")
	ErrInvalidBoundingBox = errors.New("invalid bounding box")
	ErrInvalidCircle      = errors.New("invalid circle")
	ErrInvalidIndexName   = errors.New("invalid index name")
	ErrIndexNotFound      = errors.New("index not found")
	ErrIndexAlreadyExists = errors.New("index already exists")
	ErrTooManyPoints      = errors.New("too many points")
)
