package domain

import "errors"

// Catalog errors
var (
	ErrInvalidCatalog = errors.New("invalid catalog")
	ErrUnknownChapter = errors.New("unknown chapter")
	ErrUnknownGroup   = errors.New("unknown group")
)

// Selection errors
var (
	ErrEmptyChapterSet = errors.New("empty set of chapters chosen")
	ErrInvalidCount    = errors.New("invalid exercise count")
)
