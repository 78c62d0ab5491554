package router

import "errors"

var (
	ErrEmptyTable       = errors.New("keyword table is empty")
	ErrGeneralKeywords  = errors.New("general domain cannot own keywords")
	ErrEmptyKeyword     = errors.New("keyword must not be empty")
	ErrOverlappingLists = errors.New("keyword appears in more than one domain")
)
