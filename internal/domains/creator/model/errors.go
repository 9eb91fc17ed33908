package model

import "errors"

// Repository-level errors
var (
	ErrCreatorNotFound = errors.New("creator not found")
	ErrMediaNotFound   = errors.New("media item not found")
)

// Service-level errors
var (
	ErrDuplicateMediaID = errors.New("media item with this id already exists")

	// Upload-rejection: chặn trước khi bất kỳ row nào được xử lý
	ErrInvalidFileType = errors.New("file must be a CSV (text/csv or .csv extension)")
	ErrFileTooLarge    = errors.New("file exceeds the 5 MiB size limit")
	ErrEmptyFile       = errors.New("file contains no data rows")
)
