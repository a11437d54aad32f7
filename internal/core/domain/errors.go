package domain

import "errors"

// ErrNoFilesProvided is an error thrown when an upload request carries no files
var ErrNoFilesProvided = errors.New("no files provided")

// ErrEmptyFile is an error thrown when an uploaded file has an empty payload
var ErrEmptyFile = errors.New("empty file")

// ErrUploadFailed is an error thrown when a file upload to storage failed
var ErrUploadFailed = errors.New("upload failed")

// ErrAllUploadsFailed is an error thrown when no file of a batch could be uploaded
var ErrAllUploadsFailed = errors.New("all uploads failed")

// ErrSessionNotFound is an error thrown when session is not found or expired
var ErrSessionNotFound = errors.New("session not found")

// ErrNoFilesAvailable is an error thrown when no stored file resolves to a URL
var ErrNoFilesAvailable = errors.New("no files available")

// ErrObjectNotFound is an error thrown when a stored object is missing
var ErrObjectNotFound = errors.New("object not found")
