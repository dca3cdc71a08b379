package service

import "errors"

// ErrDocumentGeneration is returned when a document cannot be rendered or archived
var ErrDocumentGeneration = errors.New("document generation failed")
