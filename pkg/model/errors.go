package model

import "errors"

var (
	// wrong number of tokens in a log line
	ErrMalformedLine = errors.New("malformed line")
	// a field is present but cannot be parsed as its expected type
	ErrFormat = errors.New("format error")
)
