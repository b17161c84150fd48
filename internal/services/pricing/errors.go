package pricing

import "errors"

var (
	ErrRuleNotFound = errors.New("no pricing rule for paper size and print type")
	ErrInvalidJob   = errors.New("pages and copies must be at least 1")
)
