package errors

var (
	ErrInvalidRequest = &DomainError{
		Code:    "INVALID_REQUEST",
		Message: "invalid print request",
	}
	ErrRuleNotFound = &DomainError{
		Code:    "RULE_NOT_FOUND",
		Message: "no pricing rule for paper size and print type",
	}
	ErrDuplicateStudent = &DomainError{
		Code:    "DUPLICATE_STUDENT",
		Message: "student number or email already registered",
	}
	ErrConflictRetryable = &DomainError{
		Code:    "CONFLICT_RETRYABLE",
		Message: "transient conflict, retry the operation",
	}
)
