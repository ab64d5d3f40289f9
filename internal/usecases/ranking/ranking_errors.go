package ranking

import (
	"errors"
	"fmt"
)

var (
	ErrCampaignIDRequired = errors.New("excludeCampaignId is required")
	ErrInvalidLimit       = errors.New("limit must be positive")
	ErrCampaignNotFound   = errors.New("campaign not found")
	ErrDatabaseOperation  = errors.New("database operation error")
)

// RankingError carrega o código de erro da API junto do erro base
type RankingError struct {
	Err     error
	Code    string
	Details string
}

func (e *RankingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *RankingError) Unwrap() error {
	return e.Err
}

func NewRankingError(err error, code string, details string) *RankingError {
	return &RankingError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
