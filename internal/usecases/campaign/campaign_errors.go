package campaign

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de campanhas
var (
	// Erros de validação
	ErrCampaignIDRequired = errors.New("campaign ID is required")
	ErrMissingFields      = errors.New("missing required fields")
	ErrInvalidBudget      = errors.New("budget must be positive")
	ErrInvalidLaunchDate  = errors.New("invalid launch date")
	ErrNothingToUpdate    = errors.New("no fields to update")
	ErrCampaignNotFound   = errors.New("campaign not found")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")

	ErrGenerateID = errors.New("error generating campaign ID")
)

// CampaignError é um erro com contexto adicional para campanhas
type CampaignError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	CampaignID string // ID da campanha envolvida (quando aplicável)
	Details    string // Detalhes adicionais
}

func (e *CampaignError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *CampaignError) Unwrap() error {
	return e.Err
}

func NewCampaignError(err error, code string, details string) *CampaignError {
	return &CampaignError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewCampaignErrorWithID(err error, code string, campaignID string, details string) *CampaignError {
	return &CampaignError{
		Err:        err,
		Code:       code,
		CampaignID: campaignID,
		Details:    details,
	}
}
