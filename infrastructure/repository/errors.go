package repository

import (
	"github.com/lib/pq"
	"github.com/pkg/errors"
)

// Códigos SQLSTATE tratados pelos repositórios
const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicate         = errors.New("record already exists")
	ErrReferenceNotFound = errors.New("referenced record not found")
)

// translateError converte erros do driver em erros do repositório, preservando o original na mensagem
func translateError(err error, message string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			return errors.Wrapf(ErrDuplicate, "%s: %s", message, pqErr.Constraint)
		case pqForeignKeyViolation:
			return errors.Wrapf(ErrReferenceNotFound, "%s: %s", message, pqErr.Constraint)
		default:
			return errors.Wrapf(err, "%s (code: %s)", message, pqErr.Code)
		}
	}

	return errors.Wrap(err, message)
}

type scanner interface {
	Scan(dest ...interface{}) error
}
