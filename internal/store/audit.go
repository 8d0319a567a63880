package store

import (
	apperrors "budgetwise/internal/errors"
	"budgetwise/internal/models"
)

// AppendAudit stores one audit entry. Entries are never updated.
func (s *Store) AppendAudit(entry *models.AuditLog) error {
	if err := s.db.Create(entry).Error; err != nil {
		return apperrors.Store(err)
	}
	return nil
}
