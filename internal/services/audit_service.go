package services

import (
	"encoding/json"
	"reflect"

	"budgetwise/internal/logger"
	"budgetwise/internal/models"
	"budgetwise/internal/store"

	"gorm.io/gorm"
)

// auditService appends audit entries outside the per-user write slot, so a
// slow audit insert never holds up the next budget write.
type auditService struct {
	store *store.Store
}

// NewAuditService creates a new AuditServicer.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{store: store.New(db)}
}

// Log records an audit event. Fields of changes that are nil, including
// nil pointers for fields a patch left alone, are dropped. Failures are
// logged and never reach the caller.
func (s *auditService) Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]any) {
	log := logger.For(userID).With("action", action, "resource_type", resourceType, "resource_id", resourceID)

	entry := &models.AuditLog{
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		IPAddress:    ipAddress,
	}
	if set := presentChanges(changes); len(set) > 0 {
		data, err := json.Marshal(set)
		if err != nil {
			log.Errorw("failed to marshal audit changes", "error", err)
			data = []byte("{}")
		}
		entry.Changes = string(data)
	}

	if err := s.store.AppendAudit(entry); err != nil {
		log.Errorw("failed to append audit entry", "error", err)
	}
}

func presentChanges(changes map[string]any) map[string]any {
	set := make(map[string]any, len(changes))
	for k, v := range changes {
		if v == nil {
			continue
		}
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
			continue
		}
		set[k] = v
	}
	return set
}
