package validators

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/akudrin/offsync/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldTenantID targets the tenant identifier of a queued operation.
	FieldTenantID = "tenant_id"

	// FieldUserID targets the user identifier of a queued operation.
	FieldUserID = "user_id"

	// FieldOperationType targets the entity kind of a queued operation.
	FieldOperationType = "operation_type"

	// FieldAction targets the create/update/delete action of a queued operation.
	FieldAction = "action"

	// FieldPayload targets the JSON payload of a queued operation.
	FieldPayload = "payload"

	// FieldEntityID targets the entity identifier of a delete operation.
	FieldEntityID = "entity_id"

	// FieldUserLogin targets the login field of a user payload.
	FieldUserLogin = "login"

	// FieldUserName targets the display name field of a user payload.
	FieldUserName = "name"
)

var allowedOperationTypes = []string{
	models.OpTypeTransaction,
	models.OpTypeInvoice,
	models.OpTypeContact,
	models.OpTypeUser,
}

var allowedActions = []models.QueueAction{
	models.ActionCreate,
	models.ActionUpdate,
	models.ActionDelete,
}

type QueueValidator struct {
}

func NewQueueValidator() Validator {
	return &QueueValidator{}
}

func (v *QueueValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.QueueItem:
		return v.validateQueueItem(ctx, value, fields...)
	case *models.QueueItem:
		return v.validateQueueItem(ctx, *value, fields...)

	case models.UserPayload:
		return v.validateUserPayload(ctx, value, fields...)
	case *models.UserPayload:
		return v.validateUserPayload(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func isValidOperationType(opType string) bool {
	for _, t := range allowedOperationTypes {
		if opType == t {
			return true
		}
	}
	return false
}

func isValidAction(action models.QueueAction) bool {
	for _, a := range allowedActions {
		if action == a {
			return true
		}
	}
	return false
}

func (v *QueueValidator) validateQueueItem(ctx context.Context, item models.QueueItem, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTenantID, FieldUserID, FieldOperationType, FieldAction, FieldPayload}
	}

	for _, f := range fields {
		switch f {
		case FieldTenantID:
			if strings.TrimSpace(item.TenantID) == "" {
				return ErrInvalidTenantID
			}
		case FieldUserID:
			if strings.TrimSpace(item.UserID) == "" {
				return ErrInvalidUserID
			}
		case FieldOperationType:
			if !isValidOperationType(item.OperationType) {
				return ErrInvalidOperationType
			}
		case FieldAction:
			if !isValidAction(item.Action) {
				return ErrInvalidAction
			}
		case FieldPayload:
			var decoded map[string]json.RawMessage
			if err := json.Unmarshal(item.Payload, &decoded); err != nil {
				return ErrInvalidPayload
			}
		case FieldEntityID:
			if item.Action == models.ActionDelete && item.EntityID == "" {
				return ErrInvalidEntityID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *QueueValidator) validateUserPayload(ctx context.Context, user models.UserPayload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldUserLogin, FieldUserName}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if strings.TrimSpace(user.ID) == "" {
				return ErrInvalidUserID
			}
		case FieldUserLogin:
			if strings.TrimSpace(user.Login) == "" {
				return ErrMissingLogin
			}
		case FieldUserName:
			if strings.TrimSpace(user.Name) == "" {
				return ErrMissingName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
