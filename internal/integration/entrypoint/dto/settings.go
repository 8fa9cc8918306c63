package dto

import "github.com/money-manager/backend/internal/domain/entity"

// SettingsRequest represents the request body for replacing user settings.
type SettingsRequest struct {
	DefaultTransactionType string `json:"defaultTransactionType"`
	WeekStartDay           string `json:"weekStartDay" binding:"required"`
	ConfirmBeforeTransfer  bool   `json:"confirmBeforeTransfer"`
}

// ToEntity maps the request to the settings entity.
func (r *SettingsRequest) ToEntity() entity.UserSettings {
	return entity.UserSettings{
		DefaultTransactionType: entity.TransactionType(r.DefaultTransactionType),
		WeekStartDay:           entity.WeekStartDay(r.WeekStartDay),
		ConfirmBeforeTransfer:  r.ConfirmBeforeTransfer,
	}
}

// SettingsResponse represents user settings in API responses.
type SettingsResponse struct {
	DefaultTransactionType string `json:"defaultTransactionType"`
	WeekStartDay           string `json:"weekStartDay"`
	ConfirmBeforeTransfer  bool   `json:"confirmBeforeTransfer"`
}

// NewSettingsResponse maps settings to the response shape.
func NewSettingsResponse(settings *entity.UserSettings) SettingsResponse {
	return SettingsResponse{
		DefaultTransactionType: string(settings.DefaultTransactionType),
		WeekStartDay:           string(settings.WeekStartDay),
		ConfirmBeforeTransfer:  settings.ConfirmBeforeTransfer,
	}
}
