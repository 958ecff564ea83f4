package services

import "github.com/comerzia/comerzia_backend/internal/core/domain"

// NotificationKind classifies a user-facing message.
type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyWarning NotificationKind = "warning"
	NotifyError   NotificationKind = "error"
)

// Notifier is the fire-and-forget notification sink. The engine decides what
// to report, never how it is displayed.
type Notifier interface {
	Report(kind NotificationKind, title, message string)
}

// QuotationRenderer turns a quotation into a downloadable binary artifact.
type QuotationRenderer interface {
	RenderQuotation(q domain.Quotation) ([]byte, error)
}
