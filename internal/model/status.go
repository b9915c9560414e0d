package model

import "strings"

// The backend exposes several enumerations whose names overlap ("status",
// "type", "subscriptionStatus"). They are distinct value sets and stay
// distinct types here; each one maps totally onto a Badge, with unknown raw
// values landing in a defined default bucket instead of failing.

// Tone is the semantic color family of a status pill. The TUI maps tones to
// adaptive styles; scriptable output ignores them.
type Tone int

const (
	ToneNeutral Tone = iota
	ToneSuccess
	ToneWarning
	ToneDanger
	ToneInfo
	ToneAccent
)

// Badge pairs the locale display label of a status with its pill tone.
type Badge struct {
	Label string
	Tone  Tone
}

// CustomerStatus is derived from the raw isActive field.
type CustomerStatus string

const (
	CustomerActive   CustomerStatus = "Active"
	CustomerInactive CustomerStatus = "Inactive"
	CustomerBlocked  CustomerStatus = "Blocked"
)

// CustomerStatusFromAPI normalizes the raw isActive value. Anything that is
// neither active nor blocked counts as inactive.
func CustomerStatusFromAPI(raw string) CustomerStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "active":
		return CustomerActive
	case "blocked":
		return CustomerBlocked
	default:
		return CustomerInactive
	}
}

func (s CustomerStatus) Badge() Badge {
	switch s {
	case CustomerActive:
		return Badge{Label: "Actif", Tone: ToneSuccess}
	case CustomerBlocked:
		return Badge{Label: "Bloqué", Tone: ToneDanger}
	default:
		return Badge{Label: "Inactif", Tone: ToneNeutral}
	}
}

// CustomerRole keeps the raw backend value (including the backend's
// "permium_user" spelling) so filters compare exactly.
type CustomerRole string

const (
	RoleUser    CustomerRole = "user"
	RolePremium CustomerRole = "permium_user"
	RoleInvited CustomerRole = "invited"
)

// CustomerRoleFromAPI defaults a missing role to the plain user role.
func CustomerRoleFromAPI(raw string) CustomerRole {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return RoleUser
	}
	return CustomerRole(raw)
}

func (r CustomerRole) Badge() Badge {
	switch r {
	case RolePremium:
		return Badge{Label: "Utilisateur Premium", Tone: ToneAccent}
	case RoleInvited:
		return Badge{Label: "Invités", Tone: ToneInfo}
	case RoleUser:
		return Badge{Label: "Utilisatrice", Tone: ToneNeutral}
	default:
		// Unknown roles keep their raw value as the label.
		return Badge{Label: string(r), Tone: ToneNeutral}
	}
}

// PaymentStatus is derived from the raw paymentStatus field.
type PaymentStatus string

const (
	PaymentPaid     PaymentStatus = "Paid"
	PaymentPending  PaymentStatus = "Pending"
	PaymentFailed   PaymentStatus = "Failed"
	PaymentRefunded PaymentStatus = "Refunded"
)

// PaymentStatusFromAPI normalizes the gateway's status vocabulary. Both
// "paid" and "succeeded" count as paid; anything unknown is pending.
func PaymentStatusFromAPI(raw string) PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "paid", "succeeded":
		return PaymentPaid
	case "failed":
		return PaymentFailed
	case "refunded":
		return PaymentRefunded
	default:
		return PaymentPending
	}
}

func (s PaymentStatus) Badge() Badge {
	switch s {
	case PaymentPaid:
		return Badge{Label: "Payé", Tone: ToneSuccess}
	case PaymentFailed:
		return Badge{Label: "Échoué", Tone: ToneDanger}
	case PaymentRefunded:
		return Badge{Label: "Remboursé", Tone: ToneInfo}
	default:
		return Badge{Label: "En attente", Tone: ToneWarning}
	}
}

// SubscriptionStatus is the payer's subscription state carried alongside a
// payment. Not the same enumeration as CustomerStatus.
type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "Active"
	SubscriptionInactive SubscriptionStatus = "Inactive"
)

func SubscriptionStatusFromAPI(raw string) SubscriptionStatus {
	if strings.ToLower(strings.TrimSpace(raw)) == "active" {
		return SubscriptionActive
	}
	return SubscriptionInactive
}

func (s SubscriptionStatus) Badge() Badge {
	if s == SubscriptionActive {
		return Badge{Label: "Actif", Tone: ToneSuccess}
	}
	return Badge{Label: "Inactif", Tone: ToneDanger}
}

// ReportType classifies a report's lifecycle: completed purchase, draft, or
// soft-deleted. Distinct from ReportStatus below.
type ReportType string

const (
	ReportPurchase ReportType = "purchase"
	ReportDraft    ReportType = "draft"
	ReportDeleted  ReportType = "deleted"
)

// ReportTypeFromAPI defaults unknown types to draft, matching the detail
// page's fallback bucket.
func ReportTypeFromAPI(raw string) ReportType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "purchase":
		return ReportPurchase
	case "deleted":
		return ReportDeleted
	default:
		return ReportDraft
	}
}

func (t ReportType) Badge() Badge {
	switch t {
	case ReportPurchase:
		return Badge{Label: "Complète", Tone: ToneSuccess}
	case ReportDeleted:
		return Badge{Label: "Supprimé", Tone: ToneNeutral}
	default:
		return Badge{Label: "Brouillon", Tone: ToneInfo}
	}
}

// ReportStatus is the edit state of a report row (the list page's filter
// axis), separate from ReportType.
type ReportStatus string

const (
	ReportNew           ReportStatus = "New"
	ReportEdited        ReportStatus = "Edited"
	ReportStatusDeleted ReportStatus = "Deleted"
)

// ReportStatusFromAPI defaults a missing status to New.
func ReportStatusFromAPI(raw string) ReportStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "edited":
		return ReportEdited
	case "deleted":
		return ReportStatusDeleted
	default:
		return ReportNew
	}
}

func (s ReportStatus) Badge() Badge {
	switch s {
	case ReportEdited:
		return Badge{Label: "Modifié", Tone: ToneWarning}
	case ReportStatusDeleted:
		return Badge{Label: "Supprimé", Tone: ToneNeutral}
	default:
		return Badge{Label: "Nouveau", Tone: ToneInfo}
	}
}

// PlanType distinguishes the free and paid plans.
type PlanType string

const (
	PlanBasic   PlanType = "basic"
	PlanPremium PlanType = "premium"
)

func PlanTypeFromAPI(raw string) PlanType {
	if strings.ToLower(strings.TrimSpace(raw)) == "premium" {
		return PlanPremium
	}
	return PlanBasic
}

// ActivityKind classifies recent-activity entries.
type ActivityKind string

const (
	ActivityPayment    ActivityKind = "payment"
	ActivityProject    ActivityKind = "project"
	ActivityUserUpdate ActivityKind = "user_update"
)

func ActivityKindFromAPI(raw string) ActivityKind {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "payment":
		return ActivityPayment
	case "project":
		return ActivityProject
	default:
		return ActivityUserUpdate
	}
}

func (k ActivityKind) Badge() Badge {
	switch k {
	case ActivityPayment:
		return Badge{Label: "payment", Tone: ToneSuccess}
	case ActivityProject:
		return Badge{Label: "project", Tone: ToneAccent}
	default:
		return Badge{Label: "user update", Tone: ToneNeutral}
	}
}
