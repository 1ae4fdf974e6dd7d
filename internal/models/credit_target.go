package models

import "github.com/google/uuid"

type TargetKind string

const (
	TargetOrganization TargetKind = "organization"
	TargetUser         TargetKind = "user"
)

// CreditTarget names the single account a payment credits.
type CreditTarget struct {
	Kind TargetKind
	ID   uuid.UUID
}

func OrganizationTarget(id uuid.UUID) CreditTarget {
	return CreditTarget{Kind: TargetOrganization, ID: id}
}

func UserTarget(id uuid.UUID) CreditTarget {
	return CreditTarget{Kind: TargetUser, ID: id}
}
