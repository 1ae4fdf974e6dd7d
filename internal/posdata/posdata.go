// Package posdata reads the correlation metadata this service attaches to
// gateway invoices: a comma separated list of key:value pairs such as
// "organizationId:<guid>,accountCredit:1".
package posdata

import (
	"strings"

	"github.com/google/uuid"
	"github.com/jeffleon2/draftea-billing-service/internal/models"
)

const (
	KeyUserID         = "userId"
	KeyOrganizationID = "organizationId"

	accountCreditMarker = "accountCredit:1"
)

type Metadata struct {
	OrganizationID *uuid.UUID
	UserID         *uuid.UUID
	AccountCredit  bool
}

// Parse never fails. Unknown keys, malformed segments and invalid GUIDs are
// skipped; a repeated key keeps its last valid value.
func Parse(raw string) Metadata {
	var md Metadata
	if strings.TrimSpace(raw) == "" || !strings.Contains(raw, ":") {
		return md
	}

	for _, segment := range strings.Split(raw, ",") {
		parts := strings.Split(segment, ":")
		if len(parts) < 2 {
			continue
		}

		id, err := uuid.Parse(strings.TrimSpace(parts[1]))
		if err != nil {
			continue
		}

		switch parts[0] {
		case KeyUserID:
			md.UserID = &id
		case KeyOrganizationID:
			md.OrganizationID = &id
		}
	}

	md.AccountCredit = strings.Contains(raw, accountCreditMarker)
	return md
}

// Target resolves the account to credit. The organization wins when both ids
// are present.
func (m Metadata) Target() (models.CreditTarget, bool) {
	switch {
	case m.OrganizationID != nil:
		return models.OrganizationTarget(*m.OrganizationID), true
	case m.UserID != nil:
		return models.UserTarget(*m.UserID), true
	default:
		return models.CreditTarget{}, false
	}
}
