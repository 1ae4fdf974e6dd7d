package posdata_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/jeffleon2/draftea-billing-service/internal/models"
	"github.com/jeffleon2/draftea-billing-service/internal/posdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	orgGUID   = "11111111-1111-1111-1111-111111111111"
	userGUID  = "22222222-2222-2222-2222-222222222222"
	otherGUID = "33333333-3333-3333-3333-333333333333"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name          string
		raw           string
		wantOrg       string
		wantUser      string
		accountCredit bool
	}{
		{name: "empty", raw: ""},
		{name: "whitespace", raw: "   "},
		{name: "no separator", raw: "accountCredit1,organizationId" + orgGUID},
		{
			name:          "organization credit",
			raw:           "organizationId:" + orgGUID + ",accountCredit:1",
			wantOrg:       orgGUID,
			accountCredit: true,
		},
		{
			name:          "user credit",
			raw:           "userId:" + userGUID + ",accountCredit:1",
			wantUser:      userGUID,
			accountCredit: true,
		},
		{
			name:     "both ids without credit marker",
			raw:      "organizationId:" + orgGUID + ",userId:" + userGUID,
			wantOrg:  orgGUID,
			wantUser: userGUID,
		},
		{
			name:          "duplicate key keeps last",
			raw:           "userId:" + userGUID + ",userId:" + otherGUID + ",accountCredit:1",
			wantUser:      otherGUID,
			accountCredit: true,
		},
		{
			name:          "invalid guid after valid one is ignored",
			raw:           "userId:" + userGUID + ",userId:not-a-guid,accountCredit:1",
			wantUser:      userGUID,
			accountCredit: true,
		},
		{
			name:          "unknown keys and malformed segments",
			raw:           "foo:bar,,:,orgId:" + orgGUID + ",justtext,accountCredit:1",
			accountCredit: true,
		},
		{
			name:     "key is case sensitive",
			raw:      "UserId:" + userGUID + ",userid:" + otherGUID,
			wantUser: "",
		},
		{
			name:    "credit marker with other value",
			raw:     "organizationId:" + orgGUID + ",accountCredit:0",
			wantOrg: orgGUID,
		},
		{
			name:          "value padded with spaces",
			raw:           "organizationId: " + orgGUID + " ,accountCredit:1",
			wantOrg:       orgGUID,
			accountCredit: true,
		},
		{
			name:          "extra colon parts",
			raw:           "userId:" + userGUID + ":extra,accountCredit:1",
			wantUser:      userGUID,
			accountCredit: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			md := posdata.Parse(tt.raw)

			if tt.wantOrg == "" {
				assert.Nil(t, md.OrganizationID)
			} else {
				require.NotNil(t, md.OrganizationID)
				assert.Equal(t, tt.wantOrg, md.OrganizationID.String())
			}

			if tt.wantUser == "" {
				assert.Nil(t, md.UserID)
			} else {
				require.NotNil(t, md.UserID)
				assert.Equal(t, tt.wantUser, md.UserID.String())
			}

			assert.Equal(t, tt.accountCredit, md.AccountCredit)
		})
	}
}

func TestMetadata_Target(t *testing.T) {
	t.Run("organization wins", func(t *testing.T) {
		md := posdata.Parse("userId:" + userGUID + ",organizationId:" + orgGUID)

		target, ok := md.Target()

		assert.True(t, ok)
		assert.Equal(t, models.OrganizationTarget(uuid.MustParse(orgGUID)), target)
	})

	t.Run("user only", func(t *testing.T) {
		md := posdata.Parse("userId:" + userGUID)

		target, ok := md.Target()

		assert.True(t, ok)
		assert.Equal(t, models.TargetUser, target.Kind)
		assert.Equal(t, userGUID, target.ID.String())
	})

	t.Run("none", func(t *testing.T) {
		_, ok := posdata.Parse("accountCredit:1").Target()

		assert.False(t, ok)
	})
}
