package utils

import (
	"testing"

	"github.com/WanderstayHolidays/crm_end/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTokenRoundTrip(t *testing.T) {
	profile := models.Profile{
		ID:       primitive.NewObjectID(),
		Email:    "advisor@wanderstay.in",
		FullName: "Asha Verma",
		Role:     models.UserRoleTRAVEL_ADVISOR,
	}

	token, err := GenerateToken(profile)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)

	assert.Equal(t, profile.ID.Hex(), claims["id"])
	assert.Equal(t, "advisor@wanderstay.in", claims["email"])
	assert.Equal(t, "Asha Verma", claims["name"])
	assert.Equal(t, "travel_advisor", claims["role"])
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("not-a-token")
	assert.Error(t, err)
}

func TestCanManageInquiry(t *testing.T) {
	admin := &LoginUser{ID: "a1", Role: string(models.UserRoleADMIN)}
	advisor := &LoginUser{ID: "t1", Role: string(models.UserRoleTRAVEL_ADVISOR)}
	traveler := &LoginUser{ID: "v1", Role: string(models.UserRoleTRAVELER)}

	// Admins manage everything, including unassigned inquiries.
	assert.True(t, CanManageInquiry(admin, "t1"))
	assert.True(t, CanManageInquiry(admin, ""))

	// Advisors only their own.
	assert.True(t, CanManageInquiry(advisor, "t1"))
	assert.False(t, CanManageInquiry(advisor, "t2"))
	assert.False(t, CanManageInquiry(advisor, ""))

	assert.False(t, CanManageInquiry(traveler, "v1"))
	assert.False(t, CanManageInquiry(nil, "t1"))
}
