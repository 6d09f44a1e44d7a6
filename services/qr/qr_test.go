package qr

import (
	"testing"

	"harithakarmabhoomi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestIdentityCard(t *testing.T) {
	u := models.User{
		ID:      "u1",
		Name:    "Asha Nair",
		Aadhar:  "111122223333",
		Phone:   "9876500001",
		HouseNo: "12B, Green Lane",
		Type:    models.HouseholdHome,
		Credits: 42,
	}

	png, err := IdentityCard(u, 256)
	require.NoError(t, err)
	require.NotEmpty(t, png)
	assert.Equal(t, pngMagic, png[:4])
}

func TestIdentityCardDefaultSize(t *testing.T) {
	png, err := IdentityCard(models.User{ID: "u1", Name: "Asha"}, 0)
	require.NoError(t, err)
	require.NotEmpty(t, png)
	assert.Equal(t, pngMagic, png[:4])
}
