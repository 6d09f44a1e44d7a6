package contact

import (
	"strings"
	"testing"

	"harithakarmabhoomi/config"
	"harithakarmabhoomi/models"

	"github.com/stretchr/testify/assert"
)

func TestCallURI(t *testing.T) {
	config.AppConfig.HotlineNumber = "+919876543210"
	assert.Equal(t, "tel:+919876543210", CallURI())
}

func TestSMSBody(t *testing.T) {
	u := models.User{Name: "Asha Nair", Phone: "9876500001"}
	b := models.Booking{
		WasteType: models.WastePlastic,
		Weight:    "5 kg",
		Date:      "tomorrow",
		Time:      "10 am",
		Address:   "12B, Green Lane",
	}

	body := SMSBody(u, b)
	assert.True(t, strings.HasPrefix(body, "Waste Collection Booking\n"))
	assert.Contains(t, body, "Name: Asha Nair")
	assert.Contains(t, body, "Waste Type: plastic")
	assert.Contains(t, body, "Address: 12B, Green Lane")
}

func TestSMSURI(t *testing.T) {
	config.AppConfig.HotlineNumber = "+919876543210"
	u := models.User{Name: "Asha Nair"}
	b := models.Booking{WasteType: models.WasteGlass}

	uri := SMSURI(u, b)
	assert.True(t, strings.HasPrefix(uri, "sms:+919876543210?body="))
	assert.NotContains(t, uri, "\n")
	assert.Contains(t, uri, "Asha+Nair")
}
