// File: services/contact/contact.go
package contact

import (
	"fmt"
	"net/url"

	"harithakarmabhoomi/config"
	"harithakarmabhoomi/models"
)

// CallURI returns the tel: URI for the collection hotline. The client
// launches it; unsupported devices fall back to showing the number.
func CallURI() string {
	return "tel:" + config.AppConfig.HotlineNumber
}

// SMSBody composes the prefilled SMS text for a booking request.
func SMSBody(u models.User, b models.Booking) string {
	return fmt.Sprintf(
		"Waste Collection Booking\nName: %s\nPhone: %s\nWaste Type: %s\nWeight: %s\nDate: %s\nTime: %s\nAddress: %s",
		u.Name, u.Phone, b.WasteType, b.Weight, b.Date, b.Time, b.Address,
	)
}

// SMSURI returns the sms: URI with the booking details prefilled.
func SMSURI(u models.User, b models.Booking) string {
	return "sms:" + config.AppConfig.HotlineNumber + "?body=" + url.QueryEscape(SMSBody(u, b))
}
