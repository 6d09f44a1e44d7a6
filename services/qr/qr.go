// File: services/qr/qr.go
package qr

import (
	"encoding/json"
	"fmt"
	"time"

	"harithakarmabhoomi/models"

	qrcode "github.com/skip2/go-qrcode"
)

// identityPayload is the profile snapshot embedded in the QR identity card.
type identityPayload struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Aadhar      string `json:"aadhar"`
	Phone       string `json:"phone"`
	HouseNo     string `json:"houseNo"`
	Type        string `json:"type"`
	Credits     int    `json:"credits"`
	MemberSince int    `json:"memberSince"`
}

// IdentityCard renders the user's profile as a scannable PNG.
func IdentityCard(u models.User, size int) ([]byte, error) {
	if size <= 0 {
		size = 300
	}
	payload := identityPayload{
		ID:          u.ID,
		Name:        u.Name,
		Aadhar:      u.Aadhar,
		Phone:       u.Phone,
		HouseNo:     u.HouseNo,
		Type:        string(u.Type),
		Credits:     u.Credits,
		MemberSince: time.Now().Year(),
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal identity payload: %w", err)
	}
	png, err := qrcode.Encode(string(data), qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to render identity card: %w", err)
	}
	return png, nil
}
