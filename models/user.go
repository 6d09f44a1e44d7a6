// models/user.go
package models

// Role scopes a user to one of the two dashboards.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// HouseholdType distinguishes home and organization accounts.
type HouseholdType string

const (
	HouseholdHome         HouseholdType = "home"
	HouseholdOrganization HouseholdType = "organization"
)

// User represents a registered citizen or organization. The aadhar number
// is the login handle; credits accumulate from approved bottle exchanges.
type User struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Aadhar       string        `json:"aadhar"`
	Phone        string        `json:"phone"`
	HouseNo      string        `json:"houseNo"`
	Type         HouseholdType `json:"type"`
	Role         Role          `json:"role"`
	Credits      int           `json:"credits"`
	PasswordHash string        `json:"passwordHash,omitempty"`
	Location     *LatLng       `json:"location,omitempty"`
}

// LatLng is a device-reported coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Sanitized returns a copy safe to return to clients.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	return u
}
