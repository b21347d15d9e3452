package models

// Settings holds application-level configuration stored alongside the data.
type Settings struct {
	// Timezone is the IANA zone used for day boundaries, e.g.
	// "America/New_York". "Local" or empty means the system zone.
	Timezone string `json:"timezone"`
	// DisplayName overrides the provisioned user's name in views.
	DisplayName string `json:"display_name,omitempty"`
}
