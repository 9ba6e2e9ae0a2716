package ui

import "fmt"

// Zone IDs for bubblezone hit detection, shared by the render and mouse
// paths.
const (
	zoneBack          = "zone-back"
	zoneProfileLogin  = "zone-profile-login"
	zoneProfileLogout = "zone-profile-logout"
	zoneLoginClose    = "zone-login-close"
	zoneLoginUsername = "zone-login-username"
	zoneLoginPassword = "zone-login-password"
	zoneLoginSubmit   = "zone-login-submit"
	zoneAlert         = "zone-alert"
)

// tabZoneIDs maps a tab index to its zone.
var tabZoneIDs = [2]string{"zone-tab-home", "zone-tab-profile"}

func entryZoneID(idx int) string {
	return fmt.Sprintf("zone-entry-%d", idx)
}
