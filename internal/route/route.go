// Package route defines the navigable locations of the shell and keeps the
// navigation stack.
package route

// Canonical paths.
const (
	Home    = "/"
	Profile = "/profile"
	Login   = "/login"
)

// Tab indices.
const (
	HomeTab    = 0
	ProfileTab = 1
)

// Parameters carried back from the login screen.
const (
	ParamLoginSuccess = "loginSuccess"
	ParamUserName     = "userName"
)

// Resolve maps a location to a tab index. Locations other than the two tab
// routes leave previous untouched.
func Resolve(location string, previous int) int {
	switch location {
	case Home:
		return HomeTab
	case Profile:
		return ProfileTab
	default:
		return previous
	}
}

// PathForTab returns the canonical path of a tab index.
func PathForTab(index int) (string, bool) {
	switch index {
	case HomeTab:
		return Home, true
	case ProfileTab:
		return Profile, true
	default:
		return "", false
	}
}

// IsTab reports whether path is one of the tab routes.
func IsTab(path string) bool {
	return path == Home || path == Profile
}
