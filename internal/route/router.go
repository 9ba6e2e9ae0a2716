package route

import "maps"

// Params is the parameter bag of a location.
type Params map[string]string

// Location is a path and its parameters.
type Location struct {
	Path   string
	Params Params
}

// Param returns the named parameter, or "" when unset.
func (l Location) Param(name string) string {
	return l.Params[name]
}

// Router keeps the active tab and the stack of screens pushed over it.
// Each tab remembers the parameters it was last shown with.
type Router struct {
	tab    string
	tabs   map[string]Location
	modals []Location
}

// NewRouter starts on the given tab path; unknown paths start on Home.
func NewRouter(tab string) *Router {
	if !IsTab(tab) {
		tab = Home
	}
	return &Router{
		tab: tab,
		tabs: map[string]Location{
			Home:    {Path: Home},
			Profile: {Path: Profile},
		},
	}
}

// Current returns the location on top.
func (r *Router) Current() Location {
	if n := len(r.modals); n > 0 {
		return r.modals[n-1]
	}
	return r.tabs[r.tab]
}

// Tab returns the path of the active tab.
func (r *Router) Tab() string { return r.tab }

// Depth returns the number of screens pushed over the active tab.
func (r *Router) Depth() int { return len(r.modals) }

// CanGoBack reports whether Back would pop a screen.
func (r *Router) CanGoBack() bool { return len(r.modals) > 0 }

// Push shows path over the current location.
func (r *Router) Push(path string, params Params) {
	if IsTab(path) {
		r.Navigate(path, params)
		return
	}
	r.modals = append(r.modals, Location{Path: path, Params: maps.Clone(params)})
}

// Back pops the top screen. Tabs are never popped.
func (r *Router) Back() bool {
	if len(r.modals) == 0 {
		return false
	}
	r.modals = r.modals[:len(r.modals)-1]
	return true
}

// Navigate goes to path. A tab route dismisses every pushed screen and
// becomes active; non-nil params replace the ones it remembered. Other
// paths unwind to an existing instance, or are pushed.
func (r *Router) Navigate(path string, params Params) {
	if IsTab(path) {
		r.modals = nil
		r.tab = path
		if params != nil {
			r.tabs[path] = Location{Path: path, Params: maps.Clone(params)}
		}
		return
	}
	for i := len(r.modals) - 1; i >= 0; i-- {
		if r.modals[i].Path == path {
			r.modals = r.modals[:i+1]
			if params != nil {
				r.modals[i].Params = maps.Clone(params)
			}
			return
		}
	}
	r.Push(path, params)
}
