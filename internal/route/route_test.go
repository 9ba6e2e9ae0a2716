package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveKnownRoutes(t *testing.T) {
	for _, previous := range []int{0, 1, 7} {
		assert.Equal(t, HomeTab, Resolve(Home, previous))
		assert.Equal(t, ProfileTab, Resolve(Profile, previous))
	}
}

func TestResolveUnknownKeepsPrevious(t *testing.T) {
	for _, location := range []string{Login, "", "/two", "/profile/", "home"} {
		for _, previous := range []int{0, 1} {
			assert.Equal(t, previous, Resolve(location, previous), "location %q", location)
		}
	}
}

func TestPathForTab(t *testing.T) {
	path, ok := PathForTab(HomeTab)
	assert.True(t, ok)
	assert.Equal(t, Home, path)

	path, ok = PathForTab(ProfileTab)
	assert.True(t, ok)
	assert.Equal(t, Profile, path)

	_, ok = PathForTab(2)
	assert.False(t, ok)
}

func TestRouterPushAndBack(t *testing.T) {
	r := NewRouter(Profile)
	assert.Equal(t, Profile, r.Current().Path)
	assert.False(t, r.Back())

	r.Push(Login, nil)
	assert.Equal(t, Login, r.Current().Path)
	assert.Equal(t, 1, r.Depth())
	assert.True(t, r.CanGoBack())

	assert.True(t, r.Back())
	assert.Equal(t, Profile, r.Current().Path)
	assert.False(t, r.CanGoBack())
}

func TestRouterNavigateToTabCarriesParams(t *testing.T) {
	r := NewRouter(Profile)
	r.Push(Login, nil)

	r.Navigate(Profile, Params{ParamLoginSuccess: "true", ParamUserName: "admin"})
	loc := r.Current()
	assert.Equal(t, Profile, loc.Path)
	assert.Equal(t, "true", loc.Param(ParamLoginSuccess))
	assert.Equal(t, "admin", loc.Param(ParamUserName))
	assert.Equal(t, 0, r.Depth())

	r.Navigate(Home, nil)
	assert.Empty(t, r.Current().Param(ParamUserName))

	r.Navigate(Profile, nil)
	assert.Equal(t, "admin", r.Current().Param(ParamUserName), "tab keeps its last params")
}

func TestRouterNavigateUnwindsToExisting(t *testing.T) {
	r := NewRouter("")
	assert.Equal(t, Home, r.Tab())

	r.Push(Login, Params{"a": "1"})
	r.Push("/other", nil)
	r.Navigate(Login, Params{"a": "2"})

	assert.Equal(t, 1, r.Depth())
	assert.Equal(t, "2", r.Current().Param("a"))
}

func TestRouterPushCopiesParams(t *testing.T) {
	params := Params{"a": "1"}
	r := NewRouter(Home)
	r.Push(Login, params)
	params["a"] = "changed"

	assert.Equal(t, "1", r.Current().Param("a"))
}
