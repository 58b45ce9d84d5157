package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoute_CloneIsDeep(t *testing.T) {
	orig := &Route{
		Path:     "/a",
		Children: []*Route{{Path: "/a/1", Children: []*Route{{Path: "/a/1/x"}}}, nil},
		Meta:     map[string]any{"k": "v"},
	}

	c := orig.Clone()
	c.Children[0].Children[0].Path = "changed"
	c.Meta["k"] = "changed"

	assert.Equal(t, "/a/1/x", orig.Children[0].Children[0].Path)
	assert.Equal(t, "v", orig.Meta["k"])
	assert.Len(t, c.Children, 1, "nil children are dropped")
	assert.Nil(t, (*Route)(nil).Clone())
}

func TestRoute_Paths(t *testing.T) {
	r := &Route{
		Path: "/a",
		Children: []*Route{
			{Index: true},
			{Path: "/a/b", Children: []*Route{{Path: "/a/b/c"}}},
		},
	}
	assert.Equal(t, []string{"/a", "/a/b", "/a/b/c"}, r.Paths())
}

func TestRootRoute_AsRouteStripsHoist(t *testing.T) {
	rr := &RootRoute{Route: Route{Path: "/h"}, Hoist: true}
	r := rr.AsRoute()
	assert.Equal(t, "/h", r.Path)

	c := rr.Clone()
	assert.True(t, c.Hoist)
	c.Path = "/other"
	assert.Equal(t, "/h", rr.Path)
}

func TestNavigationItem_Clone(t *testing.T) {
	n := &NavigationItem{
		To:         "/a",
		Priority:   Priority(3),
		Attributes: map[string]string{"target": "_blank"},
		Children:   []*NavigationItem{{To: "/a/b"}},
	}
	c := n.Clone()
	*c.Priority = 7
	c.Attributes["target"] = "_self"
	c.Children[0].To = "/x"

	assert.Equal(t, 3, *n.Priority)
	assert.Equal(t, "_blank", n.Attributes["target"])
	assert.Equal(t, "/a/b", n.Children[0].To)
}

func TestRemoteModuleRegistrationError(t *testing.T) {
	cause := errors.New("boom")
	err := &RemoteModuleRegistrationError{
		URL:           "http://r1/remoteEntry.js",
		ContainerName: "r1",
		ModuleName:    "./register",
		Err:           cause,
	}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "r1")

	data, jerr := err.MarshalJSON()
	require.NoError(t, jerr)
	assert.JSONEq(t, `{"url":"http://r1/remoteEntry.js","containerName":"r1","moduleName":"./register","error":"boom"}`, string(data))
}

func TestRegistrationState_String(t *testing.T) {
	assert.Equal(t, "none", StateNone.String())
	assert.Equal(t, "in-progress", StateInProgress.String())
	assert.Equal(t, "ready", StateReady.String())
	assert.Equal(t, "unknown", RegistrationState(9).String())
}
