package gen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExportedName(t *testing.T) {
	cases := map[string]string{
		"accountId":        "AccountId",
		"external_id":      "ExternalId",
		"custom-event":     "CustomEvent",
		"a.b.c":            "ABC",
		"nextPageToken":    "NextPageToken",
		"1stParty":         "X1stParty",
		"":                 "",
		"already_Exported": "AlreadyExported",
	}
	for in, want := range cases {
		require.Equal(t, want, exportedName(in), "exportedName(%q)", in)
	}
}

func TestArgName(t *testing.T) {
	require.Equal(t, "accountId", argName("accountId"))
	require.Equal(t, "updateMask", argName("update_mask"))
	require.Equal(t, "typ", argName("type"))
	require.Equal(t, "range_", argName("range"))
}

func TestPackageName(t *testing.T) {
	require.Equal(t, "apikeys", packageName("apikeys"))
	require.Equal(t, "homegraph", packageName("HomeGraph"))
	require.Equal(t, "doubleclickbidmanager", packageName("doubleclick-bid_manager"))
}

func TestScopeConstName(t *testing.T) {
	cases := map[string]string{
		"https://www.googleapis.com/auth/cloud-platform":           "CloudPlatformScope",
		"https://www.googleapis.com/auth/cloud-platform.read-only": "CloudPlatformReadOnlyScope",
		"https://www.googleapis.com/auth/tagmanager.edit.containers": "TagmanagerEditContainersScope",
		"https://www.googleapis.com/auth/analytics.readonly":         "AnalyticsReadonlyScope",
	}
	for in, want := range cases {
		require.Equal(t, want, scopeConstName(in), "scopeConstName(%q)", in)
	}
}

func TestWrapComment(t *testing.T) {
	short := wrapComment("Name: the resource name.", "")
	require.Equal(t, "// Name: the resource name.", short)

	long := wrapComment("Description: a rather long description that should not fit on a single comment line and therefore must be wrapped onto a second one.", "\t")
	lines := []string{
		"\t// Description: a rather long description that should not fit on a single",
		"\t// comment line and therefore must be wrapped onto a second one.",
	}
	require.Equal(t, lines[0]+"\n"+lines[1], long)
}
