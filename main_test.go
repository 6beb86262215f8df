package main

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticAssetsEmbedded(t *testing.T) {
	sub, err := fs.Sub(staticFS, "static")
	require.NoError(t, err)

	for _, name := range []string{"styles.css", "js/app.js"} {
		_, err := fs.Stat(sub, name)
		assert.NoError(t, err, name)
	}
}

// A non-image pick must not claim the upload sequence, or the response to an
// upload still in flight is dropped while the server keeps it.
func TestAppScript_TypeCheckBeforeClaimingUpload(t *testing.T) {
	data, err := fs.ReadFile(staticFS, "static/js/app.js")
	require.NoError(t, err)
	js := string(data)

	start := strings.Index(js, "async function uploadFile(")
	require.GreaterOrEqual(t, start, 0)
	body := js[start:]

	guard := strings.Index(body, `file.type.startsWith("image/")`)
	claim := strings.Index(body, "++uploadSeq")
	require.GreaterOrEqual(t, guard, 0)
	require.GreaterOrEqual(t, claim, 0)
	assert.Less(t, guard, claim)

	assert.Contains(t, body[:strings.Index(body, "\n}\n")], "refreshPanel()",
		"a rejected upload resyncs the panel")
}
