package utils

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUtils_ShouldDownloadFile(t *testing.T) {
	assert := assert.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/designs/roses.pec" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("#PEC0001"))
	}))
	defer srv.Close()

	f, err := DownloadFile(srv.URL + "/designs/roses.pec")
	require.NoError(t, err)
	defer os.Remove(f.Name())
	defer f.Close()

	assert.Equal(".pec", filepath.Ext(f.Name()))
	data, err := io.ReadAll(f)
	assert.NoError(err)
	assert.Equal("#PEC0001", string(data))

	_, err = DownloadFile(srv.URL + "/missing.jef")
	assert.Error(err)
}

func TestUtils_ShouldBeValidUrl(t *testing.T) {
	assert := assert.New(t)

	assert.True(IsValidUrl("https://github.com/esimov/needlework/"))
	assert.False(IsValidUrl("designs/roses.pec"))
	assert.False(IsValidUrl("http://"))
}
