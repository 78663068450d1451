package utils

import (
	"io"
	"net/http"
	"net/url"
	"os"
	"path"

	"github.com/pkg/errors"
)

// DownloadFile downloads the pattern file from the internet and saves it into a temporary file.
// The temporary file keeps the extension of the remote file so the format can be detected from it.
func DownloadFile(uri string) (*os.File, error) {
	res, err := http.Get(uri)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to download file from URI: %s", uri)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, errors.Errorf("unable to download file from URI: %s, status %v", uri, res.Status)
	}

	ext := ""
	if u, err := url.Parse(uri); err == nil {
		ext = path.Ext(u.Path)
	}
	tmpfile, err := os.CreateTemp("", "pattern-*"+ext)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create temporary file")
	}

	// Copy the response body into the temporary file.
	if _, err := io.Copy(tmpfile, res.Body); err != nil {
		tmpfile.Close()
		os.Remove(tmpfile.Name())
		return nil, errors.Wrap(err, "unable to copy the source URI into the destination file")
	}
	if _, err := tmpfile.Seek(0, io.SeekStart); err != nil {
		tmpfile.Close()
		os.Remove(tmpfile.Name())
		return nil, errors.Wrap(err, "unable to rewind the temporary file")
	}

	return tmpfile, nil
}

// IsValidUrl tests a string to determine if it is a well-structured url or not.
func IsValidUrl(uri string) bool {
	_, err := url.ParseRequestURI(uri)
	if err != nil {
		return false
	}

	u, err := url.Parse(uri)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return false
	}

	return true
}
