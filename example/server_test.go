package example

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func call(t *testing.T, testServer *httptest.Server, form url.Values) string {
	resp, errPost := http.PostForm(testServer.URL+AjaxPath, form)
	require.NoError(t, errPost)
	defer resp.Body.Close()
	bodyBytes, errRead := io.ReadAll(resp.Body)
	require.NoError(t, errRead)
	return string(bodyBytes)
}

func TestSite(t *testing.T) {
	site := &Site{Items: Items(3), Nonce: "abc123", RequireNonce: true}
	testServer := httptest.NewServer(site)
	defer testServer.Close()

	resp, errGet := http.Get(testServer.URL + "/")
	require.NoError(t, errGet)
	homeBytes, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(homeBytes), `"nonce":"abc123"`)
	assert.Equal(t, 3, strings.Count(string(homeBytes), "page-item-detail"))

	form := url.Values{"action": {"madara_load_more"}}
	assert.Equal(t, "0", call(t, testServer, form))
	form.Set("nonce", "abc123")
	assert.Contains(t, call(t, testServer, form), "page-item-detail")

	requests := site.Requests()
	require.Len(t, requests, 3)
	assert.Equal(t, "abc123", requests[2].Nonce)
}

func TestSiteAjaxStatus(t *testing.T) {
	testServer := httptest.NewServer(&Site{AjaxStatus: http.StatusForbidden})
	defer testServer.Close()
	resp, errPost := http.PostForm(testServer.URL+AjaxPath, url.Values{"action": {"madara_load_more"}})
	require.NoError(t, errPost)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
