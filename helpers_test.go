package siteprobe

import (
	"bytes"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/foomo/siteprobe/config"
	"github.com/foomo/siteprobe/example"
	"github.com/foomo/siteprobe/log"
	"github.com/stretchr/testify/require"
)

func getDoc(t *testing.T, html string) *goquery.Document {
	doc, errDoc := goquery.NewDocumentFromReader(bytes.NewReader([]byte(html)))
	require.NoError(t, errDoc)
	return doc
}

// startSite serves site and returns a config pointing at it
func startSite(t *testing.T, site *example.Site) *config.Config {
	testServer := httptest.NewServer(site)
	t.Cleanup(testServer.Close)
	conf := config.Default()
	conf.BaseURL = testServer.URL
	conf.AjaxPath = example.AjaxPath
	return conf
}

func newTestClient(conf *config.Config) *Client {
	return NewClient(conf.Client, log.New(io.Discard, false))
}
