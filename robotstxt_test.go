package siteprobe

import (
	"context"
	"testing"

	"github.com/foomo/siteprobe/example"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckRobots(t *testing.T) {
	conf := startSite(t, &example.Site{Robots: "User-agent: *\nDisallow: /wp-admin/\n"})
	warnings := checkRobots(context.Background(), newTestClient(conf), conf.BaseURL, "/", example.AjaxPath)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], example.AjaxPath)

	conf = startSite(t, &example.Site{Robots: "User-agent: *\nDisallow: /wp-admin/\nAllow: /wp-admin/admin-ajax.php\n"})
	assert.Empty(t, checkRobots(context.Background(), newTestClient(conf), conf.BaseURL, "/", example.AjaxPath))

	// no robots.txt at all
	conf = startSite(t, &example.Site{})
	assert.Empty(t, checkRobots(context.Background(), newTestClient(conf), conf.BaseURL, "/", example.AjaxPath))
}
