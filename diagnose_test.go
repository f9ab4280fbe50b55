package siteprobe

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/foomo/siteprobe/config"
	"github.com/foomo/siteprobe/example"
	"github.com/foomo/siteprobe/vo"
	"github.com/google/go-cmp/cmp"
	"github.com/morikuni/failure/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listingDocHTML = `
<html>
<body>
<div class="page-item-detail manga">
	<div class="item-thumb hover-details" data-post-id="4711"><a href="/manga/one/"><img src="/one.jpg"></a></div>
	<div class="item-summary">
		<div class="post-title font-title"><h3 class="h5"><a href="https://hiperdex.com/manga/one/">
			One Piece
		</a></h3></div>
		<span class="chapter font-meta">  Chapter 1100  </span>
	</div>
</div>
<div class="page-item-detail manga">
	<div class="item-summary">
		<h3 class="h5">no anchor here</h3>
	</div>
</div>
<div class="page-item-detail manga">
	<div class="item-thumb"><img src="/three.jpg"></div>
	<h3 class="h5"><a>   </a></h3>
	<span class="font-meta chapter"></span>
</div>
</body>
</html>
`

func TestDiagnose(t *testing.T) {
	r, errDiagnose := Diagnose(getDoc(t, listingDocHTML), 5)
	require.NoError(t, errDiagnose)
	assert.Equal(t, 3, r.Found)
	want := []vo.ExtractionRecord{
		{
			Title:      "One Piece",
			Link:       "https://hiperdex.com/manga/one/",
			Identifier: "4711",
			Subtitle:   "Chapter 1100",
		},
		{
			Title:      vo.NotFound,
			Link:       vo.NotFound,
			Identifier: vo.NotFound,
			Subtitle:   vo.NotFound,
		},
		{
			Title:      vo.NotFound,
			Link:       vo.NotFound,
			Identifier: vo.NotFound,
			Subtitle:   vo.NotFound,
		},
	}
	if diff := cmp.Diff(want, r.Records); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestDiagnoseSample(t *testing.T) {
	for _, k := range []int{1, 4, 5, 6, 12} {
		site := &example.Site{Items: example.Items(k)}
		doc := getDoc(t, site.HomepageHTML())
		r, errDiagnose := Diagnose(doc, 5)
		require.NoError(t, errDiagnose)
		assert.Equal(t, k, r.Found)
		assert.Len(t, r.Records, min(k, 5))
		for _, record := range r.Records {
			assert.Empty(t, record.Missing())
			for _, v := range []string{record.Title, record.Link, record.Identifier, record.Subtitle} {
				assert.NotEmpty(t, v)
				assert.Equal(t, strings.TrimSpace(v), v)
			}
		}
	}
}

func TestDiagnoseCriticalSelectorMiss(t *testing.T) {
	r, errDiagnose := Diagnose(getDoc(t, `<html><body><div class="page-item">moved</div></body></html>`), 5)
	assert.True(t, failure.Is(errDiagnose, ErrCriticalSelectorMiss))
	assert.Equal(t, 0, r.Found)
	assert.NotNil(t, r.Records)
	assert.Empty(t, r.Records)
}

func TestRunDiagnostic(t *testing.T) {
	items := example.Items(7)
	items[0].Chapter = ""
	items[1].ID = ""
	site := &example.Site{Items: items}
	conf := startSite(t, site)
	reg := prometheus.NewPedanticRegistry()
	m := NewMetrics(reg)

	r, errRun := RunDiagnostic(context.Background(), newTestClient(conf), conf, m)
	require.NoError(t, errRun)
	assert.Equal(t, conf.BaseURL+"/", r.TargetURL)
	assert.Equal(t, 7, r.Found)
	require.Len(t, r.Records, 5)
	assert.Equal(t, "Manga 0", r.Records[0].Title)
	assert.Equal(t, "/manga/manga-0/", r.Records[0].Link)
	assert.Equal(t, "1000", r.Records[0].Identifier)
	assert.Equal(t, vo.NotFound, r.Records[0].Subtitle)
	assert.Equal(t, vo.NotFound, r.Records[1].Identifier)
	assert.Equal(t, "Chapter 11", r.Records[1].Subtitle)
	assert.Empty(t, r.Warnings)

	assert.Equal(t, float64(7), testutil.ToFloat64(m.blocksFound))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.fieldsMissing.WithLabelValues("subtitle")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.fieldsMissing.WithLabelValues("identifier")))

	requests := site.Requests()
	require.NotEmpty(t, requests)
	assert.Equal(t, conf.Client.Agent, requests[len(requests)-1].Agent)
}

func TestRunDiagnosticTimeout(t *testing.T) {
	conf := startSite(t, &example.Site{Items: example.Items(2), Delay: time.Second})
	conf.Client.Timeout = 50 * time.Millisecond
	conf.IgnoreRobots = true
	r, errRun := RunDiagnostic(context.Background(), newTestClient(conf), conf, nil)
	assert.True(t, failure.Is(errRun, ErrTransport))
	assert.Empty(t, r.Records)
}

func TestRunDiagnosticTransport(t *testing.T) {
	conf := config.Default()
	conf.BaseURL = "http://127.0.0.1:1"
	conf.IgnoreRobots = true
	r, errRun := RunDiagnostic(context.Background(), newTestClient(conf), conf, nil)
	assert.True(t, failure.Is(errRun, ErrTransport))
	assert.Empty(t, r.Records)
}
