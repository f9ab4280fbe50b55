package siteprobe

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/foomo/siteprobe/config"
	"github.com/foomo/siteprobe/log"
	"github.com/foomo/siteprobe/vo"
	"github.com/morikuni/failure/v2"
	"github.com/rs/zerolog"
	"golang.org/x/net/publicsuffix"
)

// Client one session for all requests of a run, cookies set by the site are
// carried from request to request.
type Client struct {
	agent  string
	client *http.Client
}

func NewClient(conf config.Client, logger zerolog.Logger) *Client {
	client := &http.Client{
		Timeout: conf.Timeout,
		Transport: log.Transport(logger, &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout: 5 * time.Second,
			}).DialContext,
			TLSHandshakeTimeout: 5 * time.Second,
		}),
	}
	cookieJar, errJar := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if errJar != nil {
		// cookiejar.New never fails today, without a jar the session is lost but the probe still runs
		logger.Warn().Err(errJar).Msg("running without cookie jar")
	} else {
		client.Jar = cookieJar
	}
	return &Client{
		agent:  conf.Agent,
		client: client,
	}
}

// Get a url. Non 2xx responses are returned along with an ErrUnexpectedStatus.
func (c *Client) Get(ctx context.Context, targetURL string) (*vo.Response, error) {
	req, errRequest := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if errRequest != nil {
		return nil, failure.Wrap(errRequest)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	return c.do(req)
}

// PostForm posts the payload form encoded, like the sites own javascript does
func (c *Client) PostForm(ctx context.Context, targetURL string, payload vo.Payload) (*vo.Response, error) {
	req, errRequest := http.NewRequestWithContext(ctx, http.MethodPost, targetURL, strings.NewReader(payload.Encode()))
	if errRequest != nil {
		return nil, failure.Wrap(errRequest)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=UTF-8")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	return c.do(req)
}

// GetDocument gets a url and parses the body
func (c *Client) GetDocument(ctx context.Context, targetURL string) (*goquery.Document, *vo.Response, error) {
	resp, errGet := c.Get(ctx, targetURL)
	if errGet != nil {
		return nil, resp, errGet
	}
	doc, errNewDoc := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body))
	if errNewDoc != nil {
		return nil, resp, failure.New(ErrInvalidDocument,
			failure.Message(errNewDoc.Error()),
			failure.Context{"url": targetURL},
		)
	}
	return doc, resp, nil
}

func (c *Client) do(req *http.Request) (*vo.Response, error) {
	req.Header.Set("User-Agent", c.agent)
	start := time.Now()
	resp, errDo := c.client.Do(req)
	if errDo != nil {
		return nil, failure.New(ErrTransport,
			failure.Message(errDo.Error()),
			failure.Context{"url": req.URL.String()},
		)
	}
	defer resp.Body.Close()
	result := &vo.Response{
		URL:         req.URL.String(),
		Code:        resp.StatusCode,
		Status:      resp.Status,
		ContentType: resp.Header.Get("Content-Type"),
	}
	bodyBytes, errReadAll := io.ReadAll(resp.Body)
	result.Duration = time.Since(start)
	if errReadAll != nil {
		return result, failure.New(ErrTransport,
			failure.Message(errReadAll.Error()),
			failure.Context{"url": result.URL},
		)
	}
	result.Body = bodyBytes
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return result, failure.New(ErrUnexpectedStatus,
			failure.Message(fmt.Sprint("unexpected response code: ", resp.StatusCode, ", status: ", resp.Status)),
			failure.Context{"url": result.URL},
		)
	}
	return result, nil
}

// describe returns the human message of a failure, the plain error otherwise
func describe(err error) string {
	if msg := failure.MessageOf(err); msg != "" {
		return msg.String()
	}
	return err.Error()
}
