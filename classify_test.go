package siteprobe

import (
	"errors"
	"testing"
	"time"

	"github.com/foomo/siteprobe/vo"
	"github.com/morikuni/failure/v2"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	ok := func(body string) *vo.Response {
		return &vo.Response{Code: 200, Status: "200 OK", Body: []byte(body), Duration: time.Millisecond}
	}
	tests := []struct {
		name     string
		resp     *vo.Response
		err      error
		wantKind vo.OutcomeKind
		wantBody string
		wantErr  string
	}{
		{name: "sentinel", resp: ok("0"), wantKind: vo.OutcomeEmpty, wantBody: "0"},
		{name: "absent body", resp: ok(""), wantKind: vo.OutcomeEmpty},
		{name: "no response", resp: nil, wantKind: vo.OutcomeEmpty},
		{name: "markup", resp: ok("<div class='manga'>...</div>"), wantKind: vo.OutcomeContent, wantBody: "<div class='manga'>...</div>"},
		// the sentinel compare is exact
		{name: "sentinel with newline", resp: ok("0\n"), wantKind: vo.OutcomeContent, wantBody: "0\n"},
		{name: "minus one", resp: ok("-1"), wantKind: vo.OutcomeContent, wantBody: "-1"},
		{
			name:     "transport",
			err:      failure.New(ErrTransport, failure.Message("dial tcp: connection refused")),
			wantKind: vo.OutcomeFailedTransport,
			wantErr:  "dial tcp: connection refused",
		},
		{
			name:     "status",
			resp:     &vo.Response{Code: 403, Status: "403 Forbidden", Body: []byte("-1")},
			err:      failure.New(ErrUnexpectedStatus, failure.Message("unexpected response code: 403, status: 403 Forbidden")),
			wantKind: vo.OutcomeFailedTransport,
			wantErr:  "unexpected response code: 403, status: 403 Forbidden",
		},
		{
			name:     "plain error",
			err:      errors.New("boom"),
			wantKind: vo.OutcomeFailedTransport,
			wantErr:  "boom",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := Classify(tt.resp, tt.err)
			assert.Equal(t, tt.wantKind, outcome.Kind)
			assert.Equal(t, tt.wantBody, outcome.Body)
			assert.Equal(t, tt.wantErr, outcome.Error)
		})
	}
}
