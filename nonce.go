package siteprobe

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"
	"github.com/foomo/siteprobe/vo"
	"github.com/morikuni/failure/v2"
)

var nonceRegex = regexp.MustCompile(`"nonce":"([a-zA-Z0-9]+)"`)

// ExtractNonce finds a "nonce":"<alphanumeric>" fragment in script text
func ExtractNonce(scriptText string) (nonce vo.Nonce, ok bool) {
	match := nonceRegex.FindStringSubmatch(scriptText)
	if match == nil {
		return "", false
	}
	return vo.Nonce(match[1]), true
}

// HarvestNonce reads the nonce from the inline script with NonceScriptID
func HarvestNonce(doc *goquery.Document) (vo.Nonce, error) {
	script := doc.Find("script#" + NonceScriptID).First()
	if script.Length() == 0 {
		return "", failure.New(ErrNonceNotFound,
			failure.Message("script element #"+NonceScriptID+" not found"),
		)
	}
	nonce, ok := ExtractNonce(script.Text())
	if !ok {
		return "", failure.New(ErrNonceNotFound,
			failure.Message("nonce pattern did not match script #"+NonceScriptID),
		)
	}
	return nonce, nil
}
