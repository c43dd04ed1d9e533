package awswaf

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	// Cookie the WAF expects back once the challenge is solved
	TOKEN_COOKIE_NAME = "aws-waf-token"

	// Domain serving the challenge script
	CHALLENGE_SCRIPT_DOMAIN = "awswaf.com"

	// Statuses the WAF answers with instead of the page
	STATUS_CHALLENGE = 202
	STATUS_CAPTCHA   = 405
)

// Verdict of the initial navigation
type Verdict int

const (
	// Page opened, nothing to solve
	VerdictNone Verdict = iota

	// Challenge only
	VerdictChallenge

	// Challenge plus captcha
	VerdictCaptcha

	// Status we have no path for
	VerdictUnsupported
)

func (v Verdict) String() string {
	switch v {
	case VerdictNone:
		return "none"
	case VerdictChallenge:
		return "challenge"
	case VerdictCaptcha:
		return "captcha"
	default:
		return "unsupported"
	}
}

// DetectChallenge - classify the navigation status
func DetectChallenge(status int) Verdict {
	switch status {
	case 200:
		return VerdictNone
	case STATUS_CHALLENGE:
		return VerdictChallenge
	case STATUS_CAPTCHA:
		return VerdictCaptcha
	default:
		return VerdictUnsupported
	}
}

// ChallengeScriptURL - find the script tag loading the WAF challenge JS
// and return its source URL
func ChallengeScriptURL(crawler *goquery.Document) (string, error) {
	if crawler == nil {
		return "", ErrNoChallengeScript
	}

	var found string

	crawler.Find("script[src]").EachWithBreak(func(_ int, selection *goquery.Selection) bool {
		src, _ := selection.Attr("src")
		if isChallengeScript(src) {
			found = src
			return false
		}
		return true
	})

	if found == "" {
		return "", ErrNoChallengeScript
	}
	return found, nil
}

func isChallengeScript(src string) bool {
	parsed, err := url.Parse(src)
	if err != nil || parsed.Host == "" {
		return false
	}
	host := parsed.Hostname()
	return host == CHALLENGE_SCRIPT_DOMAIN || strings.HasSuffix(host, "."+CHALLENGE_SCRIPT_DOMAIN)
}
