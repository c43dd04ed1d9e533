package awswaf

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/PuerkitoBio/goquery"
)

// Challenge parameters the captcha path has to forward to the solving service.
// The WAF embeds them into the page as the gokuProps object
type ChallengeParams struct {
	Key     string `json:"key"`
	Iv      string `json:"iv"`
	Context string `json:"context"`
}

var matchGokuProps = regexp.MustCompile(`(?s)gokuProps\s*=\s*(\{.*?\})`)

// ExtractGokuProps - pull key/iv/context out of the last inline
// text/javascript block of the page
func ExtractGokuProps(crawler *goquery.Document) (*ChallengeParams, error) {
	script := lastInlineScript(crawler)
	if script == "" {
		return nil, fmt.Errorf("%w: no inline script block", ErrChallengeParams)
	}

	matches := matchGokuProps.FindStringSubmatch(script)
	if matches == nil {
		return nil, fmt.Errorf("%w: no gokuProps object", ErrChallengeParams)
	}

	params := new(ChallengeParams)
	if err := json.Unmarshal([]byte(matches[1]), params); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrChallengeParams, err)
	}

	if params.Key == "" || params.Iv == "" || params.Context == "" {
		return nil, fmt.Errorf("%w: incomplete gokuProps object", ErrChallengeParams)
	}

	return params, nil
}

// Last inline script of type text/javascript, the one carrying gokuProps
func lastInlineScript(crawler *goquery.Document) string {
	if crawler == nil {
		return ""
	}

	var content string

	crawler.Find(`script[type="text/javascript"]`).Each(func(_ int, selection *goquery.Selection) {
		if _, external := selection.Attr("src"); external {
			return
		}
		if text := selection.Text(); text != "" {
			content = text
		}
	})

	return content
}
