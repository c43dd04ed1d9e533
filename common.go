package awswaf

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	matchUrlHttp      = regexp.MustCompile(`(?m)^https?:\/\/`)
	matchUrlFromSlash = regexp.MustCompile(`(?m)\/.*`)
)

// Common data for both navigators Chrome and Gentelman
type CommonNavigator struct {

	// Current url
	Url string

	// Current domen
	Domen string

	// Current protocol (HTTP, HTTPS)
	Protocol string

	// Last navigate status
	NavigateStatus int

	// Raw HTML of the last response
	Body string

	// Navigation model
	Model *Model

	// Current DOM tree composed into query [github.com/PuerkitoBio/goquery] document
	Crawler *goquery.Document
}

// Interface method implementation

func (navigator *CommonNavigator) GetNavigateStatus() int {
	return navigator.NavigateStatus
}

func (navigator *CommonNavigator) GetBody() string {
	return navigator.Body
}

func (navigator *CommonNavigator) GetCrawler() *goquery.Document {
	if navigator.Crawler == nil {
		navigator.initEmptyCrawler()
	}
	return navigator.Crawler
}

// Initialize empty crawler
func (navigator *CommonNavigator) initEmptyCrawler() {
	navigator.Crawler, _ = goquery.NewDocumentFromReader(bytes.NewBuffer([]byte("")))
}

// Writing initial data before navigate
func (navigator *CommonNavigator) writeAndFormatURL(url string) error {
	if !matchUrlHttp.MatchString(url) {
		url = "https://" + url
	}

	navigator.Url = url
	navigator.extractDomenName()
	navigator.extractProtocol()

	return nil
}

// Extract domen name from url
func (navigator *CommonNavigator) extractDomenName() {
	navigator.Domen = matchUrlHttp.ReplaceAllString(navigator.Url, "")
	navigator.Domen = matchUrlFromSlash.ReplaceAllString(navigator.Domen, "")
}

// Extract protocol type from url
func (navigator *CommonNavigator) extractProtocol() {
	if protocol := regexp.MustCompile(`(?mi)^https?`).FindString(navigator.Url); protocol != "" {
		navigator.Protocol = strings.ToLower(protocol)
	} else {
		navigator.Protocol = "https"
	}
}

// Create crawler from response
func (navigator *CommonNavigator) createCrawlerFromHTML(html string) error {
	crawler, err := goquery.NewDocumentFromReader(bytes.NewBuffer([]byte(html)))
	if err != nil {
		return err
	}

	navigator.Body = html
	navigator.Crawler = crawler

	return nil
}

// Accepted navigation statuses are [200, 500)
func (navigator *CommonNavigator) isAcceptedStatus(status int) bool {
	return status >= 200 && status < 500
}
