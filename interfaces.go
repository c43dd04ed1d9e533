package awswaf

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/CbIPOKGIT/awswaf/capsolver"
)

//go:generate mockgen -source=interfaces.go -destination=./mock.go -package=awswaf

// PageFetcher is the part of a navigator the handler needs
type PageFetcher interface {
	Navigate(url string) error
	NavigateWithToken(url, token string) error
	GetNavigateStatus() int
	GetCrawler() *goquery.Document
	Close() error
}

// TokenSolver turns a prepared task into a WAF token
type TokenSolver interface {
	Solve(task capsolver.AwsWafTask) (string, error)
}

// TokenWaiter is implemented by navigators that can watch the browser
// cookie jar for the token instead of calling the solving service
type TokenWaiter interface {
	WaitToken() (string, error)
}
