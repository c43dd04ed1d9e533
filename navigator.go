package awswaf

import "github.com/PuerkitoBio/goquery"

type Navigator interface {
	// Open URL
	Navigate(url string) error

	// Open URL with the solved token attached as aws-waf-token cookie
	NavigateWithToken(url, token string) error

	// Status code of the last navigation
	GetNavigateStatus() int

	// Raw HTML of the last response
	GetBody() string

	// DOM tree of the last response
	GetCrawler() *goquery.Document

	// Close client
	Close() error
}

func NewNavigator(model *Model) Navigator {
	if model == nil {
		model = new(Model)
	}
	model.withDefaults()

	var navigator Navigator

	if model.Chrome {
		chrome := new(ChromeNavigator)
		chrome.Model = model
		navigator = chrome
	} else {
		gentelman := new(GentelmanNavigator)
		gentelman.Model = model
		navigator = gentelman
	}

	return navigator
}
