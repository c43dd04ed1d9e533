package awswaf

import (
	"errors"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
)

const TOKEN_WAIT_INTERVAL = time.Second

type ChromeNavigator struct {
	CommonNavigator

	Browser *rod.Browser
	Page    *rod.Page
}

func (navigator *ChromeNavigator) Navigate(url string) error {
	if err := navigator.writeAndFormatURL(url); err != nil {
		return err
	}

	if err := navigator.createClientIfNeed(); err != nil {
		return err
	}

	return navigator.navigateUrl()
}

func (navigator *ChromeNavigator) NavigateWithToken(url, token string) error {
	if err := navigator.writeAndFormatURL(url); err != nil {
		return err
	}

	if err := navigator.createClientIfNeed(); err != nil {
		return err
	}

	cookie := &proto.NetworkCookieParam{
		Name:   TOKEN_COOKIE_NAME,
		Value:  token,
		Domain: navigator.Domen,
		Path:   "/",
	}
	if err := navigator.Page.SetCookies([]*proto.NetworkCookieParam{cookie}); err != nil {
		return err
	}

	return navigator.navigateUrl()
}

func (navigator *ChromeNavigator) Close() error {
	var errPage, errBrowser error
	if navigator.Page != nil {
		errPage = navigator.Page.Close()
		navigator.Page = nil
	}
	if navigator.Browser != nil {
		errBrowser = navigator.Browser.Close()
		navigator.Browser = nil
	}
	if errPage != nil {
		return errPage
	}
	return errBrowser
}

// WaitToken - wait until the in-page WAF script finishes the challenge and
// drops the token cookie into the browser jar
func (navigator *ChromeNavigator) WaitToken() (string, error) {
	if navigator.Page == nil {
		return "", errors.New("no open page to wait token on")
	}

	deadline := time.NewTimer(navigator.Model.navigationTimeout())
	defer deadline.Stop()

	ticker := time.NewTicker(TOKEN_WAIT_INTERVAL)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if token := navigator.tokenFromCookies(); token != "" {
				return token, nil
			}

		case <-deadline.C:
			return "", errors.New("timeout waiting for token cookie")
		}
	}
}

func (navigator *ChromeNavigator) tokenFromCookies() string {
	cookies, err := navigator.Page.Cookies([]string{navigator.Url})
	if err != nil {
		return ""
	}

	for _, cookie := range cookies {
		if cookie.Name == TOKEN_COOKIE_NAME {
			return cookie.Value
		}
	}
	return ""
}

// ------------------------------------------------------------

func (navigator *ChromeNavigator) createClientIfNeed() error {
	if navigator.Browser != nil && navigator.Page != nil {
		return nil
	}

	l := launcher.New().Headless(!navigator.Model.Visible)

	var proxyValue *Proxy
	if navigator.Model.Proxy != "" {
		parsed, err := ParseProxy(navigator.Model.Proxy)
		if err != nil {
			return err
		}
		proxyValue = parsed
		l = l.Proxy(proxyValue.Host + ":" + proxyValue.Port)
	}

	cs, err := l.Launch()
	if err != nil {
		return err
	}

	navigator.Browser = rod.New().ControlURL(cs).MustConnect()

	if proxyValue != nil && proxyValue.User != "" {
		go navigator.Browser.MustHandleAuth(proxyValue.User, proxyValue.Pass)()
	}

	navigator.Page = stealth.MustPage(navigator.Browser)

	return nil
}

func (navigator *ChromeNavigator) navigateUrl() error {
	e := proto.NetworkResponseReceived{}
	wait := navigator.Page.WaitEvent(&e)

	if err := navigator.Page.Navigate(navigator.Url); err != nil {
		return err
	}

	if err := navigator.waitPageLoad(wait); err != nil {
		return err
	}

	navigator.NavigateStatus = e.Response.Status

	html, err := navigator.Page.HTML()
	if err != nil {
		return err
	}

	return navigator.createCrawlerFromHTML(html)
}

func (navigator *ChromeNavigator) waitPageLoad(wait func()) error {
	loaded := make(chan any, 1)

	go func() {
		wait()
		loaded <- nil
	}()

	select {
	case <-loaded:
		return nil
	case <-time.After(navigator.Model.navigationTimeout()):
		return errors.New("timeout_navigation")
	}
}
