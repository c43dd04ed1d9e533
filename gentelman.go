package awswaf

import (
	"crypto/tls"
	"fmt"

	"gopkg.in/h2non/gentleman.v2"
	"gopkg.in/h2non/gentleman.v2/plugins/headers"
	"gopkg.in/h2non/gentleman.v2/plugins/proxy"
	gtls "gopkg.in/h2non/gentleman.v2/plugins/tls"
)

type GentelmanNavigator struct {
	CommonNavigator

	Client *gentleman.Client
}

func (navigator *GentelmanNavigator) Navigate(url string) error {
	return navigator.navigateUrl(url, "")
}

func (navigator *GentelmanNavigator) NavigateWithToken(url, token string) error {
	return navigator.navigateUrl(url, token)
}

func (navigator *GentelmanNavigator) Close() error {
	navigator.Client = nil
	return nil
}

func (navigator *GentelmanNavigator) navigateUrl(url, token string) error {
	if err := navigator.writeAndFormatURL(url); err != nil {
		return err
	}

	if err := navigator.createClientIfNotExist(); err != nil {
		return err
	}

	request := navigator.Client.Request().URL(navigator.Url)

	if token != "" {
		request.SetHeader("cookie", fmt.Sprintf("%s=%s", TOKEN_COOKIE_NAME, token))
	}

	response, err := request.Send()
	if err != nil {
		return err
	}

	navigator.NavigateStatus = response.StatusCode

	if !navigator.isAcceptedStatus(response.StatusCode) {
		return fmt.Errorf("navigation to %s failed with status %d", navigator.Url, response.StatusCode)
	}

	return navigator.createCrawlerFromHTML(response.String())
}

// Create new client if not exist
func (navigator *GentelmanNavigator) createClientIfNotExist() error {
	if navigator.Client != nil {
		return nil
	}

	client := gentleman.New()
	client.Context.Client.Timeout = navigator.Model.navigationTimeout()

	client.Use(gtls.Config(&tls.Config{
		InsecureSkipVerify: true,
	}))

	client.Use(headers.Set("User-Agent", navigator.Model.UserAgent))
	client.Use(headers.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8"))
	client.Use(headers.Set("Accept-Language", "en-US,en;q=0.9"))

	if navigator.Model.Proxy != "" {
		proxyValue, err := ParseProxy(navigator.Model.Proxy)
		if err != nil {
			return err
		}
		client.Use(proxy.Set(map[string]string{
			"http":  proxyValue.URL(),
			"https": proxyValue.URL(),
		}))
	}

	navigator.Client = client
	return nil
}
