package awswaf

import (
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/CbIPOKGIT/awswaf/capsolver"
)

const (
	testURL         = "https://protected.example.com/"
	testScriptSrc   = "https://de5282c3ca0c.eu-west-1.token.awswaf.com/de5282c3ca0c/challenge.js"
	testChallengeJS = `<script src="` + testScriptSrc + `"></script>`
)

const captchaHTML = `<html><head>` + testChallengeJS + `</head><body>
<script type="text/javascript">window.gokuProps = {"key":"K","iv":"I","context":"C"};</script>
</body></html>`

const challengeHTML = `<html><head>` + testChallengeJS + `</head><body></body></html>`

// Navigator double that also exposes the browser cookie jar
type waitingFetcher struct {
	*MockPageFetcher
	*MockTokenWaiter
}

func newHandler(t *testing.T, navigator PageFetcher, solver TokenSolver) *Handler {
	t.Helper()
	return NewHandlerWith(&Model{TargetURL: testURL}, navigator, solver)
}

func TestHandleURL_CleanPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	navigator := NewMockPageFetcher(ctrl)
	solver := NewMockTokenSolver(ctrl)

	navigator.EXPECT().Navigate(testURL).Return(nil)
	navigator.EXPECT().GetNavigateStatus().Return(200)
	// no solver expectations: a 200 answer must not touch the service

	result, err := newHandler(t, navigator, solver).HandleURL(testURL)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if result.Solved || result.Token != "" {
		t.Fatalf("clean page must not be solved, got %+v", result)
	}
	if result.Status != 200 {
		t.Fatalf("Status = %d; want 200", result.Status)
	}
}

func TestHandleURL_Challenge(t *testing.T) {
	ctrl := gomock.NewController(t)
	navigator := NewMockPageFetcher(ctrl)
	solver := NewMockTokenSolver(ctrl)

	navigator.EXPECT().Navigate(testURL).Return(nil)
	navigator.EXPECT().GetNavigateStatus().Return(202)
	navigator.EXPECT().GetCrawler().Return(docFromHTML(t, challengeHTML)).AnyTimes()

	solver.EXPECT().Solve(gomock.Any()).DoAndReturn(func(task capsolver.AwsWafTask) (string, error) {
		if task.Type != capsolver.TASK_TYPE_PROXYLESS {
			t.Errorf("Type = %q; want %q", task.Type, capsolver.TASK_TYPE_PROXYLESS)
		}
		if task.WebsiteURL != testURL {
			t.Errorf("WebsiteURL = %q; want %q", task.WebsiteURL, testURL)
		}
		if task.AwsChallengeJS != testScriptSrc {
			t.Errorf("AwsChallengeJS = %q; want %q", task.AwsChallengeJS, testScriptSrc)
		}
		if task.AwsKey != "" || task.AwsIv != "" || task.AwsContext != "" {
			t.Errorf("challenge-only task must not carry key/iv/context: %+v", task)
		}
		if task.Proxy != "" {
			t.Errorf("proxyless task must not carry a proxy: %q", task.Proxy)
		}
		return "abc", nil
	})

	navigator.EXPECT().NavigateWithToken(testURL, "abc").Return(nil)
	navigator.EXPECT().GetNavigateStatus().Return(200)

	result, err := newHandler(t, navigator, solver).HandleURL(testURL)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !result.Solved || result.Token != "abc" {
		t.Fatalf("Result = %+v; want solved with token abc", result)
	}
}

func TestHandleURL_Captcha_RoundTripsGokuProps(t *testing.T) {
	ctrl := gomock.NewController(t)
	navigator := NewMockPageFetcher(ctrl)
	solver := NewMockTokenSolver(ctrl)

	navigator.EXPECT().Navigate(testURL).Return(nil)
	navigator.EXPECT().GetNavigateStatus().Return(405)
	navigator.EXPECT().GetCrawler().Return(docFromHTML(t, captchaHTML)).AnyTimes()

	solver.EXPECT().Solve(gomock.Any()).DoAndReturn(func(task capsolver.AwsWafTask) (string, error) {
		if task.AwsKey != "K" || task.AwsIv != "I" || task.AwsContext != "C" {
			t.Errorf("extracted parameters lost on the way: %+v", task)
		}
		if task.AwsChallengeJS != testScriptSrc {
			t.Errorf("AwsChallengeJS = %q; want %q", task.AwsChallengeJS, testScriptSrc)
		}
		return "tok", nil
	})

	navigator.EXPECT().NavigateWithToken(testURL, "tok").Return(nil)
	navigator.EXPECT().GetNavigateStatus().Return(200)

	if _, err := newHandler(t, navigator, solver).HandleURL(testURL); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
}

func TestHandleURL_CaptchaWithoutGokuProps(t *testing.T) {
	ctrl := gomock.NewController(t)
	navigator := NewMockPageFetcher(ctrl)
	solver := NewMockTokenSolver(ctrl)

	navigator.EXPECT().Navigate(testURL).Return(nil)
	navigator.EXPECT().GetNavigateStatus().Return(405)
	// challenge script present, inline parameters absent
	navigator.EXPECT().GetCrawler().Return(docFromHTML(t, challengeHTML)).AnyTimes()
	// no solver expectations: extraction failure must not cost a paid task

	_, err := newHandler(t, navigator, solver).HandleURL(testURL)
	if !errors.Is(err, ErrChallengeParams) {
		t.Fatalf("err = %v; want ErrChallengeParams", err)
	}
}

func TestHandleURL_MissingChallengeScript(t *testing.T) {
	ctrl := gomock.NewController(t)
	navigator := NewMockPageFetcher(ctrl)
	solver := NewMockTokenSolver(ctrl)

	navigator.EXPECT().Navigate(testURL).Return(nil)
	navigator.EXPECT().GetNavigateStatus().Return(202)
	navigator.EXPECT().GetCrawler().Return(docFromHTML(t, `<html><body></body></html>`)).AnyTimes()

	_, err := newHandler(t, navigator, solver).HandleURL(testURL)
	if !errors.Is(err, ErrNoChallengeScript) {
		t.Fatalf("err = %v; want ErrNoChallengeScript", err)
	}
}

func TestHandleURL_UnsupportedStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	navigator := NewMockPageFetcher(ctrl)
	solver := NewMockTokenSolver(ctrl)

	navigator.EXPECT().Navigate(testURL).Return(nil)
	navigator.EXPECT().GetNavigateStatus().Return(404)

	_, err := newHandler(t, navigator, solver).HandleURL(testURL)
	if !errors.Is(err, ErrUnsupportedStatus) {
		t.Fatalf("err = %v; want ErrUnsupportedStatus", err)
	}
}

func TestHandleURL_ReplayRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	navigator := NewMockPageFetcher(ctrl)
	solver := NewMockTokenSolver(ctrl)

	navigator.EXPECT().Navigate(testURL).Return(nil)
	navigator.EXPECT().GetNavigateStatus().Return(202)
	navigator.EXPECT().GetCrawler().Return(docFromHTML(t, challengeHTML)).AnyTimes()

	solver.EXPECT().Solve(gomock.Any()).Return("stale", nil)

	// token did not convince the WAF, no second solving round
	navigator.EXPECT().NavigateWithToken(testURL, "stale").Return(nil)
	navigator.EXPECT().GetNavigateStatus().Return(202)

	_, err := newHandler(t, navigator, solver).HandleURL(testURL)
	if !errors.Is(err, ErrReplayRejected) {
		t.Fatalf("err = %v; want ErrReplayRejected", err)
	}
}

func TestHandleURL_ProxyGoesIntoTask(t *testing.T) {
	ctrl := gomock.NewController(t)
	navigator := NewMockPageFetcher(ctrl)
	solver := NewMockTokenSolver(ctrl)

	navigator.EXPECT().Navigate(testURL).Return(nil)
	navigator.EXPECT().GetNavigateStatus().Return(202)
	navigator.EXPECT().GetCrawler().Return(docFromHTML(t, challengeHTML)).AnyTimes()

	solver.EXPECT().Solve(gomock.Any()).DoAndReturn(func(task capsolver.AwsWafTask) (string, error) {
		if task.Type != capsolver.TASK_TYPE {
			t.Errorf("Type = %q; want %q", task.Type, capsolver.TASK_TYPE)
		}
		if task.Proxy != "user:pass@proxy.example.com:8080" {
			t.Errorf("Proxy = %q", task.Proxy)
		}
		return "abc", nil
	})

	navigator.EXPECT().NavigateWithToken(testURL, "abc").Return(nil)
	navigator.EXPECT().GetNavigateStatus().Return(200)

	model := &Model{TargetURL: testURL, Proxy: "user:pass@proxy.example.com:8080"}
	if _, err := NewHandlerWith(model, navigator, solver).HandleURL(testURL); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
}

func TestHandleURL_BrowserJarBeatsService(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := NewMockPageFetcher(ctrl)
	waiter := NewMockTokenWaiter(ctrl)
	solver := NewMockTokenSolver(ctrl)

	navigator := &waitingFetcher{MockPageFetcher: fetcher, MockTokenWaiter: waiter}

	fetcher.EXPECT().Navigate(testURL).Return(nil)
	fetcher.EXPECT().GetNavigateStatus().Return(202)

	waiter.EXPECT().WaitToken().Return("from-jar", nil)
	// service must stay untouched when the browser finishes the challenge

	fetcher.EXPECT().NavigateWithToken(testURL, "from-jar").Return(nil)
	fetcher.EXPECT().GetNavigateStatus().Return(200)

	result, err := newHandler(t, navigator, solver).HandleURL(testURL)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if result.Token != "from-jar" {
		t.Fatalf("Token = %q; want from-jar", result.Token)
	}
}

func TestHandleURL_BrowserJarFallsBackToService(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := NewMockPageFetcher(ctrl)
	waiter := NewMockTokenWaiter(ctrl)
	solver := NewMockTokenSolver(ctrl)

	navigator := &waitingFetcher{MockPageFetcher: fetcher, MockTokenWaiter: waiter}

	fetcher.EXPECT().Navigate(testURL).Return(nil)
	fetcher.EXPECT().GetNavigateStatus().Return(202)
	fetcher.EXPECT().GetCrawler().Return(docFromHTML(t, challengeHTML)).AnyTimes()

	waiter.EXPECT().WaitToken().Return("", errors.New("timeout waiting for token cookie"))
	solver.EXPECT().Solve(gomock.Any()).Return("abc", nil)

	fetcher.EXPECT().NavigateWithToken(testURL, "abc").Return(nil)
	fetcher.EXPECT().GetNavigateStatus().Return(200)

	if _, err := newHandler(t, navigator, solver).HandleURL(testURL); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
}

func TestHandleURL_TransportFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	navigator := NewMockPageFetcher(ctrl)
	solver := NewMockTokenSolver(ctrl)

	navigator.EXPECT().Navigate(testURL).Return(errors.New("connection refused"))

	if _, err := newHandler(t, navigator, solver).HandleURL(testURL); err == nil {
		t.Fatal("transport failure must abort the run")
	}
}
