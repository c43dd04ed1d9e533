package awswaf

import (
	"fmt"
	"log"

	"github.com/CbIPOKGIT/awswaf/capsolver"
)

// Result of a pass through the WAF
type Result struct {
	// Status of the last navigation
	Status int

	// Token obtained for the page, empty when no challenge was issued
	Token string

	// Whether the solving took place
	Solved bool
}

// Handler drives one URL through the WAF: navigate, classify the answer,
// hand the challenge over to the solving service, replay with the token
type Handler struct {
	model     *Model
	navigator PageFetcher
	solver    TokenSolver
}

func NewHandler(model *Model) (*Handler, error) {
	if model == nil || model.TargetURL == "" {
		return nil, fmt.Errorf("target URL is not set")
	}
	model.withDefaults()

	if _, err := ParseProxy(model.Proxy); err != nil {
		return nil, err
	}

	client := capsolver.New(model.ClientKey).
		SetPollPolicy(model.PollInterval, model.MaxPollAttempts)
	if model.ServiceURL != "" {
		client.SetApiURL(model.ServiceURL)
	}

	return &Handler{
		model:     model,
		navigator: NewNavigator(model),
		solver:    client,
	}, nil
}

// NewHandlerWith - assemble a handler on top of ready made navigator and
// solver instances
func NewHandlerWith(model *Model, navigator PageFetcher, solver TokenSolver) *Handler {
	model.withDefaults()
	return &Handler{
		model:     model,
		navigator: navigator,
		solver:    solver,
	}
}

func (h *Handler) Close() error {
	return h.navigator.Close()
}

// Handle - run the workflow against Model.TargetURL
func (h *Handler) Handle() (*Result, error) {
	return h.HandleURL(h.model.TargetURL)
}

// HandleURL - run the workflow against the given URL
func (h *Handler) HandleURL(url string) (*Result, error) {
	if err := h.navigator.Navigate(url); err != nil {
		return nil, err
	}

	status := h.navigator.GetNavigateStatus()
	verdict := DetectChallenge(status)
	log.Printf("Navigated %s: status %d, verdict %s", url, status, verdict)

	switch verdict {
	case VerdictNone:
		return &Result{Status: status}, nil

	case VerdictUnsupported:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedStatus, status)
	}

	token, err := h.obtainToken(url, verdict)
	if err != nil {
		return nil, err
	}

	return h.replay(url, token)
}

// Obtain the token: browser jar when the navigator can wait it out on the
// plain challenge, solving service otherwise
func (h *Handler) obtainToken(url string, verdict Verdict) (string, error) {
	if waiter, ok := h.navigator.(TokenWaiter); ok && verdict == VerdictChallenge {
		if token, err := waiter.WaitToken(); err == nil {
			log.Println("Token taken from the browser jar")
			return token, nil
		} else {
			log.Printf("Browser did not produce a token: %s", err)
		}
	}

	task, err := h.buildTask(url, verdict)
	if err != nil {
		return "", err
	}

	token, err := h.solver.Solve(*task)
	if err != nil {
		return "", err
	}

	log.Println("Token received from the solving service")
	return token, nil
}

func (h *Handler) buildTask(url string, verdict Verdict) (*capsolver.AwsWafTask, error) {
	scriptURL, err := ChallengeScriptURL(h.navigator.GetCrawler())
	if err != nil {
		return nil, err
	}

	task := &capsolver.AwsWafTask{
		Type:           capsolver.TASK_TYPE_PROXYLESS,
		WebsiteURL:     url,
		AwsChallengeJS: scriptURL,
	}

	if verdict == VerdictCaptcha {
		params, err := ExtractGokuProps(h.navigator.GetCrawler())
		if err != nil {
			return nil, err
		}
		task.AwsKey = params.Key
		task.AwsIv = params.Iv
		task.AwsContext = params.Context
	}

	if proxyValue, err := ParseProxy(h.model.Proxy); err == nil && proxyValue != nil {
		task.Type = capsolver.TASK_TYPE
		task.Proxy = proxyValue.Descriptor()
	}

	return task, nil
}

// Replay the original request with the token. Exactly 200 or the run failed
func (h *Handler) replay(url, token string) (*Result, error) {
	if err := h.navigator.NavigateWithToken(url, token); err != nil {
		return nil, err
	}

	status := h.navigator.GetNavigateStatus()
	if status != 200 {
		return nil, fmt.Errorf("%w: status %d", ErrReplayRejected, status)
	}

	log.Printf("Replay of %s accepted", url)
	return &Result{Status: status, Token: token, Solved: true}, nil
}
