package awswaf

import "errors"

var (
	// No script tag pointing to the WAF challenge JS in the page
	ErrNoChallengeScript = errors.New("challenge script reference not found")

	// Inline gokuProps block is absent or incomplete
	ErrChallengeParams = errors.New("challenge parameters not found")

	// Replay with the solved token did not return 200
	ErrReplayRejected = errors.New("replay with token rejected")

	// Response status we have no path for
	ErrUnsupportedStatus = errors.New("unsupported response status")
)
