package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/CbIPOKGIT/awswaf"
)

func main() {
	model := modelFromEnv()

	handler, err := awswaf.NewHandler(model)
	if err != nil {
		log.Fatalf("Bad configuration: %s", err)
	}
	defer handler.Close()

	result, err := handler.Handle()
	if err != nil {
		log.Fatalf("Pass failed: %s", err)
	}

	if result.Solved {
		log.Printf("Page opened with token %s", result.Token)
	} else {
		log.Println("Page opened, no challenge issued")
	}
}

func modelFromEnv() *awswaf.Model {
	return &awswaf.Model{
		TargetURL:         os.Getenv("TARGET_URL"),
		ClientKey:         os.Getenv("CAPSOLVER_KEY"),
		ServiceURL:        os.Getenv("CAPSOLVER_URL"),
		Proxy:             os.Getenv("PROXY"),
		Chrome:            os.Getenv("USE_CHROME") == "1",
		Visible:           os.Getenv("CHROME_VISIBLE") == "1",
		PollInterval:      durationFromEnv("POLL_INTERVAL"),
		MaxPollAttempts:   intFromEnv("MAX_POLL_ATTEMPTS"),
		NavigationTimeout: intFromEnv("NAVIGATION_TIMEOUT"),
	}
}

func durationFromEnv(key string) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return 0
	}
	return value
}

func intFromEnv(key string) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return 0
	}
	return value
}
