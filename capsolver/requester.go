package capsolver

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"
)

// Task exhausted the poll budget without reaching "ready"
var ErrPollTimeout = errors.New("task result poll timeout")

type AwsWafTask struct {
	Type           string `json:"type"`
	WebsiteURL     string `json:"websiteURL"`
	AwsKey         string `json:"awsKey,omitempty"`
	AwsIv          string `json:"awsIv,omitempty"`
	AwsContext     string `json:"awsContext,omitempty"`
	AwsChallengeJS string `json:"awsChallengeJS,omitempty"`
	Proxy          string `json:"proxy,omitempty"`
}

type taskBody struct {
	Key  string     `json:"clientKey"`
	Task AwsWafTask `json:"task"`
}

type resultBody struct {
	Key  string `json:"clientKey"`
	Task string `json:"taskId"`
}

type createTaskResponse struct {
	Error            int    `json:"errorId"`
	ErrorCode        string `json:"errorCode"`
	ErrorDescription string `json:"errorDescription"`
	Task             string `json:"taskId"`
}

type TaskResult struct {
	Error            int    `json:"errorId"`
	ErrorCode        string `json:"errorCode"`
	ErrorDescription string `json:"errorDescription"`
	Status           string `json:"status"`
	Solution         struct {
		Cookie string `json:"cookie"`
	} `json:"solution"`
}

// Solve - submit the task and poll until the service produces a token
func (c *Client) Solve(task AwsWafTask) (string, error) {
	taskId, err := c.CreateTask(task)
	if err != nil {
		return "", err
	}

	for i := 0; i < c.maxAttempts; i++ {
		<-time.After(c.pollInterval)

		result, err := c.GetTaskResult(taskId)
		if err != nil {
			return "", err
		}

		if result.Status == "ready" {
			return result.Solution.Cookie, nil
		}
	}

	return "", ErrPollTimeout
}

func (c *Client) CreateTask(task AwsWafTask) (string, error) {
	if c.apiKey == "" {
		return "", errors.New("apiKey is not set")
	}

	body := &taskBody{
		Key:  c.apiKey,
		Task: task,
	}

	response := new(createTaskResponse)
	if err := c.post("/createTask", body, response); err != nil {
		return "", err
	}

	if response.Error != 0 {
		return "", fmt.Errorf("create task error %s: %s", response.ErrorCode, response.ErrorDescription)
	}

	return response.Task, nil
}

func (c *Client) GetTaskResult(taskId string) (*TaskResult, error) {
	body := &resultBody{
		Key:  c.apiKey,
		Task: taskId,
	}

	response := new(TaskResult)
	if err := c.post("/getTaskResult", body, response); err != nil {
		return nil, err
	}

	if response.Error != 0 {
		return nil, fmt.Errorf("task result error %s: %s", response.ErrorCode, response.ErrorDescription)
	}

	return response, nil
}

func (c *Client) post(path string, body, response any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}

	request, err := c.httpClient.Post(c.apiURL+path, "application/json", bytes.NewBuffer(data))
	if err != nil {
		return err
	}
	defer request.Body.Close()

	content, err := io.ReadAll(request.Body)
	if err != nil {
		return err
	}

	return json.Unmarshal(content, response)
}
