// Package client calls the quiz generation API over HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/saulo-duarte/quizifai/internal/aiquiz"
)

const defaultTimeout = 2 * time.Minute

// RequestError is returned for any non-2xx response.
type RequestError struct {
	StatusCode int
	Body       aiquiz.ErrorResponse
}

func (e *RequestError) Error() string {
	msg := e.Body.Error
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	if e.Body.Details != "" {
		msg += ": " + e.Body.Details
	}
	return fmt.Sprintf("quiz request failed (status %d): %s", e.StatusCode, msg)
}

type Client struct {
	baseURL string
	http    *http.Client
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.http = c
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GenerateQuiz posts a topic and returns the generated quiz.
func (c *Client) GenerateQuiz(ctx context.Context, req aiquiz.QuizRequest) (*aiquiz.Quiz, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/generate-quiz", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	return c.do(httpReq)
}

// GenerateQuizFromFile uploads a document whose text becomes the topic.
func (c *Client) GenerateQuizFromFile(ctx context.Context, name string, data []byte, numQuestions int, difficulty string) (*aiquiz.Quiz, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", name)
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("write form file: %w", err)
	}
	if numQuestions > 0 {
		if err := mw.WriteField("numQuestions", strconv.Itoa(numQuestions)); err != nil {
			return nil, err
		}
	}
	if difficulty != "" {
		if err := mw.WriteField("difficulty", difficulty); err != nil {
			return nil, err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("close multipart body: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/generate-quiz/upload", &buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())

	return c.do(httpReq)
}

func (c *Client) do(req *http.Request) (*aiquiz.Quiz, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		reqErr := &RequestError{StatusCode: resp.StatusCode}
		if json.Unmarshal(respBody, &reqErr.Body) != nil {
			reqErr.Body.Error = strings.TrimSpace(string(respBody))
		}
		return nil, reqErr
	}

	var out aiquiz.GenerateResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	if out.Quiz == nil {
		return nil, fmt.Errorf("response has no quiz")
	}
	return out.Quiz, nil
}
