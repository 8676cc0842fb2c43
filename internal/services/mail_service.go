package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// MailService delivers transactional mail through the provider's HTTP
// API. Only the reset-code template is needed here.
type MailService struct {
	Endpoint string
	APIKey   string
	From     string
}

func (s *MailService) SendResetCode(email, code string) error {
	subject := "Password reset code"
	body := fmt.Sprintf("Your password reset code: %s", code)
	return s.send(email, subject, body)
}

func (s *MailService) send(to, subject, body string) error {
	if s.Endpoint == "" {
		return fmt.Errorf("mail provider is not configured")
	}

	data := url.Values{}
	data.Set("apiKey", s.APIKey)
	data.Set("from", s.From)
	data.Set("to", to)
	data.Set("subject", subject)
	data.Set("text", body)

	resp, err := http.PostForm(s.Endpoint, data)
	if err != nil {
		return fmt.Errorf("mail request failed: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read mail provider response: %v", err)
	}

	var result struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return fmt.Errorf("failed to parse mail provider response: %v", err)
	}
	if result.Code != 0 {
		return fmt.Errorf("mail provider error: %s (code %d)", result.Message, result.Code)
	}

	return nil
}
