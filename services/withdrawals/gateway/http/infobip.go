package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kasule/wagepay/internal/pkg/models"
)

// Message status names the provider reports that count as delivered-or-accepted
var successStatusNames = map[string]bool{
	"PENDING_ACCEPTED": true,
	"DELIVERED":        true,
	"SENT":             true,
}

// InfobipClient wraps the notification provider's SMS, WhatsApp and email APIs
type InfobipClient struct {
	baseURL     string
	apiKey      string
	smsSender   string
	waSender    string
	emailSender string
	client      *http.Client
}

// NewInfobipClient creates a new notification gateway client
func NewInfobipClient(cfg models.InfobipConfig) *InfobipClient {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &InfobipClient{
		baseURL:     cfg.BaseURL,
		apiKey:      cfg.APIKey,
		smsSender:   cfg.SMSSender,
		waSender:    cfg.WASender,
		emailSender: cfg.EmailSender,
		client:      &http.Client{Timeout: timeout},
	}
}

type messageStatus struct {
	GroupName string `json:"groupName"`
	Name      string `json:"name"`
}

type messageResponse struct {
	Messages []struct {
		To     string        `json:"to"`
		Status messageStatus `json:"status"`
	} `json:"messages"`
}

type smsRequest struct {
	Messages []smsMessage `json:"messages"`
}

type smsMessage struct {
	From         string           `json:"from"`
	Destinations []smsDestination `json:"destinations"`
	Text         string           `json:"text"`
}

type smsDestination struct {
	To string `json:"to"`
}

type whatsappRequest struct {
	From    string          `json:"from"`
	To      string          `json:"to"`
	Content whatsappContent `json:"content"`
}

type whatsappContent struct {
	TemplateName string               `json:"templateName"`
	TemplateData whatsappTemplateData `json:"templateData"`
	Language     string               `json:"language"`
}

type whatsappTemplateData struct {
	Body whatsappTemplateBody `json:"body"`
}

type whatsappTemplateBody struct {
	Placeholders []string `json:"placeholders"`
}

type emailRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

// SendSMS dispatches a text message to a mobile number
func (c *InfobipClient) SendSMS(ctx context.Context, recipient, text string) error {
	req := smsRequest{
		Messages: []smsMessage{{
			From:         c.smsSender,
			Destinations: []smsDestination{{To: recipient}},
			Text:         text,
		}},
	}

	var resp messageResponse
	if err := c.post(ctx, "/sms/2/text/advanced", req, &resp); err != nil {
		return err
	}

	return checkMessageStatus(&resp)
}

// SendWhatsApp dispatches a templated WhatsApp message carrying the code
func (c *InfobipClient) SendWhatsApp(ctx context.Context, recipient, code string) error {
	req := whatsappRequest{
		From: c.waSender,
		To:   recipient,
		Content: whatsappContent{
			TemplateName: "wagepay_otp",
			TemplateData: whatsappTemplateData{
				Body: whatsappTemplateBody{Placeholders: []string{code}},
			},
			Language: "en",
		},
	}

	var resp messageResponse
	if err := c.post(ctx, "/whatsapp/1/message/template", req, &resp); err != nil {
		return err
	}

	return checkMessageStatus(&resp)
}

// SendEmail dispatches a plain-text email
func (c *InfobipClient) SendEmail(ctx context.Context, recipient, subject, text string) error {
	req := emailRequest{
		From:    c.emailSender,
		To:      recipient,
		Subject: subject,
		Text:    text,
	}

	var resp messageResponse
	if err := c.post(ctx, "/email/3/send", req, &resp); err != nil {
		return err
	}

	return checkMessageStatus(&resp)
}

// checkMessageStatus treats anything outside the accepted status names as a
// dispatch failure; the notification is never silently assumed delivered.
func checkMessageStatus(resp *messageResponse) error {
	if len(resp.Messages) == 0 {
		return fmt.Errorf("notification provider returned no message status")
	}

	status := resp.Messages[0].Status
	if !successStatusNames[status.Name] {
		return fmt.Errorf("notification dispatch failed: %s/%s", status.GroupName, status.Name)
	}

	return nil
}

func (c *InfobipClient) post(ctx context.Context, path string, in interface{}, out interface{}) error {
	reqBody, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to marshal notification request: %w", err)
	}

	url := c.baseURL + path
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(reqBody))
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "App "+c.apiKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("notification request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read notification response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("notification provider returned status %d", resp.StatusCode)
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode notification response: %w", err)
	}

	return nil
}
