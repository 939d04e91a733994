package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/resend/resend-go/v2"

	"github.com/yourusername/moral-quiz-api/internal/domain/entity"
	"github.com/yourusername/moral-quiz-api/internal/service/scoring"
)

// EmailService sends transactional emails.
type EmailService interface {
	SendResultReport(ctx context.Context, toEmail, username string, result *entity.QuizResult) error
}

// NoopEmailService is used when email delivery is disabled.
type NoopEmailService struct{}

func (s *NoopEmailService) SendResultReport(ctx context.Context, toEmail, username string, result *entity.QuizResult) error {
	log.Printf("[EmailService] noop send result report to=%s", toEmail)
	return nil
}

// ResendEmailService sends emails via Resend REST API.
type ResendEmailService struct {
	from   string
	client *resend.Client
}

func NewResendEmailService(apiKey, from string) (*ResendEmailService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("resend api key is required")
	}
	if from == "" {
		return nil, fmt.Errorf("email from is required")
	}
	return &ResendEmailService{
		from:   from,
		client: resend.NewClient(apiKey),
	}, nil
}

// SendResultReport отправляет пользователю письмо с итогами теста.
// Идемпотентность обеспечивается публичным ID записи истории.
func (s *ResendEmailService) SendResultReport(ctx context.Context, toEmail, username string, result *entity.QuizResult) error {
	if toEmail == "" || result == nil {
		return fmt.Errorf("toEmail and result are required")
	}

	var text strings.Builder
	fmt.Fprintf(&text, "Halo %s,\n\nBerikut hasil tes Moral Intelligence Anda (%s):\n\n", username, result.CompletedAt.Format("2006-01-02"))
	fmt.Fprintf(&text, "Skor keseluruhan: %.1f%% (%s)\n\n", result.OverallScore, result.OverallCategory)
	for _, a := range entity.AllAspects() {
		if pct, ok := result.AspectScores[a]; ok {
			fmt.Fprintf(&text, "- %s: %.1f%% (%s)\n", a.DisplayName(), pct, scoring.CategoryFor(pct))
		}
	}
	fmt.Fprintf(&text, "\n%s\n", result.Interpretation)

	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{toEmail},
		Subject: "Hasil Tes Moral Intelligence Anda",
		Text:    text.String(),
	}

	options := &resend.SendEmailOptions{
		IdempotencyKey: "result-report-" + result.PublicID,
	}

	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		_, err := s.client.Emails.SendWithOptions(ctx, params, options)
		if err == nil {
			return nil
		}
		lastErr = err

		if wait, ok := resendRetryDelay(err, attempt); ok {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
				continue
			}
		}

		return fmt.Errorf("resend send failed: %w", err)
	}

	return fmt.Errorf("resend send failed after retries: %w", lastErr)
}

func resendRetryDelay(err error, attempt int) (time.Duration, bool) {
	var rateLimitErr *resend.RateLimitError
	if errors.As(err, &rateLimitErr) {
		if seconds, convErr := strconv.Atoi(strings.TrimSpace(rateLimitErr.RetryAfter)); convErr == nil && seconds > 0 {
			if seconds > 30 {
				seconds = 30
			}
			return time.Duration(seconds) * time.Second, true
		}
		return time.Duration(attempt+1) * time.Second, true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return time.Duration(attempt+1) * time.Second, true
	}
	return 0, false
}
