package push

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"github.com/maestroya/backend/app/models"
	"github.com/maestroya/backend/internal/pkg/env"
)

// Service delivers push notifications to a user's registered device. Delivery
// is best-effort everywhere: callers log failures and move on, a closure state
// transition never depends on a push arriving.
type Service interface {
	NotifyUser(userID uint, title, body string, data map[string]string) error
}

// NoopService drops every notification. Used when no gateway is configured
// and in tests.
type NoopService struct{}

func (NoopService) NotifyUser(userID uint, title, body string, data map[string]string) error {
	return nil
}

// gatewayService posts messages to an FCM-style HTTP relay.
type gatewayService struct {
	db     *gorm.DB
	url    string
	apiKey string
	client *http.Client
}

// FromEnv builds the push service from PUSH_GATEWAY_URL / PUSH_GATEWAY_KEY.
// An empty URL disables push entirely.
func FromEnv(db *gorm.DB) Service {
	url := env.GetEnv("PUSH_GATEWAY_URL", "")
	if url == "" {
		log.Info("[Push] PUSH_GATEWAY_URL not set, push notifications disabled")
		return NoopService{}
	}
	return &gatewayService{
		db:     db,
		url:    url,
		apiKey: env.GetEnv("PUSH_GATEWAY_KEY", ""),
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *gatewayService) NotifyUser(userID uint, title, body string, data map[string]string) error {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return fmt.Errorf("load user %d: %w", userID, err)
	}
	if user.PushToken == "" {
		// No registered device, nothing to deliver
		return nil
	}

	payload, err := json.Marshal(map[string]interface{}{
		"to":    user.PushToken,
		"title": title,
		"body":  body,
		"data":  data,
	})
	if err != nil {
		return fmt.Errorf("marshal push payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, s.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("push gateway request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("push gateway returned %s", resp.Status)
	}
	return nil
}
