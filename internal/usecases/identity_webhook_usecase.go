package usecases

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"homeservice.backend/internal/domain/entities"
	domainerrors "homeservice.backend/internal/domain/errors"
	"homeservice.backend/pkg/logger"
)

const (
	defaultFirstName = "User"
	defaultLastName  = "Name"
	defaultPhone     = "919999999999"
	maxPhoneDigits   = 15
)

// WebhookResult is the acknowledgement returned to the identity provider
type WebhookResult struct {
	Message string `json:"message"`
	UserID  string `json:"userId,omitempty"`
}

// UserProvisioner is the part of UserUsecase the webhook needs.
type UserProvisioner interface {
	GetByID(ctx context.Context, id string) (*entities.User, error)
	Create(ctx context.Context, input *entities.CreateUserInput) (*entities.User, error)
}

// IdentityWebhookUsecase provisions users from signed identity provider events
type IdentityWebhookUsecase struct {
	verifier SignatureVerifier
	users    UserProvisioner
}

// NewIdentityWebhookUsecase creates the usecase. A nil verifier means no signing secret is configured.
func NewIdentityWebhookUsecase(verifier SignatureVerifier, users UserProvisioner) *IdentityWebhookUsecase {
	return &IdentityWebhookUsecase{
		verifier: verifier,
		users:    users,
	}
}

// Configured reports whether a signing secret is available.
func (u *IdentityWebhookUsecase) Configured() bool {
	return u.verifier != nil
}

// Handle verifies payload and applies the event. Nothing is written unless the signature verifies.
func (u *IdentityWebhookUsecase) Handle(ctx context.Context, payload []byte, headers http.Header) (*WebhookResult, error) {
	if u.verifier == nil {
		return nil, domainerrors.NotConfigured("Webhook secret not configured")
	}
	if err := u.verifier.Verify(payload, headers); err != nil {
		logger.Warn(ctx, "Rejected identity webhook", zap.Error(err))
		return nil, domainerrors.InvalidSignature("Invalid webhook signature")
	}

	var event entities.IdentityEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, domainerrors.BadRequest("Invalid webhook payload")
	}

	switch event.Type {
	case entities.IdentityEventUserCreated:
		return u.userCreated(ctx, event.Data)
	default:
		logger.Info(ctx, "Ignoring identity webhook", zap.String("type", event.Type))
		return &WebhookResult{Message: "Webhook processed"}, nil
	}
}

func (u *IdentityWebhookUsecase) userCreated(ctx context.Context, data entities.IdentityUser) (*WebhookResult, error) {
	if data.ID == "" {
		return nil, domainerrors.BadRequest("Invalid webhook payload")
	}
	email := primaryEmail(data)
	if email == "" {
		return nil, domainerrors.BadRequest("No primary email found")
	}

	// Redelivery of the same event must not create a second row.
	if existing, err := u.users.GetByID(ctx, data.ID); err == nil {
		return &WebhookResult{Message: "User already exists", UserID: existing.ID}, nil
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		logger.Error(ctx, "Failed to look up webhook user", zap.String("user_id", data.ID), zap.Error(err))
		return nil, domainerrors.InternalServerError("Failed to create user")
	}

	user, err := u.users.Create(ctx, &entities.CreateUserInput{
		ID:          data.ID,
		FullName:    fullName(data.FirstName, data.LastName),
		Email:       email,
		PhoneNumber: phoneDigits(data.PhoneNumbers),
	})
	if err != nil {
		logger.Error(ctx, "Failed to create webhook user", zap.String("user_id", data.ID), zap.Error(err))
		return nil, domainerrors.InternalServerError("Failed to create user")
	}

	logger.Info(ctx, "User provisioned from identity webhook", zap.String("user_id", user.ID))
	return &WebhookResult{Message: "User created", UserID: user.ID}, nil
}

func primaryEmail(data entities.IdentityUser) string {
	for _, e := range data.EmailAddresses {
		if e.ID == data.PrimaryEmailAddressID {
			return e.EmailAddress
		}
	}
	return ""
}

func fullName(first, last *string) string {
	f, l := defaultFirstName, defaultLastName
	if first != nil && strings.TrimSpace(*first) != "" {
		f = strings.TrimSpace(*first)
	}
	if last != nil && strings.TrimSpace(*last) != "" {
		l = strings.TrimSpace(*last)
	}
	return f + " " + l
}

// phoneDigits keeps the digits of the first number, trimmed to the column width.
func phoneDigits(numbers []entities.IdentityPhoneNumber) string {
	if len(numbers) == 0 {
		return defaultPhone
	}
	var b strings.Builder
	for _, r := range numbers[0].PhoneNumber {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return defaultPhone
	}
	if len(digits) > maxPhoneDigits {
		digits = digits[len(digits)-maxPhoneDigits:]
	}
	return digits
}
