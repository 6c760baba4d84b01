package identity

import (
	"fmt"
	"net/http"

	svix "github.com/svix/svix-webhooks/go"
	domainerrors "homeservice.backend/internal/domain/errors"
)

// Signature headers sent with every identity provider webhook
const (
	HeaderID        = "svix-id"
	HeaderTimestamp = "svix-timestamp"
	HeaderSignature = "svix-signature"
)

var ErrMissingHeaders = fmt.Errorf("%w: missing svix headers", domainerrors.ErrInvalidSignature)

// SvixVerifier checks webhook signatures over the raw request body
type SvixVerifier struct {
	wh *svix.Webhook
}

// NewSvixVerifier builds a verifier from a whsec_ signing secret.
func NewSvixVerifier(secret string) (*SvixVerifier, error) {
	if secret == "" {
		return nil, domainerrors.ErrNotConfigured
	}
	wh, err := svix.NewWebhook(secret)
	if err != nil {
		return nil, fmt.Errorf("invalid webhook secret: %w", err)
	}
	return &SvixVerifier{wh: wh}, nil
}

// Verify fails with ErrInvalidSignature when a header is missing or the signature does not match.
func (v *SvixVerifier) Verify(payload []byte, headers http.Header) error {
	if headers.Get(HeaderID) == "" || headers.Get(HeaderTimestamp) == "" || headers.Get(HeaderSignature) == "" {
		return ErrMissingHeaders
	}
	if err := v.wh.Verify(payload, headers); err != nil {
		return fmt.Errorf("%w: %v", domainerrors.ErrInvalidSignature, err)
	}
	return nil
}
