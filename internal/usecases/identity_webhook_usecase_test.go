package usecases_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"homeservice.backend/internal/domain/entities"
	domainerrors "homeservice.backend/internal/domain/errors"
	"homeservice.backend/internal/usecases"
)

const userCreatedPayload = `{
	"type": "user.created",
	"data": {
		"id": "user_2abc",
		"first_name": "Meera",
		"last_name": null,
		"primary_email_address_id": "idn_2",
		"email_addresses": [
			{"id": "idn_1", "email_address": "old@mail.com"},
			{"id": "idn_2", "email_address": "meera@mail.com"}
		],
		"phone_numbers": [{"id": "phn_1", "phone_number": "+91 98300-12345"}]
	}
}`

func newWebhookUsecase() (*usecases.IdentityWebhookUsecase, *MockVerifier, *MockUserRepository) {
	verifier := new(MockVerifier)
	repo := new(MockUserRepository)
	users := usecases.NewUserUsecase(repo, new(MockUnitOfWork))
	return usecases.NewIdentityWebhookUsecase(verifier, users), verifier, repo
}

func TestIdentityWebhookUsecase_UserCreated(t *testing.T) {
	uc, verifier, repo := newWebhookUsecase()
	ctx := context.Background()
	headers := http.Header{}

	verifier.On("Verify", []byte(userCreatedPayload), headers).Return(nil).Once()
	repo.On("GetByID", ctx, "user_2abc").Return(nil, domainerrors.ErrNotFound).Once()
	repo.On("Create", ctx, mock.MatchedBy(func(u *entities.User) bool {
		return u.ID == "user_2abc" &&
			u.Email == "meera@mail.com" &&
			u.FullName == "Meera Name" &&
			u.PhoneNumber == "919830012345"
	})).Return(nil).Once()

	res, err := uc.Handle(ctx, []byte(userCreatedPayload), headers)
	require.NoError(t, err)
	assert.Equal(t, "User created", res.Message)
	assert.Equal(t, "user_2abc", res.UserID)
	repo.AssertExpectations(t)
}

func TestIdentityWebhookUsecase_Redelivery(t *testing.T) {
	uc, verifier, repo := newWebhookUsecase()
	ctx := context.Background()
	verifier.On("Verify", mock.Anything, mock.Anything).Return(nil).Once()
	repo.On("GetByID", ctx, "user_2abc").Return(&entities.User{ID: "user_2abc"}, nil).Once()

	res, err := uc.Handle(ctx, []byte(userCreatedPayload), http.Header{})
	require.NoError(t, err)
	assert.Equal(t, "user_2abc", res.UserID)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestIdentityWebhookUsecase_DefaultsWhenMissing(t *testing.T) {
	uc, verifier, repo := newWebhookUsecase()
	ctx := context.Background()
	payload := []byte(`{"type":"user.created","data":{"id":"user_x","primary_email_address_id":"e1","email_addresses":[{"id":"e1","email_address":"x@mail.com"}]}}`)

	verifier.On("Verify", mock.Anything, mock.Anything).Return(nil).Once()
	repo.On("GetByID", ctx, "user_x").Return(nil, domainerrors.ErrNotFound).Once()
	repo.On("Create", ctx, mock.MatchedBy(func(u *entities.User) bool {
		return u.FullName == "User Name" && u.PhoneNumber == "919999999999"
	})).Return(nil).Once()

	_, err := uc.Handle(ctx, payload, http.Header{})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestIdentityWebhookUsecase_InvalidSignature(t *testing.T) {
	uc, verifier, repo := newWebhookUsecase()
	verifier.On("Verify", mock.Anything, mock.Anything).Return(domainerrors.ErrInvalidSignature).Once()

	_, err := uc.Handle(context.Background(), []byte(userCreatedPayload), http.Header{})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidSignature)
	assert.Equal(t, http.StatusBadRequest, domainerrors.FromError(err).Status)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestIdentityWebhookUsecase_NotConfigured(t *testing.T) {
	repo := new(MockUserRepository)
	uc := usecases.NewIdentityWebhookUsecase(nil, usecases.NewUserUsecase(repo, new(MockUnitOfWork)))
	assert.False(t, uc.Configured())

	_, err := uc.Handle(context.Background(), []byte(userCreatedPayload), http.Header{})
	assert.ErrorIs(t, err, domainerrors.ErrNotConfigured)
}

func TestIdentityWebhookUsecase_NoPrimaryEmail(t *testing.T) {
	uc, verifier, repo := newWebhookUsecase()
	payload := []byte(`{"type":"user.created","data":{"id":"user_x","primary_email_address_id":"missing","email_addresses":[{"id":"e1","email_address":"x@mail.com"}]}}`)
	verifier.On("Verify", mock.Anything, mock.Anything).Return(nil).Once()

	_, err := uc.Handle(context.Background(), payload, http.Header{})
	assert.Equal(t, "No primary email found", domainerrors.FromError(err).Message)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestIdentityWebhookUsecase_CreateFails(t *testing.T) {
	uc, verifier, repo := newWebhookUsecase()
	ctx := context.Background()
	verifier.On("Verify", mock.Anything, mock.Anything).Return(nil).Once()
	repo.On("GetByID", ctx, "user_2abc").Return(nil, domainerrors.ErrNotFound).Once()
	repo.On("Create", ctx, mock.Anything).Return(errors.New("duplicate email")).Once()

	_, err := uc.Handle(ctx, []byte(userCreatedPayload), http.Header{})
	appErr := domainerrors.FromError(err)
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
	assert.Equal(t, "Failed to create user", appErr.Message)
}

func TestIdentityWebhookUsecase_OtherEvent(t *testing.T) {
	uc, verifier, repo := newWebhookUsecase()
	verifier.On("Verify", mock.Anything, mock.Anything).Return(nil).Once()

	res, err := uc.Handle(context.Background(), []byte(`{"type":"session.created","data":{}}`), http.Header{})
	require.NoError(t, err)
	assert.Equal(t, "Webhook processed", res.Message)
	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestIdentityWebhookUsecase_MalformedJSON(t *testing.T) {
	uc, verifier, _ := newWebhookUsecase()
	verifier.On("Verify", mock.Anything, mock.Anything).Return(nil).Once()

	_, err := uc.Handle(context.Background(), []byte(`{not json`), http.Header{})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}
