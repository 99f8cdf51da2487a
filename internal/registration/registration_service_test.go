package registration_test

import (
	"context"
	"errors"
	"testing"

	"github.com/canfinancialsolutions/can-registration-app/internal/mailer"
	"github.com/canfinancialsolutions/can-registration-app/internal/registration"
	"github.com/canfinancialsolutions/can-registration-app/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	createFn func(ctx context.Context, reg *registration.Registration) error
}

func (f *fakeRepo) Create(ctx context.Context, reg *registration.Registration) error {
	return f.createFn(ctx, reg)
}

type fakeMailer struct {
	sendFn func(ctx context.Context, msg mailer.Message) error
}

func (f *fakeMailer) Send(ctx context.Context, msg mailer.Message) error {
	return f.sendFn(ctx, msg)
}

func validRequest() registration.SubmitRegistrationRequest {
	return registration.SubmitRegistrationRequest{
		InterestType:          "both",
		BusinessOpportunities: []string{"own_business"},
		WealthSolutions:       []string{"retirement"},
		FirstName:             "Jane",
		LastName:              "Doe",
		Phone:                 "(555) 123-4567",
		Email:                 "jane@doe.co",
		Profession:            "Nurse",
		PreferredDays:         []string{"Monday", "Friday"},
		PreferredTime:         []string{"PM"},
		ReferredBy:            "A friend",
	}
}

func TestService_Submit_PersistsThenNotifies(t *testing.T) {
	ctx := context.Background()

	var steps []string
	var saved registration.Registration

	repo := &fakeRepo{createFn: func(ctx context.Context, reg *registration.Registration) error {
		steps = append(steps, "persist")
		saved = *reg
		return nil
	}}
	var sent []mailer.Message
	m := &fakeMailer{sendFn: func(ctx context.Context, msg mailer.Message) error {
		steps = append(steps, "send")
		sent = append(sent, msg)
		return nil
	}}

	svc := registration.NewService(repo, m, registration.Options{FromName: "CAN Thrive Together Network"})

	err := svc.Submit(ctx, validRequest())

	assert.NoError(t, err)
	assert.Equal(t, []string{"persist", "send"}, steps)
	assert.Equal(t, "new", saved.Status)
	assert.Equal(t, "both", saved.InterestType)
	assert.Len(t, sent, 1)
	assert.Equal(t, "jane@doe.co", sent[0].ToEmail)
	assert.Equal(t, "Jane Doe", sent[0].ToName)
	assert.Equal(t, "Registration Confirmation - CAN Thrive Together Network", sent[0].Subject)
}

func TestService_Submit_NormalizesBeforePersist(t *testing.T) {
	ctx := context.Background()

	var saved registration.Registration
	repo := &fakeRepo{createFn: func(ctx context.Context, reg *registration.Registration) error {
		saved = *reg
		return nil
	}}
	m := &fakeMailer{sendFn: func(ctx context.Context, msg mailer.Message) error { return nil }}
	svc := registration.NewService(repo, m, registration.Options{FromName: "CAN"})

	req := validRequest()
	req.InterestType = "  Entrepreneurship "
	req.WealthSolutions = nil
	req.FirstName = "  Jane "
	req.Email = " jane@doe.co "
	req.Profession = ""

	err := svc.Submit(ctx, req)

	assert.NoError(t, err)
	assert.Equal(t, "entrepreneurship", saved.InterestType)
	assert.Equal(t, "Jane", saved.FirstName)
	assert.Equal(t, "jane@doe.co", saved.Email)
	assert.Equal(t, "", saved.Profession)
	assert.NotNil(t, saved.WealthSolutions)
	assert.Empty(t, saved.WealthSolutions)
}

func TestService_Submit_ConditionalSections(t *testing.T) {
	ctx := context.Background()

	repo := &fakeRepo{createFn: func(ctx context.Context, reg *registration.Registration) error { return nil }}
	m := &fakeMailer{sendFn: func(ctx context.Context, msg mailer.Message) error { return nil }}
	svc := registration.NewService(repo, m, registration.Options{FromName: "CAN"})

	t.Run("entrepreneurship does not require wealth solutions", func(t *testing.T) {
		req := validRequest()
		req.InterestType = "entrepreneurship"
		req.WealthSolutions = nil
		assert.NoError(t, svc.Submit(ctx, req))
	})

	t.Run("entrepreneurship requires business opportunities", func(t *testing.T) {
		req := validRequest()
		req.InterestType = "entrepreneurship"
		req.BusinessOpportunities = nil
		err := svc.Submit(ctx, req)
		assert.EqualError(t, err, "Select at least one entrepreneurship option")
	})

	t.Run("client does not require business opportunities", func(t *testing.T) {
		req := validRequest()
		req.InterestType = "client"
		req.BusinessOpportunities = nil
		assert.NoError(t, svc.Submit(ctx, req))
	})

	t.Run("client requires wealth solutions", func(t *testing.T) {
		req := validRequest()
		req.InterestType = "client"
		req.WealthSolutions = []string{}
		err := svc.Submit(ctx, req)
		assert.EqualError(t, err, "Select at least one wealth solution option")
	})

	t.Run("both requires both sections", func(t *testing.T) {
		req := validRequest()
		req.WealthSolutions = nil
		err := svc.Submit(ctx, req)
		assert.EqualError(t, err, "Select at least one wealth solution option")
	})
}

func TestService_Submit_ValidationErrors(t *testing.T) {
	ctx := context.Background()

	persisted := false
	repo := &fakeRepo{createFn: func(ctx context.Context, reg *registration.Registration) error {
		persisted = true
		return nil
	}}
	sends := 0
	m := &fakeMailer{sendFn: func(ctx context.Context, msg mailer.Message) error {
		sends++
		return nil
	}}
	svc := registration.NewService(repo, m, registration.Options{FromName: "CAN"})

	t.Run("invalid email", func(t *testing.T) {
		req := validRequest()
		req.Email = "a@b"
		err := svc.Submit(ctx, req)
		assert.EqualError(t, err, "Invalid email")
	})

	t.Run("invalid email wins over missing fields", func(t *testing.T) {
		req := validRequest()
		req.Email = "abc"
		req.ReferredBy = ""
		err := svc.Submit(ctx, req)
		assert.EqualError(t, err, "Invalid email")
	})

	t.Run("missing referred_by is named", func(t *testing.T) {
		req := validRequest()
		req.ReferredBy = "   "
		err := svc.Submit(ctx, req)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Missing:")
		assert.Contains(t, err.Error(), "referred_by")
	})

	t.Run("all missing fields collected", func(t *testing.T) {
		req := validRequest()
		req.Phone = ""
		req.ReferredBy = ""
		req.PreferredDays = nil
		err := svc.Submit(ctx, req)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "phone")
		assert.Contains(t, err.Error(), "preferred_days")
		assert.Contains(t, err.Error(), "referred_by")
	})

	t.Run("missing preferred time", func(t *testing.T) {
		req := validRequest()
		req.PreferredTime = []string{}
		err := svc.Submit(ctx, req)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "preferred_time")
	})

	// Client-error exits happen before any side effect.
	assert.False(t, persisted)
	assert.Zero(t, sends)
}

func TestService_Submit_StorageFailure(t *testing.T) {
	ctx := context.Background()

	repo := &fakeRepo{createFn: func(ctx context.Context, reg *registration.Registration) error {
		return errors.New("connection refused")
	}}
	sends := 0
	m := &fakeMailer{sendFn: func(ctx context.Context, msg mailer.Message) error {
		sends++
		return nil
	}}
	svc := registration.NewService(repo, m, registration.Options{FromName: "CAN"})

	err := svc.Submit(ctx, validRequest())

	assert.Error(t, err)
	status, appErr := apperror.ToHTTP(err)
	assert.Equal(t, 500, status)
	assert.Equal(t, "connection refused", appErr.Message)
	// No email for a record that failed to persist.
	assert.Zero(t, sends)
}

func TestService_Submit_EmailFailureAfterPersist(t *testing.T) {
	ctx := context.Background()

	persisted := false
	repo := &fakeRepo{createFn: func(ctx context.Context, reg *registration.Registration) error {
		persisted = true
		return nil
	}}
	m := &fakeMailer{sendFn: func(ctx context.Context, msg mailer.Message) error {
		return &mailer.DeliveryError{StatusCode: 401, Detail: `{"ErrorMessage":"bad key"}`}
	}}
	svc := registration.NewService(repo, m, registration.Options{FromName: "CAN"})

	err := svc.Submit(ctx, validRequest())

	assert.Error(t, err)
	status, appErr := apperror.ToHTTP(err)
	assert.Equal(t, 502, status)
	assert.Equal(t, "Email failed", appErr.Message)
	assert.Contains(t, appErr.Detail, "bad key")
	// The write already committed; delivery failure does not roll it back.
	assert.True(t, persisted)
}

func TestService_Submit_AdminCopy(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{createFn: func(ctx context.Context, reg *registration.Registration) error { return nil }}

	t.Run("sent when configured", func(t *testing.T) {
		var sent []mailer.Message
		m := &fakeMailer{sendFn: func(ctx context.Context, msg mailer.Message) error {
			sent = append(sent, msg)
			return nil
		}}
		svc := registration.NewService(repo, m, registration.Options{
			FromName:         "CAN",
			AdminNotifyEmail: "admin@can.co",
		})

		assert.NoError(t, svc.Submit(ctx, validRequest()))
		assert.Len(t, sent, 2)
		assert.Equal(t, "admin@can.co", sent[1].ToEmail)
		assert.Equal(t, "New Client Registration - CAN", sent[1].Subject)
		assert.Contains(t, sent[1].HTMLBody, "New Client Registration")
	})

	t.Run("failure is swallowed", func(t *testing.T) {
		calls := 0
		m := &fakeMailer{sendFn: func(ctx context.Context, msg mailer.Message) error {
			calls++
			if calls == 2 {
				return &mailer.DeliveryError{StatusCode: 500, Detail: "boom"}
			}
			return nil
		}}
		svc := registration.NewService(repo, m, registration.Options{
			FromName:         "CAN",
			AdminNotifyEmail: "admin@can.co",
		})

		assert.NoError(t, svc.Submit(ctx, validRequest()))
		assert.Equal(t, 2, calls)
	})

	t.Run("skipped when not configured", func(t *testing.T) {
		calls := 0
		m := &fakeMailer{sendFn: func(ctx context.Context, msg mailer.Message) error {
			calls++
			return nil
		}}
		svc := registration.NewService(repo, m, registration.Options{FromName: "CAN"})

		assert.NoError(t, svc.Submit(ctx, validRequest()))
		assert.Equal(t, 1, calls)
	})
}
