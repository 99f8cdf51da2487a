package registration

import (
	"context"
	"errors"

	"github.com/canfinancialsolutions/can-registration-app/internal/mailer"
	registrationerrors "github.com/canfinancialsolutions/can-registration-app/internal/registration/errors"

	"go.uber.org/zap"
)

//go:generate mockgen -destination=mock/registration_service_mock.go -package=mock . Service
type Service interface {
	Submit(ctx context.Context, req SubmitRegistrationRequest) error
}

// Options configure the notification side of a submission. Empty
// AdminNotifyEmail disables the internal copy, empty LogoURL drops the logo
// block from the rendered email.
type Options struct {
	FromName         string
	LogoURL          string
	AdminNotifyEmail string
}

type service struct {
	repo   Repository
	mailer mailer.Mailer
	opts   Options
	logger *zap.Logger
}

func NewService(repo Repository, m mailer.Mailer, opts Options, logger ...*zap.Logger) Service {
	l := zap.L().Named("registration.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("registration.service")
	}
	return &service{repo: repo, mailer: m, opts: opts, logger: l}
}

// Submit runs the whole intake pipeline: validate, persist once, send the
// confirmation, then the optional best-effort admin copy. Persistence always
// happens before any send, so a failed send leaves the record committed.
func (s *service) Submit(ctx context.Context, req SubmitRegistrationRequest) error {
	norm := req.normalized()

	if err := validateSubmission(norm); err != nil {
		return err
	}

	reg := norm.toEntity()
	if err := s.repo.Create(ctx, reg); err != nil {
		return mapStorageError(err)
	}

	html, err := renderConfirmationHTML(reg, s.opts.FromName, s.opts.LogoURL)
	if err != nil {
		// Record sudah tersimpan; kegagalan render diperlakukan sama dengan
		// kegagalan kirim.
		return registrationerrors.EmailFailed(err, err.Error())
	}

	if err := s.sendConfirmation(ctx, reg, html); err != nil {
		return err
	}

	s.sendAdminCopy(ctx, html)

	return nil
}

// validateSubmission enforces the request contract on a normalized request.
// The email gate fires first, then the section rules, then the aggregated
// missing-fields report.
func validateSubmission(norm SubmitRegistrationRequest) error {
	if !IsValidEmail(norm.Email) {
		return registrationerrors.ErrInvalidEmail
	}

	if ShowsEntrepreneurship(norm.InterestType) && len(norm.BusinessOpportunities) == 0 {
		return registrationerrors.ErrMissingBusinessOpportunities
	}
	if ShowsClient(norm.InterestType) && len(norm.WealthSolutions) == 0 {
		return registrationerrors.ErrMissingWealthSolutions
	}

	if missing := missingFields(norm); len(missing) > 0 {
		return registrationerrors.MissingFields(missing)
	}

	return nil
}

func (s *service) sendConfirmation(ctx context.Context, reg *Registration, html string) error {
	msg := mailer.Message{
		ToEmail:  reg.Email,
		ToName:   reg.FirstName + " " + reg.LastName,
		Subject:  confirmationHeading + " - " + s.opts.FromName,
		HTMLBody: html,
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		s.logger.Error("confirmation email failed",
			zap.String("registration_id", reg.ID.String()), zap.Error(err))

		var dErr *mailer.DeliveryError
		if errors.As(err, &dErr) {
			return registrationerrors.EmailFailed(err, dErr.Detail)
		}
		return registrationerrors.EmailFailed(err, err.Error())
	}

	return nil
}

// sendAdminCopy is best-effort: a failure is logged and never surfaced to
// the submitter.
func (s *service) sendAdminCopy(ctx context.Context, html string) {
	if s.opts.AdminNotifyEmail == "" {
		return
	}

	msg := mailer.Message{
		ToEmail:  s.opts.AdminNotifyEmail,
		ToName:   "Admin",
		Subject:  adminHeading + " - " + s.opts.FromName,
		HTMLBody: retitleForAdmin(html),
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		s.logger.Warn("admin notification failed", zap.Error(err))
	}
}
