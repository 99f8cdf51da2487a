package form

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/canfinancialsolutions/can-registration-app/internal/registration"
)

// Days and Times list the selectable meeting preferences in display order.
var (
	Days  = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	Times = []string{"AM", "PM"}
)

var (
	// ErrIncomplete blocks submission while required fields are missing. No
	// network call happens in that case.
	ErrIncomplete = errors.New("Please complete all required fields before submitting.")

	// ErrSubmissionInFlight rejects a second submit while one is pending.
	ErrSubmissionInFlight = errors.New("A submission is already in progress.")
)

type submitter interface {
	Submit(ctx context.Context, req registration.SubmitRegistrationRequest) error
}

// Collector holds the mutable form state and drives one submission at a
// time. All methods are safe for concurrent use, though a form normally has
// a single writer.
type Collector struct {
	mu     sync.Mutex
	data   registration.SubmitRegistrationRequest
	client submitter

	submitting     bool
	submitted      bool
	submittedEmail string
}

func NewCollector(client *Client) *Collector {
	return &Collector{client: client}
}

func (c *Collector) SetInterestType(v string) {
	c.set(func(d *registration.SubmitRegistrationRequest) { d.InterestType = v })
}

func (c *Collector) SetFirstName(v string) {
	c.set(func(d *registration.SubmitRegistrationRequest) { d.FirstName = v })
}

func (c *Collector) SetLastName(v string) {
	c.set(func(d *registration.SubmitRegistrationRequest) { d.LastName = v })
}

func (c *Collector) SetPhone(v string) {
	c.set(func(d *registration.SubmitRegistrationRequest) { d.Phone = v })
}

func (c *Collector) SetEmail(v string) {
	c.set(func(d *registration.SubmitRegistrationRequest) { d.Email = v })
}

func (c *Collector) SetProfession(v string) {
	c.set(func(d *registration.SubmitRegistrationRequest) { d.Profession = v })
}

func (c *Collector) SetReferredBy(v string) {
	c.set(func(d *registration.SubmitRegistrationRequest) { d.ReferredBy = v })
}

func (c *Collector) ToggleBusinessOpportunity(id string) {
	c.set(func(d *registration.SubmitRegistrationRequest) { d.BusinessOpportunities = toggle(d.BusinessOpportunities, id) })
}

func (c *Collector) ToggleWealthSolution(id string) {
	c.set(func(d *registration.SubmitRegistrationRequest) { d.WealthSolutions = toggle(d.WealthSolutions, id) })
}

func (c *Collector) TogglePreferredDay(day string) {
	c.set(func(d *registration.SubmitRegistrationRequest) { d.PreferredDays = toggle(d.PreferredDays, day) })
}

func (c *Collector) TogglePreferredTime(t string) {
	c.set(func(d *registration.SubmitRegistrationRequest) { d.PreferredTime = toggle(d.PreferredTime, t) })
}

func (c *Collector) set(fn func(*registration.SubmitRegistrationRequest)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(&c.data)
}

// toggle inserts v when absent and removes it when present, keeping the
// remaining order stable.
func toggle(set []string, v string) []string {
	for i, existing := range set {
		if existing == v {
			return append(set[:i:i], set[i+1:]...)
		}
	}
	return append(set, v)
}

// Snapshot returns a copy of the current field values.
func (c *Collector) Snapshot() registration.SubmitRegistrationRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	return copyData(c.data)
}

// ShowEntrepreneurship reports whether the entrepreneurship section is
// currently visible (and therefore required).
func (c *Collector) ShowEntrepreneurship() bool {
	return registration.ShowsEntrepreneurship(c.Snapshot().InterestType)
}

// ShowClient reports whether the client section is currently visible.
func (c *Collector) ShowClient() bool {
	return registration.ShowsClient(c.Snapshot().InterestType)
}

// CanSubmit recomputes submit-readiness from a snapshot of the current
// state. It is a pure function of the fields; nothing is cached.
func (c *Collector) CanSubmit() bool {
	return canSubmit(c.Snapshot())
}

func canSubmit(d registration.SubmitRegistrationRequest) bool {
	requiredOk := strings.TrimSpace(d.InterestType) != "" &&
		strings.TrimSpace(d.FirstName) != "" &&
		strings.TrimSpace(d.LastName) != "" &&
		strings.TrimSpace(d.Phone) != "" &&
		registration.IsValidEmail(d.Email) &&
		len(d.PreferredDays) > 0 &&
		len(d.PreferredTime) > 0 &&
		strings.TrimSpace(d.ReferredBy) != ""

	interestOk := (!registration.ShowsEntrepreneurship(d.InterestType) || len(d.BusinessOpportunities) > 0) &&
		(!registration.ShowsClient(d.InterestType) || len(d.WealthSolutions) > 0)

	return requiredOk && interestOk
}

// Submit sends the form once. It fails closed when readiness is false and
// refuses to start a second request while one is outstanding. On success the
// collector switches to its submitted state, keeping the email the
// confirmation went to.
func (c *Collector) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.submitting {
		c.mu.Unlock()
		return ErrSubmissionInFlight
	}
	snapshot := copyData(c.data)
	if !canSubmit(snapshot) {
		c.mu.Unlock()
		return ErrIncomplete
	}
	c.submitting = true
	c.mu.Unlock()

	payload := trimmed(snapshot)
	err := c.client.Submit(ctx, payload)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.submitting = false
	if err != nil {
		return err
	}

	c.submitted = true
	c.submittedEmail = payload.Email
	return nil
}

// Submitted reports whether a submission has succeeded and, if so, the email
// address the confirmation was sent to.
func (c *Collector) Submitted() (bool, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitted, c.submittedEmail
}

func trimmed(d registration.SubmitRegistrationRequest) registration.SubmitRegistrationRequest {
	d.FirstName = strings.TrimSpace(d.FirstName)
	d.LastName = strings.TrimSpace(d.LastName)
	d.Phone = strings.TrimSpace(d.Phone)
	d.Email = strings.TrimSpace(d.Email)
	d.Profession = strings.TrimSpace(d.Profession)
	d.ReferredBy = strings.TrimSpace(d.ReferredBy)
	return d
}

func copyData(d registration.SubmitRegistrationRequest) registration.SubmitRegistrationRequest {
	out := d
	out.BusinessOpportunities = append([]string(nil), d.BusinessOpportunities...)
	out.WealthSolutions = append([]string(nil), d.WealthSolutions...)
	out.PreferredDays = append([]string(nil), d.PreferredDays...)
	out.PreferredTime = append([]string(nil), d.PreferredTime...)
	return out
}
