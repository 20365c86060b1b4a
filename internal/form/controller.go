// Package form drives the waitlist signup form: field state, validation and the
// single request sent per submit.
package form

import (
	"context"
	"errors"
	"sync"

	"github.com/akeren/waitlist-relay/internal/models"
)

var ErrSubmitInProgress = errors.New("form: a submission is already in flight")

//go:generate mockgen -source=controller.go -destination=mock_controller.go -package=form

type Submitter interface {
	Submit(ctx context.Context, submission *models.WaitlistSubmission) error
}

// Controller is safe for concurrent use. At most one submission is in flight.
type Controller struct {
	submitter Submitter
	notifier  Notifier

	mu      sync.Mutex
	fields  Fields
	loading bool
}

func NewController(submitter Submitter, notifier Notifier) *Controller {
	return &Controller{submitter: submitter, notifier: notifier}
}

func (c *Controller) SetName(v string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fields.Name = v
}

func (c *Controller) SetEmail(v string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fields.Email = v
}

func (c *Controller) SetProfession(v string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fields.Profession = v
}

// SetReferralSource selects an option. Anything but "Other" drops the override.
func (c *Controller) SetReferralSource(v string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fields.ReferralSource = v
	if !models.ReferralSource(v).IsOther() {
		c.fields.OtherReferralSource = ""
	}
}

func (c *Controller) SetOtherReferralSource(v string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fields.OtherReferralSource = v
}

func (c *Controller) Fields() Fields {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fields
}

func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Submit validates the current fields and sends them once. Validation failures
// are reported through Notifier.Warn without contacting the relay. Fields are
// cleared only after a confirmed success; the loading flag is always released.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.loading {
		c.mu.Unlock()
		return ErrSubmitInProgress
	}

	snapshot := c.fields
	if err := Validate(snapshot); err != nil {
		c.mu.Unlock()
		c.notifier.Warn(ToastMessage(err))
		return err
	}

	c.loading = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.loading = false
		c.mu.Unlock()
	}()

	c.notifier.Pending(MessagePending)

	if err := c.submitter.Submit(ctx, snapshot.Submission()); err != nil {
		c.notifier.Error(ToastMessage(err))
		return err
	}

	c.mu.Lock()
	c.fields = Fields{}
	c.mu.Unlock()

	c.notifier.Success(MessageSuccess)
	return nil
}
