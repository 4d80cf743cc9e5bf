package domain

import "time"

// Account is the domain model for registered users, administrators and
// standard members alike. Contact fields are mutated through validating
// setters; a rejected assignment leaves the previous value untouched.
type Account struct {
	ID           string
	Username     string
	PasswordHash string
	IsAdmin      bool
	IsActive     bool

	email         Email
	personalEmail Email
	phone         Phone
	priority      Priority
	timeWindow    *TimeWindow

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SetEmail assigns the login email after validation.
func (a *Account) SetEmail(raw string) error {
	email, err := ParseEmail(raw)
	if err != nil {
		return err
	}
	a.email = email
	return nil
}

// Email returns the login email.
func (a *Account) Email() Email {
	return a.email
}

// SetPersonalEmail assigns the personal email, stored separately from
// the login email.
func (a *Account) SetPersonalEmail(raw string) error {
	email, err := ParseEmail(raw)
	if err != nil {
		return err
	}
	a.personalEmail = email
	return nil
}

// PersonalEmail returns the personal email.
func (a *Account) PersonalEmail() Email {
	return a.personalEmail
}

// SetPhone assigns the phone number after validation.
func (a *Account) SetPhone(raw string) error {
	phone, err := ParsePhone(raw)
	if err != nil {
		return err
	}
	a.phone = phone
	return nil
}

// Phone returns the phone number.
func (a *Account) Phone() Phone {
	return a.phone
}

// SetPriority assigns the default notification priority, normalized to
// its canonical lowercase form.
func (a *Account) SetPriority(raw string) error {
	priority, err := ParsePriority(raw)
	if err != nil {
		return err
	}
	a.priority = priority
	return nil
}

// Priority returns the configured priority, falling back to the
// account-level default when unset.
func (a *Account) Priority() Priority {
	return a.priority.OrDefault(DefaultPriority)
}

// SetTimeWindow assigns the delivery time window.
func (a *Account) SetTimeWindow(start, end time.Time) error {
	window, err := NewTimeWindow(start, end)
	if err != nil {
		return err
	}
	a.timeWindow = window
	return nil
}

// TimeWindow returns the configured window, or nil when never set.
func (a *Account) TimeWindow() *TimeWindow {
	return a.timeWindow
}

// Hydrate restores validated fields from storage without re-running
// validation; repositories own the only call sites.
func (a *Account) Hydrate(email, personalEmail, phone string, priority Priority, window *TimeWindow) {
	a.email = Email(email)
	a.personalEmail = Email(personalEmail)
	a.phone = Phone(phone)
	a.priority = priority
	a.timeWindow = window
}
