// ABOUTME: Form-level validation for companies and communications
// ABOUTME: Applied by the CLI, MCP and TUI forms; the store never calls it
package models

import (
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"strings"
)

// ErrValidation is wrapped by every validation failure.
var ErrValidation = errors.New("validation failed")

func invalid(field, msg string) error {
	return fmt.Errorf("%s: %s: %w", field, msg, ErrValidation)
}

// Validate checks the company form rules.
func (c *Company) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return invalid("name", "company name is required")
	}
	if strings.TrimSpace(c.Location) == "" {
		return invalid("location", "location is required")
	}
	if c.LinkedInProfile != "" {
		u, err := url.ParseRequestURI(c.LinkedInProfile)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return invalid("linkedinProfile", "invalid LinkedIn URL")
		}
	}
	if len(c.Emails) == 0 {
		return invalid("emails", "at least one email is required")
	}
	for _, e := range c.Emails {
		addr, err := mail.ParseAddress(e)
		if err != nil || addr.Address != e {
			return invalid("emails", fmt.Sprintf("invalid email %q", e))
		}
	}
	if len(c.PhoneNumbers) == 0 {
		return invalid("phoneNumbers", "at least one phone number is required")
	}
	if c.CommunicationPeriodicity < 1 {
		return invalid("communicationPeriodicity", "periodicity must be at least 1 day")
	}
	return nil
}

// Validate checks the communication form rules.
func (c *Communication) Validate() error {
	if strings.TrimSpace(c.CompanyID) == "" {
		return invalid("companyId", "company is required")
	}
	if c.MethodID == "" {
		return invalid("methodId", "method is required")
	}
	if _, ok := LookupMethod(c.MethodID); !ok {
		return invalid("methodId", fmt.Sprintf("unknown method %q", c.MethodID))
	}
	if c.Date == "" {
		return invalid("date", "date is required")
	}
	if _, err := ParseDate(c.Date, nil); err != nil {
		return invalid("date", err.Error())
	}
	return nil
}

// SplitList turns a comma-separated form field into its trimmed, non-empty parts.
func SplitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
