package requests

import (
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/foomo/showcase/content"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

const (
	maxNameLength    = 100
	maxSubjectLength = 200
	maxMessageLength = 5000
)

// Contact - a message sent through the contact form
type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	// optional, empty is stored as null
	Company string `json:"company"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Validate returns all problems with the form at once
func (c *Contact) Validate() error {
	var err error
	err = multierr.Append(err, required("name", c.Name, maxNameLength))
	err = multierr.Append(err, required("subject", c.Subject, maxSubjectLength))
	err = multierr.Append(err, required("message", c.Message, maxMessageLength))
	if strings.TrimSpace(c.Email) == "" {
		err = multierr.Append(err, errors.New("email is required"))
	} else if _, e := mail.ParseAddress(c.Email); e != nil {
		err = multierr.Append(err, errors.Errorf("email %q is invalid", c.Email))
	}
	return err
}

// Submission returns the row to insert into the contact submissions
func (c *Contact) Submission(now time.Time) content.Row {
	row := content.Row{
		"name":    c.Name,
		"email":   c.Email,
		"company": nil,
		"subject": c.Subject,
		"message": c.Message,
	}
	row[content.FieldIsRead] = false
	row[content.FieldCreatedAt] = now.UTC().Format(time.RFC3339Nano)
	if company := strings.TrimSpace(c.Company); company != "" {
		row["company"] = company
	}
	return row
}

func required(field, value string, limit int) error {
	switch v := strings.TrimSpace(value); {
	case v == "":
		return errors.Errorf("%s is required", field)
	case utf8.RuneCountInString(v) > limit:
		return errors.Errorf("%s must not be longer than %d characters", field, limit)
	}
	return nil
}
