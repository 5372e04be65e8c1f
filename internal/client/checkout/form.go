package checkout

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/ekozlova/artshop/internal/client/models"
)

var ErrFormIncomplete = errors.New("contact form incomplete")

// validateForm checks the required contact fields locally. A failure here
// blocks the step transition before any network call is made.
func validateForm(f models.ContactForm) error {
	var missing []string
	if strings.TrimSpace(f.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(f.Email) == "" {
		missing = append(missing, "email")
	} else if _, err := mail.ParseAddress(f.Email); err != nil {
		return fmt.Errorf("%w: invalid email %q", ErrFormIncomplete, f.Email)
	}
	if strings.TrimSpace(f.Phone) == "" {
		missing = append(missing, "phone")
	}
	if strings.TrimSpace(f.Address) == "" {
		missing = append(missing, "address")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrFormIncomplete, strings.Join(missing, ", "))
	}
	return nil
}
