package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// emailPattern treats the same characters as whitespace as a browser does:
// ASCII space, \v, Unicode separators and the BOM
var emailPattern = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)

// ContactForm is a visitor's message
type ContactForm struct {
	Name    string `json:"name" validate:"required,minunits=2,maxunits=50"`
	Email   string `json:"email" validate:"required,contactemail"`
	Message string `json:"message" validate:"required,minunits=10,maxunits=1000"`
}

// Normalize trims surrounding whitespace from every field
func (f ContactForm) Normalize() ContactForm {
	return ContactForm{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Message: strings.TrimSpace(f.Message),
	}
}

// ContactErrors holds at most one message per field
type ContactErrors struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Message string `json:"message,omitempty"`
}

// Empty reports whether no field failed
func (e ContactErrors) Empty() bool {
	return e == ContactErrors{}
}

// ContactReceipt acknowledges an accepted submission
type ContactReceipt struct {
	ID          string    `json:"id"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// ContactResult is the outcome of a submission: either errors or a receipt
type ContactResult struct {
	Errors  ContactErrors   `json:"errors"`
	Receipt *ContactReceipt `json:"receipt,omitempty"`
}

// OK reports whether the submission was accepted
func (r ContactResult) OK() bool {
	return r.Receipt != nil
}

const receiptMessage = "Thank you for reaching out. I'll get back to you as soon as possible."

var fieldMessages = map[string]map[string]string{
	"Name": {
		"required": "Name is required",
		"minunits": "Name must be at least 2 characters",
		"maxunits": "Name must be less than 50 characters",
	},
	"Email": {
		"required":     "Email is required",
		"contactemail": "Please enter a valid email address",
	},
	"Message": {
		"required": "Message is required",
		"minunits": "Message must be at least 10 characters",
		"maxunits": "Message must be less than 1000 characters",
	},
}

// ContactService validates contact submissions and simulates sending them.
// Nothing leaves the process.
type ContactService struct {
	validator *validator.Validate
	delay     time.Duration
	log       *zap.Logger
	now       func() time.Time
}

// NewContactService creates a ContactService that waits delay before
// accepting a valid submission
func NewContactService(delay time.Duration, log *zap.Logger) *ContactService {
	if log == nil {
		log = zap.NewNop()
	}
	v := validator.New()
	// registration only fails for an empty tag or nil func
	_ = v.RegisterValidation("contactemail", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("minunits", func(fl validator.FieldLevel) bool {
		return utf16Len(fl.Field().String()) >= paramInt(fl)
	})
	_ = v.RegisterValidation("maxunits", func(fl validator.FieldLevel) bool {
		return utf16Len(fl.Field().String()) <= paramInt(fl)
	})
	return &ContactService{validator: v, delay: delay, log: log, now: time.Now}
}

// utf16Len counts UTF-16 code units, the length a browser reports
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		if r >= 0x10000 {
			n += 2
		} else {
			n++
		}
	}
	return n
}

func paramInt(fl validator.FieldLevel) int {
	n, err := strconv.Atoi(fl.Param())
	if err != nil {
		panic(fmt.Sprintf("bad length parameter %q on %s", fl.Param(), fl.StructFieldName()))
	}
	return n
}

// Validate checks the trimmed form and returns per-field messages
func (s *ContactService) Validate(form ContactForm) ContactErrors {
	form = form.Normalize()

	var errs ContactErrors
	err := s.validator.Struct(form)
	if err == nil {
		return errs
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		s.log.Warn("unexpected validation failure", zap.Error(err))
		errs.Message = "Message could not be validated"
		return errs
	}

	for _, fe := range verrs {
		msg := fieldMessages[fe.StructField()][fe.Tag()]
		switch fe.StructField() {
		case "Name":
			errs.Name = msg
		case "Email":
			errs.Email = msg
		case "Message":
			errs.Message = msg
		}
	}
	return errs
}

// Submit validates the form and, when it passes, waits the configured delay
// and issues a receipt. Cancelling ctx during the wait returns ctx.Err().
func (s *ContactService) Submit(ctx context.Context, form ContactForm) (ContactResult, error) {
	if errs := s.Validate(form); !errs.Empty() {
		return ContactResult{Errors: errs}, nil
	}

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ContactResult{}, ctx.Err()
		case <-timer.C:
		}
	}

	receipt := &ContactReceipt{
		ID:          uuid.NewString(),
		Message:     receiptMessage,
		SubmittedAt: s.now().UTC(),
	}
	s.log.Info("contact submission accepted", zap.String("receipt", receipt.ID))
	return ContactResult{Receipt: receipt}, nil
}
