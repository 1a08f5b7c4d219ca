package validator

import (
	"errors"
	"strings"
	"testing"
)

type profileInput struct {
	FullName     string  `json:"full_name" validate:"notblank,max=120"`
	HourlyRate   *int    `json:"hourly_rate" validate:"omitempty,gte=0"`
	Availability string  `json:"availability_status" validate:"availability"`
	PortfolioURL *string `json:"portfolio_url" validate:"omitempty,url"`
}

func TestValidator_Struct(t *testing.T) {
	v := New()

	rate := 40
	ok := profileInput{FullName: "Ada", HourlyRate: &rate, Availability: "busy"}
	if err := v.Struct(ok); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	neg := -1
	bad := "not a url"
	err := v.Struct(profileInput{FullName: "  ", HourlyRate: &neg, Availability: "asleep", PortfolioURL: &bad})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	for _, field := range []string{"full_name", "hourly_rate", "availability_status", "portfolio_url"} {
		if _, ok := verr.Fields[field]; !ok {
			t.Fatalf("expected %s in %v", field, verr.Fields)
		}
	}
	if !strings.HasPrefix(verr.Error(), "validation failed: availability_status") {
		t.Fatalf("expected sorted message, got %q", verr.Error())
	}
}
