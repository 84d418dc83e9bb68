package order

import (
	"fmt"

	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/errs"
)

// Source records which terminal created the order.
type Source int

const (
	SourceUnknown Source = iota

	// SourceStaff orders are priced immediately by a greeter.
	SourceStaff

	// SourceKiosk orders are self-service and wait for staff verification.
	SourceKiosk
)

func (s Source) String() string {
	switch s {
	case SourceStaff:
		return "staff"
	case SourceKiosk:
		return "kiosk"
	default:
		return "unknown"
	}
}

func (s Source) Validate() error {
	if s != SourceStaff && s != SourceKiosk {
		return errs.NewValueIsInvalidErrorWithCause("order source", fmt.Errorf("%d is not a valid source", s))
	}
	return nil
}

func ParseSource(s string) (Source, error) {
	switch s {
	case "staff":
		return SourceStaff, nil
	case "kiosk":
		return SourceKiosk, nil
	default:
		return SourceUnknown, errs.NewValueIsInvalidErrorWithCause("order source", fmt.Errorf("%q is not a valid source", s))
	}
}
