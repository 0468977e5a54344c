package service

import "errors"

// Business-rule violations. Handlers map these to 4xx responses; anything
// else is a remote-write failure and maps to 500.
var (
	ErrStudentNotActive     = errors.New("student account is not active")
	ErrNoGadgetsSelected    = errors.New("at least one gadget must be selected")
	ErrGadgetNotAvailable   = errors.New("gadget is not available")
	ErrInvalidTransition    = errors.New("rental status does not allow this transition")
	ErrGadgetInUse          = errors.New("gadget is in use and cannot be deleted")
	ErrGadgetHasRentals     = errors.New("gadget is linked to rental records; mark it Lost or In Repair instead")
	ErrStudentHasRentals    = errors.New("student has open rentals and cannot be deleted")
	ErrExtensionNotPending  = errors.New("extension request is not pending")
	ErrAssessmentNotPending = errors.New("assessment is not pending")
	ErrFineAmountMissing    = errors.New("assessment has no fine amount")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrInvalidDueDate       = errors.New("invalid due date")
)
