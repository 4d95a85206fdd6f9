package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound: id ไม่มีอยู่ หรือไม่ได้อยู่ในสถานะที่ต้องการ
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("authentication required")
	ErrForbidden    = errors.New("not allowed")
)

// ValidationError is returned before any write when input is malformed.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// StoreError wraps a persistence failure. Nothing was committed.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// DeliveryError reports the notification sinks that failed. It never
// undoes the transition that triggered the delivery.
type DeliveryError struct {
	Sinks []string
	Err   error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("delivery failed (%s): %v", strings.Join(e.Sinks, ", "), e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }
