package entity

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// flightValidate is shared by create and patch payloads. Field errors are
// reported with their JSON names.
var flightValidate *validator.Validate

func init() {
	flightValidate = validator.New()
	flightValidate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// FlightFields is the create payload: every FlightRecord field except id and updatedAt
type FlightFields struct {
	FlightNumber    string       `json:"flightNumber" validate:"required,max=10"`
	Aircraft        string       `json:"aircraft" validate:"required,max=20"`
	Origin          string       `json:"origin" validate:"required,max=3"`
	Destination     string       `json:"destination" validate:"required,max=3"`
	OriginName      string       `json:"originName" validate:"required,max=50"`
	DestinationName string       `json:"destinationName" validate:"required,max=50"`
	DepartureTime   string       `json:"departureTime" validate:"required,max=5"`
	DepartureDate   string       `json:"departureDate" validate:"required,max=10"`
	Status          FlightStatus `json:"status" validate:"required,oneof=Cancelled Delayed Diverted"`
	StatusDetail    *string      `json:"statusDetail" validate:"omitempty,max=20"`
	Priority        Priority     `json:"priority" validate:"required,oneof=Critical High Medium"`
	Passengers      int          `json:"passengers" validate:"min=0"`
	Connections     int          `json:"connections" validate:"min=0"`
	ImpactSeverity  string       `json:"impactSeverity" validate:"required,max=20"`
	ImpactTimestamp time.Time    `json:"impactTimestamp"`
}

// Validate checks the create payload
func (f *FlightFields) Validate() error {
	var fields []FieldError
	if err := flightValidate.Struct(f); err != nil {
		fields = toFieldErrors(err)
	}
	if f.ImpactTimestamp.IsZero() {
		fields = append(fields, FieldError{Field: "impactTimestamp", Message: "is required"})
	}
	if len(fields) > 0 {
		return NewValidationError("Invalid flight data", fields...)
	}
	return nil
}

// OptionalString is a patch value that distinguishes an absent key from an explicit null
type OptionalString struct {
	Set   bool
	Value *string
}

// UnmarshalJSON marks the value as set, including for a JSON null
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

// FlightPatch is a partial update. Nil fields are left unchanged.
// Keys without a field here (id, updatedAt, impactTimestamp) are ignored by
// the decoder, so those values never change after creation.
type FlightPatch struct {
	FlightNumber    *string        `json:"flightNumber" validate:"omitempty,min=1,max=10"`
	Aircraft        *string        `json:"aircraft" validate:"omitempty,min=1,max=20"`
	Origin          *string        `json:"origin" validate:"omitempty,min=1,max=3"`
	Destination     *string        `json:"destination" validate:"omitempty,min=1,max=3"`
	OriginName      *string        `json:"originName" validate:"omitempty,min=1,max=50"`
	DestinationName *string        `json:"destinationName" validate:"omitempty,min=1,max=50"`
	DepartureTime   *string        `json:"departureTime" validate:"omitempty,min=1,max=5"`
	DepartureDate   *string        `json:"departureDate" validate:"omitempty,min=1,max=10"`
	Status          *FlightStatus  `json:"status" validate:"omitempty,oneof=Cancelled Delayed Diverted"`
	StatusDetail    OptionalString `json:"statusDetail"`
	Priority        *Priority      `json:"priority" validate:"omitempty,oneof=Critical High Medium"`
	Passengers      *int           `json:"passengers" validate:"omitempty,min=0"`
	Connections     *int           `json:"connections" validate:"omitempty,min=0"`
	ImpactSeverity  *string        `json:"impactSeverity" validate:"omitempty,min=1,max=20"`
}

// Validate checks only the fields present in the patch
func (p *FlightPatch) Validate() error {
	var fields []FieldError
	if err := flightValidate.Struct(p); err != nil {
		fields = toFieldErrors(err)
	}
	if p.StatusDetail.Value != nil && len(*p.StatusDetail.Value) > 20 {
		fields = append(fields, FieldError{Field: "statusDetail", Message: "must be at most 20 characters"})
	}
	if len(fields) > 0 {
		return NewValidationError("Invalid flight data", fields...)
	}
	return nil
}

// IsEmpty reports whether the patch carries no changes
func (p *FlightPatch) IsEmpty() bool {
	return p.FlightNumber == nil && p.Aircraft == nil && p.Origin == nil &&
		p.Destination == nil && p.OriginName == nil && p.DestinationName == nil &&
		p.DepartureTime == nil && p.DepartureDate == nil && p.Status == nil &&
		!p.StatusDetail.Set && p.Priority == nil && p.Passengers == nil &&
		p.Connections == nil && p.ImpactSeverity == nil
}

// Apply merges the supplied fields onto record
func (p *FlightPatch) Apply(record *FlightRecord) {
	if p.FlightNumber != nil {
		record.FlightNumber = *p.FlightNumber
	}
	if p.Aircraft != nil {
		record.Aircraft = *p.Aircraft
	}
	if p.Origin != nil {
		record.Origin = *p.Origin
	}
	if p.Destination != nil {
		record.Destination = *p.Destination
	}
	if p.OriginName != nil {
		record.OriginName = *p.OriginName
	}
	if p.DestinationName != nil {
		record.DestinationName = *p.DestinationName
	}
	if p.DepartureTime != nil {
		record.DepartureTime = *p.DepartureTime
	}
	if p.DepartureDate != nil {
		record.DepartureDate = *p.DepartureDate
	}
	if p.Status != nil {
		record.Status = *p.Status
	}
	if p.StatusDetail.Set {
		if p.StatusDetail.Value == nil {
			record.StatusDetail = nil
		} else {
			detail := *p.StatusDetail.Value
			record.StatusDetail = &detail
		}
	}
	if p.Priority != nil {
		record.Priority = *p.Priority
	}
	if p.Passengers != nil {
		record.Passengers = *p.Passengers
	}
	if p.Connections != nil {
		record.Connections = *p.Connections
	}
	if p.ImpactSeverity != nil {
		record.ImpactSeverity = *p.ImpactSeverity
	}
}

func toFieldErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "", Message: err.Error()}}
	}
	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fe.Field(), Message: describeTag(fe)})
	}
	return fields
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min":
		if fe.Kind() == reflect.Int {
			return fmt.Sprintf("must be at least %s", fe.Param())
		}
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	}
	return fmt.Sprintf("failed %s validation", fe.Tag())
}
