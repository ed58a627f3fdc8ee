package entity

import "time"

// RecoveryOption is a single candidate recovery action
type RecoveryOption struct {
	ID              int    `json:"id" bson:"id"`
	Type            string `json:"type" bson:"type"`
	Description     string `json:"description" bson:"description"`
	Cost            string `json:"cost" bson:"cost"`
	PassengerImpact string `json:"passengerImpact" bson:"passengerImpact"`
}

// RecoveryPlan summarises recovery options for a selection of flights.
// TotalPassengers is not looked up from the store and stays 0.
type RecoveryPlan struct {
	PlanID                string           `json:"planId" bson:"_id"`
	FlightIDs             []int            `json:"flightIds" bson:"flightIds"`
	AffectedFlights       int              `json:"affectedFlights" bson:"affectedFlights"`
	TotalPassengers       int              `json:"totalPassengers" bson:"totalPassengers"`
	EstimatedRecoveryTime string           `json:"estimatedRecoveryTime" bson:"estimatedRecoveryTime"`
	Options               []RecoveryOption `json:"options" bson:"options"`
	GeneratedAt           time.Time        `json:"generatedAt" bson:"generatedAt"`
}
