package entity

// FlightStatistics holds the headline metrics shown above the flight table
type FlightStatistics struct {
	TotalFlights        int `json:"totalFlights"`
	CriticalCount       int `json:"criticalCount"`
	HighPriorityCount   int `json:"highPriorityCount"`
	TotalPassengers     int `json:"totalPassengers"`
	TotalConnections    int `json:"totalConnections"`
	AverageDelayMinutes int `json:"averageDelayMinutes"`
}

// Facets lists the distinct filterable values present in a record set
type Facets struct {
	Statuses   []FlightStatus `json:"statuses"`
	Priorities []Priority     `json:"priorities"`
	Origins    []string       `json:"origins"`
}
