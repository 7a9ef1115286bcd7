package gorm

// Flight is a recurring route definition, independent of date. The flight
// number is not unique; the same number can serve different routes.
type Flight struct {
	FlightID                 int64  `gorm:"column:flight_id;primaryKey;autoIncrement"`
	FlightNumber             string `gorm:"column:flight_number;not null"`
	DepartureDestinationCode string `gorm:"column:departure_destination_code;not null"`
	ArrivalDestinationCode   string `gorm:"column:arrival_destination_code;not null"`
	ScheduledDepartureTime   string `gorm:"column:scheduled_departure_time;not null"`
	ScheduledArrivalTime     string `gorm:"column:scheduled_arrival_time;not null"`

	// Relationships
	DepartureDestination Destination `gorm:"foreignKey:DepartureDestinationCode;references:Code"`
	ArrivalDestination   Destination `gorm:"foreignKey:ArrivalDestinationCode;references:Code"`
}

// TableName specifies the table name for GORM
func (Flight) TableName() string {
	return "d_flight"
}
