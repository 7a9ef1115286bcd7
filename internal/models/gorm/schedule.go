package gorm

// Schedule is one concrete occurrence of a flight on a specific date. Actual
// times stay NULL until known; a NULL pilot means unassigned, not an error.
type Schedule struct {
	ScheduleID          int64   `gorm:"column:schedule_id;primaryKey;autoIncrement"`
	DepartureDate       string  `gorm:"column:departure_date;not null"`
	ActualDepartureTime *string `gorm:"column:actual_departure_time"`
	ActualArrivalTime   *string `gorm:"column:actual_arrival_time"`
	FlightID            int64   `gorm:"column:flight_id;not null"`
	PilotID             *string `gorm:"column:pilot_id"`
	Status              string  `gorm:"column:status;not null"`

	// Relationships
	Flight Flight `gorm:"foreignKey:FlightID;references:FlightID"`
	Pilot  *Pilot `gorm:"foreignKey:PilotID;references:PilotID"`
}

// TableName specifies the table name for GORM
func (Schedule) TableName() string {
	return "f_schedule"
}
