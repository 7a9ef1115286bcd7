package gorm

// Destination represents one airport, keyed by its short code. Referenced by
// flights as both departure and arrival endpoint.
type Destination struct {
	Code        string `gorm:"column:destination_code;primaryKey"`
	AirportName string `gorm:"column:airport_name;not null"`
	City        string `gorm:"column:city;not null"`
	Country     string `gorm:"column:country;not null"`
}

// TableName specifies the table name for GORM
func (Destination) TableName() string {
	return "d_destination"
}
