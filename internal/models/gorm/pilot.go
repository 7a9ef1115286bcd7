package gorm

// Pilot is immutable after seeding; no update path exists for its
// attributes. NightFlag is stored as 0/1 to satisfy the strict INTEGER
// column.
type Pilot struct {
	PilotID       string `gorm:"column:pilot_id;primaryKey"`
	FirstName     string `gorm:"column:first_name;not null"`
	LastName      string `gorm:"column:last_name;not null"`
	LicenceNumber string `gorm:"column:licence_number;not null"`
	LicenceExpiry string `gorm:"column:licence_expiry;not null"`
	NightFlag     int    `gorm:"column:night_flag;not null"`
}

// TableName specifies the table name for GORM
func (Pilot) TableName() string {
	return "d_pilot"
}
