package models

type Violation struct {
	ViolationID   uint    `gorm:"column:violation_id;primaryKey" json:"violation_id"`
	VehicleID     uint    `gorm:"column:vehicle_id" json:"vehicle_id"`
	SignalID      uint    `gorm:"column:signal_id" json:"signal_id"`
	ViolationType string  `gorm:"column:violation_type" json:"violation_type"`
	FineAmount    float64 `gorm:"column:fine_amount" json:"fine_amount"`
}

func (Violation) TableName() string { return "violations" }

// ViolationReport is the joined row returned when a violation is
// looked up: the vehicle_number comes from the vehicles table.
type ViolationReport struct {
	ViolationID   uint    `json:"violation_id"`
	VehicleNumber string  `json:"vehicle_number"`
	ViolationType string  `json:"violation_type"`
	FineAmount    float64 `json:"fine_amount"`
}
