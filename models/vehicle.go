package models

type Vehicle struct {
	VehicleID     uint   `gorm:"column:vehicle_id;primaryKey" json:"vehicle_id"`
	VehicleNumber string `gorm:"column:vehicle_number" json:"vehicle_number"`
	OwnerName     string `gorm:"column:owner_name" json:"owner_name"`
	VehicleType   string `gorm:"column:vehicle_type" json:"vehicle_type"`
}

func (Vehicle) TableName() string { return "vehicles" }
