package models

type SensorReading struct {
	SensorID         uint    `gorm:"column:sensor_id;primaryKey" json:"sensor_id"`
	Location         string  `gorm:"column:location" json:"location"`
	TrafficCount     int     `gorm:"column:traffic_count" json:"traffic_count"`
	AverageSpeed     float64 `gorm:"column:average_speed" json:"average_speed"`
	TrafficCondition string  `gorm:"column:traffic_condition" json:"traffic_condition"`
}

func (SensorReading) TableName() string { return "sensor_data" }
