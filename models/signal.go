package models

type TrafficSignal struct {
	SignalID    uint   `gorm:"column:signal_id;primaryKey" json:"signal_id"`
	Location    string `gorm:"column:location" json:"location"`
	SignalState string `gorm:"column:signal_state" json:"signal_state"`
}

func (TrafficSignal) TableName() string { return "traffic_signals" }
