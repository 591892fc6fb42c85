package models

const (
	FineStatusUnpaid = "UNPAID"
	FineStatusPaid   = "PAID"
)

type Fine struct {
	FineID      uint    `gorm:"column:fine_id;primaryKey" json:"fine_id"`
	ViolationID uint    `gorm:"column:violation_id" json:"violation_id"`
	FineStatus  string  `gorm:"column:fine_status;default:UNPAID" json:"fine_status"`
	PaymentDate *string `gorm:"column:payment_date" json:"payment_date"`
}

func (Fine) TableName() string { return "fines" }
