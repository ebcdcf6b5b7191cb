package entity

import (
	"time"
)

// Alert is a persisted price alert rule for a ticker symbol.
type Alert struct {
	Id          int64  `gorm:"primaryKey;autoIncrement"`
	Symbol      string `gorm:"index"`
	Condition   string
	TargetPrice float64
	CreatedAt   time.Time `gorm:"index"`
	Triggered   bool
}

const (
	ConditionAbove = "above"
	ConditionBelow = "below"
)
