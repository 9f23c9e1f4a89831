package entity

import "time"

type Question struct {
	ID           string
	Question     string
	Keywords     []string
	SampleAnswer string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
