package repository

import "gorm.io/gorm"

const (
	ServerChanSendKey = "ExternalNotification.ServerChan.SendKey"
)

type Configuration struct {
	gorm.Model

	Key   string `gorm:"uniqueIndex;size:255;not null"`
	Value string
}
