package model

import (
	"time"
)

// SavedConnection is an entry of the Home screen's saved connection list.
type SavedConnection struct {
	Host     bool      `bson:"host"`
	Addr     string    `bson:"addr"`
	URI      string    `bson:"uri"`
	Username string    `bson:"username"`
	LastUsed time.Time `bson:"lastUsed"`
}

// ID is stable per role and address, so saving the same server twice updates one entry.
func (c SavedConnection) ID() string {
	return c.Role() + "/" + c.Addr
}

func (c SavedConnection) Role() string {
	if c.Host {
		return "host"
	}
	return "player"
}
