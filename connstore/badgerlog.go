package connstore

import (
	"fmt"
)

// badgerLogger sends badger's own logs through zap.
type badgerLogger struct{}

func (badgerLogger) Errorf(s string, i ...any) {
	log.Error("badger: " + fmt.Sprintf(s, i...))
}

func (badgerLogger) Warningf(s string, i ...any) {
	log.Warn("badger: " + fmt.Sprintf(s, i...))
}

// Badger is chatty at info level, keep it at debug.
func (badgerLogger) Infof(s string, i ...any) {
	log.Debug("badger: " + fmt.Sprintf(s, i...))
}

func (badgerLogger) Debugf(s string, i ...any) {
	log.Debug("badger: " + fmt.Sprintf(s, i...))
}
