// Package logger создаёт журнал шлюза.
package logger

import (
	"go.uber.org/zap"
)

// New создаёт production zap-логгер с уровнем level.
func New(level string) (*zap.Logger, error) {
	// преобразуем текстовый уровень логирования в zap.AtomicLevel
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	zapcfg := zap.NewProductionConfig()
	zapcfg.Level = lvl
	return zapcfg.Build()
}
