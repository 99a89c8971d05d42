package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-appenv/classname"
	"github.com/MKhiriev/go-appenv/internal/logger"
)

type ClassNameLoggingService struct {
	inner  ClassNameService
	logger *logger.Logger
}

func NewClassNameLoggingService(logger *logger.Logger) ClassNameServiceWrapper {
	return &ClassNameLoggingService{logger: logger}
}

func (l *ClassNameLoggingService) Merge(ctx context.Context, values ...classname.Value) string {
	start := time.Now()
	merged := l.inner.Merge(ctx, values...)

	logger.FromContext(ctx).Debug().
		Int("values", len(values)).
		Int("input_tokens", len(classname.Tokens(values...))).
		Str("class", merged).
		Dur("duration", time.Since(start)).
		Msg("class names merged")

	return merged
}

func (l *ClassNameLoggingService) Wrap(wrapper ClassNameService) ClassNameService {
	l.inner = wrapper
	return l
}
