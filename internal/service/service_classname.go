package service

import (
	"context"

	"github.com/MKhiriev/go-appenv/classname"
	"github.com/MKhiriev/go-appenv/internal/logger"
)

type classNameService struct {
	merger *classname.Merger

	logger *logger.Logger
}

// NewClassNameService merges class values with merger. A nil merger uses the
// Tailwind rules.
func NewClassNameService(merger *classname.Merger, logger *logger.Logger) ClassNameService {
	if merger == nil {
		merger = classname.NewMerger(nil)
	}
	return &classNameService{
		merger: merger,
		logger: logger,
	}
}

func (s *classNameService) Merge(ctx context.Context, values ...classname.Value) string {
	return s.merger.Merge(values...)
}
