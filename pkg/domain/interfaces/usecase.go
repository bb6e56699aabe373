package interfaces

import (
	"context"

	"github.com/m-mizutani/prdesc/pkg/domain/model"
)

// DescribeUseCase defines the interface for the description generation run
type DescribeUseCase interface {
	// Run executes the whole pipeline for one trigger event
	Run(ctx context.Context, event *model.TriggerEvent) (*model.RunResult, error)
}
