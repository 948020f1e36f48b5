package interfaces

import (
	"context"

	domaintypes "houseprice/internal/domain/types"
)

// Predictor is how we talk to the remote prediction service.
type Predictor interface {
	Predict(ctx context.Context, in domaintypes.FormInput) (domaintypes.PredictionResult, error)
}
