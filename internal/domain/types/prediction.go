package types

// PriceScale converts the model's raw output, expressed in hundreds of
// thousands of dollars, into whole dollars.
//
// The factor is tied to the training scale of the deployed model. Whether it
// stays stable across model versions is not known; the service does not
// report it.
const PriceScale = 100_000

// PredictionResult is a scaled price estimate.
type PredictionResult struct {
	Raw   float64 `json:"raw"`   // value returned by the service
	Price float64 `json:"price"` // Raw * PriceScale, in dollars
}

// NewPredictionResult scales raw model output into a result.
func NewPredictionResult(raw float64) PredictionResult {
	return PredictionResult{Raw: raw, Price: raw * PriceScale}
}
