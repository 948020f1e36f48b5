// Package predict provides an HTTP implementation of the domain.Predictor
// interface.
//
// A prediction is a single JSON POST of the eight housing features to
// <base>/predict (or to <base> itself when the path is empty). The service
// answers with {"predicted_price": n} or {"prediction": n}; the first key
// present wins and the value is scaled by domain.PriceScale.
//
// Failure modes:
//   - any non-2xx status returns domain.ErrRequestFailed; the body is
//     discarded.
//   - a call that cannot complete returns *domain.TransportError carrying the
//     HTTP client's error.
//   - a 2xx body without either key returns domain.ErrNoPrediction.
//
// There is no retry. Requests honour the caller's context and the HTTP
// client's timeout, if any.
package predict
