// Package domain defines core data models, contracts and errors shared across
// the app. It contains plain types (wire/state), interfaces and error values
// only.
package domain
