package domain

import (
	interfaces "houseprice/internal/domain/interfaces"
	types "houseprice/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	FieldKey         = types.FieldKey
	Field            = types.Field
	FormInput        = types.FormInput
	PredictionResult = types.PredictionResult
	Theme            = types.Theme
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	Predictor       = interfaces.Predictor
	PreferenceStore = interfaces.PreferenceStore
	SchemeDetector  = interfaces.SchemeDetector
)

const (
	MedInc     = types.MedInc
	HouseAge   = types.HouseAge
	AveRooms   = types.AveRooms
	AveBedrms  = types.AveBedrms
	Population = types.Population
	AveOccup   = types.AveOccup
	Latitude   = types.Latitude
	Longitude  = types.Longitude

	PriceScale = types.PriceScale
	ThemeKey   = types.ThemeKey
	ThemeLight = types.ThemeLight
	ThemeDark  = types.ThemeDark
)

var (
	Fields              = types.Fields
	NewPredictionResult = types.NewPredictionResult
	ParseTheme          = types.ParseTheme
	ThemeFor            = types.ThemeFor
)
