package types

// FieldKey is the JSON key a housing feature is sent under.
type FieldKey string

// String returns the string form of the key.
func (k FieldKey) String() string { return string(k) }

// The eight housing features, keyed exactly as the prediction service expects.
const (
	MedInc     FieldKey = "MedInc"
	HouseAge   FieldKey = "HouseAge"
	AveRooms   FieldKey = "AveRooms"
	AveBedrms  FieldKey = "AveBedrms"
	Population FieldKey = "Population"
	AveOccup   FieldKey = "AveOccup"
	Latitude   FieldKey = "Latitude"
	Longitude  FieldKey = "Longitude"
)

// Field describes one form input.
type Field struct {
	Key         FieldKey
	Label       string
	Placeholder string
	Flag        string // CLI flag name
}

// Fields lists the form inputs in display order.
var Fields = []Field{
	{Key: MedInc, Label: "Median Income", Placeholder: "Enter Median Income", Flag: "med-inc"},
	{Key: HouseAge, Label: "House Age", Placeholder: "Enter House Age (years)", Flag: "house-age"},
	{Key: AveRooms, Label: "Average Rooms", Placeholder: "Enter Average Rooms", Flag: "ave-rooms"},
	{Key: AveBedrms, Label: "Average Bedrooms", Placeholder: "Enter Average Bedrooms", Flag: "ave-bedrms"},
	{Key: Population, Label: "Population", Placeholder: "Enter Population", Flag: "population"},
	{Key: AveOccup, Label: "Average Occupancy", Placeholder: "Enter Average Occupancy", Flag: "ave-occup"},
	{Key: Latitude, Label: "Latitude", Placeholder: "Enter Latitude", Flag: "latitude"},
	{Key: Longitude, Label: "Longitude", Placeholder: "Enter Longitude", Flag: "longitude"},
}

// FormInput is the request body of a prediction: a flat object of the eight
// features.
type FormInput struct {
	MedInc     float64 `json:"MedInc"`
	HouseAge   float64 `json:"HouseAge"`
	AveRooms   float64 `json:"AveRooms"`
	AveBedrms  float64 `json:"AveBedrms"`
	Population float64 `json:"Population"`
	AveOccup   float64 `json:"AveOccup"`
	Latitude   float64 `json:"Latitude"`
	Longitude  float64 `json:"Longitude"`
}

// Ref returns a pointer to the value stored under key, or nil for an unknown key.
func (in *FormInput) Ref(key FieldKey) *float64 {
	switch key {
	case MedInc:
		return &in.MedInc
	case HouseAge:
		return &in.HouseAge
	case AveRooms:
		return &in.AveRooms
	case AveBedrms:
		return &in.AveBedrms
	case Population:
		return &in.Population
	case AveOccup:
		return &in.AveOccup
	case Latitude:
		return &in.Latitude
	case Longitude:
		return &in.Longitude
	}
	return nil
}
