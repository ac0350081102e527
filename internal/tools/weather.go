package tools

// Conditions is one mock weather reading.
type Conditions struct {
	Temperature int    `json:"temperature"`
	Condition   string `json:"condition"`
	Humidity    int    `json:"humidity"`
}

// Weather serves mock weather readings from a fixed table.
type Weather struct {
	table map[string]Conditions
}

// builtinWeather is the default mock table.
var builtinWeather = map[string]Conditions{
	"New York": {Temperature: 22, Condition: "Sunny", Humidity: 65},
	"London":   {Temperature: 15, Condition: "Cloudy", Humidity: 80},
	"Tokyo":    {Temperature: 25, Condition: "Rainy", Humidity: 75},
	"Sydney":   {Temperature: 28, Condition: "Clear", Humidity: 60},
}

// NewWeather builds a Weather tool from the builtin table plus any
// configured extras. Extras override builtin cities of the same name.
func NewWeather(extra map[string]Conditions) *Weather {
	table := make(map[string]Conditions, len(builtinWeather)+len(extra))
	for city, cond := range builtinWeather {
		table[city] = cond
	}
	for city, cond := range extra {
		table[city] = cond
	}
	return &Weather{table: table}
}

// GetWeather looks up a city. Unknown cities never fail: they return a
// default reading annotated with a note.
func (w *Weather) GetWeather(args map[string]interface{}) (map[string]interface{}, error) {
	city, err := stringArg(args, "city")
	if err != nil {
		return nil, err
	}

	if cond, ok := w.table[city]; ok {
		return map[string]interface{}{
			"city":      city,
			"weather":   cond,
			"timestamp": timestamp(),
			"source":    "mock_data",
		}, nil
	}

	return map[string]interface{}{
		"city":      city,
		"weather":   Conditions{Temperature: 20, Condition: "Unknown", Humidity: 50},
		"timestamp": timestamp(),
		"source":    "mock_data",
		"note":      "City not found, returning default data",
	}, nil
}
