package tools

import "math"

// missingFields reports required schema fields absent from args. Presence
// only; declared types are advisory for the model, not enforced here.
func missingFields(s Schema, args map[string]interface{}) []string {
	var missing []string
	for _, f := range s.Parameters {
		if !f.Required {
			continue
		}
		if _, ok := args[f.Name]; !ok {
			missing = append(missing, f.Name)
		}
	}
	return missing
}

// floatArg reads a numeric argument; JSON numbers decode as float64 but
// callers occasionally hand in ints.
func floatArg(args map[string]interface{}, name string) (float64, bool) {
	switch v := args[name].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func intArg(args map[string]interface{}, name string) (int, bool) {
	f, ok := floatArg(args, name)
	if !ok {
		return 0, false
	}
	return int(f), true
}

func stringArg(args map[string]interface{}, name string) (string, bool) {
	s, ok := args[name].(string)
	return s, ok
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// round3 rounds to three decimal places.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
