package validation

import "github.com/araddon/dateparse"

// Date accepts any value dateparse can interpret as a date or timestamp, interpreted in local time
func Date() *CustomValidator {
	return Custom(func(s string) bool {
		_, err := dateparse.ParseLocal(s)
		return err == nil
	}, "a date or timestamp")
}
