package sqlproxy

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// TimeFormat matches SQLite's CURRENT_TIMESTAMP text.
const TimeFormat = "2006-01-02 15:04:05"

func prepareParameters(args []driver.NamedValue) ([]any, error) {
	parameters := make([]any, len(args))

	for i, arg := range args {
		if arg.Name != "" {
			return nil, fmt.Errorf("sqlproxy: named parameter %q is not supported", arg.Name)
		}

		switch v := arg.Value.(type) {
		case int64, float64, string, nil:
			parameters[i] = v
		case bool:
			if v {
				parameters[i] = int64(1)
			} else {
				parameters[i] = int64(0)
			}
		case time.Time:
			parameters[i] = v.UTC().Format(TimeFormat)
		case []byte:
			// A JSON array of byte values; encoding/json would otherwise
			// send base64 text.
			values := make([]int, len(v))

			for j, b := range v {
				values[j] = int(b)
			}

			parameters[i] = values
		default:
			return nil, fmt.Errorf("sqlproxy: unsupported parameter type: %T", v)
		}
	}

	return parameters, nil
}
