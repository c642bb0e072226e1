//go:build gojson

package benchmarks

import (
	"github.com/reoring/ezjson"
	drv "github.com/reoring/ezjson/source/gojson"
)

// Running with -tags gojson measures the default entry points on the strict
// driver.
func init() {
	ezjson.SetJSONDriver(drv.Driver())
}
