// Package source installs the strict goccy/go-json driver as the process-wide
// default when blank-imported:
//
//	import _ "github.com/reoring/ezjson/source"
//
// Reads then reject the NaN and Infinity literals unless ReadOpt.Driver
// selects another driver.
package source

import (
	"github.com/reoring/ezjson"
	"github.com/reoring/ezjson/source/gojson"
)

func init() { ezjson.SetJSONDriver(gojson.Driver()) }
