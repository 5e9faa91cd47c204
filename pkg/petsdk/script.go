package petsdk

import (
	"encoding/json"
	"regexp"
)

// ScriptResult is the decoded outcome of a form endpoint. Exactly one of
// Href or Back is set.
type ScriptResult struct {
	Alert string
	Href  string
	Back  bool
}

var (
	reAlert = regexp.MustCompile(`alert\(("(?:[^"\\]|\\.)*")\);`)
	reHref  = regexp.MustCompile(`location\.href=("(?:[^"\\]|\\.)*");`)
)

// ParseScript decodes a script redirect page.
func ParseScript(body []byte) ScriptResult {
	var res ScriptResult
	if m := reAlert.FindSubmatch(body); m != nil {
		_ = json.Unmarshal(m[1], &res.Alert)
	}
	if m := reHref.FindSubmatch(body); m != nil {
		_ = json.Unmarshal(m[1], &res.Href)
	} else {
		res.Back = regexp.MustCompile(`history\.back\(\)`).Match(body)
	}
	return res
}
