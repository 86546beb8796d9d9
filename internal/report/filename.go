package report

import (
	"regexp"
	"strconv"
)

// reportSuffix is the fixed filename suffix emitted by the simulator's
// message stats report module.
const reportSuffix = "MessageStatsReport.txt"

// Recognized shape: <protocol>_<nodecount>_...MessageStatsReport.txt with
// underscore-separated fields. The node count is validated separately so
// the diagnostic can distinguish a bad shape from a non-numeric count.
var fileNamePattern = regexp.MustCompile(`^([^_]+)_([^_]+)_.*MessageStatsReport\.txt$`)

// parseFileName splits a report filename into its protocol name and node
// count. When ok is false, reason describes why the name was rejected.
func parseFileName(name string) (protocol string, nodes int, reason string, ok bool) {
	match := fileNamePattern.FindStringSubmatch(name)
	if match == nil {
		return "", 0, "filename does not match <protocol>_<nodecount>_...MessageStatsReport.txt", false
	}
	nodes, err := strconv.Atoi(match[2])
	if err != nil || nodes < 0 {
		return "", 0, "node count is not a non-negative integer: " + match[2], false
	}
	return match[1], nodes, "", true
}
