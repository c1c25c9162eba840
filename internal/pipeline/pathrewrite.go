package pipeline

import "strings"

// Chart path convention constants.
//
// The upstream analysis step references chart images as "../charts/<name>"
// (relative to a scratch directory that no longer exists at render time),
// while the chart files are actually written under "outputs/charts/".
const (
	ChartSourcePrefix = "../charts/"
	DefaultChartDir   = "outputs/charts"
)

// RewriteChartPath maps the upstream chart-relative convention onto the
// directory the chart generation step writes to. chartDir overrides the
// default target directory; empty means DefaultChartDir. Paths outside the
// convention are returned unchanged.
func RewriteChartPath(path, chartDir string) string {
	if !strings.HasPrefix(path, ChartSourcePrefix) {
		return path
	}
	if chartDir == "" {
		chartDir = DefaultChartDir
	}
	return strings.TrimSuffix(chartDir, "/") + "/" + path[len(ChartSourcePrefix):]
}
