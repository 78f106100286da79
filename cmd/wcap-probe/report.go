package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/vietanhduong/wcap"
)

type tableReport struct {
	Name      string        `json:"name"`
	Scope     string        `json:"scope"`
	Supported int           `json:"supported"`
	Total     int           `json:"total"`
	Requires  string        `json:"requires,omitempty"`
	Entries   []entryReport `json:"entries,omitempty"`
}

type entryReport struct {
	Name      string `json:"name"`
	Addr      string `json:"addr,omitempty"`
	Supported bool   `json:"supported"`
}

// buildReports summarizes tables. With globalOnly, the resolver could only
// answer for global commands and tables of other scopes are marked as
// requiring a handle of their scope.
func buildReports(tables []wcap.Table, onlyMissing, globalOnly bool) []tableReport {
	reports := make([]tableReport, 0, len(tables))
	for _, t := range tables {
		entries := t.Entries()
		rep := tableReport{Name: t.Name(), Scope: string(t.Scope()), Total: len(entries)}
		if globalOnly && t.Scope() != wcap.ScopeGlobal {
			rep.Requires = string(t.Scope())
		}
		for _, e := range entries {
			if e.Supported() {
				rep.Supported++
				if onlyMissing {
					continue
				}
			}
			er := entryReport{Name: e.Name, Supported: e.Supported()}
			if e.Supported() {
				er.Addr = fmt.Sprintf("%#x", e.Addr)
			}
			rep.Entries = append(rep.Entries, er)
		}
		reports = append(reports, rep)
	}
	return reports
}

func writeReports(w io.Writer, format string, reports []tableReport) error {
	if format == outputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	for _, rep := range reports {
		fmt.Fprintf(tw, "%s (%s)\t%d/%d\n", rep.Name, rep.Scope, rep.Supported, rep.Total)
		missing := "missing"
		if rep.Requires != "" {
			missing = "needs " + rep.Requires
		}
		for _, e := range rep.Entries {
			addr := missing
			if e.Supported {
				addr = e.Addr
			}
			fmt.Fprintf(tw, "  %s\t%s\n", e.Name, addr)
		}
	}
	return tw.Flush()
}
