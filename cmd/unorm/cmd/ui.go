package cmd

import (
	"fmt"
	"strings"

	humanize "github.com/dustin/go-humanize"

	"github.com/lbryio/unorm/conformance"
	"github.com/lbryio/unorm/ucd"
)

func showSequence(label string, seq []rune, props ucd.Properties) {
	codes := make([]string, 0, len(seq))
	for _, r := range seq {
		if ccc := props.CombiningClass(r); ccc != 0 {
			codes = append(codes, fmt.Sprintf("%U(%d)", r, ccc))
			continue
		}
		codes = append(codes, fmt.Sprintf("%U", r))
	}
	fmt.Printf("%-5s: %-30q %s\n", label, string(seq), strings.Join(codes, " "))
}

func showTable(t *ucd.Table, size int) {
	st := t.Stats()
	digest, err := ucd.Digest(t)
	if err != nil {
		fmt.Printf("%-8s: digest unavailable: %s\n", t.Version(), err)
		return
	}
	fmt.Printf("%-8s: %s, %s\n", t.Version(), humanize.Bytes(uint64(size)), digest)
	fmt.Printf("          classes: %s, canonical: %s, compat: %s, compositions: %s, exclusions: %s\n",
		humanize.Comma(int64(st.Classes)), humanize.Comma(int64(st.Canonical)),
		humanize.Comma(int64(st.Compat)), humanize.Comma(int64(st.Compositions)),
		humanize.Comma(int64(st.Exclusions)))
}

func showCodepoint(t *ucd.Table, r rune) {
	fmt.Printf("%U %q ccc: %d", r, string(r), t.CombiningClass(r))
	if d := t.Decomposition(r, false); d != nil {
		fmt.Printf(", canonical: %U", d)
	} else if k := t.Decomposition(r, true); k != nil {
		fmt.Printf(", compat: %U", k)
	}
	if t.Excluded(r) {
		fmt.Printf(", excluded")
	}
	fmt.Printf("\n")
}

func showReport(report *conformance.Report, max int) {
	for i, f := range report.Failures {
		if i >= max {
			fmt.Printf("... %d more\n", len(report.Failures)-max)
			break
		}
		fmt.Printf("FAIL %s\n", f)
	}
	fmt.Printf("%s cases, %d failures, %s\n",
		humanize.Comma(int64(report.Cases)), len(report.Failures), report.Elapsed)
}
