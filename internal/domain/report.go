package domain

import (
	"fmt"

	m "github.com/mouse-blink/paperjudge/internal/model"
)

// BuildReport converts a classification into report entries, one per block,
// in reference order.
func BuildReport(packageName, tag string, classification *m.Classification) m.Report {
	report := m.Report{Data: make([]m.ReportEntry, 0, classification.Len())}

	classification.Each(func(id string, tally m.Tally) {
		result := m.ReportResult{Status: m.StatusSuccessful}
		if !tally.Passed() {
			result = m.ReportResult{
				Status: m.StatusFailed,
				Failure: &m.Failure{
					Class:           m.FailureClass,
					NestedException: describeTally(tally),
				},
			}
		}

		report.Data = append(report.Data, m.ReportEntry{
			PackageName: packageName,
			MethodName:  id,
			Tags:        []string{tag},
			Results:     []m.ReportResult{result},
		})
	})

	return report
}

// MergeReports concatenates report entries in argument order.
func MergeReports(reports ...m.Report) m.Report {
	merged := m.Report{Data: []m.ReportEntry{}}
	for _, r := range reports {
		merged.Data = append(merged.Data, r.Data...)
	}

	return merged
}

func describeTally(t m.Tally) string {
	msg := fmt.Sprintf("Redundant: %d, wrong place: %d, missing:%d, ok: %d",
		t.Redundant, t.WrongPlace, t.Missing, t.OK)
	if !t.WasFound {
		msg += ", not found"
	}

	return msg
}
