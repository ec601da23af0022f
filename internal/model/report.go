package model

// Result statuses written into a Report.
const (
	StatusSuccessful = "SUCCESSFUL"
	StatusFailed     = "FAILED"
)

// FailureClass is the failure datum class understood by the report consumer.
const FailureClass = "org.jetbrains.research.runner.data.UnknownFailureDatum"

// Report is the serialized grading result consumed by the test-runner UI.
type Report struct {
	Data []ReportEntry `json:"data" yaml:"data"`
}

// ReportEntry describes the outcome of a single block.
type ReportEntry struct {
	PackageName string         `json:"packageName" yaml:"packageName"`
	MethodName  string         `json:"methodName" yaml:"methodName"`
	Tags        []string       `json:"tags" yaml:"tags"`
	Results     []ReportResult `json:"results" yaml:"results"`
}

// ReportResult holds the status and, for failed blocks, the failure details.
type ReportResult struct {
	Status  string   `json:"status" yaml:"status"`
	Failure *Failure `json:"failure" yaml:"failure"`
}

// Failure explains why a block failed.
type Failure struct {
	Class           string `json:"@class" yaml:"class"`
	NestedException string `json:"nestedException" yaml:"nestedException"`
}

// Passed reports whether every result of the entry is successful.
func (e ReportEntry) Passed() bool {
	for _, r := range e.Results {
		if r.Status != StatusSuccessful {
			return false
		}
	}

	return true
}
