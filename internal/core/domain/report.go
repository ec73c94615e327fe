package domain

// FileStatus is the outcome of processing a single file.
type FileStatus string

const (
	// FileModified means the file was rewritten.
	FileModified FileStatus = "modified"
	// FileUnchanged means nothing needed changing and the file was not written.
	FileUnchanged FileStatus = "unchanged"
	// FileSkipped means the file was deliberately left alone.
	FileSkipped FileStatus = "skipped"
	// FileFailed means the file could not be processed.
	FileFailed FileStatus = "failed"
)

// FileResult records what happened to one file in a batch.
type FileResult struct {
	Path   string
	Status FileStatus
	Detail string
	Err    error
}

// BatchReport aggregates the results of a batch run.
type BatchReport struct {
	Results []FileResult
}

// Add appends a result.
func (r *BatchReport) Add(res FileResult) {
	r.Results = append(r.Results, res)
}

// Count returns the number of results with the given status.
func (r *BatchReport) Count(status FileStatus) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == status {
			n++
		}
	}
	return n
}

// Failed returns the failed results.
func (r *BatchReport) Failed() []FileResult {
	var out []FileResult
	for _, res := range r.Results {
		if res.Status == FileFailed {
			out = append(out, res)
		}
	}
	return out
}

// Total returns the number of processed files.
func (r *BatchReport) Total() int {
	return len(r.Results)
}
