package reporter

// Reporter defines the interface for progress reporting.
type Reporter interface {
	ComparisonStarted(info ComparisonInfo)
	FrameProgress(progress FrameProgress)
	ComparisonComplete(result ComparisonResult)
	Error(err ReporterError)
}

// NullReporter is a no-op reporter that discards all updates.
type NullReporter struct{}

func (NullReporter) ComparisonStarted(ComparisonInfo)    {}
func (NullReporter) FrameProgress(FrameProgress)         {}
func (NullReporter) ComparisonComplete(ComparisonResult) {}
func (NullReporter) Error(ReporterError)                 {}
