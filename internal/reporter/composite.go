package reporter

// CompositeReporter fans out events to multiple reporters.
type CompositeReporter struct {
	reporters []Reporter
}

// NewCompositeReporter creates a composite reporter. Nil entries are skipped.
func NewCompositeReporter(reporters ...Reporter) *CompositeReporter {
	c := &CompositeReporter{}
	for _, r := range reporters {
		if r != nil {
			c.reporters = append(c.reporters, r)
		}
	}
	return c
}

func (c *CompositeReporter) ComparisonStarted(info ComparisonInfo) {
	for _, r := range c.reporters {
		r.ComparisonStarted(info)
	}
}

func (c *CompositeReporter) FrameProgress(progress FrameProgress) {
	for _, r := range c.reporters {
		r.FrameProgress(progress)
	}
}

func (c *CompositeReporter) ComparisonComplete(result ComparisonResult) {
	for _, r := range c.reporters {
		r.ComparisonComplete(result)
	}
}

func (c *CompositeReporter) Error(err ReporterError) {
	for _, r := range c.reporters {
		r.Error(err)
	}
}
