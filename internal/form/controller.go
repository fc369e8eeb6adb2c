package form

// SubmissionAllowed is the enablement rule for the submit control. It holds no
// state: the result depends only on the three field states and the date toggle.
func SubmissionAllowed(initialTime, durationValue, startDate FieldState, useStartDate bool) bool {
	if !filled(initialTime) || !filled(durationValue) {
		return false
	}
	return !useStartDate || filled(startDate)
}

func filled(s FieldState) bool {
	return s.ErrorMessage == "" && s.TrimmedValue != ""
}

// recompute refreshes the submit control from the current field states.
// The caller holds c.mu.
func (c *Context) recompute() {
	allowed := SubmissionAllowed(
		c.engine.state(FieldInitialTime),
		c.engine.state(FieldDurationValue),
		c.engine.state(FieldStartDate),
		c.useStartDate,
	)
	c.submit.Enabled = allowed && !c.submit.Busy
}
