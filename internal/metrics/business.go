package metrics

// IncrementForumCreated increments forum creation counter
func (m *Metrics) IncrementForumCreated() {
	m.safeExecute("IncrementForumCreated", func() {
		m.ForumCreatedTotal.Inc()
	})
}

// IncrementPostCreated increments post creation counter
func (m *Metrics) IncrementPostCreated() {
	m.safeExecute("IncrementPostCreated", func() {
		m.PostCreatedTotal.Inc()
	})
}

// SetForumsTotal sets total forums gauge
func (m *Metrics) SetForumsTotal(count int64) {
	m.safeExecute("SetForumsTotal", func() {
		m.ForumsTotal.Set(float64(count))
	})
}

// SetPostsTotal sets total posts gauge
func (m *Metrics) SetPostsTotal(count int64) {
	m.safeExecute("SetPostsTotal", func() {
		m.PostsTotal.Set(float64(count))
	})
}

// IncrementMailSent increments the sent mail counter
func (m *Metrics) IncrementMailSent() {
	m.safeExecute("IncrementMailSent", func() {
		m.MailSentTotal.Inc()
	})
}

// IncrementMailErrors increments the mail failure counter
func (m *Metrics) IncrementMailErrors() {
	m.safeExecute("IncrementMailErrors", func() {
		m.MailErrorsTotal.Inc()
	})
}
