package app

// Queue is the ordered list of files given on the command line.
type Queue struct {
	paths   []string
	current int
}

// NewQueue creates a queue positioned on the first path.
func NewQueue(paths []string) *Queue {
	return &Queue{paths: paths}
}

// Len returns the number of queued paths.
func (q *Queue) Len() int {
	return len(q.paths)
}

// CurrentIndex returns the index of the current path.
func (q *Queue) CurrentIndex() int {
	return q.current
}

// Current returns the current path, or false when the queue is empty.
func (q *Queue) Current() (string, bool) {
	if q.current < 0 || q.current >= len(q.paths) {
		return "", false
	}
	return q.paths[q.current], true
}

// Next moves to the following path. It reports false at the end.
func (q *Queue) Next() (string, bool) {
	if q.current+1 >= len(q.paths) {
		return "", false
	}
	q.current++
	return q.paths[q.current], true
}

// Prev moves to the preceding path. It reports false at the start.
func (q *Queue) Prev() (string, bool) {
	if q.current <= 0 || len(q.paths) == 0 {
		return "", false
	}
	q.current--
	return q.paths[q.current], true
}
