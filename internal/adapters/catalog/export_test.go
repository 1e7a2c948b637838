package catalog

import "time"

// SetClock overrides the timestamp source so golden files stay stable.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}
