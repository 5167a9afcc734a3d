package health

import (
	"context"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// Checker reports whether one dependency is reachable.
type Checker func(ctx context.Context) error

// Report is the health payload. OK is false when any check failed.
type Report struct {
	OK     bool              `json:"ok"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Service encapsulates health-related checks.
type Service struct {
	checks  map[string]Checker
	timeout time.Duration
}

// NewService constructs a new health service with no checks.
func NewService() *Service {
	return &Service{checks: map[string]Checker{}, timeout: 2 * time.Second}
}

// Register adds a named check. A nil checker is ignored.
func (s *Service) Register(name string, check Checker) *Service {
	if check != nil {
		s.checks[name] = check
	}
	return s
}

// Names lists the registered checks in sorted order.
func (s *Service) Names() []string {
	names := make([]string, 0, len(s.checks))
	for name := range s.checks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Status runs every check concurrently, each bounded by the service timeout.
func (s *Service) Status(ctx context.Context) Report {
	report := Report{OK: true}
	if len(s.checks) == 0 {
		return report
	}

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	report.Checks = make(map[string]string, len(s.checks))
	for name, check := range s.checks {
		name, check := name, check
		g.Go(func() error {
			checkCtx, cancel := context.WithTimeout(ctx, s.timeout)
			defer cancel()

			status := "ok"
			if err := check(checkCtx); err != nil {
				status = err.Error()
			}
			mu.Lock()
			defer mu.Unlock()
			report.Checks[name] = status
			if status != "ok" {
				report.OK = false
			}
			return nil
		})
	}
	_ = g.Wait()
	return report
}
