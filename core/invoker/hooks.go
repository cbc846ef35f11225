package invoker

import "go.uber.org/zap"

// LoggingHooks returns the standard hook set for a client: structured zap
// logging at every lifecycle point plus the given retry policy. Features
// stack their own hooks on top via Merge.
func LoggingHooks(l *zap.Logger, policy Policy) Hooks {
	return Hooks{
		Pre: []Hook{
			func(s *CallScope) {
				l.Debug("Call started",
					zap.String("component", s.Info.Component),
					zap.String("operation", s.Info.Operation),
					zap.String("target", s.Info.Target),
				)
			},
		},
		Retry: []RetryHook{
			func(s *CallScope, attempt int) {
				l.Warn("Retrying call",
					zap.String("component", s.Info.Component),
					zap.String("operation", s.Info.Operation),
					zap.String("target", s.Info.Target),
					zap.Int("attempt", attempt),
				)
			},
		},
		Error: []Hook{
			func(s *CallScope) {
				l.Error("Call failed",
					zap.String("component", s.Info.Component),
					zap.String("operation", s.Info.Operation),
					zap.String("target", s.Info.Target),
					zap.Int("attempts", s.Attempts()),
					zap.Duration("elapsed", s.Elapsed()),
					zap.Error(s.Err()),
				)
			},
		},
		Post: []Hook{
			func(s *CallScope) {
				l.Debug("Call finished",
					zap.String("component", s.Info.Component),
					zap.String("operation", s.Info.Operation),
					zap.String("target", s.Info.Target),
					zap.Int("attempts", s.Attempts()),
					zap.Duration("elapsed", s.Elapsed()),
					zap.Bool("success", s.Err() == nil),
				)
			},
		},
		Policy: policy,
	}
}
