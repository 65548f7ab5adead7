package logger

// Pass-through methods forward their arguments to the identically
// named backend method, unmodified and without a prefix. Each is
// gated by its own activation key (e.g. "request.groupCollapsed") and
// returns the logger for chaining.

func (l *Logger) Dir(args ...any) *Logger {
	if l.IsActivated("dir") {
		l.console.Dir(args...)
	}
	return l
}

func (l *Logger) Dirxml(args ...any) *Logger {
	if l.IsActivated("dirxml") {
		l.console.Dirxml(args...)
	}
	return l
}

func (l *Logger) Group(args ...any) *Logger {
	if l.IsActivated("group") {
		l.console.Group(args...)
	}
	return l
}

func (l *Logger) GroupCollapsed(args ...any) *Logger {
	if l.IsActivated("groupCollapsed") {
		l.console.GroupCollapsed(args...)
	}
	return l
}

func (l *Logger) GroupEnd(args ...any) *Logger {
	if l.IsActivated("groupEnd") {
		l.console.GroupEnd(args...)
	}
	return l
}

func (l *Logger) Count(args ...any) *Logger {
	if l.IsActivated("count") {
		l.console.Count(args...)
	}
	return l
}

func (l *Logger) Time(args ...any) *Logger {
	if l.IsActivated("time") {
		l.console.Time(args...)
	}
	return l
}

func (l *Logger) TimeEnd(args ...any) *Logger {
	if l.IsActivated("timeEnd") {
		l.console.TimeEnd(args...)
	}
	return l
}

func (l *Logger) TimeStamp(args ...any) *Logger {
	if l.IsActivated("timeStamp") {
		l.console.TimeStamp(args...)
	}
	return l
}

func (l *Logger) Profile(args ...any) *Logger {
	if l.IsActivated("profile") {
		l.console.Profile(args...)
	}
	return l
}

func (l *Logger) ProfileEnd(args ...any) *Logger {
	if l.IsActivated("profileEnd") {
		l.console.ProfileEnd(args...)
	}
	return l
}

func (l *Logger) Assert(args ...any) *Logger {
	if l.IsActivated("assert") {
		l.console.Assert(args...)
	}
	return l
}

func (l *Logger) Clear(args ...any) *Logger {
	if l.IsActivated("clear") {
		l.console.Clear(args...)
	}
	return l
}
