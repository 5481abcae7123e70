// Package tracing adapts corehsm.Tracer to concrete logging back-ends. The
// core package never imports a logging library itself — spec.md keeps
// logging/tracing an external collaborator the core only invokes through a
// hook — so this adapter is the concrete collaborator, grounded in the one
// generic state-machine in the retrieved corpus that wires a real logger
// through its core (harsh-ps-2003-fsm, via logrus.FieldLogger).
package tracing

import (
	"github.com/sirupsen/logrus"

	"github.com/corehsm/corehsm"
)

var _ corehsm.Tracer = (*LogrusTracer)(nil)

// LogrusTracer implements corehsm.Tracer by emitting structured log entries
// through a logrus.FieldLogger.
type LogrusTracer struct {
	Logger logrus.FieldLogger
}

// NewLogrusTracer wraps logger as a corehsm.Tracer. A nil logger falls back
// to logrus's standard logger.
func NewLogrusTracer(logger logrus.FieldLogger) *LogrusTracer {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LogrusTracer{Logger: logger}
}

func (t *LogrusTracer) OnTransitionAttempt(traceID, from, event string) {
	t.Logger.WithFields(logrus.Fields{"traceID": traceID, "from": from, "event": event}).Debug("corehsm: transition attempt")
}

func (t *LogrusTracer) OnTransitionResolved(traceID, from, to, event string) {
	t.Logger.WithFields(logrus.Fields{"traceID": traceID, "from": from, "to": to, "event": event}).Debug("corehsm: transition resolved")
}

func (t *LogrusTracer) OnTransitionRejected(traceID, from, event, reason string) {
	t.Logger.WithFields(logrus.Fields{"traceID": traceID, "from": from, "event": event, "reason": reason}).Info("corehsm: transition rejected")
}

func (t *LogrusTracer) OnStateExiting(traceID, state string, allowed bool) {
	t.Logger.WithFields(logrus.Fields{"traceID": traceID, "state": state, "allowed": allowed}).Debug("corehsm: state exiting")
}

func (t *LogrusTracer) OnStateEntering(traceID, state string, allowed bool) {
	t.Logger.WithFields(logrus.Fields{"traceID": traceID, "state": state, "allowed": allowed}).Debug("corehsm: state entering")
}

func (t *LogrusTracer) OnStateChanged(traceID, state string) {
	t.Logger.WithFields(logrus.Fields{"traceID": traceID, "state": state}).Debug("corehsm: state changed")
}

func (t *LogrusTracer) OnEntryPointDescent(traceID, parent, entryPoint string) {
	t.Logger.WithFields(logrus.Fields{"traceID": traceID, "parent": parent, "entryPoint": entryPoint}).Debug("corehsm: entry-point descent")
}

func (t *LogrusTracer) OnError(err error) {
	t.Logger.WithError(err).Error("corehsm: error")
}
