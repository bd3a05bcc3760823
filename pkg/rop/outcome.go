package rop

// Outcome is the untyped success/failure container.
type Outcome struct {
	state
}

// Ok returns a successful outcome without reasons.
func Ok() Outcome {
	return Outcome{state: newState(true, nil)}
}

// Failure returns a failed outcome carrying errs. It panics when errs is
// empty or holds a nil reason.
func Failure(errs ...ErrorReason) Outcome {
	return Outcome{state: failedState(errs)}
}

// FailureMsg returns a failed outcome with one Error per message.
func FailureMsg(msgs ...string) Outcome {
	return Outcome{state: failedState(errorsFromMessages(msgs))}
}

func (o Outcome) WithReason(r Reason) Outcome {
	return Outcome{state: o.appended(r)}
}

func (o Outcome) WithSuccess(msg string) Outcome {
	return o.WithReason(NewSuccess(msg))
}

func (o Outcome) WithSuccessReason(s *SuccessReason) Outcome {
	return Outcome{state: o.appended(successesToReasons([]*SuccessReason{s})...)}
}

func (o Outcome) WithError(msg string) Outcome {
	return o.WithReason(NewError(msg))
}

func (o Outcome) WithErrorReason(e ErrorReason) Outcome {
	return Outcome{state: o.appended(errorsToReasons([]ErrorReason{e})...)}
}

func (o Outcome) WithSuccesses(ss ...*SuccessReason) Outcome {
	return Outcome{state: o.appended(successesToReasons(ss)...)}
}

func (o Outcome) WithErrors(es ...ErrorReason) Outcome {
	return Outcome{state: o.appended(errorsToReasons(es)...)}
}

func (o Outcome) String() string {
	return "Outcome{" + o.describe() + "}"
}
