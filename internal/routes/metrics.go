package routes

import "github.com/haguru/credkeeper/internal/interfaces"

// RegisterMetrics registers every metric the handlers record.
func RegisterMetrics(m interfaces.Metrics) {
	m.RegisterCounter(SignupRequestsTotal, SignupRequestsTotalHelp)
	m.RegisterCounter(SignupSuccessTotal, SignupSuccessTotalHelp)
	m.RegisterCounter(SignupErrorsTotal, SignupErrorsTotalHelp)
	m.RegisterHistogram(
		SignupDurationSeconds,
		SignupDurationSecondsHelp,
		SignupDurationSecondsBuckets)

	m.RegisterCounter(LoginRequestsTotal, LoginRequestsTotalHelp)
	m.RegisterCounter(LoginSuccessTotal, LoginSuccessTotalHelp)
	m.RegisterCounter(LoginFailedTotal, LoginFailedTotalHelp)
	m.RegisterHistogram(
		LoginDurationSeconds,
		LoginDurationSecondsHelp,
		LoginDurationSecondsBuckets)

	m.RegisterCounterVec(StoreErrorsTotal, StoreErrorsTotalHelp, StoreErrorsLabels)
	m.RegisterGauge(StoreUp, StoreUpHelp)
}
