/*
Package grading implements reputation scoring of trader predictions.

Every graded prediction yields a rate in [0, MaxRate]: MaxRate for an exact
prediction, one point less for every unit of distance from the outcome and
zero for predictions farther than MaxRate units. Trader performance is an
exponential moving average with a fixed weight of one half over these rates,
computed with integer floor division. Repeated perfect predictions approach
MaxRate but never reach it once the division truncates.
*/
package grading

// MaxRate is the rate of an exact prediction.
const MaxRate = 100

// Rate returns the rate of the prediction against the revealed outcome.
func Rate(value, outcome int) int {
	distance := value - outcome
	if value < outcome {
		distance = outcome - value
	}
	// Negative distance means int64 overflow in native Go code, NeoVM
	// integers are not bounded.
	if distance < 0 || distance >= MaxRate {
		return 0
	}
	return MaxRate - distance
}

// Grade folds the prediction rate into the current performance and returns
// the new performance.
func Grade(performance, value, outcome int) int {
	return (performance + Rate(value, outcome)) / 2
}
