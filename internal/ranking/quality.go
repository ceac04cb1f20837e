package ranking

import "math"

// Quality computes the log-damped popularity score for one mentor:
// clamp(ln(1+count)/ln(1+cohortMax), 0, 1). The log damping keeps one
// outlier mentor from compressing everyone else's quality near zero.
// A cohort with no positive engagement gets the neutral 0.5.
func Quality(mentoringCount, cohortMax int) float64 {
	if cohortMax <= 0 {
		return 0.5
	}
	if mentoringCount < 0 {
		mentoringCount = 0
	}
	return Clamp01(math.Log1p(float64(mentoringCount)) / math.Log1p(float64(cohortMax)))
}

// Clamp01 clamps a value to the closed interval [0,1].
func Clamp01(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
