// file: internals/features/academics/exams/service/grade.go
package service

// GradeOf maps a raw score to a letter grade on a 100-point scale.
// Scores against a different total are normalised first.
func GradeOf(marksObtained, totalMarks float64) string {
	if totalMarks <= 0 {
		return "F"
	}
	pct := marksObtained / totalMarks * 100

	switch {
	case pct >= 90:
		return "A+"
	case pct >= 80:
		return "A"
	case pct >= 70:
		return "B+"
	case pct >= 60:
		return "B"
	case pct >= 50:
		return "C"
	case pct >= 40:
		return "D"
	default:
		return "F"
	}
}
