package services

// LetterGrade converts a 0-100 score to its letter using inclusive lower
// bounds: >=90 A, >=80 B, >=70 C, >=60 D, else F.
func LetterGrade(score float64) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

// GradePoint maps a letter grade to its GPA point value. Unknown letters
// count as 0, same as F.
func GradePoint(letter string) float64 {
	switch letter {
	case "A":
		return 4.0
	case "B":
		return 3.0
	case "C":
		return 2.0
	case "D":
		return 1.0
	default:
		return 0.0
	}
}
