package runlog

import (
	"database/sql"
	"strings"
	"time"
)

// Stats summarizes prediction quality from the feedback table. A feedback
// row counts as correct when the reported actual diagnosis, lowercased, is
// a substring of the predicted primary diagnosis or vice versa.
type Stats struct {
	TotalRuns     int
	TotalFeedback int
	WithActual    int
	Correct       int
	Accuracy      float64 // 0 when no feedback carries an actual diagnosis
	AverageRating float64 // 0 when no ratings recorded
	AvgConfidence float64
	BucketBelow40 int
	Bucket40to70  int
	Bucket70Plus  int
}

func GetStats(db *sql.DB, since time.Time) (Stats, error) {
	var s Stats
	since = since.UTC()
	err := db.QueryRow(
		`SELECT COUNT(*), COALESCE(AVG(confidence), 0),
		        COALESCE(SUM(CASE WHEN confidence < 40 THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN confidence >= 40 AND confidence <= 70 THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN confidence > 70 THEN 1 ELSE 0 END), 0)
		 FROM runs WHERE created_at >= ?`,
		since,
	).Scan(&s.TotalRuns, &s.AvgConfidence, &s.BucketBelow40, &s.Bucket40to70, &s.Bucket70Plus)
	if err != nil {
		return s, err
	}

	var ratingSum sql.NullFloat64
	err = db.QueryRow(
		`SELECT COUNT(*), AVG(user_rating) FROM feedback WHERE created_at >= ?`,
		since,
	).Scan(&s.TotalFeedback, &ratingSum)
	if err != nil {
		return s, err
	}
	if ratingSum.Valid {
		s.AverageRating = ratingSum.Float64
	}

	rows, err := db.Query(
		`SELECT f.actual_diagnosis, r.primary_diagnosis
		 FROM feedback f JOIN runs r ON r.id = f.run_id
		 WHERE f.created_at >= ? AND TRIM(f.actual_diagnosis) <> ''`,
		since,
	)
	if err != nil {
		return s, err
	}
	defer rows.Close()

	for rows.Next() {
		var actual, predicted string
		if err := rows.Scan(&actual, &predicted); err != nil {
			return s, err
		}
		s.WithActual++
		a, p := strings.ToLower(actual), strings.ToLower(predicted)
		if strings.Contains(p, a) || strings.Contains(a, p) {
			s.Correct++
		}
	}
	if err := rows.Err(); err != nil {
		return s, err
	}
	if s.WithActual > 0 {
		s.Accuracy = float64(s.Correct) / float64(s.WithActual)
	}
	return s, nil
}
