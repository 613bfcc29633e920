// Package runlog keeps the local append-only record of analysis runs and
// the user feedback attached to them. The scoring engine never reads this
// store during a run; it exists for bookkeeping and bulk export.
package runlog

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id                TEXT PRIMARY KEY,
		symptoms          TEXT NOT NULL,
		lifestyle_json    TEXT NOT NULL DEFAULT '{}',
		genetic_risk      REAL NOT NULL DEFAULT 0,
		lifestyle_risk    REAL NOT NULL DEFAULT 0,
		medical_risk      REAL NOT NULL DEFAULT 0,
		family_risk       REAL NOT NULL DEFAULT 0,
		total_score       REAL NOT NULL DEFAULT 0,
		risk_category     TEXT NOT NULL DEFAULT '',
		primary_diagnosis TEXT NOT NULL DEFAULT '',
		confidence        REAL NOT NULL DEFAULT 0,
		detected_symptoms INTEGER NOT NULL DEFAULT 0,
		results_json      TEXT NOT NULL DEFAULT '{}',
		created_at        DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);

	CREATE TABLE IF NOT EXISTS feedback (
		id               INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id           TEXT NOT NULL,
		user_rating      INTEGER,
		actual_diagnosis TEXT DEFAULT '',
		feedback_text    TEXT DEFAULT '',
		created_at       DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_feedback_run ON feedback(run_id);

	CREATE TABLE IF NOT EXISTS symptom_mappings (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		symptoms   TEXT NOT NULL,
		diagnosis  TEXT NOT NULL,
		confidence REAL NOT NULL,
		verified   BOOLEAN NOT NULL DEFAULT 0,
		source     TEXT DEFAULT 'user',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_mappings_diagnosis ON symptom_mappings(diagnosis);
	`
	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}
	return db, nil
}

// Run is one persisted analysis run.
type Run struct {
	ID               string
	Symptoms         string
	LifestyleJSON    string
	GeneticRisk      float64
	LifestyleRisk    float64
	MedicalRisk      float64
	FamilyRisk       float64
	TotalScore       float64
	RiskCategory     string
	PrimaryDiagnosis string
	Confidence       float64
	DetectedSymptoms int
	ResultsJSON      string
	CreatedAt        time.Time
}

func InsertRun(db *sql.DB, r Run) error {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	_, err := db.Exec(
		`INSERT INTO runs (id, symptoms, lifestyle_json, genetic_risk, lifestyle_risk, medical_risk,
		                   family_risk, total_score, risk_category, primary_diagnosis, confidence,
		                   detected_symptoms, results_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Symptoms, r.LifestyleJSON, r.GeneticRisk, r.LifestyleRisk, r.MedicalRisk,
		r.FamilyRisk, r.TotalScore, r.RiskCategory, r.PrimaryDiagnosis, r.Confidence,
		r.DetectedSymptoms, r.ResultsJSON, r.CreatedAt,
	)
	return err
}

func GetRun(db *sql.DB, id string) (Run, error) {
	var r Run
	err := db.QueryRow(
		`SELECT id, symptoms, lifestyle_json, genetic_risk, lifestyle_risk, medical_risk,
		        family_risk, total_score, risk_category, primary_diagnosis, confidence,
		        detected_symptoms, results_json, created_at
		 FROM runs WHERE id = ?`, id,
	).Scan(
		&r.ID, &r.Symptoms, &r.LifestyleJSON, &r.GeneticRisk, &r.LifestyleRisk, &r.MedicalRisk,
		&r.FamilyRisk, &r.TotalScore, &r.RiskCategory, &r.PrimaryDiagnosis, &r.Confidence,
		&r.DetectedSymptoms, &r.ResultsJSON, &r.CreatedAt,
	)
	return r, err
}

func ListRuns(db *sql.DB, from, to time.Time) ([]Run, error) {
	rows, err := db.Query(
		`SELECT id, symptoms, lifestyle_json, genetic_risk, lifestyle_risk, medical_risk,
		        family_risk, total_score, risk_category, primary_diagnosis, confidence,
		        detected_symptoms, results_json, created_at
		 FROM runs WHERE created_at >= ? AND created_at < ?
		 ORDER BY created_at, id`,
		from.UTC(), to.UTC(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(
			&r.ID, &r.Symptoms, &r.LifestyleJSON, &r.GeneticRisk, &r.LifestyleRisk, &r.MedicalRisk,
			&r.FamilyRisk, &r.TotalScore, &r.RiskCategory, &r.PrimaryDiagnosis, &r.Confidence,
			&r.DetectedSymptoms, &r.ResultsJSON, &r.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Feedback is a user's verdict on one run.
type Feedback struct {
	ID              int64
	RunID           string
	UserRating      sql.NullInt64
	ActualDiagnosis string
	FeedbackText    string
	CreatedAt       time.Time
}

func InsertFeedback(db *sql.DB, f Feedback) error {
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now().UTC()
	}
	_, err := db.Exec(
		`INSERT INTO feedback (run_id, user_rating, actual_diagnosis, feedback_text, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		f.RunID, f.UserRating, f.ActualDiagnosis, f.FeedbackText, f.CreatedAt,
	)
	return err
}

func ListFeedback(db *sql.DB, limit int) ([]Feedback, error) {
	rows, err := db.Query(
		`SELECT id, run_id, user_rating, actual_diagnosis, feedback_text, created_at
		 FROM feedback ORDER BY created_at DESC, id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Feedback
	for rows.Next() {
		var f Feedback
		if err := rows.Scan(&f.ID, &f.RunID, &f.UserRating, &f.ActualDiagnosis, &f.FeedbackText, &f.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// Mapping is a symptom-set to diagnosis association recorded from runs or
// verified feedback.
type Mapping struct {
	ID         int64
	Symptoms   string
	Diagnosis  string
	Confidence float64
	Verified   bool
	Source     string
	CreatedAt  time.Time
}

func InsertMappings(db *sql.DB, mappings []Mapping) error {
	if len(mappings) == 0 {
		return nil
	}
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		`INSERT INTO symptom_mappings (symptoms, diagnosis, confidence, verified, source, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for _, m := range mappings {
		created := m.CreatedAt
		if created.IsZero() {
			created = now
		}
		if _, err := stmt.Exec(m.Symptoms, m.Diagnosis, m.Confidence, m.Verified, m.Source, created); err != nil {
			return err
		}
	}
	return tx.Commit()
}
