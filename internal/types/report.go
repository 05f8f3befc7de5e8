package types

import "time"

// StructureAnalysis describes the extracted resume text itself.
type StructureAnalysis struct {
	FileSizeKB         float64 `json:"file_size_kb"`
	TextLength         int     `json:"text_length"`
	IsScannedPDF       bool    `json:"is_scanned_pdf"`
	ContactInfoPresent bool    `json:"contact_info_present"`
}

// AnalysisReport is the full decision package for one resume/job pair.
type AnalysisReport struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Score         float64       `json:"score"`
	SectionScores SectionScores `json:"section_scores"`
	MissingSkills []string      `json:"missing_skills"`
	PresentSkills []string      `json:"present_skills"`
	ResumeSkills  []string      `json:"resume_skills"`
	JobSkills     []string      `json:"job_skills"`

	Recommendations       []string         `json:"recommendations"`
	RecommendationDetails []Recommendation `json:"recommendation_details"`

	Trajectory         []TrajectoryPoint   `json:"trajectory"`
	BulletAnalysis     []BulletFinding     `json:"bullet_analysis"`
	InterviewQuestions []InterviewQuestion `json:"interview_questions"`
	MarketAnalysis     MarketProfile       `json:"market_analysis"`
	SuccessPrediction  SuccessPrediction   `json:"success_prediction"`
	StructureAnalysis  *StructureAnalysis  `json:"structure_analysis,omitempty"`
}

// ApplyMatch copies a match score breakdown into the report.
func (r *AnalysisReport) ApplyMatch(m MatchScore) {
	r.Score = m.Total
	r.SectionScores = SectionScores{Semantic: m.Semantic, Skills: m.Skill}
	r.MissingSkills = m.Missing.Sorted()
	r.PresentSkills = m.Present.Sorted()
}
