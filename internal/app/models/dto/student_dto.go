package dto

// UpdateMarksRequest carries the three yearly marks. A missing mark is
// allowed; present marks must sit on the 0-20 scale.
type UpdateMarksRequest struct {
	FirstYearMark  *float64 `json:"firstYearMark" binding:"omitempty,gte=0,lte=20" example:"12.5"`
	SecondYearMark *float64 `json:"secondYearMark" binding:"omitempty,gte=0,lte=20" example:"14"`
	ThirdYearMark  *float64 `json:"thirdYearMark" binding:"omitempty,gte=0,lte=20" example:"15"`
}

// MarksResponse returns the stored marks with the derived score
type MarksResponse struct {
	FirstYearMark   *float64 `json:"firstYearMark"`
	SecondYearMark  *float64 `json:"secondYearMark"`
	ThirdYearMark   *float64 `json:"thirdYearMark"`
	CalculatedScore float64  `json:"calculatedScore" example:"46.0"`
}

// TranscriptResponse returns the stored transcript path
type TranscriptResponse struct {
	TranscriptPDF string `json:"transcriptPdf" example:"uploads/transcripts/7f2c.pdf"`
}
