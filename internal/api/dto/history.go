package dto

import "time"

type ConversionRecordResponse struct {
	ID        string    `json:"id"`
	Operation string    `json:"operation"`
	Input     string    `json:"input"`
	Output    string    `json:"output"`
	CreatedAt time.Time `json:"created_at"`
}

type ListHistoryResponse struct {
	Records []ConversionRecordResponse `json:"records"`
}
