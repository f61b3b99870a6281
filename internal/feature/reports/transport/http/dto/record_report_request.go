// Package dto defines data transfer objects for the reports feature's HTTP transport layer.
package dto

import "encoding/json"

// RecordReportReq represents the request body for POST /models/:id/predict.
// Data carries the structured results of the completed prediction run.
type RecordReportReq struct {
	Data json.RawMessage `json:"data" binding:"required"`
}
