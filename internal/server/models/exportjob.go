package models

import "time"

// ExportJob is the descriptor published to the export queue. It is immutable
// once published; the external consumer resolves the current song list at
// processing time. The JSON tags are the wire contract with that consumer.
type ExportJob struct {
	ID            string    `json:"jobId"`
	PlaylistID    string    `json:"playlistId"`
	RequestedBy   string    `json:"requestedBy"`
	TargetAddress string    `json:"targetAddress"`
	RequestedAt   time.Time `json:"requestedAt"`
}
