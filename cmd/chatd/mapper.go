package main

import (
	"fmt"

	"github.com/mama165/sdk-go/database"

	"world-chat/repositories"
)

// ChatRecordMapper renders a chat log entry in the Badger inspector.
// Keys follow "chat:{sender}:{timestamp}:{uuid}", which DefaultMapper already splits.
func ChatRecordMapper(key string, val []byte) database.InspectRow {
	row := database.DefaultMapper(key, val)

	record, err := repositories.UnmarshalRecord(val)
	if err != nil {
		row.Detail = "Error: unmarshal failed"
		return row
	}

	row.Type = record.Kind.String()
	row.Detail = fmt.Sprintf("[%s] %s", record.SenderName, record.Text)
	row.Scores = fmt.Sprintf("%s recipients:%d", record.Detected, record.Recipients)
	return row
}
