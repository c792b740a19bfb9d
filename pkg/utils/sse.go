package utils

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
)

// SetupSSEHeaders prepares a response for Server-Sent Events streaming.
func SetupSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// SendSSEEvent writes one named-event SSE frame and flushes it.
func SendSSEEvent(w http.ResponseWriter, flusher http.Flusher, event string, data interface{}) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal sse event data: %v", err)
		return
	}

	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, jsonData); err != nil {
		log.Printf("failed to write sse event: %v", err)
		return
	}
	flusher.Flush()
}
