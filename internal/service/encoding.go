package service

import (
	"encoding/base64"
	"fmt"
)

// encodeDataURL turns a raw payload into the self-contained encoded form
// stored inside activity records, independent of any display handle.
func encodeDataURL(mimeType string, payload []byte) string {
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(payload))
}
