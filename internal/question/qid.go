package question

import (
	"crypto/sha256"
	"encoding/hex"
)

const qidLength = 12

// QID derives the stable short id for a question from its text.
func QID(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])[:qidLength]
}
