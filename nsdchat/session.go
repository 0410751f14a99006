package nsdchat

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"strconv"
	"sync/atomic"
	"time"
)

var sessionSeq atomic.Uint64

// NewSessionID generates a session identifier that is unique per process
// run. The P5 server correlates all commands carrying the same identifier
// into one logical CLI session, so two processes must never share one by
// accident. The identifier hashes a high-resolution timestamp, the process
// id and a process-local sequence number.
func NewSessionID() string {
	seed := strconv.FormatInt(time.Now().UnixNano(), 10) +
		":" + strconv.Itoa(os.Getpid()) +
		":" + strconv.FormatUint(sessionSeq.Add(1), 10)
	sum := sha256.Sum224([]byte(seed))
	return "p5go_" + hex.EncodeToString(sum[:])
}
